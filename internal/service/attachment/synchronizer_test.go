package attachment_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	attachment_memory "portfolio-content-service/internal/repository/attachment/memory"
)

var galleryFields = []model.TemplateField{
	{Name: "cover", Type: model.FieldTypeImage},
	{Name: "images", Type: model.FieldTypeImageGallery},
}

func newTestSynchronizer() *Synchronizer {
	return NewSynchronizer(logger.New("test"), metrics.NewNoopProvider())
}

func TestParseImageID(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   int64
		wantOK bool
	}{
		{name: "Int", value: 7, want: 7, wantOK: true},
		{name: "Int64", value: int64(12), want: 12, wantOK: true},
		{name: "Integral float", value: float64(42), want: 42, wantOK: true},
		{name: "Fractional float", value: 42.5, wantOK: false},
		{name: "Digit string", value: "101", want: 101, wantOK: true},
		{name: "Signed string", value: "-3", wantOK: false},
		{name: "Empty string", value: "", wantOK: false},
		{name: "Zero", value: 0, wantOK: false},
		{name: "Negative", value: -1, wantOK: false},
		{name: "Nil", value: nil, wantOK: false},
		{name: "Bool", value: true, wantOK: false},
		{name: "Alpha string", value: "12a", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseImageID(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBuildDesiredSet(t *testing.T) {
	tests := []struct {
		name   string
		fields []model.TemplateField
		data   map[string]any
		want   map[int64]model.DesiredAttachment
	}{
		{
			name:   "Image field is the cover",
			fields: galleryFields,
			data:   map[string]any{"cover": float64(10)},
			want: map[int64]model.DesiredAttachment{
				10: {Slot: "cover", Position: 0, IsCover: true},
			},
		},
		{
			name:   "Gallery positions skip malformed items",
			fields: galleryFields,
			data: map[string]any{
				"images": []any{float64(1), "oops", float64(2), nil, float64(3)},
			},
			want: map[int64]model.DesiredAttachment{
				1: {Slot: "images", Position: 0, IsCover: true},
				2: {Slot: "images", Position: 1},
				3: {Slot: "images", Position: 2},
			},
		},
		{
			name:   "Gallery object items carry captions",
			fields: galleryFields,
			data: map[string]any{
				"images": []any{
					map[string]any{"id": float64(5), "caption": "  first  "},
					map[string]any{"id": float64(6), "caption": ""},
				},
			},
			want: map[int64]model.DesiredAttachment{
				5: {Slot: "images", Position: 0, IsCover: true, Caption: strPtr("first")},
				6: {Slot: "images", Position: 1},
			},
		},
		{
			name:   "Later field wins for a duplicate image id",
			fields: galleryFields,
			data: map[string]any{
				"cover":  float64(5),
				"images": []any{float64(5), float64(6)},
			},
			want: map[int64]model.DesiredAttachment{
				5: {Slot: "images", Position: 0, IsCover: true},
				6: {Slot: "images", Position: 1},
			},
		},
		{
			name:   "Cleared values yield an empty set",
			fields: galleryFields,
			data:   map[string]any{"cover": nil, "images": []any{}},
			want:   map[int64]model.DesiredAttachment{},
		},
		{
			name:   "Empty string image is absent",
			fields: galleryFields,
			data:   map[string]any{"cover": ""},
			want:   map[int64]model.DesiredAttachment{},
		},
		{
			name:   "Non-list gallery value is skipped",
			fields: galleryFields,
			data:   map[string]any{"images": "not-a-list"},
			want:   map[int64]model.DesiredAttachment{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildDesiredSet(tt.fields, tt.data)
			assert.Equal(t, tt.want, got)
		})
	}
}

func strPtr(s string) *string { return &s }

func TestSynchronizer_Sync_NoMediaFields(t *testing.T) {
	log := logger.New("test")
	repo := attachment_memory.NewAttachmentRepository(log)
	owner := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 1}
	require.NoError(t, repo.Upsert(context.Background(), owner, []*model.ImageAttachment{
		{Slot: "cover", ImageID: 9, IsCover: true},
	}))

	s := newTestSynchronizer()
	err := s.Sync(context.Background(), repo, owner, nil, map[string]any{"cover": nil})

	assert.NoError(t, err)
	rows, err := repo.GetByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSynchronizer_Sync_AttachesDesiredRows(t *testing.T) {
	log := logger.New("test")
	repo := attachment_memory.NewAttachmentRepository(log)
	owner := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 1}

	s := newTestSynchronizer()
	data := map[string]any{
		"cover":  float64(10),
		"images": []any{float64(20), float64(21)},
	}
	err := s.Sync(context.Background(), repo, owner, galleryFields, data)

	assert.NoError(t, err)
	rows, err := repo.GetByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "cover", rows[0].Slot)
	assert.Equal(t, int64(10), rows[0].ImageID)
	assert.True(t, rows[0].IsCover)

	assert.Equal(t, "images", rows[1].Slot)
	assert.Equal(t, int64(20), rows[1].ImageID)
	assert.Equal(t, int32(0), rows[1].Position)
	assert.True(t, rows[1].IsCover)

	assert.Equal(t, int64(21), rows[2].ImageID)
	assert.Equal(t, int32(1), rows[2].Position)
	assert.False(t, rows[2].IsCover)
}

func TestSynchronizer_Sync_Idempotent(t *testing.T) {
	log := logger.New("test")
	repo := attachment_memory.NewAttachmentRepository(log)
	owner := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 1}

	s := newTestSynchronizer()
	data := map[string]any{
		"cover":  float64(10),
		"images": []any{float64(20), float64(21)},
	}
	require.NoError(t, s.Sync(context.Background(), repo, owner, galleryFields, data))

	repo.ResetWriteCounts()
	require.NoError(t, s.Sync(context.Background(), repo, owner, galleryFields, data))

	upserted, detached := repo.WriteCounts()
	assert.Equal(t, 0, upserted)
	assert.Equal(t, 0, detached)
}

func TestSynchronizer_Sync_ReplacesByDiff(t *testing.T) {
	log := logger.New("test")
	repo := attachment_memory.NewAttachmentRepository(log)
	owner := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 1}

	s := newTestSynchronizer()
	require.NoError(t, s.Sync(context.Background(), repo, owner, galleryFields, map[string]any{
		"cover":  float64(10),
		"images": []any{float64(20), float64(21)},
	}))

	// Image 21 leaves, 22 arrives, 20 moves to the cover slot.
	repo.ResetWriteCounts()
	require.NoError(t, s.Sync(context.Background(), repo, owner, galleryFields, map[string]any{
		"cover":  float64(20),
		"images": []any{float64(22)},
	}))

	rows, err := repo.GetByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "cover", rows[0].Slot)
	assert.Equal(t, int64(20), rows[0].ImageID)
	assert.Equal(t, "images", rows[1].Slot)
	assert.Equal(t, int64(22), rows[1].ImageID)

	upserted, detached := repo.WriteCounts()
	assert.Equal(t, 2, upserted)
	assert.Equal(t, 3, detached)
}

func TestSynchronizer_Sync_ClearedValuesDetachAll(t *testing.T) {
	log := logger.New("test")
	repo := attachment_memory.NewAttachmentRepository(log)
	owner := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 1}

	s := newTestSynchronizer()
	require.NoError(t, s.Sync(context.Background(), repo, owner, galleryFields, map[string]any{
		"cover":  float64(10),
		"images": []any{float64(20)},
	}))

	require.NoError(t, s.Sync(context.Background(), repo, owner, galleryFields, map[string]any{
		"cover":  nil,
		"images": []any{},
	}))

	rows, err := repo.GetByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSynchronizer_Sync_CaptionChangeUpdatesRow(t *testing.T) {
	log := logger.New("test")
	repo := attachment_memory.NewAttachmentRepository(log)
	owner := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 1}

	s := newTestSynchronizer()
	require.NoError(t, s.Sync(context.Background(), repo, owner, galleryFields, map[string]any{
		"images": []any{map[string]any{"id": float64(5), "caption": "old"}},
	}))

	repo.ResetWriteCounts()
	require.NoError(t, s.Sync(context.Background(), repo, owner, galleryFields, map[string]any{
		"images": []any{map[string]any{"id": float64(5), "caption": "new"}},
	}))

	rows, err := repo.GetByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Caption)
	assert.Equal(t, "new", *rows[0].Caption)

	upserted, detached := repo.WriteCounts()
	assert.Equal(t, 1, upserted)
	assert.Equal(t, 0, detached)
}

func TestSynchronizer_Sync_OtherOwnersUntouched(t *testing.T) {
	log := logger.New("test")
	repo := attachment_memory.NewAttachmentRepository(log)
	ownerA := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 1}
	ownerB := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 2}

	s := newTestSynchronizer()
	require.NoError(t, s.Sync(context.Background(), repo, ownerA, galleryFields, map[string]any{
		"cover": float64(10),
	}))
	require.NoError(t, s.Sync(context.Background(), repo, ownerB, galleryFields, map[string]any{
		"cover": float64(11),
	}))

	require.NoError(t, s.Sync(context.Background(), repo, ownerA, galleryFields, map[string]any{
		"cover": nil,
	}))

	rowsA, err := repo.GetByOwner(context.Background(), ownerA)
	require.NoError(t, err)
	assert.Empty(t, rowsA)

	rowsB, err := repo.GetByOwner(context.Background(), ownerB)
	require.NoError(t, err)
	assert.Len(t, rowsB, 1)
}
