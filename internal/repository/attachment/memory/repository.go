package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
)

type ownerKey struct {
	ownerType string
	ownerID   int64
}

type slotImageKey struct {
	slot    string
	imageID int64
}

// AttachmentRepository is an in-memory stand-in used by tests.
type AttachmentRepository struct {
	log     *logger.Logger
	mu      sync.RWMutex
	byOwner map[ownerKey]map[slotImageKey]*model.ImageAttachment
	nextID  int64

	upsertedRows int
	detachedRows int
}

func NewAttachmentRepository(log *logger.Logger) *AttachmentRepository {
	return &AttachmentRepository{
		log:     log,
		byOwner: make(map[ownerKey]map[slotImageKey]*model.ImageAttachment),
		nextID:  1,
	}
}

// WriteCounts reports upserted and detached row totals for assertions.
func (r *AttachmentRepository) WriteCounts() (upserted, detached int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.upsertedRows, r.detachedRows
}

func (r *AttachmentRepository) ResetWriteCounts() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upsertedRows = 0
	r.detachedRows = 0
}

func (r *AttachmentRepository) GetByOwner(ctx context.Context, owner model.AttachmentOwner) ([]*model.ImageAttachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.byOwner[ownerKey{owner.Type, owner.ID}]
	result := make([]*model.ImageAttachment, 0, len(rows))
	for _, a := range rows {
		copied := *a
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Slot != result[j].Slot {
			return result[i].Slot < result[j].Slot
		}
		return result[i].Position < result[j].Position
	})
	return result, nil
}

func (r *AttachmentRepository) Upsert(ctx context.Context, owner model.AttachmentOwner, attachments []*model.ImageAttachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ownerKey{owner.Type, owner.ID}
	rows := r.byOwner[key]
	if rows == nil {
		rows = make(map[slotImageKey]*model.ImageAttachment)
		r.byOwner[key] = rows
	}

	for _, a := range attachments {
		sk := slotImageKey{a.Slot, a.ImageID}
		if existing, ok := rows[sk]; ok {
			existing.Position = a.Position
			existing.IsCover = a.IsCover
			existing.Caption = a.Caption
		} else {
			rows[sk] = &model.ImageAttachment{
				ID:        r.nextID,
				OwnerType: owner.Type,
				OwnerID:   owner.ID,
				Slot:      a.Slot,
				ImageID:   a.ImageID,
				Position:  a.Position,
				IsCover:   a.IsCover,
				Caption:   a.Caption,
				CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
			}
			r.nextID++
		}
		r.upsertedRows++
	}
	return nil
}

func (r *AttachmentRepository) Detach(ctx context.Context, attachmentIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make(map[int64]bool, len(attachmentIDs))
	for _, id := range attachmentIDs {
		ids[id] = true
	}
	for _, rows := range r.byOwner {
		for sk, a := range rows {
			if ids[a.ID] {
				delete(rows, sk)
				r.detachedRows++
			}
		}
	}
	return nil
}

func (r *AttachmentRepository) DetachAll(ctx context.Context, owner model.AttachmentOwner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ownerKey{owner.Type, owner.ID}
	r.detachedRows += len(r.byOwner[key])
	delete(r.byOwner, key)
	return nil
}
