package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
)

const testTemplatesYAML = `templates:
  - key: "hero"
    label: "Hero banner"
    fields:
      - name: "heading"
        type: "text"
      - name: "background"
        type: "image"
  - key: "gallery"
    fields:
      - name: "title"
        type: "text"
      - name: "images"
        type: "image_gallery"
`

func writeTemplatesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewFileRegistry(t *testing.T) {
	log := logger.New("test")
	path := writeTemplatesFile(t, testTemplatesYAML)

	registry, err := NewFileRegistry(path, log)
	require.NoError(t, err)

	def, err := registry.Definition("hero")
	require.NoError(t, err)
	assert.Equal(t, "hero", def.Key)
	assert.Len(t, def.Fields, 2)
	assert.Equal(t, model.FieldTypeImage, def.Fields[1].Type)
}

func TestNewFileRegistry_MissingFile(t *testing.T) {
	log := logger.New("test")
	_, err := NewFileRegistry(filepath.Join(t.TempDir(), "absent.yaml"), log)
	assert.Error(t, err)
}

func TestNewFileRegistry_InvalidFieldType(t *testing.T) {
	log := logger.New("test")
	path := writeTemplatesFile(t, `templates:
  - key: "broken"
    fields:
      - name: "x"
        type: "video"
`)
	_, err := NewFileRegistry(path, log)
	assert.Error(t, err)
}

func TestFileRegistry_Definition_Unknown(t *testing.T) {
	log := logger.New("test")
	path := writeTemplatesFile(t, testTemplatesYAML)
	registry, err := NewFileRegistry(path, log)
	require.NoError(t, err)

	_, err = registry.Definition("missing")
	assert.True(t, errors.Is(err, custom_errors.ErrTemplateNotFound))
}

func TestFileRegistry_NormalizeData(t *testing.T) {
	log := logger.New("test")
	registry := NewStaticRegistry([]*model.TemplateDefinition{
		{
			Key: "hero",
			Fields: []model.TemplateField{
				{Name: "heading", Type: model.FieldTypeText},
				{Name: "background", Type: model.FieldTypeImage},
			},
		},
	}, log)

	tests := []struct {
		name string
		key  string
		data map[string]any
		want map[string]any
	}{
		{
			name: "Undeclared keys dropped",
			key:  "hero",
			data: map[string]any{"heading": "Hi", "rogue": true},
			want: map[string]any{"heading": "Hi"},
		},
		{
			name: "Declared nil values survive",
			key:  "hero",
			data: map[string]any{"background": nil},
			want: map[string]any{"background": nil},
		},
		{
			name: "Nil data becomes empty map",
			key:  "hero",
			data: nil,
			want: map[string]any{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.NormalizeData(tt.key, tt.data, "en")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := registry.NormalizeData("missing", map[string]any{}, "en")
	assert.True(t, errors.Is(err, custom_errors.ErrTemplateNotFound))
}

func TestMediaFields(t *testing.T) {
	def := &model.TemplateDefinition{
		Key: "mixed",
		Fields: []model.TemplateField{
			{Name: "title", Type: model.FieldTypeText},
			{Name: "cover", Type: model.FieldTypeImage},
			{Name: "count", Type: model.FieldTypeNumber},
			{Name: "shots", Type: model.FieldTypeImageGallery},
		},
	}

	fields := MediaFields(def)
	require.Len(t, fields, 2)
	assert.Equal(t, "cover", fields[0].Name)
	assert.Equal(t, "shots", fields[1].Name)

	assert.Nil(t, MediaFields(nil))
	assert.Empty(t, MediaFields(&model.TemplateDefinition{Key: "bare"}))
}
