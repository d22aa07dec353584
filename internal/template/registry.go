package template

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
)

//go:generate mockery --name Registry --dir . --output ../../mocks/template --outpkg template_mock --with-expecter --filename Registry.go
type Registry interface {
	// Definition returns the template schema for key, or ErrTemplateNotFound.
	Definition(key string) (*model.TemplateDefinition, error)
	// NormalizeData filters data down to the fields declared by the template.
	// The locale is reserved for locale-dependent defaults and may be empty.
	NormalizeData(key string, data map[string]any, locale string) (map[string]any, error)
}

// FileRegistry is a read-only registry loaded once from a yaml file.
type FileRegistry struct {
	log         *logger.Logger
	definitions map[string]*model.TemplateDefinition
}

func NewFileRegistry(path string, log *logger.Logger) (*FileRegistry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}

	var defs []*model.TemplateDefinition
	if err := v.UnmarshalKey("templates", &defs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal templates: %w", err)
	}

	definitions := make(map[string]*model.TemplateDefinition, len(defs))
	for _, def := range defs {
		for _, f := range def.Fields {
			if err := f.Type.IsValid(); err != nil {
				return nil, fmt.Errorf("template %q: %w", def.Key, err)
			}
		}
		definitions[def.Key] = def
	}

	log.Info("Loaded template registry", slog.String("path", path), slog.Int("templates", len(definitions)))
	return &FileRegistry{log: log, definitions: definitions}, nil
}

func NewStaticRegistry(defs []*model.TemplateDefinition, log *logger.Logger) *FileRegistry {
	definitions := make(map[string]*model.TemplateDefinition, len(defs))
	for _, def := range defs {
		definitions[def.Key] = def
	}
	return &FileRegistry{log: log, definitions: definitions}
}

func (r *FileRegistry) Definition(key string) (*model.TemplateDefinition, error) {
	def, ok := r.definitions[key]
	if !ok {
		r.log.Debug("Template not found in registry", slog.String("template_key", key))
		return nil, custom_errors.ErrTemplateNotFound
	}
	return def, nil
}

func (r *FileRegistry) NormalizeData(key string, data map[string]any, locale string) (map[string]any, error) {
	def, err := r.Definition(key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return map[string]any{}, nil
	}

	normalized := make(map[string]any, len(def.Fields))
	for _, field := range def.Fields {
		if value, ok := data[field.Name]; ok {
			normalized[field.Name] = value
		}
	}
	return normalized, nil
}
