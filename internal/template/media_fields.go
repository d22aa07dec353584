package template

import "portfolio-content-service/internal/model"

// MediaFields returns the subset of a template's fields whose values
// reference images. A nil definition or a template without media fields
// yields an empty slice, which callers treat as "nothing to synchronize".
func MediaFields(def *model.TemplateDefinition) []model.TemplateField {
	if def == nil {
		return nil
	}
	var fields []model.TemplateField
	for _, f := range def.Fields {
		if f.Type.IsMedia() {
			fields = append(fields, f)
		}
	}
	return fields
}

// MediaFieldsForKey resolves media fields by template key. Unknown keys
// resolve to an empty set rather than an error.
func (r *FileRegistry) MediaFieldsForKey(key string) []model.TemplateField {
	def, err := r.Definition(key)
	if err != nil {
		return nil
	}
	return MediaFields(def)
}
