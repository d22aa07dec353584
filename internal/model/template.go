package model

import "fmt"

type FieldType string

const (
	FieldTypeText         FieldType = "text"
	FieldTypeRichText     FieldType = "rich_text"
	FieldTypeNumber       FieldType = "number"
	FieldTypeBoolean      FieldType = "boolean"
	FieldTypeImage        FieldType = "image"
	FieldTypeImageGallery FieldType = "image_gallery"
)

func (t FieldType) IsValid() error {
	switch t {
	case FieldTypeText, FieldTypeRichText, FieldTypeNumber, FieldTypeBoolean, FieldTypeImage, FieldTypeImageGallery:
		return nil
	}
	return fmt.Errorf("invalid field type: %s", t)
}

// IsMedia reports whether values of this field type reference images.
func (t FieldType) IsMedia() bool {
	return t == FieldTypeImage || t == FieldTypeImageGallery
}

func (t *FieldType) UnmarshalText(text []byte) error {
	ft := FieldType(text)
	if err := ft.IsValid(); err != nil {
		return err
	}
	*t = ft
	return nil
}

type TemplateField struct {
	Name  string    `json:"name" mapstructure:"name"`
	Type  FieldType `json:"type" mapstructure:"type"`
	Label string    `json:"label,omitempty" mapstructure:"label"`
}

// TemplateDefinition is one entry of the template registry: a named
// schema for a section's data payload.
type TemplateDefinition struct {
	Key    string          `json:"key" mapstructure:"key"`
	Label  string          `json:"label,omitempty" mapstructure:"label"`
	Fields []TemplateField `json:"fields" mapstructure:"fields"`
}
