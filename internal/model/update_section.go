package model

import "time"

type UpdateSectionDTO struct {
	TemplateKey  *string        `json:"template_key,omitempty" validate:"omitempty,min=1"`
	Slot         *string        `json:"slot,omitempty" validate:"omitempty,max=100"`
	Position     *int32         `json:"position,omitempty" validate:"omitempty,gte=1"`
	Anchor       *string        `json:"anchor,omitempty" validate:"omitempty,max=100"`
	NavLabel     *string        `json:"nav_label,omitempty" validate:"omitempty,max=100"`
	Data         map[string]any `json:"data,omitempty"`
	IsActive     *bool          `json:"is_active,omitempty"`
	VisibleFrom  *time.Time     `json:"visible_from,omitempty"`
	VisibleUntil *time.Time     `json:"visible_until,omitempty"`
	Locale       *string        `json:"locale,omitempty" validate:"omitempty,min=2,max=10"`
}
