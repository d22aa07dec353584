package model

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Section is one content block of a page. Its Data payload holds the
// field values declared by the template referenced by TemplateKey.
// Positions of all sections of one page form a strictly increasing
// sequence normalized to 1..N.
type Section struct {
	ID           int64              `json:"id"`
	PageID       int64              `json:"page_id"`
	TemplateKey  string             `json:"template_key"`
	Slot         *string            `json:"slot,omitempty"`
	Position     int32              `json:"position"`
	Anchor       *string            `json:"anchor,omitempty"`
	NavLabel     *string            `json:"nav_label,omitempty"`
	Data         map[string]any     `json:"data"`
	IsActive     bool               `json:"is_active"`
	VisibleFrom  pgtype.Timestamptz `json:"visible_from,omitempty"`
	VisibleUntil pgtype.Timestamptz `json:"visible_until,omitempty"`
	Locale       string             `json:"locale"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

// IsVisibleAt reports whether the section should be rendered at t,
// honoring the active flag and the optional visibility window.
func (s *Section) IsVisibleAt(t time.Time) bool {
	if !s.IsActive {
		return false
	}
	if s.VisibleFrom.Valid && t.Before(s.VisibleFrom.Time) {
		return false
	}
	if s.VisibleUntil.Valid && t.After(s.VisibleUntil.Time) {
		return false
	}
	return true
}
