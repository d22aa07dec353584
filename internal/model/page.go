package model

import "github.com/jackc/pgx/v5/pgtype"

type Page struct {
	ID        int64              `json:"id"`
	Locale    string             `json:"locale"`
	Slug      string             `json:"slug"`
	Title     string             `json:"title"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
