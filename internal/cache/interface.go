package cache

import (
	"context"

	"portfolio-content-service/internal/model"
)

//go:generate mockery --name SectionCache --dir . --output ../../mocks/cache --outpkg cache_mock --with-expecter --filename SectionCache.go
type SectionCache interface {
	GetSection(ctx context.Context, id int64) (*model.SectionDetailed, error)
	SetSection(ctx context.Context, section *model.SectionDetailed) error
	DeleteSection(ctx context.Context, id int64) error

	GetPageSections(ctx context.Context, pageID int64) ([]*model.SectionDetailed, error)
	SetPageSections(ctx context.Context, pageID int64, sections []*model.SectionDetailed) error
	DeletePageSections(ctx context.Context, pageID int64) error
}
