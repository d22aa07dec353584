package section_repository

import (
	"context"

	"portfolio-content-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/section --outpkg section_mock --with-expecter --filename Repository.go
type Repository interface {
	Create(ctx context.Context, section *model.Section) (*model.Section, error)
	GetByID(ctx context.Context, id int64) (*model.Section, error)
	// GetByPage returns all sections of a page ordered by position.
	GetByPage(ctx context.Context, pageID int64) ([]*model.Section, error)
	Update(ctx context.Context, section *model.Section) (*model.Section, error)
	// UpdatePosition writes a single section's position. The reorder
	// engine issues these inside a unit-of-work transaction.
	UpdatePosition(ctx context.Context, id int64, position int32) error
	Delete(ctx context.Context, id int64) error
}
