package section_service

import (
	"context"

	"portfolio-content-service/internal/model"
)

//go:generate mockery --name Service --structname SectionService --dir . --output ../../../mocks/service --outpkg service_mock --with-expecter --filename SectionService.go
type Service interface {
	Create(ctx context.Context, pageID int64, dto *model.CreateSectionDTO) (*model.SectionDetailed, error)
	Update(ctx context.Context, id int64, dto *model.UpdateSectionDTO) (*model.SectionDetailed, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.SectionDetailed, error)
	ListByPage(ctx context.Context, pageID int64) ([]*model.SectionDetailed, error)
	// Reorder rearranges a page's sections to match orderedIDs. An empty
	// target is a no-op; unknown ids are tolerated, never an error.
	Reorder(ctx context.Context, pageID int64, orderedIDs []int64) error
}
