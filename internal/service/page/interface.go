package page_service

import (
	"context"

	"portfolio-content-service/internal/model"
)

//go:generate mockery --name Service --structname PageService --dir . --output ../../../mocks/service --outpkg service_mock --with-expecter --filename PageService.go
type Service interface {
	Create(ctx context.Context, dto *model.CreatePageDTO) (*model.Page, error)
	GetByID(ctx context.Context, id int64) (*model.Page, error)
	GetBySlug(ctx context.Context, locale, slug string) (*model.Page, error)
	List(ctx context.Context, locale string) ([]*model.Page, error)
	Delete(ctx context.Context, id int64) error
}
