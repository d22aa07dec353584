package page_repository

import (
	"context"

	"portfolio-content-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/page --outpkg page_mock --with-expecter --filename Repository.go
type Repository interface {
	Create(ctx context.Context, page *model.Page) (*model.Page, error)
	GetByID(ctx context.Context, id int64) (*model.Page, error)
	GetBySlug(ctx context.Context, locale, slug string) (*model.Page, error)
	List(ctx context.Context, locale string) ([]*model.Page, error)
	Delete(ctx context.Context, id int64) error
}
