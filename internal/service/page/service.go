package page_service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
	page_repository "portfolio-content-service/internal/repository/page"
	"portfolio-content-service/internal/repository/postgres"
	section_repository "portfolio-content-service/internal/repository/section"
)

type PageService struct {
	pageRepo    page_repository.Repository
	sectionRepo section_repository.Repository
	uow         postgres.UnitOfWork
	validate    *validator.Validate
	log         *logger.Logger
}

func NewPageService(
	pageRepo page_repository.Repository,
	sectionRepo section_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
) *PageService {
	return &PageService{
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
		uow:         uow,
		validate:    validator.New(),
		log:         log,
	}
}

func (s *PageService) Create(ctx context.Context, dto *model.CreatePageDTO) (*model.Page, error) {
	if err := s.validate.Struct(dto); err != nil {
		s.log.Debug("Page create validation failed", slog.String("error", err.Error()))
		return nil, custom_errors.ErrValidationFailed
	}

	page := &model.Page{
		Locale: dto.Locale,
		Slug:   dto.Slug,
		Title:  dto.Title,
	}
	created, err := s.pageRepo.Create(ctx, page)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPageSlugExists) {
			s.log.Debug("Page slug already exists", slog.String("slug", dto.Slug))
			return nil, custom_errors.ErrPageSlugExists
		}
		s.log.Error("Failed to create page", slog.String("slug", dto.Slug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return created, nil
}

func (s *PageService) GetByID(ctx context.Context, id int64) (*model.Page, error) {
	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPageNotFound) {
			s.log.Debug("Page not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPageNotFound
		}
		s.log.Error("Failed to get page", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return page, nil
}

func (s *PageService) GetBySlug(ctx context.Context, locale, slug string) (*model.Page, error) {
	page, err := s.pageRepo.GetBySlug(ctx, locale, slug)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPageNotFound) {
			s.log.Debug("Page not found by slug", slog.String("locale", locale), slog.String("slug", slug))
			return nil, custom_errors.ErrPageNotFound
		}
		s.log.Error("Failed to get page by slug", slog.String("slug", slug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return page, nil
}

func (s *PageService) List(ctx context.Context, locale string) ([]*model.Page, error) {
	pages, err := s.pageRepo.List(ctx, locale)
	if err != nil {
		s.log.Error("Failed to list pages", slog.String("locale", locale), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return pages, nil
}

// Delete removes a page together with its sections and their
// attachments in one transaction. The sections FK cascades, so only
// the attachment rows need explicit cleanup.
func (s *PageService) Delete(ctx context.Context, id int64) (err error) {
	sections, err := s.sectionRepo.GetByPage(ctx, id)
	if err != nil {
		s.log.Error("Failed to load sections for page delete", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				s.log.Debug("Rollback after page delete", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	attachmentRepo := tx.AttachmentRepository()
	for _, section := range sections {
		owner := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: section.ID}
		if err := attachmentRepo.DetachAll(ctx, owner); err != nil {
			s.log.Error("Failed to detach attachments for page delete",
				slog.Int64("section_id", section.ID),
				slog.String("error", err.Error()))
			return custom_errors.ErrAttachmentDetachFailed
		}
	}

	if err := tx.PageRepository().Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrPageNotFound) {
			s.log.Debug("Page not found for delete", slog.Int64("id", id))
			return custom_errors.ErrPageNotFound
		}
		s.log.Error("Failed to delete page", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true
	return nil
}
