package section_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	attachment_repository "portfolio-content-service/internal/repository/attachment"
	page_repository "portfolio-content-service/internal/repository/page"
	"portfolio-content-service/internal/repository/postgres"
	section_repository "portfolio-content-service/internal/repository/section"
	attachment_service "portfolio-content-service/internal/service/attachment"
	"portfolio-content-service/internal/template"
)

type SectionService struct {
	sectionRepo    section_repository.Repository
	attachmentRepo attachment_repository.Repository
	pageRepo       page_repository.Repository
	uow            postgres.UnitOfWork
	registry       template.Registry
	synchronizer   *attachment_service.Synchronizer
	validate       *validator.Validate
	log            *logger.Logger
	metrics        metrics.Provider
}

func NewSectionService(
	sectionRepo section_repository.Repository,
	attachmentRepo attachment_repository.Repository,
	pageRepo page_repository.Repository,
	uow postgres.UnitOfWork,
	registry template.Registry,
	synchronizer *attachment_service.Synchronizer,
	log *logger.Logger,
	metrics metrics.Provider,
) *SectionService {
	return &SectionService{
		sectionRepo:    sectionRepo,
		attachmentRepo: attachmentRepo,
		pageRepo:       pageRepo,
		uow:            uow,
		registry:       registry,
		synchronizer:   synchronizer,
		validate:       validator.New(),
		log:            log,
		metrics:        metrics,
	}
}

func isTxClosed(err error) bool {
	return strings.Contains(err.Error(), "tx is closed") ||
		strings.Contains(err.Error(), "commit unexpectedly resulted in rollback")
}

func (s *SectionService) Create(ctx context.Context, pageID int64, dto *model.CreateSectionDTO) (result *model.SectionDetailed, err error) {
	if dto.TemplateKey == "" {
		s.log.Debug("Section create rejected, template key missing", slog.Int64("page_id", pageID))
		return nil, custom_errors.ErrTemplateRequired
	}
	if err := s.validate.Struct(dto); err != nil {
		s.log.Debug("Section create validation failed", slog.String("error", err.Error()))
		return nil, custom_errors.ErrValidationFailed
	}

	page, err := s.pageRepo.GetByID(ctx, pageID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPageNotFound) {
			s.log.Debug("Page not found for section create", slog.Int64("page_id", pageID))
			return nil, custom_errors.ErrPageNotFound
		}
		s.log.Error("Failed to get page for section create", slog.Int64("page_id", pageID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	def, err := s.registry.Definition(dto.TemplateKey)
	if err != nil {
		s.log.Debug("Unknown template for section create", slog.String("template_key", dto.TemplateKey))
		return nil, custom_errors.ErrTemplateNotFound
	}

	locale := page.Locale
	if dto.Locale != nil {
		locale = *dto.Locale
	}

	// Normalization happens before persistence so the synchronizer only
	// ever sees data the persisted section actually holds.
	normalized, err := s.registry.NormalizeData(dto.TemplateKey, dto.Data, locale)
	if err != nil {
		s.log.Error("Failed to normalize section data", slog.String("template_key", dto.TemplateKey), slog.String("error", err.Error()))
		return nil, custom_errors.ErrTemplateNotFound
	}

	section := &model.Section{
		PageID:      pageID,
		TemplateKey: dto.TemplateKey,
		Slot:        dto.Slot,
		Anchor:      dto.Anchor,
		NavLabel:    dto.NavLabel,
		Data:        normalized,
		IsActive:    true,
		Locale:      locale,
	}
	if dto.Position != nil {
		section.Position = *dto.Position
	}
	if dto.IsActive != nil {
		section.IsActive = *dto.IsActive
	}
	if dto.VisibleFrom != nil {
		section.VisibleFrom = pgtype.Timestamptz{Time: *dto.VisibleFrom, Valid: true}
	}
	if dto.VisibleUntil != nil {
		section.VisibleUntil = pgtype.Timestamptz{Time: *dto.VisibleUntil, Valid: true}
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
				s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	created, err := tx.SectionRepository().Create(ctx, section)
	if err != nil {
		s.log.Error("Failed to create section", slog.Int64("page_id", pageID), slog.String("error", err.Error()))
		s.metrics.IncrementSectionOperations("create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	owner := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: created.ID}
	if err := s.synchronizer.Sync(ctx, tx.AttachmentRepository(), owner, template.MediaFields(def), normalized); err != nil {
		s.log.Error("Failed to sync attachments for created section",
			slog.Int64("section_id", created.ID),
			slog.String("error", err.Error()))
		s.metrics.IncrementSectionOperations("create", false)
		return nil, custom_errors.ErrAttachmentSyncFailed
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		s.metrics.IncrementSectionOperations("create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	attachments, err := s.attachmentRepo.GetByOwner(ctx, owner)
	if err != nil {
		s.log.Error("Failed to load attachments after create", slog.Int64("section_id", created.ID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrAttachmentQueryFailed
	}

	s.metrics.IncrementSectionOperations("create", true)
	return &model.SectionDetailed{Section: created, Attachments: attachments}, nil
}

func (s *SectionService) Update(ctx context.Context, id int64, dto *model.UpdateSectionDTO) (result *model.SectionDetailed, err error) {
	if err := s.validate.Struct(dto); err != nil {
		s.log.Debug("Section update validation failed", slog.String("error", err.Error()))
		return nil, custom_errors.ErrValidationFailed
	}

	existing, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrSectionNotFound) {
			s.log.Debug("Section not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrSectionNotFound
		}
		s.log.Error("Failed to get section for update", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	// Absent template key means "keep the current one".
	templateKey := existing.TemplateKey
	if dto.TemplateKey != nil {
		templateKey = *dto.TemplateKey
	}
	def, err := s.registry.Definition(templateKey)
	if err != nil {
		s.log.Debug("Unknown template for section update", slog.String("template_key", templateKey))
		return nil, custom_errors.ErrTemplateNotFound
	}

	locale := existing.Locale
	if dto.Locale != nil {
		locale = *dto.Locale
	}

	data := existing.Data
	if dto.Data != nil {
		data = dto.Data
	}
	normalized, err := s.registry.NormalizeData(templateKey, data, locale)
	if err != nil {
		s.log.Error("Failed to normalize section data", slog.String("template_key", templateKey), slog.String("error", err.Error()))
		return nil, custom_errors.ErrTemplateNotFound
	}

	updated := *existing
	updated.TemplateKey = templateKey
	updated.Data = normalized
	updated.Locale = locale
	if dto.Slot != nil {
		updated.Slot = dto.Slot
	}
	if dto.Position != nil {
		updated.Position = *dto.Position
	}
	if dto.Anchor != nil {
		updated.Anchor = dto.Anchor
	}
	if dto.NavLabel != nil {
		updated.NavLabel = dto.NavLabel
	}
	if dto.IsActive != nil {
		updated.IsActive = *dto.IsActive
	}
	if dto.VisibleFrom != nil {
		updated.VisibleFrom = pgtype.Timestamptz{Time: *dto.VisibleFrom, Valid: true}
	}
	if dto.VisibleUntil != nil {
		updated.VisibleUntil = pgtype.Timestamptz{Time: *dto.VisibleUntil, Valid: true}
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
				s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	persisted, err := tx.SectionRepository().Update(ctx, &updated)
	if err != nil {
		if errors.Is(err, custom_errors.ErrSectionNotFound) {
			return nil, custom_errors.ErrSectionNotFound
		}
		s.log.Error("Failed to update section", slog.Int64("id", id), slog.String("error", err.Error()))
		s.metrics.IncrementSectionOperations("update", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	owner := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: persisted.ID}
	if err := s.synchronizer.Sync(ctx, tx.AttachmentRepository(), owner, template.MediaFields(def), normalized); err != nil {
		s.log.Error("Failed to sync attachments for updated section",
			slog.Int64("section_id", persisted.ID),
			slog.String("error", err.Error()))
		s.metrics.IncrementSectionOperations("update", false)
		return nil, custom_errors.ErrAttachmentSyncFailed
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		s.metrics.IncrementSectionOperations("update", false)
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	attachments, err := s.attachmentRepo.GetByOwner(ctx, owner)
	if err != nil {
		s.log.Error("Failed to load attachments after update", slog.Int64("section_id", persisted.ID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrAttachmentQueryFailed
	}

	s.metrics.IncrementSectionOperations("update", true)
	return &model.SectionDetailed{Section: persisted, Attachments: attachments}, nil
}

func (s *SectionService) Delete(ctx context.Context, id int64) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
				s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	owner := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: id}
	if err := tx.AttachmentRepository().DetachAll(ctx, owner); err != nil {
		s.log.Error("Failed to detach attachments for section delete", slog.Int64("id", id), slog.String("error", err.Error()))
		s.metrics.IncrementSectionOperations("delete", false)
		return custom_errors.ErrAttachmentDetachFailed
	}

	if err := tx.SectionRepository().Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrSectionNotFound) {
			s.log.Debug("Section not found for delete", slog.Int64("id", id))
			return custom_errors.ErrSectionNotFound
		}
		s.log.Error("Failed to delete section", slog.Int64("id", id), slog.String("error", err.Error()))
		s.metrics.IncrementSectionOperations("delete", false)
		return custom_errors.ErrDatabaseQuery
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		s.metrics.IncrementSectionOperations("delete", false)
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementSectionOperations("delete", true)
	return nil
}

func (s *SectionService) GetByID(ctx context.Context, id int64) (*model.SectionDetailed, error) {
	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrSectionNotFound) {
			s.log.Debug("Section not found", slog.Int64("id", id))
			return nil, custom_errors.ErrSectionNotFound
		}
		s.log.Error("Failed to get section", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	owner := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: id}
	attachments, err := s.attachmentRepo.GetByOwner(ctx, owner)
	if err != nil {
		s.log.Error("Failed to get attachments for section", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrAttachmentQueryFailed
	}

	return &model.SectionDetailed{Section: section, Attachments: attachments}, nil
}

func (s *SectionService) ListByPage(ctx context.Context, pageID int64) ([]*model.SectionDetailed, error) {
	sections, err := s.sectionRepo.GetByPage(ctx, pageID)
	if err != nil {
		s.log.Error("Failed to list sections", slog.Int64("page_id", pageID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	result := make([]*model.SectionDetailed, 0, len(sections))
	for _, section := range sections {
		owner := model.AttachmentOwner{Type: model.OwnerTypeSection, ID: section.ID}
		attachments, err := s.attachmentRepo.GetByOwner(ctx, owner)
		if err != nil {
			s.log.Error("Failed to get attachments for section",
				slog.Int64("section_id", section.ID),
				slog.String("error", err.Error()))
			return nil, custom_errors.ErrAttachmentQueryFailed
		}
		result = append(result, &model.SectionDetailed{Section: section, Attachments: attachments})
	}
	return result, nil
}
