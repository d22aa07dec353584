package section_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"portfolio-content-service/internal/cache"
	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
)

// SectionServiceCacheDecorator caches the read paths and invalidates
// on every write. Cache failures are logged, never surfaced.
type SectionServiceCacheDecorator struct {
	service Service
	cache   cache.SectionCache
	log     *logger.Logger
	metrics metrics.Provider
}

func NewSectionServiceCacheDecorator(
	service Service,
	sectionCache cache.SectionCache,
	log *logger.Logger,
	metrics metrics.Provider,
) Service {
	return &SectionServiceCacheDecorator{
		service: service,
		cache:   sectionCache,
		log:     log,
		metrics: metrics,
	}
}

func (d *SectionServiceCacheDecorator) invalidatePage(ctx context.Context, pageID int64) {
	if err := d.cache.DeletePageSections(ctx, pageID); err != nil {
		d.log.Warn("Failed to invalidate page sections cache",
			slog.Int64("page_id", pageID),
			slog.String("error", err.Error()))
	}
}

func (d *SectionServiceCacheDecorator) Create(ctx context.Context, pageID int64, dto *model.CreateSectionDTO) (*model.SectionDetailed, error) {
	result, err := d.service.Create(ctx, pageID, dto)
	if err != nil {
		return nil, err
	}

	d.invalidatePage(ctx, pageID)

	start := time.Now()
	if err := d.cache.SetSection(ctx, result); err != nil {
		d.log.Warn("Failed to cache created section",
			slog.Int64("section_id", result.Section.ID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("section_set", time.Since(start))
	return result, nil
}

func (d *SectionServiceCacheDecorator) Update(ctx context.Context, id int64, dto *model.UpdateSectionDTO) (*model.SectionDetailed, error) {
	result, err := d.service.Update(ctx, id, dto)
	if err != nil {
		return nil, err
	}

	d.invalidatePage(ctx, result.Section.PageID)

	start := time.Now()
	if err := d.cache.SetSection(ctx, result); err != nil {
		d.log.Warn("Failed to cache updated section",
			slog.Int64("section_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("section_set", time.Since(start))
	return result, nil
}

func (d *SectionServiceCacheDecorator) Delete(ctx context.Context, id int64) error {
	cached, err := d.service.GetByID(ctx, id)
	if err != nil && !errors.Is(err, custom_errors.ErrSectionNotFound) {
		return err
	}

	if err := d.service.Delete(ctx, id); err != nil {
		return err
	}

	if delErr := d.cache.DeleteSection(ctx, id); delErr != nil {
		d.log.Warn("Failed to invalidate section cache",
			slog.Int64("section_id", id),
			slog.String("error", delErr.Error()))
	}
	if cached != nil {
		d.invalidatePage(ctx, cached.Section.PageID)
	}
	return nil
}

func (d *SectionServiceCacheDecorator) GetByID(ctx context.Context, id int64) (*model.SectionDetailed, error) {
	start := time.Now()
	cached, err := d.cache.GetSection(ctx, id)
	d.metrics.RecordCacheOperationDuration("section_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return cached, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get section from cache",
			slog.Int64("section_id", id),
			slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	section, err := d.service.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.cache.SetSection(ctx, section); err != nil {
		d.log.Warn("Failed to cache section",
			slog.Int64("section_id", id),
			slog.String("error", err.Error()))
	}
	return section, nil
}

func (d *SectionServiceCacheDecorator) ListByPage(ctx context.Context, pageID int64) ([]*model.SectionDetailed, error) {
	start := time.Now()
	cached, err := d.cache.GetPageSections(ctx, pageID)
	d.metrics.RecordCacheOperationDuration("page_sections_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return cached, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get page sections from cache",
			slog.Int64("page_id", pageID),
			slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	sections, err := d.service.ListByPage(ctx, pageID)
	if err != nil {
		return nil, err
	}

	if err := d.cache.SetPageSections(ctx, pageID, sections); err != nil {
		d.log.Warn("Failed to cache page sections",
			slog.Int64("page_id", pageID),
			slog.String("error", err.Error()))
	}
	return sections, nil
}

func (d *SectionServiceCacheDecorator) Reorder(ctx context.Context, pageID int64, orderedIDs []int64) error {
	if err := d.service.Reorder(ctx, pageID, orderedIDs); err != nil {
		return err
	}

	// Positions changed for up to every section of the page; both the
	// list entry and the individual entries are stale.
	d.invalidatePage(ctx, pageID)
	for _, id := range orderedIDs {
		if err := d.cache.DeleteSection(ctx, id); err != nil {
			d.log.Warn("Failed to invalidate section cache after reorder",
				slog.Int64("section_id", id),
				slog.String("error", err.Error()))
		}
	}
	return nil
}
