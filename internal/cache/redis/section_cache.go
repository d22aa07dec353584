package redis

import (
	"context"
	"fmt"
	"time"

	"portfolio-content-service/internal/cache"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
)

const (
	sectionKeyPrefix      = "section:"
	pageSectionsKeyPrefix = "page_sections:"
	sectionTTL            = 10 * time.Minute
)

type SectionCache struct {
	client  *Client
	log     *logger.Logger
	metrics metrics.Provider
}

func NewSectionCache(client *Client, log *logger.Logger, metrics metrics.Provider) cache.SectionCache {
	return &SectionCache{client: client, log: log, metrics: metrics}
}

func sectionKey(id int64) string {
	return fmt.Sprintf("%s%d", sectionKeyPrefix, id)
}

func pageSectionsKey(pageID int64) string {
	return fmt.Sprintf("%s%d", pageSectionsKeyPrefix, pageID)
}

func (c *SectionCache) GetSection(ctx context.Context, id int64) (*model.SectionDetailed, error) {
	var section model.SectionDetailed
	if err := c.client.Get(ctx, sectionKey(id), &section); err != nil {
		return nil, err
	}
	return &section, nil
}

func (c *SectionCache) SetSection(ctx context.Context, section *model.SectionDetailed) error {
	return c.client.Set(ctx, sectionKey(section.Section.ID), section, sectionTTL)
}

func (c *SectionCache) DeleteSection(ctx context.Context, id int64) error {
	return c.client.Delete(ctx, sectionKey(id))
}

func (c *SectionCache) GetPageSections(ctx context.Context, pageID int64) ([]*model.SectionDetailed, error) {
	var sections []*model.SectionDetailed
	if err := c.client.Get(ctx, pageSectionsKey(pageID), &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (c *SectionCache) SetPageSections(ctx context.Context, pageID int64, sections []*model.SectionDetailed) error {
	return c.client.Set(ctx, pageSectionsKey(pageID), sections, sectionTTL)
}

func (c *SectionCache) DeletePageSections(ctx context.Context, pageID int64) error {
	return c.client.Delete(ctx, pageSectionsKey(pageID))
}
