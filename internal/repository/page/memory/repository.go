package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
)

type PageRepository struct {
	log       *logger.Logger
	mu        sync.RWMutex
	pagesByID map[int64]*model.Page
	nextID    int64
}

func NewPageRepository(log *logger.Logger) *PageRepository {
	return &PageRepository{
		log:       log,
		pagesByID: make(map[int64]*model.Page),
		nextID:    1,
	}
}

func (r *PageRepository) Create(ctx context.Context, page *model.Page) (*model.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.pagesByID {
		if existing.Locale == page.Locale && existing.Slug == page.Slug {
			return nil, custom_errors.ErrPageSlugExists
		}
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	created := *page
	created.ID = r.nextID
	r.nextID++
	created.CreatedAt = now
	created.UpdatedAt = now

	r.pagesByID[created.ID] = &created
	result := created
	return &result, nil
}

func (r *PageRepository) GetByID(ctx context.Context, id int64) (*model.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, ok := r.pagesByID[id]
	if !ok {
		return nil, custom_errors.ErrPageNotFound
	}
	copied := *page
	return &copied, nil
}

func (r *PageRepository) GetBySlug(ctx context.Context, locale, slug string) (*model.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, page := range r.pagesByID {
		if page.Locale == locale && page.Slug == slug {
			copied := *page
			return &copied, nil
		}
	}
	return nil, custom_errors.ErrPageNotFound
}

func (r *PageRepository) List(ctx context.Context, locale string) ([]*model.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pages []*model.Page
	for _, page := range r.pagesByID {
		if locale == "" || page.Locale == locale {
			copied := *page
			pages = append(pages, &copied)
		}
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Slug < pages[j].Slug })
	return pages, nil
}

func (r *PageRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pagesByID[id]; !ok {
		return custom_errors.ErrPageNotFound
	}
	delete(r.pagesByID, id)
	return nil
}
