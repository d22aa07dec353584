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

// SectionRepository is an in-memory stand-in used by tests. It counts
// position writes so the reorder minimality properties can be asserted.
type SectionRepository struct {
	log            *logger.Logger
	mu             sync.RWMutex
	sectionsByID   map[int64]*model.Section
	nextID         int64
	positionWrites int
}

func NewSectionRepository(log *logger.Logger) *SectionRepository {
	return &SectionRepository{
		log:          log,
		sectionsByID: make(map[int64]*model.Section),
		nextID:       1,
	}
}

// PositionWrites returns how many UpdatePosition calls were issued.
func (r *SectionRepository) PositionWrites() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.positionWrites
}

// ResetPositionWrites zeroes the write counter between test phases.
func (r *SectionRepository) ResetPositionWrites() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positionWrites = 0
}

func (r *SectionRepository) Create(ctx context.Context, section *model.Section) (*model.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	created := *section
	created.ID = r.nextID
	r.nextID++
	if created.Position == 0 {
		created.Position = r.maxPositionLocked(created.PageID) + 1
	}
	if r.positionTakenLocked(created.PageID, created.Position, created.ID) {
		r.nextID--
		return nil, custom_errors.ErrSectionPositionConflict
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.sectionsByID[created.ID] = &created
	result := created
	return &result, nil
}

func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*model.Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	section, ok := r.sectionsByID[id]
	if !ok {
		return nil, custom_errors.ErrSectionNotFound
	}
	copied := *section
	return &copied, nil
}

func (r *SectionRepository) GetByPage(ctx context.Context, pageID int64) ([]*model.Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sections []*model.Section
	for _, section := range r.sectionsByID {
		if section.PageID == pageID {
			copied := *section
			sections = append(sections, &copied)
		}
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Position < sections[j].Position
	})
	return sections, nil
}

func (r *SectionRepository) Update(ctx context.Context, section *model.Section) (*model.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.sectionsByID[section.ID]
	if !ok {
		return nil, custom_errors.ErrSectionNotFound
	}
	if r.positionTakenLocked(section.PageID, section.Position, section.ID) {
		return nil, custom_errors.ErrSectionPositionConflict
	}

	updated := *section
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	r.sectionsByID[section.ID] = &updated
	result := updated
	return &result, nil
}

func (r *SectionRepository) UpdatePosition(ctx context.Context, id int64, position int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	section, ok := r.sectionsByID[id]
	if !ok {
		return custom_errors.ErrSectionNotFound
	}
	if r.positionTakenLocked(section.PageID, position, id) {
		return custom_errors.ErrSectionPositionConflict
	}
	section.Position = position
	r.positionWrites++
	return nil
}

func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sectionsByID[id]; !ok {
		return custom_errors.ErrSectionNotFound
	}
	delete(r.sectionsByID, id)
	return nil
}

// positionTakenLocked mirrors the sections_page_position_unique
// constraint of the real table.
func (r *SectionRepository) positionTakenLocked(pageID int64, position int32, excludeID int64) bool {
	for _, section := range r.sectionsByID {
		if section.ID != excludeID && section.PageID == pageID && section.Position == position {
			return true
		}
	}
	return false
}

func (r *SectionRepository) maxPositionLocked(pageID int64) int32 {
	var max int32
	for _, section := range r.sectionsByID {
		if section.PageID == pageID && section.Position > max {
			max = section.Position
		}
	}
	return max
}
