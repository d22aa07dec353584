package section_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	"portfolio-content-service/internal/repository/postgres/db"
)

type SectionRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewSectionRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *SectionRepository {
	return &SectionRepository{db: db, log: log, metrics: metrics}
}

const sectionColumns = `id, page_id, template_key, slot, position, anchor, nav_label, data,
	is_active, visible_from, visible_until, locale, created_at, updated_at`

// isPositionConflict reports whether err is a violation of the
// sections_page_position_unique constraint.
func isPositionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanSection(row pgx.Row) (*model.Section, error) {
	var s model.Section
	err := row.Scan(
		&s.ID,
		&s.PageID,
		&s.TemplateKey,
		&s.Slot,
		&s.Position,
		&s.Anchor,
		&s.NavLabel,
		&s.Data,
		&s.IsActive,
		&s.VisibleFrom,
		&s.VisibleUntil,
		&s.Locale,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SectionRepository) Create(ctx context.Context, section *model.Section) (*model.Section, error) {
	start := time.Now()
	r.log.Debug("Creating section",
		slog.Int64("page_id", section.PageID),
		slog.String("template_key", section.TemplateKey))

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"page_id":       section.PageID,
		"template_key":  section.TemplateKey,
		"slot":          section.Slot,
		"position":      section.Position,
		"anchor":        section.Anchor,
		"nav_label":     section.NavLabel,
		"data":          section.Data,
		"is_active":     section.IsActive,
		"visible_from":  section.VisibleFrom,
		"visible_until": section.VisibleUntil,
		"locale":        section.Locale,
		"created_at":    now,
		"updated_at":    now,
	}

	// Position 0 means "append after the page's current maximum".
	query := `
		INSERT INTO sections (page_id, template_key, slot, position, anchor, nav_label, data,
			is_active, visible_from, visible_until, locale, created_at, updated_at)
		VALUES (@page_id, @template_key, @slot,
			CASE WHEN @position = 0
				THEN (SELECT COALESCE(MAX(position), 0) + 1 FROM sections WHERE page_id = @page_id)
				ELSE @position END,
			@anchor, @nav_label, @data, @is_active, @visible_from, @visible_until, @locale,
			@created_at, @updated_at)
		RETURNING ` + sectionColumns

	created, err := scanSection(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.metrics.IncrementDatabaseQueries("section_create", false)
		r.metrics.RecordDatabaseQueryDuration("section_create", time.Since(start))
		if isPositionConflict(err) {
			r.log.Debug("Section position already taken",
				slog.Int64("page_id", section.PageID),
				slog.Int("position", int(section.Position)))
			return nil, custom_errors.ErrSectionPositionConflict
		}
		r.log.Error("Error creating section", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("section_create", true)
	r.metrics.RecordDatabaseQueryDuration("section_create", time.Since(start))
	r.log.Debug("Successfully created section", slog.Int64("id", created.ID), slog.Int64("page_id", created.PageID))
	return created, nil
}

func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*model.Section, error) {
	start := time.Now()

	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE id = @id`

	section, err := scanSection(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.metrics.IncrementDatabaseQueries("section_get_by_id", false)
		r.metrics.RecordDatabaseQueryDuration("section_get_by_id", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Section not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrSectionNotFound
		}
		r.log.Error("Error getting section by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("section_get_by_id", true)
	r.metrics.RecordDatabaseQueryDuration("section_get_by_id", time.Since(start))
	return section, nil
}

func (r *SectionRepository) GetByPage(ctx context.Context, pageID int64) ([]*model.Section, error) {
	start := time.Now()

	args := pgx.NamedArgs{"page_id": pageID}
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE page_id = @page_id ORDER BY position`

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("section_get_by_page", false)
		r.metrics.RecordDatabaseQueryDuration("section_get_by_page", time.Since(start))
		r.log.Error("Error getting sections by page", slog.Int64("page_id", pageID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var sections []*model.Section
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			r.metrics.IncrementDatabaseQueries("section_get_by_page", false)
			r.metrics.RecordDatabaseQueryDuration("section_get_by_page", time.Since(start))
			return nil, custom_errors.ErrDatabaseQuery
		}
		sections = append(sections, section)
	}

	if err = rows.Err(); err != nil {
		r.metrics.IncrementDatabaseQueries("section_get_by_page", false)
		r.metrics.RecordDatabaseQueryDuration("section_get_by_page", time.Since(start))
		r.log.Error("Error iterating rows during GetByPage", slog.Int64("page_id", pageID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("section_get_by_page", true)
	r.metrics.RecordDatabaseQueryDuration("section_get_by_page", time.Since(start))
	r.log.Debug("Retrieved sections for page", slog.Int64("page_id", pageID), slog.Int("count", len(sections)))
	return sections, nil
}

func (r *SectionRepository) Update(ctx context.Context, section *model.Section) (*model.Section, error) {
	start := time.Now()

	args := pgx.NamedArgs{
		"id":            section.ID,
		"template_key":  section.TemplateKey,
		"slot":          section.Slot,
		"position":      section.Position,
		"anchor":        section.Anchor,
		"nav_label":     section.NavLabel,
		"data":          section.Data,
		"is_active":     section.IsActive,
		"visible_from":  section.VisibleFrom,
		"visible_until": section.VisibleUntil,
		"locale":        section.Locale,
		"updated_at":    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `
		UPDATE sections
		SET template_key = @template_key, slot = @slot, position = @position, anchor = @anchor,
			nav_label = @nav_label, data = @data, is_active = @is_active,
			visible_from = @visible_from, visible_until = @visible_until, locale = @locale,
			updated_at = @updated_at
		WHERE id = @id
		RETURNING ` + sectionColumns

	updated, err := scanSection(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.metrics.IncrementDatabaseQueries("section_update", false)
		r.metrics.RecordDatabaseQueryDuration("section_update", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Section not found for update", slog.Int64("id", section.ID))
			return nil, custom_errors.ErrSectionNotFound
		}
		if isPositionConflict(err) {
			r.log.Debug("Section position already taken",
				slog.Int64("id", section.ID),
				slog.Int("position", int(section.Position)))
			return nil, custom_errors.ErrSectionPositionConflict
		}
		r.log.Error("Error updating section", slog.Int64("id", section.ID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("section_update", true)
	r.metrics.RecordDatabaseQueryDuration("section_update", time.Since(start))
	return updated, nil
}

func (r *SectionRepository) UpdatePosition(ctx context.Context, id int64, position int32) error {
	start := time.Now()

	args := pgx.NamedArgs{"id": id, "position": position}
	tag, err := r.db.Exec(ctx, `UPDATE sections SET position = @position WHERE id = @id`, args)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("section_update_position", false)
		r.metrics.RecordDatabaseQueryDuration("section_update_position", time.Since(start))
		if isPositionConflict(err) {
			r.log.Debug("Section position already taken",
				slog.Int64("id", id),
				slog.Int("position", int(position)))
			return custom_errors.ErrSectionPositionConflict
		}
		r.log.Error("Error updating section position",
			slog.Int64("id", id),
			slog.Int("position", int(position)),
			slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if tag.RowsAffected() == 0 {
		r.metrics.IncrementDatabaseQueries("section_update_position", false)
		r.metrics.RecordDatabaseQueryDuration("section_update_position", time.Since(start))
		r.log.Debug("Section not found for position update", slog.Int64("id", id))
		return custom_errors.ErrSectionNotFound
	}

	r.metrics.IncrementDatabaseQueries("section_update_position", true)
	r.metrics.RecordDatabaseQueryDuration("section_update_position", time.Since(start))
	return nil
}

func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()

	tag, err := r.db.Exec(ctx, `DELETE FROM sections WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		r.metrics.IncrementDatabaseQueries("section_delete", false)
		r.metrics.RecordDatabaseQueryDuration("section_delete", time.Since(start))
		r.log.Error("Error deleting section", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if tag.RowsAffected() == 0 {
		r.metrics.IncrementDatabaseQueries("section_delete", false)
		r.metrics.RecordDatabaseQueryDuration("section_delete", time.Since(start))
		r.log.Debug("Section not found for delete", slog.Int64("id", id))
		return custom_errors.ErrSectionNotFound
	}

	r.metrics.IncrementDatabaseQueries("section_delete", true)
	r.metrics.RecordDatabaseQueryDuration("section_delete", time.Since(start))
	return nil
}
