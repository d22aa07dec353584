package page_repository_postgres

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

type PageRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewPageRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *PageRepository {
	return &PageRepository{db: db, log: log, metrics: metrics}
}

func (r *PageRepository) Create(ctx context.Context, page *model.Page) (*model.Page, error) {
	start := time.Now()
	r.log.Debug("Creating page", slog.String("slug", page.Slug), slog.String("locale", page.Locale))

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	args := pgx.NamedArgs{
		"locale":     page.Locale,
		"slug":       page.Slug,
		"title":      page.Title,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO pages (locale, slug, title, created_at, updated_at)
		VALUES (@locale, @slug, @title, @created_at, @updated_at)
		RETURNING id, locale, slug, title, created_at, updated_at`

	var created model.Page
	err := r.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.Locale,
		&created.Slug,
		&created.Title,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("page_create", false)
		r.metrics.RecordDatabaseQueryDuration("page_create", time.Since(start))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.log.Debug("Page slug already exists",
				slog.String("locale", page.Locale),
				slog.String("slug", page.Slug))
			return nil, custom_errors.ErrPageSlugExists
		}
		r.log.Error("Error creating page", slog.String("slug", page.Slug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("page_create", true)
	r.metrics.RecordDatabaseQueryDuration("page_create", time.Since(start))
	return &created, nil
}

func (r *PageRepository) GetByID(ctx context.Context, id int64) (*model.Page, error) {
	start := time.Now()

	query := `SELECT id, locale, slug, title, created_at, updated_at FROM pages WHERE id = @id`
	var page model.Page
	err := r.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(
		&page.ID,
		&page.Locale,
		&page.Slug,
		&page.Title,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("page_get_by_id", false)
		r.metrics.RecordDatabaseQueryDuration("page_get_by_id", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Page not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPageNotFound
		}
		r.log.Error("Error getting page by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("page_get_by_id", true)
	r.metrics.RecordDatabaseQueryDuration("page_get_by_id", time.Since(start))
	return &page, nil
}

func (r *PageRepository) GetBySlug(ctx context.Context, locale, slug string) (*model.Page, error) {
	start := time.Now()

	args := pgx.NamedArgs{"locale": locale, "slug": slug}
	query := `SELECT id, locale, slug, title, created_at, updated_at FROM pages WHERE locale = @locale AND slug = @slug`
	var page model.Page
	err := r.db.QueryRow(ctx, query, args).Scan(
		&page.ID,
		&page.Locale,
		&page.Slug,
		&page.Title,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("page_get_by_slug", false)
		r.metrics.RecordDatabaseQueryDuration("page_get_by_slug", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Page not found by slug", slog.String("locale", locale), slog.String("slug", slug))
			return nil, custom_errors.ErrPageNotFound
		}
		r.log.Error("Error getting page by slug", slog.String("slug", slug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("page_get_by_slug", true)
	r.metrics.RecordDatabaseQueryDuration("page_get_by_slug", time.Since(start))
	return &page, nil
}

func (r *PageRepository) List(ctx context.Context, locale string) ([]*model.Page, error) {
	start := time.Now()

	args := pgx.NamedArgs{"locale": locale}
	query := `SELECT id, locale, slug, title, created_at, updated_at FROM pages
		WHERE (@locale = '' OR locale = @locale) ORDER BY slug`

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("page_list", false)
		r.metrics.RecordDatabaseQueryDuration("page_list", time.Since(start))
		r.log.Error("Error listing pages", slog.String("locale", locale), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var pages []*model.Page
	for rows.Next() {
		var page model.Page
		if err := rows.Scan(&page.ID, &page.Locale, &page.Slug, &page.Title, &page.CreatedAt, &page.UpdatedAt); err != nil {
			r.metrics.IncrementDatabaseQueries("page_list", false)
			r.metrics.RecordDatabaseQueryDuration("page_list", time.Since(start))
			return nil, custom_errors.ErrDatabaseQuery
		}
		pages = append(pages, &page)
	}

	if err = rows.Err(); err != nil {
		r.metrics.IncrementDatabaseQueries("page_list", false)
		r.metrics.RecordDatabaseQueryDuration("page_list", time.Since(start))
		r.log.Error("Error iterating rows during List", slog.String("locale", locale), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("page_list", true)
	r.metrics.RecordDatabaseQueryDuration("page_list", time.Since(start))
	return pages, nil
}

func (r *PageRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()

	tag, err := r.db.Exec(ctx, `DELETE FROM pages WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		r.metrics.IncrementDatabaseQueries("page_delete", false)
		r.metrics.RecordDatabaseQueryDuration("page_delete", time.Since(start))
		r.log.Error("Error deleting page", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if tag.RowsAffected() == 0 {
		r.metrics.IncrementDatabaseQueries("page_delete", false)
		r.metrics.RecordDatabaseQueryDuration("page_delete", time.Since(start))
		r.log.Debug("Page not found for delete", slog.Int64("id", id))
		return custom_errors.ErrPageNotFound
	}

	r.metrics.IncrementDatabaseQueries("page_delete", true)
	r.metrics.RecordDatabaseQueryDuration("page_delete", time.Since(start))
	return nil
}
