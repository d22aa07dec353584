package section_repository_postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
)

type staticRow struct {
	err error
}

func (r staticRow) Scan(dest ...any) error { return r.err }

type failingRows struct {
	pgx.Rows
	err error
}

func (r failingRows) Next() bool { return false }
func (r failingRows) Err() error { return r.err }
func (r failingRows) Close()     {}

type stubDB struct {
	row      pgx.Row
	rows     pgx.Rows
	queryErr error
	execErr  error
}

func (s *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return s.rows, s.queryErr
}

func (s *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.row
}

func (s *stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, s.execErr
}

func (s *stubDB) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	return nil
}

func positionConflictErr() *pgconn.PgError {
	return &pgconn.PgError{Code: "23505", ConstraintName: "sections_page_position_unique"}
}

func TestSectionRepository_Create_PositionConflict(t *testing.T) {
	repo := NewSectionRepository(&stubDB{row: staticRow{err: positionConflictErr()}}, logger.New("test"), metrics.NewNoopProvider())

	section, err := repo.Create(context.Background(), &model.Section{
		PageID:      1,
		TemplateKey: "text_block",
		Position:    2,
	})

	assert.Nil(t, section)
	assert.ErrorIs(t, err, custom_errors.ErrSectionPositionConflict)
}

func TestSectionRepository_UpdatePosition_Conflict(t *testing.T) {
	repo := NewSectionRepository(&stubDB{execErr: positionConflictErr()}, logger.New("test"), metrics.NewNoopProvider())

	err := repo.UpdatePosition(context.Background(), 7, 2)

	assert.ErrorIs(t, err, custom_errors.ErrSectionPositionConflict)
}

func TestSectionRepository_UpdatePosition_QueryError(t *testing.T) {
	repo := NewSectionRepository(&stubDB{execErr: assert.AnError}, logger.New("test"), metrics.NewNoopProvider())

	err := repo.UpdatePosition(context.Background(), 7, 2)

	assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
}

func TestSectionRepository_GetByPage_RowsError(t *testing.T) {
	repo := NewSectionRepository(&stubDB{rows: failingRows{err: assert.AnError}}, logger.New("test"), metrics.NewNoopProvider())

	sections, err := repo.GetByPage(context.Background(), 1)

	assert.Nil(t, sections)
	assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
}
