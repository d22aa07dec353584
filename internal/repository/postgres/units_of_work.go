package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	attachment_repository "portfolio-content-service/internal/repository/attachment"
	attachment_repository_postgres "portfolio-content-service/internal/repository/attachment/postgres"
	page_repository "portfolio-content-service/internal/repository/page"
	page_repository_postgres "portfolio-content-service/internal/repository/page/postgres"
	section_repository "portfolio-content-service/internal/repository/section"
	section_repository_postgres "portfolio-content-service/internal/repository/section/postgres"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../mocks/postgres --outpkg postgres_mock --with-expecter --filename UnitOfWork.go
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

//go:generate mockery --name Transaction --dir . --output ../../../mocks/postgres --outpkg postgres_mock --with-expecter --filename Transaction.go
type Transaction interface {
	PageRepository() page_repository.Repository
	SectionRepository() section_repository.Repository
	AttachmentRepository() attachment_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PostgresUnitOfWork struct {
	pool    *pgxpool.Pool
	log     *logger.Logger
	metrics metrics.Provider
}

func NewPostgresUOW(pool *pgxpool.Pool, log *logger.Logger, metrics metrics.Provider) UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log, metrics: metrics}
}

func (uow *PostgresUnitOfWork) Begin(ctx context.Context) (Transaction, error) {
	tx, err := uow.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: uow.log, metrics: uow.metrics}, nil
}

type PostgresTransaction struct {
	tx      pgx.Tx
	log     *logger.Logger
	metrics metrics.Provider
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) PageRepository() page_repository.Repository {
	return page_repository_postgres.NewPageRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) SectionRepository() section_repository.Repository {
	return section_repository_postgres.NewSectionRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) AttachmentRepository() attachment_repository.Repository {
	return attachment_repository_postgres.NewAttachmentRepository(t.tx, t.log, t.metrics)
}
