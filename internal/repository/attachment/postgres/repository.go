package attachment_repository_postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	"portfolio-content-service/internal/repository/postgres/db"
)

type AttachmentRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewAttachmentRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *AttachmentRepository {
	return &AttachmentRepository{db: db, log: log, metrics: metrics}
}

func (r *AttachmentRepository) GetByOwner(ctx context.Context, owner model.AttachmentOwner) ([]*model.ImageAttachment, error) {
	start := time.Now()

	args := pgx.NamedArgs{"owner_type": owner.Type, "owner_id": owner.ID}
	query := `
		SELECT id, owner_type, owner_id, slot, image_id, position, is_cover, caption, created_at
		FROM image_attachments
		WHERE owner_type = @owner_type AND owner_id = @owner_id
		ORDER BY slot, position`

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("attachment_get_by_owner", false)
		r.metrics.RecordDatabaseQueryDuration("attachment_get_by_owner", time.Since(start))
		r.log.Error("Attachment query failed",
			slog.String("owner_type", owner.Type),
			slog.Int64("owner_id", owner.ID),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrAttachmentQueryFailed
	}
	defer rows.Close()

	var attachments []*model.ImageAttachment
	for rows.Next() {
		var a model.ImageAttachment
		if err := rows.Scan(&a.ID, &a.OwnerType, &a.OwnerID, &a.Slot, &a.ImageID, &a.Position, &a.IsCover, &a.Caption, &a.CreatedAt); err != nil {
			r.metrics.IncrementDatabaseQueries("attachment_get_by_owner", false)
			r.metrics.RecordDatabaseQueryDuration("attachment_get_by_owner", time.Since(start))
			return nil, custom_errors.ErrDatabaseQuery
		}
		attachments = append(attachments, &a)
	}

	if err = rows.Err(); err != nil {
		r.metrics.IncrementDatabaseQueries("attachment_get_by_owner", false)
		r.metrics.RecordDatabaseQueryDuration("attachment_get_by_owner", time.Since(start))
		r.log.Error("Error iterating rows during GetByOwner",
			slog.String("owner_type", owner.Type),
			slog.Int64("owner_id", owner.ID),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("attachment_get_by_owner", true)
	r.metrics.RecordDatabaseQueryDuration("attachment_get_by_owner", time.Since(start))
	r.log.Debug("Retrieved attachments for owner",
		slog.String("owner_type", owner.Type),
		slog.Int64("owner_id", owner.ID),
		slog.Int("count", len(attachments)))
	return attachments, nil
}

func (r *AttachmentRepository) Upsert(ctx context.Context, owner model.AttachmentOwner, attachments []*model.ImageAttachment) error {
	if len(attachments) == 0 {
		return nil
	}
	start := time.Now()

	batch := &pgx.Batch{}
	for _, a := range attachments {
		batch.Queue(
			`INSERT INTO image_attachments (owner_type, owner_id, slot, image_id, position, is_cover, caption)
			VALUES (@owner_type, @owner_id, @slot, @image_id, @position, @is_cover, @caption)
			ON CONFLICT (owner_type, owner_id, slot, image_id)
			DO UPDATE SET position = EXCLUDED.position, is_cover = EXCLUDED.is_cover, caption = EXCLUDED.caption`,
			pgx.NamedArgs{
				"owner_type": owner.Type,
				"owner_id":   owner.ID,
				"slot":       a.Slot,
				"image_id":   a.ImageID,
				"position":   a.Position,
				"is_cover":   a.IsCover,
				"caption":    a.Caption,
			},
		)
	}

	result := r.db.SendBatch(ctx, batch)
	defer func(result pgx.BatchResults) {
		if err := result.Close(); err != nil {
			r.log.Error("Failed to close batch result in attachment Upsert",
				slog.String("error", err.Error()),
				slog.Int64("owner_id", owner.ID))
		}
	}(result)

	if _, err := result.Exec(); err != nil {
		r.metrics.IncrementDatabaseQueries("attachment_upsert", false)
		r.metrics.RecordDatabaseQueryDuration("attachment_upsert", time.Since(start))
		r.log.Error("Attachment upsert failed",
			slog.String("owner_type", owner.Type),
			slog.Int64("owner_id", owner.ID),
			slog.String("error", err.Error()))
		return custom_errors.ErrAttachmentUpsertFailed
	}

	r.metrics.IncrementDatabaseQueries("attachment_upsert", true)
	r.metrics.RecordDatabaseQueryDuration("attachment_upsert", time.Since(start))
	return nil
}

func (r *AttachmentRepository) Detach(ctx context.Context, attachmentIDs []int64) error {
	if len(attachmentIDs) == 0 {
		return nil
	}
	start := time.Now()

	_, err := r.db.Exec(ctx, `DELETE FROM image_attachments WHERE id = ANY(@ids)`, pgx.NamedArgs{"ids": attachmentIDs})
	if err != nil {
		r.metrics.IncrementDatabaseQueries("attachment_detach", false)
		r.metrics.RecordDatabaseQueryDuration("attachment_detach", time.Since(start))
		r.log.Error("Attachment detach failed", slog.Any("attachment_ids", attachmentIDs), slog.String("error", err.Error()))
		return custom_errors.ErrAttachmentDetachFailed
	}

	r.metrics.IncrementDatabaseQueries("attachment_detach", true)
	r.metrics.RecordDatabaseQueryDuration("attachment_detach", time.Since(start))
	return nil
}

func (r *AttachmentRepository) DetachAll(ctx context.Context, owner model.AttachmentOwner) error {
	start := time.Now()

	args := pgx.NamedArgs{"owner_type": owner.Type, "owner_id": owner.ID}
	_, err := r.db.Exec(ctx, `DELETE FROM image_attachments WHERE owner_type = @owner_type AND owner_id = @owner_id`, args)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("attachment_detach_all", false)
		r.metrics.RecordDatabaseQueryDuration("attachment_detach_all", time.Since(start))
		r.log.Error("Attachment detach all failed",
			slog.String("owner_type", owner.Type),
			slog.Int64("owner_id", owner.ID),
			slog.String("error", err.Error()))
		return custom_errors.ErrAttachmentDetachFailed
	}

	r.metrics.IncrementDatabaseQueries("attachment_detach_all", true)
	r.metrics.RecordDatabaseQueryDuration("attachment_detach_all", time.Since(start))
	return nil
}
