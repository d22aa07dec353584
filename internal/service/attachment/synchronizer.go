package attachment_service

import (
	"context"
	"log/slog"

	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	attachment_repository "portfolio-content-service/internal/repository/attachment"
)

// Synchronizer reconciles an owner's persisted image attachments with
// the desired set implied by a template's media fields and a data
// payload. Malformed payload entries are skipped, never surfaced; only
// persistence errors propagate. Callers run Sync inside their own
// transaction by passing a transaction-scoped repository.
type Synchronizer struct {
	log     *logger.Logger
	metrics metrics.Provider
}

func NewSynchronizer(log *logger.Logger, metrics metrics.Provider) *Synchronizer {
	return &Synchronizer{log: log, metrics: metrics}
}

func (s *Synchronizer) Sync(
	ctx context.Context,
	repo attachment_repository.Repository,
	owner model.AttachmentOwner,
	mediaFields []model.TemplateField,
	data map[string]any,
) error {
	// No media fields means the template has nothing to synchronize.
	// Existing attachments stay untouched.
	if len(mediaFields) == 0 {
		return nil
	}

	desired := buildDesiredSet(mediaFields, data)

	// An empty desired set with media fields present means every media
	// value was cleared: the whole owner set is detached.
	if len(desired) == 0 {
		s.log.Debug("Desired attachment set empty, detaching all",
			slog.String("owner_type", owner.Type),
			slog.Int64("owner_id", owner.ID))
		if err := repo.DetachAll(ctx, owner); err != nil {
			s.metrics.IncrementAttachmentOperations("sync", false)
			return err
		}
		s.metrics.IncrementAttachmentOperations("sync", true)
		return nil
	}

	existing, err := repo.GetByOwner(ctx, owner)
	if err != nil {
		s.metrics.IncrementAttachmentOperations("sync", false)
		return err
	}

	var toDetach []int64
	satisfied := make(map[int64]bool, len(desired))
	for _, row := range existing {
		d, wanted := desired[row.ImageID]
		if !wanted || d.Slot != row.Slot {
			// Absent from the desired set, or a leftover row in a slot
			// the image no longer occupies.
			toDetach = append(toDetach, row.ID)
			continue
		}
		if d.Equal(row) {
			satisfied[row.ImageID] = true
		}
	}

	var toUpsert []*model.ImageAttachment
	for _, row := range materialize(owner, desired) {
		if !satisfied[row.ImageID] {
			toUpsert = append(toUpsert, row)
		}
	}

	if err := repo.Detach(ctx, toDetach); err != nil {
		s.metrics.IncrementAttachmentOperations("sync", false)
		return err
	}
	if err := repo.Upsert(ctx, owner, toUpsert); err != nil {
		s.metrics.IncrementAttachmentOperations("sync", false)
		return err
	}

	s.log.Debug("Synchronized attachments",
		slog.String("owner_type", owner.Type),
		slog.Int64("owner_id", owner.ID),
		slog.Int("desired", len(desired)),
		slog.Int("upserted", len(toUpsert)),
		slog.Int("detached", len(toDetach)))
	s.metrics.IncrementAttachmentOperations("sync", true)
	return nil
}
