package attachment_repository

import (
	"context"

	"portfolio-content-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/attachment --outpkg attachment_mock --with-expecter --filename Repository.go
type Repository interface {
	// GetByOwner returns the owner's attachments ordered by slot, position.
	GetByOwner(ctx context.Context, owner model.AttachmentOwner) ([]*model.ImageAttachment, error)
	// Upsert inserts or updates rows keyed by (owner, slot, image id).
	Upsert(ctx context.Context, owner model.AttachmentOwner, attachments []*model.ImageAttachment) error
	// Detach removes attachment rows by their ids.
	Detach(ctx context.Context, attachmentIDs []int64) error
	// DetachAll removes every attachment of the owner.
	DetachAll(ctx context.Context, owner model.AttachmentOwner) error
}
