package model

import "github.com/jackc/pgx/v5/pgtype"

const OwnerTypeSection = "section"

// AttachmentOwner identifies the entity an image attachment belongs to.
type AttachmentOwner struct {
	Type string `json:"type"`
	ID   int64  `json:"id"`
}

// ImageAttachment links an image to an owner at a named slot.
// (owner_type, owner_id, slot, image_id) is unique.
type ImageAttachment struct {
	ID        int64              `json:"id"`
	OwnerType string             `json:"owner_type"`
	OwnerID   int64              `json:"owner_id"`
	Slot      string             `json:"slot"`
	ImageID   int64              `json:"image_id"`
	Position  int32              `json:"position"`
	IsCover   bool               `json:"is_cover"`
	Caption   *string            `json:"caption,omitempty"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

// DesiredAttachment is one entry of the desired set computed by the
// attachment synchronizer, keyed by image id.
type DesiredAttachment struct {
	Slot     string
	Position int32
	IsCover  bool
	Caption  *string
}

func (d DesiredAttachment) Equal(a *ImageAttachment) bool {
	if d.Slot != a.Slot || d.Position != a.Position || d.IsCover != a.IsCover {
		return false
	}
	if (d.Caption == nil) != (a.Caption == nil) {
		return false
	}
	return d.Caption == nil || *d.Caption == *a.Caption
}
