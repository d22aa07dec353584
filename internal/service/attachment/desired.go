package attachment_service

import (
	"sort"
	"strconv"
	"strings"

	"portfolio-content-service/internal/model"
)

// parseImageID normalizes a payload value to a positive image id.
// Accepted forms: native integers, integral JSON numbers, and
// digits-only strings. Anything else is rejected without error.
func parseImageID(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		if v >= 1 {
			return int64(v), true
		}
	case int32:
		if v >= 1 {
			return int64(v), true
		}
	case int64:
		if v >= 1 {
			return v, true
		}
	case float64:
		// JSON numbers decode as float64; only integral values qualify.
		if v >= 1 && v == float64(int64(v)) {
			return int64(v), true
		}
	case string:
		if v == "" {
			return 0, false
		}
		for _, c := range v {
			if c < '0' || c > '9' {
				return 0, false
			}
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err == nil && id >= 1 {
			return id, true
		}
	}
	return 0, false
}

// parseCaption extracts a trimmed caption from a gallery item object.
// Empty after trimming counts as absent.
func parseCaption(item map[string]any) *string {
	raw, ok := item["caption"]
	if !ok {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// buildDesiredSet computes the attachment set a payload implies, keyed
// by image id. When the same image id is contributed by more than one
// field, the later contribution wins.
func buildDesiredSet(fields []model.TemplateField, data map[string]any) map[int64]model.DesiredAttachment {
	desired := make(map[int64]model.DesiredAttachment)

	for _, field := range fields {
		value, ok := data[field.Name]
		if !ok {
			continue
		}

		switch field.Type {
		case model.FieldTypeImage:
			if value == nil {
				continue
			}
			if s, isString := value.(string); isString && s == "" {
				continue
			}
			id, ok := parseImageID(value)
			if !ok {
				continue
			}
			desired[id] = model.DesiredAttachment{
				Slot:     field.Name,
				Position: 0,
				IsCover:  true,
			}

		case model.FieldTypeImageGallery:
			items, isList := value.([]any)
			if !isList {
				continue
			}
			// The position counter advances only for resolved items, so
			// malformed entries never leave holes in the gallery order.
			var position int32
			for _, item := range items {
				var id int64
				var caption *string
				switch it := item.(type) {
				case map[string]any:
					parsed, ok := parseImageID(it["id"])
					if !ok {
						continue
					}
					id = parsed
					caption = parseCaption(it)
				default:
					parsed, ok := parseImageID(item)
					if !ok {
						continue
					}
					id = parsed
				}
				desired[id] = model.DesiredAttachment{
					Slot:     field.Name,
					Position: position,
					IsCover:  position == 0,
					Caption:  caption,
				}
				position++
			}
		}
	}

	return desired
}

// materialize converts a desired set into attachment rows ordered by
// slot and position, for deterministic batch writes.
func materialize(owner model.AttachmentOwner, desired map[int64]model.DesiredAttachment) []*model.ImageAttachment {
	rows := make([]*model.ImageAttachment, 0, len(desired))
	for imageID, d := range desired {
		rows = append(rows, &model.ImageAttachment{
			OwnerType: owner.Type,
			OwnerID:   owner.ID,
			Slot:      d.Slot,
			ImageID:   imageID,
			Position:  d.Position,
			IsCover:   d.IsCover,
			Caption:   d.Caption,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Slot != rows[j].Slot {
			return rows[i].Slot < rows[j].Slot
		}
		return rows[i].Position < rows[j].Position
	})
	return rows
}
