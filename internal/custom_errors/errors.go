package custom_errors

import "errors"

var (
	ErrPageNotFound     = errors.New("page not found")
	ErrPageSlugExists   = errors.New("page slug already exists")
	ErrSectionNotFound  = errors.New("section not found")
	ErrTemplateRequired = errors.New("template key is required")
	ErrTemplateNotFound = errors.New("template not found")
	ErrValidationFailed = errors.New("validation failed")

	ErrDatabaseQuery           = errors.New("database query error")
	ErrSectionReorderFailed    = errors.New("section reorder failed")
	ErrAttachmentQueryFailed   = errors.New("attachment query failed")
	ErrAttachmentSyncFailed    = errors.New("attachment sync failed")
	ErrAttachmentDetachFailed  = errors.New("attachment detach failed")
	ErrAttachmentUpsertFailed  = errors.New("attachment upsert failed")
	ErrSectionPositionConflict = errors.New("section position conflict")

	ErrCacheMiss = errors.New("cache miss")
)
