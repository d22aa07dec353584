package model

type CreatePageDTO struct {
	Locale string `json:"locale" validate:"required,min=2,max=10"`
	Slug   string `json:"slug" validate:"required,min=1,max=255"`
	Title  string `json:"title" validate:"required,min=1,max=255"`
}
