package model

type SectionDetailed struct {
	Section     *Section           `json:"section"`
	Attachments []*ImageAttachment `json:"attachments"`
}
