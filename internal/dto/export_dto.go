package dto

type BulkExportRequest struct {
	EntityIds []string `json:"entity_ids" validate:"required,min=1"`
	// IncludeNotes is the opt-in flag for the notes sheet.
	IncludeNotes bool `json:"include_notes"`
}
