package pagination

// Metadata is the pagination part of a list envelope.
type Metadata struct {
	Total int64 `json:"total"` // Matching items across all pages
	Page  int   `json:"page"`  // Resolved page number (1-based)
	Limit int   `json:"limit"` // Resolved items per page
}

// NewMetadata echoes the resolved params next to the total match count.
func NewMetadata(total int64, p Params) Metadata {
	return Metadata{Total: total, Page: p.Page, Limit: p.Limit}
}
