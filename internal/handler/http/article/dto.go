// Package article provides the HTTP handlers for the article endpoints:
// the paginated list and the lookup by slug.
package article

import (
	"meetvoice-api/internal/common/pagination"
	"meetvoice-api/internal/domain/entity"
)

// ListResponse is the list envelope: {articles, total, page, limit}.
// Articles is never null.
type ListResponse struct {
	Articles []entity.ArticleSummary `json:"articles"`
	pagination.Metadata
}
