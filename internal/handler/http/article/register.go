package article

import (
	"log/slog"
	"net/http"

	"meetvoice-api/internal/common/pagination"
	artUC "meetvoice-api/internal/usecase/article"
)

// Register registers the article routes with the given mux.
// A slug is exactly one path segment: /articles/ (empty slug) is answered by
// the get handler with 404, and /articles/a/b matches no route.
func Register(mux *http.ServeMux, svc artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	get := GetHandler{
		Svc:    svc,
		Logger: logger,
	}
	mux.Handle("GET /articles/{slug}", get)
	mux.Handle("GET /articles/{$}", get)
}
