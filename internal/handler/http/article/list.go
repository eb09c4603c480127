package article

import (
	"log/slog"
	"net/http"
	"time"

	"meetvoice-api/internal/common/pagination"
	"meetvoice-api/internal/handler/http/respond"
	"meetvoice-api/internal/observability/logging"
	"meetvoice-api/internal/repository"
	artUC "meetvoice-api/internal/usecase/article"
)

type ListHandler struct {
	Svc           artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists articles
// @Summary      List articles
// @Description  Returns one page of article summaries, most recently published first. Out-of-range or non-numeric page and limit values fall back to their defaults or bounds.
// @Tags         articles
// @Produce      json
// @Param        page       query    int     false  "Page number (1-based)" default(1) minimum(1)
// @Param        limit      query    int     false  "Items per page" default(10) minimum(1) maximum(50)
// @Param        categorie  query    string  false  "Exact category match"
// @Param        theme      query    string  false  "Case-insensitive substring match on theme"
// @Success      200 {object} ListResponse "Paginated article summaries"
// @Failure      500 {object} respond.ErrorBody "Document store error"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.logger())

	params := pagination.ParseQueryParams(r, h.PaginationCfg)
	filter := filterFromQuery(r)

	logger.Debug("article list request",
		slog.Int("page", params.Page),
		slog.Int("limit", params.Limit),
		slog.Any("categorie", filter.Category),
		slog.Any("theme", filter.Theme))

	result, err := h.Svc.List(ctx, artUC.ListQuery{Params: params, Filter: filter})
	if err != nil {
		logger.Error("failed to list articles",
			slog.String("error", respond.SanitizeError(err)),
			slog.Int("page", params.Page),
			slog.Int("limit", params.Limit))
		pagination.RecordError("store")
		pagination.RecordRequest(http.StatusInternalServerError, params.Page)
		respond.StoreFailure(w, err)
		return
	}

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())

	logger.Debug("article list response",
		slog.Int("returned_count", len(result.Data)),
		slog.Int64("total", result.Pagination.Total),
		slog.Int64("duration_ms", duration.Milliseconds()))

	respond.JSON(w, http.StatusOK, ListResponse{
		Articles: result.Data,
		Metadata: result.Pagination,
	})
}

func (h ListHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// filterFromQuery reads the optional categorie and theme parameters.
// Empty values are treated as absent.
func filterFromQuery(r *http.Request) repository.ArticleFilter {
	q := r.URL.Query()
	var f repository.ArticleFilter
	if v := q.Get("categorie"); v != "" {
		f.Category = &v
	}
	if v := q.Get("theme"); v != "" {
		f.Theme = &v
	}
	return f
}
