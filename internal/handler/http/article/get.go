package article

import (
	"errors"
	"log/slog"
	"net/http"

	"meetvoice-api/internal/handler/http/pathutil"
	"meetvoice-api/internal/handler/http/respond"
	"meetvoice-api/internal/observability/logging"
	artUC "meetvoice-api/internal/usecase/article"
)

type GetHandler struct {
	Svc    artUC.Service
	Logger *slog.Logger
}

// ServeHTTP gets one article
// @Summary      Get article by slug
// @Description  Returns the full article document with the given slug.
// @Tags         articles
// @Produce      json
// @Param        slug path string true "Article slug"
// @Success      200 {object} entity.Article "Article"
// @Failure      404 {object} respond.ErrorBody "No article has this slug"
// @Failure      500 {object} respond.ErrorBody "Document store error"
// @Router       /articles/{slug} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		slug = pathutil.ExtractSlug(r.URL.Path, "/articles/")
	}

	article, err := h.Svc.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) {
			respond.Error(w, http.StatusNotFound, err)
			return
		}
		logger := h.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logging.WithRequestID(r.Context(), logger).Error("failed to get article",
			slog.String("slug", slug),
			slog.String("error", respond.SanitizeError(err)))
		respond.StoreFailure(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, article)
}
