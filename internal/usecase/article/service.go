package article

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"meetvoice-api/internal/common/pagination"
	"meetvoice-api/internal/domain/entity"
	"meetvoice-api/internal/observability/metrics"
	"meetvoice-api/internal/repository"
)

// Service provides the article read use cases.
// It delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// ListQuery is a resolved list request.
type ListQuery struct {
	Params pagination.Params
	Filter repository.ArticleFilter
}

// PaginatedResult represents the result of a paginated query.
// Data is never nil.
type PaginatedResult struct {
	Data       []entity.ArticleSummary
	Pagination pagination.Metadata
}

// List returns one page of summaries matching q.Filter together with the
// total number of matches. The count and the page query run concurrently;
// the first failure cancels the other.
func (s *Service) List(ctx context.Context, q ListQuery) (*PaginatedResult, error) {
	offset := q.Params.Offset()

	var (
		total    int64
		articles []entity.ArticleSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		n, err := s.Repo.CountArticles(gctx, q.Filter)
		pagination.RecordDuration("count", time.Since(start).Seconds())
		if err != nil {
			return fmt.Errorf("count articles: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		page, err := s.Repo.ListSummariesPaginated(gctx, q.Filter, offset, q.Params.Limit)
		pagination.RecordDuration("list", time.Since(start).Seconds())
		if err != nil {
			return fmt.Errorf("list articles paginated: %w", err)
		}
		articles = page
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if articles == nil {
		articles = []entity.ArticleSummary{}
	}
	pagination.UpdateTotalCount(total, q.Filter.Active())

	return &PaginatedResult{
		Data:       articles,
		Pagination: pagination.NewMetadata(total, q.Params),
	}, nil
}

// GetBySlug retrieves the full article with the given slug.
// Returns a *NotFoundError (matching ErrArticleNotFound) when nothing matches,
// including for an empty slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	if slug == "" {
		metrics.RecordArticleNotFound()
		return nil, &NotFoundError{Slug: slug}
	}

	article, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if article == nil {
		metrics.RecordArticleNotFound()
		return nil, &NotFoundError{Slug: slug}
	}
	return article, nil
}
