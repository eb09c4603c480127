package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"meetvoice-api/internal/domain/entity"
	"meetvoice-api/internal/observability/metrics"
	"meetvoice-api/internal/observability/tracing"
	"meetvoice-api/internal/repository"
)

type ArticleRepo struct {
	coll         *mongo.Collection
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(coll *mongo.Collection) repository.ArticleRepository {
	return &ArticleRepo{
		coll:         coll,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

// observe opens a span for one store operation and returns a function that
// records its outcome. The returned error is err wrapped as a StoreError.
func (repo *ArticleRepo) observe(ctx context.Context, op, metric string) (context.Context, func(err error) error) {
	ctx, span := tracing.StartSpan(ctx, "mongodb."+metric,
		attribute.String("db.system", "mongodb"),
		attribute.String("db.operation", metric),
		attribute.String("db.mongodb.collection", repo.coll.Name()),
	)
	start := time.Now()

	return ctx, func(err error) error {
		defer span.End()
		metrics.RecordStoreOperation(metric, time.Since(start), err)
		if err == nil {
			return nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return &repository.StoreError{Op: op, Err: err}
	}
}

// CountArticles returns the number of articles matching the filter.
func (repo *ArticleRepo) CountArticles(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	ctx, done := repo.observe(ctx, "CountArticles", "count")

	n, err := repo.coll.CountDocuments(ctx, repo.queryBuilder.BuildFilter(filter))
	if err != nil {
		return 0, done(err)
	}
	return n, done(nil)
}

// ListSummariesPaginated returns one page of summaries, newest first.
func (repo *ArticleRepo) ListSummariesPaginated(ctx context.Context, filter repository.ArticleFilter, offset, limit int) ([]entity.ArticleSummary, error) {
	ctx, done := repo.observe(ctx, "ListSummariesPaginated", "find")

	opts := options.Find().
		SetSort(repo.queryBuilder.Sort()).
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetProjection(repo.queryBuilder.SummaryProjection())

	cur, err := repo.coll.Find(ctx, repo.queryBuilder.BuildFilter(filter), opts)
	if err != nil {
		return nil, done(err)
	}

	summaries := make([]entity.ArticleSummary, 0, limit)
	if err := cur.All(ctx, &summaries); err != nil {
		return nil, done(err)
	}
	return summaries, done(nil)
}

// GetBySlug returns the full article with the given slug, or (nil, nil).
func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	ctx, done := repo.observe(ctx, "GetBySlug", "find_one")

	var article entity.Article
	err := repo.coll.FindOne(ctx, repo.queryBuilder.BuildSlugFilter(slug)).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		_ = done(nil)
		return nil, nil
	}
	if err != nil {
		return nil, done(err)
	}
	return &article, done(nil)
}
