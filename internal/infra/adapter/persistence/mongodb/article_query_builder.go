// Package mongodb provides MongoDB implementations of repository interfaces.
package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetvoice-api/internal/domain/entity"
	"meetvoice-api/internal/repository"
)

// ArticleQueryBuilder builds the query documents for article reads.
// The same filter document is shared between the count and the page query so
// that total always describes the listed set.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildFilter builds the filter document for a list query.
// Category is an exact match; Theme is a case-insensitive substring match with
// regex metacharacters escaped. Empty values are ignored. Fields in one
// document are ANDed by the server.
func (qb *ArticleQueryBuilder) BuildFilter(filter repository.ArticleFilter) bson.D {
	doc := bson.D{}

	if filter.Category != nil && *filter.Category != "" {
		doc = append(doc, bson.E{Key: entity.FieldCategory, Value: *filter.Category})
	}
	if filter.Theme != nil && *filter.Theme != "" {
		doc = append(doc, bson.E{Key: entity.FieldTheme, Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(*filter.Theme),
			Options: "i",
		}})
	}

	return doc
}

// BuildSlugFilter builds the exact-match filter for a single article.
func (qb *ArticleQueryBuilder) BuildSlugFilter(slug string) bson.D {
	return bson.D{{Key: entity.FieldSlug, Value: slug}}
}

// Sort orders by publication date, newest first. Documents without a date
// sort after every dated one; _id breaks ties so pages are stable.
func (qb *ArticleQueryBuilder) Sort() bson.D {
	return bson.D{
		{Key: entity.FieldPublishedAt, Value: -1},
		{Key: entity.FieldID, Value: -1},
	}
}

// SummaryProjection keeps only the list-view fields.
func (qb *ArticleQueryBuilder) SummaryProjection() bson.D {
	doc := make(bson.D, 0, len(entity.SummaryFields)+1)
	for _, f := range entity.SummaryFields {
		doc = append(doc, bson.E{Key: f, Value: 1})
	}
	return append(doc, bson.E{Key: entity.FieldID, Value: 0})
}
