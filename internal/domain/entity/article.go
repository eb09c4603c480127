// Package entity defines the core domain entities of the article API.
// Field tags mirror the key names of the documents already stored in the
// articles collection, so the same structs serve both the store and the JSON
// responses.
package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Article is a full article document.
// Only Slug and Title are guaranteed to be present; every other field is
// optional and rendered as null when missing.
type Article struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Slug             string             `bson:"slug" json:"slug"`
	Title            string             `bson:"titre" json:"titre"`
	ShortDescription *string            `bson:"petit_description,omitempty" json:"petit_description"`
	Content          *string            `bson:"contenu,omitempty" json:"contenu"`
	Theme            *string            `bson:"theme,omitempty" json:"theme"`
	Category         *string            `bson:"categorie,omitempty" json:"categorie"`
	Photo            *string            `bson:"photo,omitempty" json:"photo"`
	PhotoDescription *string            `bson:"photo_description,omitempty" json:"photo_description"`
	PhotoHighlight   *string            `bson:"photo_highlight,omitempty" json:"photo_highlight"`
	PublishedAt      *string            `bson:"date_publication,omitempty" json:"date_publication"`
	SEOTitle         *string            `bson:"seo_title,omitempty" json:"seo_title"`
	SEODescription   *string            `bson:"seo_description,omitempty" json:"seo_description"`
	SEOKeywords      []string           `bson:"seo_keywords,omitempty" json:"seo_keywords"`
}

// ArticleSummary is the list-view projection of an Article.
type ArticleSummary struct {
	Slug             string  `bson:"slug" json:"slug"`
	Title            string  `bson:"titre" json:"titre"`
	ShortDescription *string `bson:"petit_description,omitempty" json:"petit_description"`
	Theme            *string `bson:"theme,omitempty" json:"theme"`
	Category         *string `bson:"categorie,omitempty" json:"categorie"`
	Photo            *string `bson:"photo,omitempty" json:"photo"`
	PublishedAt      *string `bson:"date_publication,omitempty" json:"date_publication"`
}

// Summary projects the article onto its list-view fields.
func (a *Article) Summary() ArticleSummary {
	return ArticleSummary{
		Slug:             a.Slug,
		Title:            a.Title,
		ShortDescription: a.ShortDescription,
		Theme:            a.Theme,
		Category:         a.Category,
		Photo:            a.Photo,
		PublishedAt:      a.PublishedAt,
	}
}

// Field names of the stored document, used when building filters,
// sorts and projections.
const (
	FieldID               = "_id"
	FieldSlug             = "slug"
	FieldTitle            = "titre"
	FieldShortDescription = "petit_description"
	FieldTheme            = "theme"
	FieldCategory         = "categorie"
	FieldPhoto            = "photo"
	FieldPublishedAt      = "date_publication"
)

// SummaryFields lists the fields kept by the list-view projection.
var SummaryFields = []string{
	FieldSlug,
	FieldTitle,
	FieldShortDescription,
	FieldTheme,
	FieldCategory,
	FieldPhoto,
	FieldPublishedAt,
}
