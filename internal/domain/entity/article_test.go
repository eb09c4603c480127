package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func TestArticle_Summary(t *testing.T) {
	article := Article{
		ID:               primitive.NewObjectID(),
		Slug:             "concert-rock",
		Title:            "Concert rock",
		ShortDescription: strPtr("Un concert"),
		Content:          strPtr("Long contenu"),
		Theme:            strPtr("rock"),
		Category:         strPtr("music"),
		Photo:            strPtr("https://cdn.example.com/a.jpg"),
		PublishedAt:      strPtr("2024-05-01"),
		SEOKeywords:      []string{"rock", "concert"},
	}

	got := article.Summary()

	assert.Equal(t, ArticleSummary{
		Slug:             "concert-rock",
		Title:            "Concert rock",
		ShortDescription: strPtr("Un concert"),
		Theme:            strPtr("rock"),
		Category:         strPtr("music"),
		Photo:            strPtr("https://cdn.example.com/a.jpg"),
		PublishedAt:      strPtr("2024-05-01"),
	}, got)
}

func TestArticle_JSONRendersMissingFieldsAsNull(t *testing.T) {
	article := Article{Slug: "only-required", Title: "Titre"}

	raw, err := json.Marshal(article)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "only-required", decoded["slug"])
	assert.Equal(t, "Titre", decoded["titre"])
	for _, key := range []string{"petit_description", "contenu", "theme", "categorie", "photo", "date_publication", "seo_keywords"} {
		v, ok := decoded[key]
		assert.True(t, ok, "key %q should be present", key)
		assert.Nil(t, v, "key %q should be null", key)
	}
}

func TestArticle_JSONRendersIDAsHex(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("65f1c2a9e4b0a1b2c3d4e5f6")
	require.NoError(t, err)

	raw, err := json.Marshal(Article{ID: id, Slug: "s", Title: "T"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "65f1c2a9e4b0a1b2c3d4e5f6", decoded["_id"])
}

func TestArticle_DecodesStoredDocument(t *testing.T) {
	id := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: id},
		{Key: "slug", Value: "jazz-night"},
		{Key: "titre", Value: "Jazz night"},
		{Key: "categorie", Value: "music"},
		{Key: "date_publication", Value: nil},
		{Key: "seo_keywords", Value: bson.A{"jazz"}},
	})
	require.NoError(t, err)

	var article Article
	require.NoError(t, bson.Unmarshal(raw, &article))

	assert.Equal(t, id, article.ID)
	assert.Equal(t, "jazz-night", article.Slug)
	assert.Equal(t, "Jazz night", article.Title)
	require.NotNil(t, article.Category)
	assert.Equal(t, "music", *article.Category)
	assert.Nil(t, article.PublishedAt)
	assert.Nil(t, article.Theme)
	assert.Equal(t, []string{"jazz"}, article.SEOKeywords)
}

func TestSummaryFields(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"slug", "titre", "petit_description", "theme", "categorie", "photo", "date_publication",
	}, SummaryFields)
}
