// Package fixtures provides reusable article test data shared by the
// repository, use case and HTTP test suites.
package fixtures

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"meetvoice-api/internal/domain/entity"
)

// Ptr returns a pointer to s.
func Ptr(s string) *string { return &s }

// Option customizes an article built by NewArticle.
type Option func(*entity.Article)

// WithCategory sets the categorie field.
func WithCategory(c string) Option {
	return func(a *entity.Article) { a.Category = Ptr(c) }
}

// WithTheme sets the theme field.
func WithTheme(th string) Option {
	return func(a *entity.Article) { a.Theme = Ptr(th) }
}

// WithPublishedAt sets the date_publication field.
func WithPublishedAt(date string) Option {
	return func(a *entity.Article) { a.PublishedAt = Ptr(date) }
}

// WithDescription sets the petit_description field.
func WithDescription(d string) Option {
	return func(a *entity.Article) { a.ShortDescription = Ptr(d) }
}

// WithContent sets the contenu field to generated text of roughly length runes.
func WithContent(length int) Option {
	return func(a *entity.Article) { a.Content = Ptr(GenerateContent(length)) }
}

// WithSEO sets the seo_title, seo_description and seo_keywords fields.
func WithSEO(title, description string, keywords ...string) Option {
	return func(a *entity.Article) {
		a.SEOTitle = Ptr(title)
		a.SEODescription = Ptr(description)
		a.SEOKeywords = keywords
	}
}

// NewArticle builds an article with the two required fields set.
func NewArticle(slug, title string, opts ...Option) entity.Article {
	a := entity.Article{Slug: slug, Title: title}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Catalog returns a small collection covering the list behaviours:
// two categories, a theme that matches "roc" case-insensitively in two
// documents, and one undated article.
//
// Ordered newest first: rock-legends, film-review, jazz-night, undated.
func Catalog() []entity.Article {
	return []entity.Article{
		NewArticle("jazz-night", "Jazz Night",
			WithCategory("music"), WithTheme("jazz"), WithPublishedAt("2024-03-01")),
		NewArticle("rock-legends", "Rock Legends",
			WithCategory("music"), WithTheme("rock"), WithPublishedAt("2024-05-01")),
		NewArticle("film-review", "Film Review",
			WithCategory("cinema"), WithTheme("Hard Rock"), WithPublishedAt("2024-04-01")),
		NewArticle("undated", "Undated",
			WithCategory("music")),
	}
}

// MustDocument encodes a as the BSON document the store would hold.
func MustDocument(tb testing.TB, a entity.Article) bson.D {
	tb.Helper()
	raw, err := bson.Marshal(a)
	if err != nil {
		tb.Fatalf("marshal article %q: %v", a.Slug, err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		tb.Fatalf("unmarshal article %q: %v", a.Slug, err)
	}
	return doc
}

var contentSentences = []string{
	"La scène musicale locale attire chaque année un public plus large.",
	"Les festivals d'été restent le meilleur moyen de découvrir de nouveaux artistes.",
	"Un bon mixage met en valeur la voix sans écraser les instruments.",
	"Les salles indépendantes jouent un rôle essentiel dans la vie culturelle.",
	"Le vinyle connaît un retour inattendu auprès des jeunes auditeurs.",
	"Chaque concert raconte une histoire différente selon le lieu et le public.",
	"Les plateformes de streaming ont changé la façon dont on écoute un album.",
	"Une répétition sérieuse vaut mieux que dix improvisations approximatives.",
}

// GenerateContent returns French prose of roughly targetLength runes
// (within 10% either way).
func GenerateContent(targetLength int) string {
	var builder strings.Builder
	currentLength := 0

	for i := 0; ; i++ {
		sentence := contentSentences[i%len(contentSentences)]

		sentenceLength := len([]rune(sentence))
		if currentLength > 0 {
			sentenceLength++ // separating space
		}
		potentialLength := currentLength + sentenceLength

		if currentLength >= int(float64(targetLength)*0.9) && potentialLength > int(float64(targetLength)*1.1) {
			break
		}

		if currentLength > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString(sentence)
		currentLength = potentialLength

		if currentLength >= targetLength {
			break
		}
	}

	return builder.String()
}
