// Package article provides the read use cases over the article store:
// listing filtered pages of summaries and fetching one article by slug.
package article

import (
	"errors"
	"fmt"
)

// ErrArticleNotFound indicates that no article has the requested slug.
var ErrArticleNotFound = errors.New("article not found")

// NotFoundError names the slug that matched nothing.
// errors.Is(err, ErrArticleNotFound) reports true for it.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Article '%s' not found", e.Slug)
}

func (e *NotFoundError) Unwrap() error {
	return ErrArticleNotFound
}
