package article

import "errors"

// Sentinel errors for article operations. Handlers map these onto HTTP
// status codes.
var (
	// ErrArticleNotFound is returned when the requested article does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID is returned when an article ID is empty.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrInvalidSlug is returned when a slug is empty.
	ErrInvalidSlug = errors.New("invalid slug")
)
