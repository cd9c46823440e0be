// Package pathutil provides helpers for extracting identifiers from URL paths.
package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts a non-empty ID segment from a URL path.
// It removes the prefix and rejects anything containing further slashes,
// so nested paths fall through to more specific handlers.
//
// Example:
//
//	id, err := ExtractID("/admin/articles/4f7c", "/admin/articles/")
//	// Returns: "4f7c", nil
func ExtractID(path, prefix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	if id == "" || id == path || strings.Contains(id, "/") {
		return "", ErrInvalidID
	}
	return id, nil
}

// ExtractIDAction extracts an ID followed by a fixed action segment,
// e.g. "/admin/articles/4f7c/enhance".
func ExtractIDAction(path, prefix, action string) (string, error) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path {
		return "", ErrInvalidID
	}
	id, ok := strings.CutSuffix(rest, "/"+action)
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", ErrInvalidID
	}
	return id, nil
}
