package entity

import "time"

// Headline is a single news item obtained from the external headline feed.
// An incomplete headline (missing title or description) is skipped by the pipeline.
type Headline struct {
	Title       string
	Description string
	SourceName  string
	URL         string
	PublishedAt time.Time
}

// Complete reports whether the headline carries enough material for generation.
func (h Headline) Complete() bool {
	return h.Title != "" && h.Description != ""
}

// ImageResult is a single candidate image from the external image index.
// URL is the display URL used as an article cover image.
type ImageResult struct {
	URL          string
	OriginalURL  string
	Photographer string
}
