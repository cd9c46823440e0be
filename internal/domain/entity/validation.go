package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength caps URLs stored on an article.
const maxURLLength = 2048

func urlError(message string) error {
	return &ValidationError{Field: "url", Message: message}
}

// ValidateURL checks a cover-image or affiliate URL: well-formed, http or
// https, with a host, and within the stored length cap.
func ValidateURL(rawURL string) error {
	switch {
	case rawURL == "":
		return urlError("URL is required")
	case len(rawURL) > maxURLLength:
		return urlError(fmt.Sprintf("url must not exceed %d characters", maxURLLength))
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return urlError("URL must use http or https scheme")
	}
	if parsed.Host == "" {
		return urlError("URL must have a valid host")
	}
	return nil
}
