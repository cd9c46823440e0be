// Package notifier sends notifications about newly generated articles.
// It defines the Notifier interface which allows different mechanisms
// (Discord, Slack) to be used interchangeably, plus a no-op implementation
// for when notifications are disabled and a fan-out for multiple targets.
package notifier

import (
	"context"
	"errors"
	"os"
	"time"

	"newsradar/internal/domain/entity"
)

// Notifier sends a notification about a newly generated article.
// Implementations handle rate limiting, retries, and error logging internally.
type Notifier interface {
	NotifyArticle(ctx context.Context, article *entity.Article) error
}

// Multi fans a notification out to several notifiers. Failures are collected;
// one failing target does not stop the others.
type Multi struct {
	targets []Notifier
}

// NewMulti creates a fan-out notifier over the given targets.
func NewMulti(targets ...Notifier) *Multi {
	return &Multi{targets: targets}
}

// NotifyArticle implements Notifier.
func (m *Multi) NotifyArticle(ctx context.Context, article *entity.Article) error {
	var errs []error
	for _, t := range m.targets {
		if err := t.NotifyArticle(ctx, article); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FromEnv builds a Notifier from environment variables. Each webhook URL that
// is set enables its target; with none set the no-op notifier is returned.
//
// Environment variables:
//   - SLACK_WEBHOOK_URL
//   - DISCORD_WEBHOOK_URL
//   - SITE_BASE_URL: public site URL used to build article links
func FromEnv() Notifier {
	baseURL := os.Getenv("SITE_BASE_URL")

	var targets []Notifier
	if url := os.Getenv("SLACK_WEBHOOK_URL"); url != "" {
		targets = append(targets, NewSlackNotifier(SlackConfig{
			Enabled:     true,
			WebhookURL:  url,
			SiteBaseURL: baseURL,
			Timeout:     10 * time.Second,
		}))
	}
	if url := os.Getenv("DISCORD_WEBHOOK_URL"); url != "" {
		targets = append(targets, NewDiscordNotifier(DiscordConfig{
			Enabled:     true,
			WebhookURL:  url,
			SiteBaseURL: baseURL,
			Timeout:     10 * time.Second,
		}))
	}

	switch len(targets) {
	case 0:
		return NewNoOpNotifier()
	case 1:
		return targets[0]
	default:
		return NewMulti(targets...)
	}
}

// articleURL builds the public link for an article. An empty base URL yields
// a bare path, which chat clients render unlinked.
func articleURL(baseURL string, article *entity.Article) string {
	return baseURL + "/articles/" + article.Slug
}
