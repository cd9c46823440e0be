package notifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"newsradar/internal/domain/entity"
)

// Slack message limits. Sections cap at 3000 characters; the fallback text
// only feeds push notifications, so it is kept much shorter.
const (
	maxSectionTextLength = 3000
	maxFallbackLength    = 150
)

// SlackConfig configures the Slack webhook notifier.
type SlackConfig struct {
	Enabled     bool
	WebhookURL  string
	SiteBaseURL string
	Timeout     time.Duration
}

// SlackNotifier posts new articles to a Slack incoming webhook using
// Block Kit formatting.
type SlackNotifier struct {
	client      webhookClient
	siteBaseURL string
}

// SlackWebhookPayload is the webhook request body. Text is the notification
// fallback shown when blocks cannot be rendered.
type SlackWebhookPayload struct {
	Text   string       `json:"text"`
	Blocks []SlackBlock `json:"blocks,omitempty"`
}

// SlackBlock is a Block Kit layout block.
type SlackBlock struct {
	Type     string            `json:"type"`
	Text     *SlackTextObject  `json:"text,omitempty"`
	Elements []SlackTextObject `json:"elements,omitempty"`
}

// SlackTextObject is a Block Kit text object.
type SlackTextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewSlackNotifier creates a Slack notifier. Slack allows roughly one
// message per second per webhook, so the limiter matches that.
func NewSlackNotifier(cfg SlackConfig) *SlackNotifier {
	return &SlackNotifier{
		client: webhookClient{
			service: "slack",
			url:     cfg.WebhookURL,
			http:    &http.Client{Timeout: cfg.Timeout},
			limiter: NewRateLimiter(1.0, 1),
		},
		siteBaseURL: cfg.SiteBaseURL,
	}
}

// NotifyArticle implements Notifier.
func (n *SlackNotifier) NotifyArticle(ctx context.Context, article *entity.Article) error {
	return n.client.deliver(ctx, article, n.buildPayload(article))
}

func (n *SlackNotifier) buildPayload(article *entity.Article) SlackWebhookPayload {
	url := articleURL(n.siteBaseURL, article)

	section := fmt.Sprintf("*<%s|%s>*\n\n%s", url, article.Title, article.MetaDescription)
	section = truncateText(section, maxSectionTextLength, "...")

	fallback := fmt.Sprintf("New article: %s [%s]", article.Title, article.Category)
	fallback = truncateText(fallback, maxFallbackLength, "...")

	return SlackWebhookPayload{
		Text: fallback,
		Blocks: []SlackBlock{
			{
				Type: "section",
				Text: &SlackTextObject{Type: "mrkdwn", Text: section},
			},
			{
				Type: "context",
				Elements: []SlackTextObject{{
					Type: "mrkdwn",
					Text: fmt.Sprintf("%s • %s", article.Category, article.CreatedAt.Format(time.RFC3339)),
				}},
			},
		},
	}
}
