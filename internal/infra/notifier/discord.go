package notifier

import (
	"context"
	"net/http"
	"time"

	"newsradar/internal/domain/entity"
)

// Discord embed limits and styling.
const (
	maxTitleLength       = 256
	maxDescriptionLength = 4096
	discordBlueColor     = 5793266
)

// DiscordConfig configures the Discord webhook notifier.
type DiscordConfig struct {
	Enabled     bool
	WebhookURL  string
	SiteBaseURL string
	Timeout     time.Duration
}

// DiscordNotifier posts new articles to a Discord webhook as rich embeds.
type DiscordNotifier struct {
	client      webhookClient
	siteBaseURL string
}

// DiscordWebhookPayload is the webhook request body.
type DiscordWebhookPayload struct {
	Embeds []DiscordEmbed `json:"embeds"`
}

// DiscordEmbed is a single rich embed.
type DiscordEmbed struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color,omitempty"`
	Footer      *DiscordEmbedFooter `json:"footer,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

// DiscordEmbedFooter is the footer line of an embed.
type DiscordEmbedFooter struct {
	Text string `json:"text"`
}

// NewDiscordNotifier creates a Discord notifier. Discord throttles webhooks
// aggressively, so the limiter stays under one request per two seconds with
// a small burst.
func NewDiscordNotifier(cfg DiscordConfig) *DiscordNotifier {
	return &DiscordNotifier{
		client: webhookClient{
			service: "discord",
			url:     cfg.WebhookURL,
			http:    &http.Client{Timeout: cfg.Timeout},
			limiter: NewRateLimiter(0.5, 3),
		},
		siteBaseURL: cfg.SiteBaseURL,
	}
}

// NotifyArticle implements Notifier.
func (n *DiscordNotifier) NotifyArticle(ctx context.Context, article *entity.Article) error {
	return n.client.deliver(ctx, article, n.buildPayload(article))
}

func (n *DiscordNotifier) buildPayload(article *entity.Article) DiscordWebhookPayload {
	title := article.Title
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength]
	}

	return DiscordWebhookPayload{
		Embeds: []DiscordEmbed{{
			Title:       title,
			Description: truncateText(article.MetaDescription, maxDescriptionLength, "..."),
			URL:         articleURL(n.siteBaseURL, article),
			Color:       discordBlueColor,
			Footer:      &DiscordEmbedFooter{Text: article.Category.String()},
			Timestamp:   article.CreatedAt.Format(time.RFC3339),
		}},
	}
}
