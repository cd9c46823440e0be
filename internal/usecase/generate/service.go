// Package generate implements the article generation pipeline: headline
// fetch, duplicate check, content generation, cover image lookup, and
// persistence, per category.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"newsradar/internal/config"
	"newsradar/internal/domain/entity"
	"newsradar/internal/infra/notifier"
	"newsradar/internal/infra/writer"
	"newsradar/internal/observability/metrics"
	"newsradar/internal/pkg/slugify"
	"newsradar/internal/repository"

	"github.com/google/uuid"
)

// PlaceholderImage is the cover used when the image search yields nothing.
const PlaceholderImage = "https://placehold.co/800x600.png"

// Status classifies the result of one category run.
type Status string

const (
	StatusGenerated Status = "generated"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Outcome is the result of running the pipeline for one category.
type Outcome struct {
	Category entity.Category `json:"category"`
	Status   Status          `json:"status"`
	Reason   string          `json:"reason,omitempty"`
	Article  *entity.Article `json:"-"`
}

// Summary aggregates one batch run: one outcome per configured category.
type Summary struct {
	Outcomes  []Outcome
	Generated int
	Skipped   int
	Failed    int
}

// Options controls per-run behavior.
type Options struct {
	// Scheduled marks a batch-triggered run. It selects the image query
	// shape, the publish flag, and whether notifications fire.
	Scheduled bool
}

// HeadlineSource supplies top headlines for a category. Implementations
// return an empty slice on any failure, never an error.
type HeadlineSource interface {
	TopHeadlines(ctx context.Context, category entity.Category, count int) []entity.Headline
}

// ImageSource searches stock images. Same empty-on-failure contract.
type ImageSource interface {
	Search(ctx context.Context, query string, count int) []entity.ImageResult
}

// Service orchestrates the generation pipeline.
type Service struct {
	Repo      repository.ArticleRepository
	Writer    writer.Writer
	Headlines HeadlineSource
	Images    ImageSource
	Notifier  notifier.Notifier
	Site      *config.SiteConfig
}

// NewService creates a generation Service. Notifier may be nil to disable
// notifications.
func NewService(
	repo repository.ArticleRepository,
	w writer.Writer,
	headlines HeadlineSource,
	images ImageSource,
	n notifier.Notifier,
	site *config.SiteConfig,
) *Service {
	return &Service{
		Repo:      repo,
		Writer:    w,
		Headlines: headlines,
		Images:    images,
		Notifier:  n,
		Site:      site,
	}
}

// Run executes the pipeline for one category. Pipeline-level problems are
// encoded in the Outcome status; the error return is reserved for invalid
// input and context cancellation.
func (s *Service) Run(ctx context.Context, category entity.Category, opts Options) (*Outcome, error) {
	if err := category.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	logger := slog.Default().With(slog.String("category", category.String()))
	start := time.Now()

	outcome, err := s.run(ctx, logger, category, opts)
	if err != nil {
		return nil, err
	}

	metrics.RecordArticleGenerated(category, string(outcome.Status))
	metrics.RecordGenerationDuration(category, time.Since(start))

	switch outcome.Status {
	case StatusGenerated:
		logger.Info("article generated",
			slog.String("article_id", outcome.Article.ID),
			slog.String("slug", outcome.Article.Slug),
			slog.Duration("duration", time.Since(start)))
	case StatusSkipped:
		logger.Info("generation skipped", slog.String("reason", outcome.Reason))
	case StatusFailed:
		logger.Warn("generation failed", slog.String("reason", outcome.Reason))
	}

	return outcome, nil
}

func (s *Service) run(ctx context.Context, logger *slog.Logger, category entity.Category, opts Options) (*Outcome, error) {
	headlines := s.Headlines.TopHeadlines(ctx, category, 1)
	metrics.RecordHeadlinesFetched(category, len(headlines))
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(headlines) == 0 {
		return &Outcome{Category: category, Status: StatusSkipped, Reason: "no headline found"}, nil
	}

	headline := headlines[0]
	if !headline.Complete() {
		return &Outcome{Category: category, Status: StatusSkipped, Reason: "headline missing title or description"}, nil
	}

	// A failed duplicate check is treated as "not duplicate"; generating a
	// duplicate is preferable to silently generating nothing.
	duplicate, err := s.Repo.ExistsBySourceHeadline(ctx, headline.Title)
	if err != nil {
		logger.Warn("duplicate check failed, continuing",
			slog.String("headline", headline.Title),
			slog.Any("error", err))
		duplicate = false
	}
	if duplicate {
		return &Outcome{Category: category, Status: StatusSkipped, Reason: "duplicate headline"}, nil
	}

	affiliateLink := s.Site.AffiliateLink(category)
	draft, err := s.Writer.Generate(ctx, writer.Input{
		Headline:      headline.Title,
		Description:   headline.Description,
		Category:      category.String(),
		AffiliateLink: affiliateLink,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return &Outcome{Category: category, Status: StatusFailed, Reason: fmt.Sprintf("content generation: %v", err)}, nil
	}

	slug := slugify.Make(draft.SEOTitle)
	if slug == "" {
		return &Outcome{Category: category, Status: StatusFailed, Reason: "generated title yields empty slug"}, nil
	}

	coverImage := s.findCoverImage(ctx, category, headline, opts)

	now := time.Now()
	article := &entity.Article{
		ID:              uuid.NewString(),
		Title:           draft.SEOTitle,
		Slug:            slug,
		SourceHeadline:  headline.Title,
		Category:        category,
		Content:         draft.Content,
		MetaDescription: draft.MetaDescription,
		CoverImage:      coverImage,
		Author:          entity.DefaultAuthor,
		AffiliateLink:   affiliateLink,
		Published:       s.Site.Published(opts.Scheduled),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := article.Validate(); err != nil {
		return &Outcome{Category: category, Status: StatusFailed, Reason: fmt.Sprintf("article validation: %v", err)}, nil
	}

	if err := s.Repo.Save(ctx, article); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return &Outcome{Category: category, Status: StatusFailed, Reason: fmt.Sprintf("save article: %v", err)}, nil
	}

	if opts.Scheduled && s.Notifier != nil {
		// Fire-and-forget: a failed webhook never fails the run.
		if err := s.Notifier.NotifyArticle(context.WithoutCancel(ctx), article); err != nil {
			logger.Warn("notification failed",
				slog.String("article_id", article.ID),
				slog.Any("error", err))
		}
	}

	return &Outcome{Category: category, Status: StatusGenerated, Article: article}, nil
}

// findCoverImage queries the image source and falls back to the placeholder.
// Batch runs query "<category> news"; on-demand runs bias the query with the
// first word of the headline.
func (s *Service) findCoverImage(ctx context.Context, category entity.Category, headline entity.Headline, opts Options) string {
	query := category.String() + " news"
	if !opts.Scheduled {
		if first, _, _ := strings.Cut(strings.TrimSpace(headline.Title), " "); first != "" {
			query = category.String() + " " + first
		}
	}

	images := s.Images.Search(ctx, query, 1)
	if len(images) == 0 || images[0].URL == "" {
		metrics.RecordImageFallback(category)
		return PlaceholderImage
	}
	return images[0].URL
}

// RunAll executes the pipeline once per configured category, sequentially.
// Failures in one category never abort the others; only context
// cancellation stops the batch early.
func (s *Service) RunAll(ctx context.Context) (*Summary, error) {
	logger := slog.Default()
	start := time.Now()

	summary := &Summary{}
	for _, category := range entity.Categories() {
		outcome, err := s.Run(ctx, category, Options{Scheduled: true})
		if err != nil {
			metrics.RecordBatchRun("aborted")
			return summary, fmt.Errorf("RunAll: category %s: %w", category, err)
		}

		summary.Outcomes = append(summary.Outcomes, *outcome)
		switch outcome.Status {
		case StatusGenerated:
			summary.Generated++
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
		}
	}

	metrics.RecordBatchRun("completed")
	s.refreshArticlesTotal(ctx)
	logger.Info("batch generation completed",
		slog.Int("generated", summary.Generated),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
		slog.Duration("duration", time.Since(start)))

	return summary, nil
}

// refreshArticlesTotal resets the stored-articles gauge after a batch.
// A count failure only loses one gauge refresh, so it is logged and dropped.
func (s *Service) refreshArticlesTotal(ctx context.Context) {
	const countLimit = 10000
	articles, err := s.Repo.List(ctx, true, countLimit)
	if err != nil {
		slog.Default().Warn("articles gauge refresh failed", slog.String("error", err.Error()))
		return
	}
	metrics.UpdateArticlesTotal(len(articles))
}
