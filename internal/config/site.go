// Package config holds site-level configuration: affiliate links per
// category and publish-mode flags for the generation pipeline.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"newsradar/internal/domain/entity"
	pkgconfig "newsradar/internal/pkg/config"

	"gopkg.in/yaml.v3"
)

// defaultAffiliateLinks mirrors the launch configuration; a YAML file can
// override individual categories.
var defaultAffiliateLinks = map[entity.Category]string{
	entity.CategoryBusiness:      "https://example.com/business-tools?ref=ainews",
	entity.CategoryTech:          "https://example.com/tech-gadgets?ref=ainews",
	entity.CategorySports:        "https://example.com/sports-gear?ref=ainews",
	entity.CategoryPolitics:      "https://example.com/political-books?ref=ainews",
	entity.CategoryEntertainment: "https://example.com/streaming-service?ref=ainews",
}

// SiteConfig holds site-level settings for the generation pipeline.
type SiteConfig struct {
	// AffiliateLinks maps each category to the link woven into generated posts.
	AffiliateLinks map[entity.Category]string

	// PublishOnDemand controls whether on-demand articles go live immediately.
	// Defaults to false: on-demand generations land as drafts for review.
	PublishOnDemand bool

	// PublishScheduled controls whether batch-generated articles go live
	// immediately. Defaults to true.
	PublishScheduled bool
}

// affiliateFile is the YAML shape of the optional override file.
type affiliateFile struct {
	AffiliateLinks map[string]string `yaml:"affiliate_links"`
}

// LoadSiteConfig builds the site configuration from defaults, the optional
// YAML file named by AFFILIATE_CONFIG_PATH, and the publish-mode env flags.
// Unknown categories in the file are rejected; a missing file is only an
// error when the path was set explicitly.
func LoadSiteConfig() (*SiteConfig, error) {
	cfg := &SiteConfig{
		AffiliateLinks: make(map[entity.Category]string, len(defaultAffiliateLinks)),
	}
	for category, link := range defaultAffiliateLinks {
		cfg.AffiliateLinks[category] = link
	}

	if path := os.Getenv("AFFILIATE_CONFIG_PATH"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("LoadSiteConfig: %w", err)
		}
	}

	onDemand := pkgconfig.LoadEnvBool("PUBLISH_ON_DEMAND", false)
	for _, warning := range onDemand.Warnings {
		slog.Warn("site config fallback", slog.String("warning", warning))
	}
	cfg.PublishOnDemand = onDemand.Value.(bool)

	scheduled := pkgconfig.LoadEnvBool("PUBLISH_SCHEDULED", true)
	for _, warning := range scheduled.Warnings {
		slog.Warn("site config fallback", slog.String("warning", warning))
	}
	cfg.PublishScheduled = scheduled.Value.(bool)

	return cfg, nil
}

func (c *SiteConfig) applyFile(path string) error {
	// #nosec G304 -- path comes from the operator's environment, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read affiliate config: %w", err)
	}

	var file affiliateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse affiliate config: %w", err)
	}

	for name, link := range file.AffiliateLinks {
		category, err := entity.ParseCategory(name)
		if err != nil {
			return fmt.Errorf("affiliate config: %w", err)
		}
		if link == "" {
			return fmt.Errorf("affiliate config: empty link for category %q", name)
		}
		c.AffiliateLinks[category] = link
	}

	return nil
}

// AffiliateLink returns the configured link for a category, or an empty
// string for categories without one.
func (c *SiteConfig) AffiliateLink(category entity.Category) string {
	return c.AffiliateLinks[category]
}

// Published reports whether an article generated by the given trigger
// should go live immediately.
func (c *SiteConfig) Published(scheduled bool) bool {
	if scheduled {
		return c.PublishScheduled
	}
	return c.PublishOnDemand
}
