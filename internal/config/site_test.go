package config

import (
	"os"
	"path/filepath"
	"testing"

	"newsradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSiteConfig_Defaults(t *testing.T) {
	t.Setenv("AFFILIATE_CONFIG_PATH", "")
	t.Setenv("PUBLISH_ON_DEMAND", "")
	t.Setenv("PUBLISH_SCHEDULED", "")

	cfg, err := LoadSiteConfig()
	require.NoError(t, err)

	assert.False(t, cfg.PublishOnDemand)
	assert.True(t, cfg.PublishScheduled)
	for _, category := range entity.Categories() {
		assert.NotEmpty(t, cfg.AffiliateLink(category), "category %s should have a default link", category)
	}
}

func TestLoadSiteConfig_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affiliate.yaml")
	content := `affiliate_links:
  tech: "https://shop.example.com/tech?ref=custom"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("AFFILIATE_CONFIG_PATH", path)

	cfg, err := LoadSiteConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com/tech?ref=custom", cfg.AffiliateLink(entity.CategoryTech))
	// Untouched categories keep their defaults.
	assert.Equal(t, defaultAffiliateLinks[entity.CategorySports], cfg.AffiliateLink(entity.CategorySports))
}

func TestLoadSiteConfig_FileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("AFFILIATE_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := LoadSiteConfig()
		assert.Error(t, err)
	})

	t.Run("unknown category", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "affiliate.yaml")
		require.NoError(t, os.WriteFile(path, []byte("affiliate_links:\n  gardening: \"https://x\"\n"), 0o600))
		t.Setenv("AFFILIATE_CONFIG_PATH", path)
		_, err := LoadSiteConfig()
		assert.Error(t, err)
	})

	t.Run("empty link", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "affiliate.yaml")
		require.NoError(t, os.WriteFile(path, []byte("affiliate_links:\n  tech: \"\"\n"), 0o600))
		t.Setenv("AFFILIATE_CONFIG_PATH", path)
		_, err := LoadSiteConfig()
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "affiliate.yaml")
		require.NoError(t, os.WriteFile(path, []byte("affiliate_links: [not a map"), 0o600))
		t.Setenv("AFFILIATE_CONFIG_PATH", path)
		_, err := LoadSiteConfig()
		assert.Error(t, err)
	})
}

func TestSiteConfig_Published(t *testing.T) {
	cfg := &SiteConfig{PublishOnDemand: false, PublishScheduled: true}
	assert.True(t, cfg.Published(true))
	assert.False(t, cfg.Published(false))

	t.Setenv("PUBLISH_ON_DEMAND", "true")
	t.Setenv("PUBLISH_SCHEDULED", "false")
	t.Setenv("AFFILIATE_CONFIG_PATH", "")
	loaded, err := LoadSiteConfig()
	require.NoError(t, err)
	assert.True(t, loaded.Published(false))
	assert.False(t, loaded.Published(true))
}
