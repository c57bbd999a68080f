package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GIFT-ASSET/giftasset-mcp/pkg/config"
	"github.com/GIFT-ASSET/giftasset-mcp/pkg/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Empty(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cfg.GiftAsset.Token)
	assert.Equal(t, gateway.DefaultBaseURL, cfg.GiftAsset.BaseURL)
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")

	fn := filepath.Join(t.TempDir(), "giftasset.yaml")
	err := os.WriteFile(fn, []byte(`
giftasset:
  token: file-token
  base_url: https://staging.giftasset.dev/
`), 0644)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.GiftAsset.Token)
	assert.Equal(t, "https://staging.giftasset.dev/", cfg.GiftAsset.BaseURL)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "env-token")

	fn := filepath.Join(t.TempDir(), "giftasset.yaml")
	err := os.WriteFile(fn, []byte(`
giftasset:
  token: file-token
`), 0644)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.GiftAsset.Token)
	assert.Equal(t, gateway.DefaultBaseURL, cfg.GiftAsset.BaseURL)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
