// Package config loads the server configuration. All settings are optional:
// the zero config points production at the public GiftAsset API and reads
// the token from the environment.
package config

import (
	"os"

	"github.com/GIFT-ASSET/giftasset-mcp/pkg/gateway"
	"github.com/effective-security/x/configloader"
	"github.com/effective-security/x/values"
)

// EnvAPIKey names the environment variable carrying the GiftAsset API token.
const EnvAPIKey = "GIFTASSET_API_KEY"

// Config for the MCP server.
type Config struct {
	GiftAsset GiftAssetConfig `json:"giftasset" yaml:"giftasset"`
}

// GiftAssetConfig specifies the upstream API connection.
type GiftAssetConfig struct {
	// Token authenticates against the GiftAsset API. The GIFTASSET_API_KEY
	// environment variable takes precedence when set.
	Token   string `json:"token,omitempty" yaml:"token,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// LoadConfig from file
func LoadConfig(file string) (*Config, error) {
	cfg := new(Config)
	if file == "" {
		cfg.applyDefaults()
		return cfg, nil
	}

	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.GiftAsset.Token = values.StringsCoalesce(os.Getenv(EnvAPIKey), c.GiftAsset.Token)
	c.GiftAsset.BaseURL = values.StringsCoalesce(c.GiftAsset.BaseURL, gateway.DefaultBaseURL)
}
