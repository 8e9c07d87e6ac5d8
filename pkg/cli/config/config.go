package config

import (
	"os"

	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig represents the application configuration loaded from a TOML file.
// Everything in it is optional; it seeds the workspace on first boot.
type AppConfig struct {
	Assistant AssistantConfig `toml:"assistant"`
	Profile   ProfileSeed     `toml:"profile"`
	Campaigns []CampaignSeed  `toml:"campaign"`
}

// AssistantConfig tunes the reply generator
type AssistantConfig struct {
	Tone string `toml:"tone"`
}

// ProfileSeed is an initial business profile, applied only when no
// profile has been saved yet
type ProfileSeed struct {
	Name      string `toml:"name"`
	About     string `toml:"about"`
	Tone      string `toml:"tone"`
	OwnerName string `toml:"owner_name"`
}

// IsEmpty reports whether the seed carries no data
func (p *ProfileSeed) IsEmpty() bool {
	return p.Name == "" && p.About == "" && p.Tone == "" && p.OwnerName == ""
}

// CampaignSeed is an initial campaign, applied only when the campaign
// store is empty
type CampaignSeed struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Status      string `toml:"status"`
}

// Validate checks if the CampaignSeed is valid
func (c *CampaignSeed) Validate() error {
	if c.Name == "" {
		return goerr.New("campaign name is required")
	}
	if c.Status != "" {
		if _, err := types.ParseCampaignStatus(c.Status); err != nil {
			return goerr.Wrap(err, "invalid campaign status", goerr.V("name", c.Name))
		}
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	names := make(map[string]bool)
	for _, c := range a.Campaigns {
		if err := c.Validate(); err != nil {
			return goerr.Wrap(err, "invalid campaign")
		}
		if names[c.Name] {
			return goerr.New("duplicate campaign name", goerr.V("name", c.Name))
		}
		names[c.Name] = true
	}

	if a.Profile.Name == "" && !a.Profile.IsEmpty() {
		return goerr.New("profile seed requires a name")
	}

	return nil
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V("path", path))
	}

	return &config, nil
}
