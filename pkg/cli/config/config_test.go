package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flowreach/flowreach/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestLoadAppConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "valid configuration",
			content: `
[assistant]
tone = "casual"

[profile]
name = "Acme Coffee"
about = "Specialty coffee roaster"
tone = "warm"
owner_name = "Dana"

[[campaign]]
name = "Summer Blend"
description = "Seasonal espresso blend"
status = "active"

[[campaign]]
name = "Loyalty Cards"
`,
			wantErr: false,
		},
		{
			name:    "empty file",
			content: "\n",
			wantErr: false,
		},
		{
			name: "campaign without name",
			content: `
[[campaign]]
description = "No name here"
`,
			wantErr: true,
		},
		{
			name: "duplicate campaign names",
			content: `
[[campaign]]
name = "Summer Blend"

[[campaign]]
name = "Summer Blend"
`,
			wantErr: true,
		},
		{
			name: "invalid campaign status",
			content: `
[[campaign]]
name = "Summer Blend"
status = "running"
`,
			wantErr: true,
		},
		{
			name: "profile seed without name",
			content: `
[profile]
about = "Specialty coffee roaster"
`,
			wantErr: true,
		},
		{
			name:    "broken TOML",
			content: "[assistant\ntone = ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			gt.NoError(t, os.WriteFile(path, []byte(tt.content), 0600)).Required()

			cfg, err := config.LoadAppConfiguration(path)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, cfg).NotNil()
		})
	}
}

func TestLoadAppConfigurationValues(t *testing.T) {
	content := `
[assistant]
tone = "casual"

[[campaign]]
name = "Summer Blend"
description = "Seasonal espresso blend"
status = "active"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()

	cfg, err := config.LoadAppConfiguration(path)
	gt.NoError(t, err).Required()

	gt.Value(t, cfg.Assistant.Tone).Equal("casual")
	gt.B(t, cfg.Profile.IsEmpty()).True()
	gt.Array(t, cfg.Campaigns).Length(1).Required()
	gt.Value(t, cfg.Campaigns[0].Name).Equal("Summer Blend")
	gt.Value(t, cfg.Campaigns[0].Status).Equal("active")
}

func TestLoadAppConfigurationMissingFile(t *testing.T) {
	_, err := config.LoadAppConfiguration(filepath.Join(t.TempDir(), "missing.toml"))
	gt.Error(t, err)
}
