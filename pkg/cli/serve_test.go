package cli_test

import (
	"testing"

	"github.com/flowreach/flowreach/pkg/cli"
	"github.com/flowreach/flowreach/pkg/cli/config"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func TestSeedWorkspace(t *testing.T) {
	cfg := &config.AppConfig{
		Profile: config.ProfileSeed{
			Name:  "Acme Coffee",
			About: "Specialty coffee roaster",
			Tone:  "warm",
		},
		Campaigns: []config.CampaignSeed{
			{Name: "Summer Blend", Description: "Seasonal espresso blend", Status: "active"},
			{Name: "Loyalty Cards"},
		},
	}

	repo := memory.New()
	gt.NoError(t, cli.SeedWorkspace(t.Context(), repo, cfg)).Required()

	profile := gt.R1(repo.Profile().Get(t.Context())).NoError(t)
	gt.Value(t, profile.Name).Equal("Acme Coffee")

	campaigns := gt.R1(repo.Campaign().List(t.Context())).NoError(t)
	gt.Array(t, campaigns).Length(2).Required()

	statuses := map[string]types.CampaignStatus{}
	for _, c := range campaigns {
		statuses[c.Name] = c.Status
	}
	gt.Value(t, statuses["Summer Blend"]).Equal(types.CampaignStatusActive)
	gt.Value(t, statuses["Loyalty Cards"]).Equal(types.CampaignStatusDraft)
}

func TestSeedWorkspaceExistingDataWins(t *testing.T) {
	repo := memory.New()
	cfg := &config.AppConfig{
		Campaigns: []config.CampaignSeed{{Name: "Summer Blend"}},
	}

	gt.NoError(t, cli.SeedWorkspace(t.Context(), repo, cfg)).Required()
	gt.NoError(t, cli.SeedWorkspace(t.Context(), repo, cfg)).Required()

	campaigns := gt.R1(repo.Campaign().List(t.Context())).NoError(t)
	gt.Array(t, campaigns).Length(1)
}
