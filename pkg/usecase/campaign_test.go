package usecase_test

import (
	"errors"
	"testing"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/repository/memory"
	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestCampaignLifecycle(t *testing.T) {
	ctx := t.Context()
	uc := usecase.New(memory.New())

	created := gt.R1(uc.Campaign.Create(ctx, "Pro Plan", "monthly pricing")).NoError(t)
	gt.Value(t, created.Status).Equal(types.CampaignStatusDraft)

	started := gt.R1(uc.Campaign.Start(ctx, created.ID)).NoError(t)
	gt.Value(t, started.Status).Equal(types.CampaignStatusActive)

	stopped := gt.R1(uc.Campaign.Stop(ctx, created.ID)).NoError(t)
	gt.Value(t, stopped.Status).Equal(types.CampaignStatusPaused)

	gt.NoError(t, uc.Campaign.Delete(ctx, created.ID))
	_, err := uc.Campaign.Get(ctx, created.ID)
	gt.B(t, errors.Is(err, model.ErrNotFound)).True()
}

func TestCampaignCreateRequiresName(t *testing.T) {
	uc := usecase.New(memory.New())
	_, err := uc.Campaign.Create(t.Context(), "", "description")
	gt.B(t, errors.Is(err, usecase.ErrEmptyName)).True()
}

func TestCampaignMutationRefreshesKB(t *testing.T) {
	ctx := t.Context()
	repo := memory.New()
	stub := &stubReplyService{}
	uc := usecase.New(repo, usecase.WithReplyService(stub))

	created := gt.R1(uc.Campaign.Create(ctx, "Pro Plan", "monthly pricing")).NoError(t)

	gt.R1(uc.Assistant.Answer(ctx, usecase.AnswerInput{Text: "pricing", UserID: "u1"})).NoError(t)
	gt.Array(t, stub.lastInput.KB.Items).Length(1)

	gt.NoError(t, uc.Campaign.Delete(ctx, created.ID))

	gt.R1(uc.Assistant.Answer(ctx, usecase.AnswerInput{Text: "pricing", UserID: "u1"})).NoError(t)
	gt.Array(t, stub.lastInput.KB.Items).Length(0)
}

func TestMotherAILifecycle(t *testing.T) {
	ctx := t.Context()
	repo := memory.New()
	stub := &stubReplyService{}
	uc := usecase.New(repo, usecase.WithReplyService(stub))

	campaign := gt.R1(uc.Campaign.Create(ctx, "Pro Plan", "monthly pricing")).NoError(t)

	config := gt.R1(uc.MotherAI.Create(ctx, "router", "route by keywords", []usecase.MotherAIElementInput{
		{CampaignID: campaign.ID, Label: "pricing", Keywords: []string{"price", "cost"}},
	})).NoError(t)

	gt.NoError(t, uc.MotherAI.Activate(ctx, config.ID))
	activeID := gt.R1(uc.MotherAI.ActiveID(ctx)).NoError(t)
	gt.Value(t, activeID).Equal(config.ID)

	// activation enriched the KB item with the element keywords
	gt.R1(uc.Assistant.Answer(ctx, usecase.AnswerInput{Text: "cost", UserID: "u1"})).NoError(t)
	gt.Array(t, stub.lastInput.KB.Items).Length(1)
	gt.Array(t, stub.lastInput.KB.Items[0].Keywords).Length(2)

	// delete clears the active pointer
	gt.NoError(t, uc.MotherAI.Delete(ctx, config.ID))
	activeID = gt.R1(uc.MotherAI.ActiveID(ctx)).NoError(t)
	gt.Value(t, activeID).Equal(types.MotherAIID(""))
}

func TestProfileUpdateRefreshesKB(t *testing.T) {
	ctx := t.Context()
	stub := &stubReplyService{}
	uc := usecase.New(memory.New(), usecase.WithReplyService(stub))

	gt.R1(uc.Profile.Update(ctx, usecase.ProfileInput{
		Name: "Acme",
		Tone: "Friendly",
	})).NoError(t)

	gt.R1(uc.Assistant.Answer(ctx, usecase.AnswerInput{Text: "hi", UserID: "u1"})).NoError(t)
	gt.Value(t, stub.lastInput.KB.Profile.Name).Equal("Acme")
	gt.Value(t, stub.lastInput.KB.Profile.Tone).Equal("Friendly")
}

func TestProfileUpdateRequiresName(t *testing.T) {
	uc := usecase.New(memory.New())
	_, err := uc.Profile.Update(t.Context(), usecase.ProfileInput{About: "no name"})
	gt.B(t, errors.Is(err, usecase.ErrEmptyName)).True()
}
