package usecase_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/repository/memory"
	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestConversationSendManual(t *testing.T) {
	ctx := t.Context()
	repo := memory.New()

	var sendCount atomic.Int64
	uc := usecase.New(repo, usecase.WithMetaClient(newTestMetaClient(t, &sendCount)))

	gt.R1(repo.Conversation().Put(ctx, &model.Conversation{
		ID: "wa_1111", Name: "Alice", Channel: types.ChannelWhatsApp, AIEnabled: true, UpdatedAt: time.Now().UTC(),
	})).NoError(t)

	msg := gt.R1(uc.Conversation.SendManual(ctx, "wa_1111", "thanks for reaching out")).NoError(t)
	gt.Value(t, msg.Sender).Equal(types.SenderAgent)
	gt.Value(t, sendCount.Load()).Equal(int64(1))

	messages := gt.R1(uc.Conversation.Messages(ctx, "wa_1111")).NoError(t)
	gt.Array(t, messages).Length(1)
	gt.Value(t, messages[0].Text).Equal("thanks for reaching out")
}

func TestConversationSendManualUnknownConversation(t *testing.T) {
	uc := usecase.New(memory.New())
	_, err := uc.Conversation.SendManual(t.Context(), "wa_missing", "hello")
	gt.B(t, errors.Is(err, model.ErrNotFound)).True()
}

func TestConversationSendManualNoChannel(t *testing.T) {
	ctx := t.Context()
	repo := memory.New()
	uc := usecase.New(repo) // no meta client

	gt.R1(repo.Conversation().Put(ctx, &model.Conversation{
		ID: "wa_1111", Name: "Alice", Channel: types.ChannelWhatsApp, UpdatedAt: time.Now().UTC(),
	})).NoError(t)

	_, err := uc.Conversation.SendManual(ctx, "wa_1111", "hello")
	gt.B(t, errors.Is(err, usecase.ErrChannelNotConfigured)).True()

	// nothing logged when the platform send failed
	messages := gt.R1(uc.Conversation.Messages(ctx, "wa_1111")).NoError(t)
	gt.Array(t, messages).Length(0)
}

func TestConversationSetAIMode(t *testing.T) {
	ctx := t.Context()
	repo := memory.New()
	uc := usecase.New(repo)

	gt.R1(repo.Conversation().Put(ctx, &model.Conversation{
		ID: "wa_1111", Name: "Alice", Channel: types.ChannelWhatsApp, AIEnabled: true, UpdatedAt: time.Now().UTC(),
	})).NoError(t)

	gt.NoError(t, uc.Conversation.SetAIMode(ctx, "wa_1111", false))
	conv := gt.R1(repo.Conversation().Get(ctx, "wa_1111")).NoError(t)
	gt.B(t, conv.AIEnabled).False()
}
