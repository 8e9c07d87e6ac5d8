package usecase_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/repository/memory"
	"github.com/flowreach/flowreach/pkg/service/meta"
	"github.com/flowreach/flowreach/pkg/service/reply"
	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func enableGlobalAI(t *testing.T, repo interfaces.Repository) {
	t.Helper()
	ctx := t.Context()
	cfg := gt.R1(repo.AIConfig().Get(ctx)).NoError(t)
	cfg.GlobalAIEnabled = true
	gt.NoError(t, repo.AIConfig().Put(ctx, cfg))
}

func newTestMetaClient(t *testing.T, sendCount *atomic.Int64) *meta.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendCount.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	return meta.New(
		meta.WithBaseURL(server.URL),
		meta.WithWhatsApp("token", "15551230000"),
		meta.WithMessenger("page-token"),
	)
}

func TestWebhookInboundAutoReply(t *testing.T) {
	ctx := t.Context()
	repo := memory.New()
	enableGlobalAI(t, repo)

	var sendCount atomic.Int64
	uc := usecase.New(repo,
		usecase.WithReplyService(&stubReplyService{output: &reply.Output{Reply: "auto reply"}}),
		usecase.WithMetaClient(newTestMetaClient(t, &sendCount)),
	)

	uc.Webhook.HandleInbound(ctx, []usecase.InboundMessage{
		{Channel: types.ChannelWhatsApp, SenderID: "15559998888", SenderName: "Alice", Text: "hello"},
	})

	gt.Value(t, sendCount.Load()).Equal(int64(1))

	conv := gt.R1(repo.Conversation().Get(ctx, "wa_15559998888")).NoError(t)
	gt.Value(t, conv.Name).Equal("Alice")
	gt.Value(t, conv.Channel).Equal(types.ChannelWhatsApp)
	gt.B(t, conv.AIEnabled).True()

	messages := gt.R1(repo.Conversation().ListMessages(ctx, conv.ID)).NoError(t)
	gt.Array(t, messages).Length(2)
	gt.Value(t, messages[0].Sender).Equal(types.SenderCustomer)
	gt.Value(t, messages[0].Text).Equal("hello")
	gt.Value(t, messages[1].Sender).Equal(types.SenderAI)
	gt.Value(t, messages[1].Text).Equal("auto reply")
}

func TestWebhookInboundGlobalAIDisabled(t *testing.T) {
	ctx := t.Context()
	repo := memory.New()

	var sendCount atomic.Int64
	uc := usecase.New(repo,
		usecase.WithReplyService(&stubReplyService{}),
		usecase.WithMetaClient(newTestMetaClient(t, &sendCount)),
	)

	uc.Webhook.HandleInbound(ctx, []usecase.InboundMessage{
		{Channel: types.ChannelWhatsApp, SenderID: "15559998888", Text: "hello"},
	})

	gt.Value(t, sendCount.Load()).Equal(int64(0))

	// inbound message still logged
	messages := gt.R1(repo.Conversation().ListMessages(ctx, "wa_15559998888")).NoError(t)
	gt.Array(t, messages).Length(1)
	gt.Value(t, messages[0].Sender).Equal(types.SenderCustomer)
}

func TestWebhookInboundConversationAIDisabled(t *testing.T) {
	ctx := t.Context()
	repo := memory.New()
	enableGlobalAI(t, repo)

	var sendCount atomic.Int64
	uc := usecase.New(repo,
		usecase.WithReplyService(&stubReplyService{}),
		usecase.WithMetaClient(newTestMetaClient(t, &sendCount)),
	)

	// first contact creates the conversation
	uc.Webhook.HandleInbound(ctx, []usecase.InboundMessage{
		{Channel: types.ChannelWhatsApp, SenderID: "15559998888", Text: "hello"},
	})
	gt.Value(t, sendCount.Load()).Equal(int64(1))

	gt.NoError(t, repo.Conversation().SetAIEnabled(ctx, "wa_15559998888", false))

	uc.Webhook.HandleInbound(ctx, []usecase.InboundMessage{
		{Channel: types.ChannelWhatsApp, SenderID: "15559998888", Text: "anyone there?"},
	})
	gt.Value(t, sendCount.Load()).Equal(int64(1))
}

func TestWebhookInboundBatchSurvivesFailure(t *testing.T) {
	ctx := t.Context()
	repo := memory.New()
	enableGlobalAI(t, repo)

	var sendCount atomic.Int64
	stub := &stubReplyService{output: &reply.Output{Reply: "ok"}}
	uc := usecase.New(repo,
		usecase.WithReplyService(stub),
		usecase.WithMetaClient(newTestMetaClient(t, &sendCount)),
	)

	// second message fails at the completion stage
	uc.Webhook.HandleInbound(ctx, []usecase.InboundMessage{
		{Channel: types.ChannelWhatsApp, SenderID: "1111", Text: "first"},
	})
	stub.err = goerr.New("completion failed")
	uc.Webhook.HandleInbound(ctx, []usecase.InboundMessage{
		{Channel: types.ChannelWhatsApp, SenderID: "2222", Text: "second"},
		{Channel: types.ChannelWhatsApp, SenderID: "3333", Text: "third"},
	})
	stub.err = nil
	uc.Webhook.HandleInbound(ctx, []usecase.InboundMessage{
		{Channel: types.ChannelWhatsApp, SenderID: "4444", Text: "fourth"},
	})

	// all four conversations exist even though two completions failed
	conversations := gt.R1(repo.Conversation().List(ctx)).NoError(t)
	gt.Array(t, conversations).Length(4)
	gt.Value(t, sendCount.Load()).Equal(int64(2))
}

func TestWebhookInboundSkipsEmptyMessages(t *testing.T) {
	ctx := t.Context()
	repo := memory.New()
	enableGlobalAI(t, repo)

	uc := usecase.New(repo, usecase.WithReplyService(&stubReplyService{}))

	uc.Webhook.HandleInbound(ctx, []usecase.InboundMessage{
		{Channel: types.ChannelWhatsApp, SenderID: "", Text: "no sender"},
		{Channel: types.ChannelWhatsApp, SenderID: "1111", Text: ""},
	})

	conversations := gt.R1(repo.Conversation().List(ctx)).NoError(t)
	gt.Array(t, conversations).Length(0)
}

func TestWebhookInboundTruncatesLongReply(t *testing.T) {
	ctx := t.Context()
	repo := memory.New()
	enableGlobalAI(t, repo)

	var sendCount atomic.Int64
	uc := usecase.New(repo,
		usecase.WithReplyService(&stubReplyService{output: &reply.Output{
			Reply: strings.Repeat("a", 2000),
		}}),
		usecase.WithMetaClient(newTestMetaClient(t, &sendCount)),
	)

	uc.Webhook.HandleInbound(ctx, []usecase.InboundMessage{
		{Channel: types.ChannelWhatsApp, SenderID: "1111", Text: "hi"},
	})

	messages := gt.R1(repo.Conversation().ListMessages(ctx, "wa_1111")).NoError(t)
	gt.Array(t, messages).Length(2)
	gt.Value(t, len(messages[1].Text)).Equal(900)
}
