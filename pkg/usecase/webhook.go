package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/service/meta"
	"github.com/flowreach/flowreach/pkg/service/slack"
	"github.com/flowreach/flowreach/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

// outboundTextLimit caps replies sent back to messaging platforms
const outboundTextLimit = 900

// InboundMessage is one message extracted from a platform webhook
type InboundMessage struct {
	Channel    types.ChannelType
	SenderID   string
	SenderName string
	Text       string
}

// WebhookUseCase relays inbound platform messages through the Global
// AI pipeline. Each message is processed independently: a failure is
// logged and swallowed so one bad message never aborts the rest of a
// batch.
type WebhookUseCase struct {
	repo         interfaces.Repository
	assistant    *AssistantUseCase
	metaClient   *meta.Client
	slackService slack.Service
}

func NewWebhookUseCase(repo interfaces.Repository, assistant *AssistantUseCase, metaClient *meta.Client, slackService slack.Service) *WebhookUseCase {
	return &WebhookUseCase{
		repo:         repo,
		assistant:    assistant,
		metaClient:   metaClient,
		slackService: slackService,
	}
}

// HandleInbound processes a batch of inbound messages
func (uc *WebhookUseCase) HandleInbound(ctx context.Context, messages []InboundMessage) {
	for _, msg := range messages {
		if err := uc.handleMessage(ctx, msg); err != nil {
			errutil.Handle(ctx, err, "failed to process inbound message")
		}
	}
}

func (uc *WebhookUseCase) handleMessage(ctx context.Context, msg InboundMessage) error {
	if msg.SenderID == "" || msg.Text == "" {
		return nil
	}

	conv, err := uc.ensureConversation(ctx, msg)
	if err != nil {
		return err
	}

	if _, err := uc.repo.Conversation().AppendMessage(ctx, conv.ID, &model.Message{
		Sender:    types.SenderCustomer,
		Text:      msg.Text,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return goerr.Wrap(err, "failed to log inbound message", goerr.V("conversation_id", conv.ID))
	}

	enabled, err := uc.autoReplyEnabled(ctx, conv)
	if err != nil {
		return err
	}
	if !enabled {
		return nil
	}

	answer, err := uc.assistant.Answer(ctx, AnswerInput{
		Text:           msg.Text,
		UserID:         types.UserID(msg.SenderID),
		ConversationID: conv.ID,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to generate auto reply", goerr.V("conversation_id", conv.ID))
	}

	replyText := truncateOutbound(answer.Reply)
	if err := uc.sendOutbound(ctx, conv, msg.SenderID, replyText); err != nil {
		return goerr.Wrap(err, "failed to send auto reply", goerr.V("conversation_id", conv.ID))
	}

	if _, err := uc.repo.Conversation().AppendMessage(ctx, conv.ID, &model.Message{
		Sender:    types.SenderAI,
		Text:      replyText,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return goerr.Wrap(err, "failed to log auto reply", goerr.V("conversation_id", conv.ID))
	}

	return nil
}

// ensureConversation looks up the conversation for the sender,
// creating it with AI replies enabled on first contact.
func (uc *WebhookUseCase) ensureConversation(ctx context.Context, msg InboundMessage) (*model.Conversation, error) {
	convID := types.NewConversationID(msg.Channel, msg.SenderID)

	conv, err := uc.repo.Conversation().Get(ctx, convID)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, goerr.Wrap(err, "failed to get conversation", goerr.V("conversation_id", convID))
	}

	name := msg.SenderName
	if name == "" {
		name = msg.SenderID
	}

	created, err := uc.repo.Conversation().Put(ctx, &model.Conversation{
		ID:        convID,
		Name:      name,
		Channel:   msg.Channel,
		AIEnabled: true,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create conversation", goerr.V("conversation_id", convID))
	}
	return created, nil
}

// autoReplyEnabled checks both the global flag and the per-conversation
// switch
func (uc *WebhookUseCase) autoReplyEnabled(ctx context.Context, conv *model.Conversation) (bool, error) {
	if !conv.AIEnabled {
		return false, nil
	}

	cfg, err := uc.repo.AIConfig().Get(ctx)
	if err != nil {
		return false, goerr.Wrap(err, "failed to load AI config")
	}
	return cfg.GlobalAIEnabled, nil
}

func (uc *WebhookUseCase) sendOutbound(ctx context.Context, conv *model.Conversation, senderID, text string) error {
	switch conv.Channel {
	case types.ChannelWhatsApp:
		if uc.metaClient == nil {
			return goerr.Wrap(ErrChannelNotConfigured, "whatsapp sending unavailable")
		}
		return uc.metaClient.SendWhatsApp(ctx, senderID, text)
	case types.ChannelMessenger:
		if uc.metaClient == nil {
			return goerr.Wrap(ErrChannelNotConfigured, "messenger sending unavailable")
		}
		return uc.metaClient.SendMessenger(ctx, senderID, text)
	case types.ChannelSlack:
		if uc.slackService == nil {
			return goerr.Wrap(ErrChannelNotConfigured, "slack sending unavailable")
		}
		return uc.slackService.PostMessage(ctx, conv.ID.ExternalID(), text)
	}
	return goerr.New("unknown inbound channel", goerr.V("channel", conv.Channel))
}

func truncateOutbound(s string) string {
	runes := []rune(s)
	if len(runes) <= outboundTextLimit {
		return s
	}
	return string(runes[:outboundTextLimit])
}
