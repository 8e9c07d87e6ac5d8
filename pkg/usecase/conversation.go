package usecase

import (
	"context"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/service/meta"
	"github.com/flowreach/flowreach/pkg/service/slack"
	"github.com/m-mizutani/goerr/v2"
)

// ConversationUseCase manages conversation logs and manual agent
// sends. A manual send is relayed to the platform the conversation
// belongs to.
type ConversationUseCase struct {
	repo         interfaces.Repository
	metaClient   *meta.Client
	slackService slack.Service
}

func NewConversationUseCase(repo interfaces.Repository, metaClient *meta.Client, slackService slack.Service) *ConversationUseCase {
	return &ConversationUseCase{
		repo:         repo,
		metaClient:   metaClient,
		slackService: slackService,
	}
}

func (uc *ConversationUseCase) List(ctx context.Context) ([]*model.Conversation, error) {
	conversations, err := uc.repo.Conversation().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list conversations")
	}
	return conversations, nil
}

func (uc *ConversationUseCase) Messages(ctx context.Context, id types.ConversationID) ([]*model.Message, error) {
	conv, err := uc.repo.Conversation().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get conversation", goerr.V("conversation_id", id))
	}

	messages, err := uc.repo.Conversation().ListMessages(ctx, conv.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list messages", goerr.V("conversation_id", id))
	}
	return messages, nil
}

// SendManual appends an agent message to the conversation and relays
// it to the conversation's platform.
func (uc *ConversationUseCase) SendManual(ctx context.Context, id types.ConversationID, text string) (*model.Message, error) {
	if text == "" {
		return nil, goerr.Wrap(ErrEmptyText, "message text is required")
	}

	conv, err := uc.repo.Conversation().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get conversation", goerr.V("conversation_id", id))
	}

	if err := uc.sendOutbound(ctx, conv, text); err != nil {
		return nil, err
	}

	msg, err := uc.repo.Conversation().AppendMessage(ctx, conv.ID, &model.Message{
		Sender:    types.SenderAgent,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append message", goerr.V("conversation_id", id))
	}

	return msg, nil
}

// SetAIMode toggles per-conversation auto-replies
func (uc *ConversationUseCase) SetAIMode(ctx context.Context, id types.ConversationID, enabled bool) error {
	if err := uc.repo.Conversation().SetAIEnabled(ctx, id, enabled); err != nil {
		return goerr.Wrap(err, "failed to set conversation AI mode", goerr.V("conversation_id", id))
	}
	return nil
}

func (uc *ConversationUseCase) sendOutbound(ctx context.Context, conv *model.Conversation, text string) error {
	recipient := conv.ID.ExternalID()

	switch conv.Channel {
	case types.ChannelWhatsApp:
		if uc.metaClient == nil {
			return goerr.Wrap(ErrChannelNotConfigured, "whatsapp sending unavailable", goerr.V("conversation_id", conv.ID))
		}
		return uc.metaClient.SendWhatsApp(ctx, recipient, text)
	case types.ChannelMessenger:
		if uc.metaClient == nil {
			return goerr.Wrap(ErrChannelNotConfigured, "messenger sending unavailable", goerr.V("conversation_id", conv.ID))
		}
		return uc.metaClient.SendMessenger(ctx, recipient, text)
	case types.ChannelSlack:
		if uc.slackService == nil {
			return goerr.Wrap(ErrChannelNotConfigured, "slack sending unavailable", goerr.V("conversation_id", conv.ID))
		}
		return uc.slackService.PostMessage(ctx, recipient, text)
	}

	return goerr.New("unknown conversation channel", goerr.V("conversation_id", conv.ID), goerr.V("channel", conv.Channel))
}
