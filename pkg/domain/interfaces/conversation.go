package interfaces

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
)

// ConversationRepository stores conversations and their message logs.
// Put upserts by conversation ID.
type ConversationRepository interface {
	Put(ctx context.Context, conv *model.Conversation) (*model.Conversation, error)
	Get(ctx context.Context, id types.ConversationID) (*model.Conversation, error)
	List(ctx context.Context) ([]*model.Conversation, error)
	SetAIEnabled(ctx context.Context, id types.ConversationID, enabled bool) error

	AppendMessage(ctx context.Context, id types.ConversationID, msg *model.Message) (*model.Message, error)
	ListMessages(ctx context.Context, id types.ConversationID) ([]*model.Message, error)
}
