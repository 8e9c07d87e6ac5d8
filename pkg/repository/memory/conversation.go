package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type conversationRepository struct {
	mu            sync.RWMutex
	conversations map[types.ConversationID]*model.Conversation
	messages      map[types.ConversationID][]*model.Message
}

func newConversationRepository() *conversationRepository {
	return &conversationRepository{
		conversations: make(map[types.ConversationID]*model.Conversation),
		messages:      make(map[types.ConversationID][]*model.Message),
	}
}

func (r *conversationRepository) Put(ctx context.Context, conv *model.Conversation) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conv.ID == "" {
		return nil, goerr.New("conversation ID is required")
	}

	saved := conv.Clone()
	saved.UpdatedAt = time.Now().UTC()
	r.conversations[saved.ID] = saved
	return saved.Clone(), nil
}

func (r *conversationRepository) Get(ctx context.Context, id types.ConversationID) (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, exists := r.conversations[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "conversation not found", goerr.V("conversationID", id))
	}
	return conv.Clone(), nil
}

func (r *conversationRepository) List(ctx context.Context) ([]*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Conversation, 0, len(r.conversations))
	for _, c := range r.conversations {
		result = append(result, c.Clone())
	}

	// Most recently active first
	sort.Slice(result, func(i, j int) bool {
		if result[i].UpdatedAt.Equal(result[j].UpdatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return result, nil
}

func (r *conversationRepository) SetAIEnabled(ctx context.Context, id types.ConversationID, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, exists := r.conversations[id]
	if !exists {
		return goerr.Wrap(model.ErrNotFound, "conversation not found", goerr.V("conversationID", id))
	}
	conv.AIEnabled = enabled
	return nil
}

func (r *conversationRepository) AppendMessage(ctx context.Context, id types.ConversationID, msg *model.Message) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.conversations[id]; !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "conversation not found", goerr.V("conversationID", id))
	}

	created := msg.Clone()
	if created.ID == "" {
		created.ID = types.NewMessageID()
	}
	created.CreatedAt = time.Now().UTC()

	r.messages[id] = append(r.messages[id], created)

	conv := r.conversations[id]
	conv.LastMessage = created.Text
	conv.UpdatedAt = created.CreatedAt

	return created.Clone(), nil
}

func (r *conversationRepository) ListMessages(ctx context.Context, id types.ConversationID) ([]*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.messages[id]
	result := make([]*model.Message, 0, len(msgs))
	for _, m := range msgs {
		result = append(result, m.Clone())
	}
	return result, nil
}
