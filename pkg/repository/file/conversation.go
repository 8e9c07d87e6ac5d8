package file

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type conversationState struct {
	Conversations []*model.Conversation                      `json:"conversations"`
	Messages      map[types.ConversationID][]*model.Message `json:"messages"`
}

type conversationRepository struct {
	mu    sync.RWMutex
	path  string
	state conversationState
}

func newConversationRepository(ctx context.Context, path string) *conversationRepository {
	r := &conversationRepository{path: path}
	loadStore(ctx, path, &r.state)
	if r.state.Messages == nil {
		r.state.Messages = make(map[types.ConversationID][]*model.Message)
	}
	return r
}

func (r *conversationRepository) indexOf(id types.ConversationID) int {
	for i, c := range r.state.Conversations {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r *conversationRepository) Put(ctx context.Context, conv *model.Conversation) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conv.ID == "" {
		return nil, goerr.New("conversation ID is required")
	}

	saved := conv.Clone()
	saved.UpdatedAt = time.Now().UTC()

	if i := r.indexOf(saved.ID); i >= 0 {
		r.state.Conversations[i] = saved
	} else {
		r.state.Conversations = append(r.state.Conversations, saved)
	}
	if err := saveStore(r.path, &r.state); err != nil {
		return nil, err
	}
	return saved.Clone(), nil
}

func (r *conversationRepository) Get(ctx context.Context, id types.ConversationID) (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.state.Conversations[i].Clone(), nil
	}
	return nil, goerr.Wrap(model.ErrNotFound, "conversation not found", goerr.V("conversationID", id))
}

func (r *conversationRepository) List(ctx context.Context) ([]*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Conversation, 0, len(r.state.Conversations))
	for _, c := range r.state.Conversations {
		result = append(result, c.Clone())
	}

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

	i := r.indexOf(id)
	if i < 0 {
		return goerr.Wrap(model.ErrNotFound, "conversation not found", goerr.V("conversationID", id))
	}
	r.state.Conversations[i].AIEnabled = enabled
	return saveStore(r.path, &r.state)
}

func (r *conversationRepository) AppendMessage(ctx context.Context, id types.ConversationID, msg *model.Message) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, goerr.Wrap(model.ErrNotFound, "conversation not found", goerr.V("conversationID", id))
	}

	created := msg.Clone()
	if created.ID == "" {
		created.ID = types.NewMessageID()
	}
	created.CreatedAt = time.Now().UTC()

	r.state.Messages[id] = append(r.state.Messages[id], created)
	r.state.Conversations[i].LastMessage = created.Text
	r.state.Conversations[i].UpdatedAt = created.CreatedAt

	if err := saveStore(r.path, &r.state); err != nil {
		return nil, err
	}
	return created.Clone(), nil
}

func (r *conversationRepository) ListMessages(ctx context.Context, id types.ConversationID) ([]*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.state.Messages[id]
	result := make([]*model.Message, 0, len(msgs))
	for _, m := range msgs {
		result = append(result, m.Clone())
	}
	return result, nil
}
