package usecase

import (
	"context"
	"time"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/flowreach/flowreach/pkg/service/kb"
	"github.com/flowreach/flowreach/pkg/service/reply"
	"github.com/flowreach/flowreach/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// memoryWindow is how many recent memory records feed the prompt
	memoryWindow = 5

	// memoryTitleLimit caps the stored memory title length
	memoryTitleLimit = 120
)

// AssistantUseCase answers user questions with the Global AI pipeline
type AssistantUseCase struct {
	repo         interfaces.Repository
	kbCache      *kb.Cache
	replyService reply.Service
}

func NewAssistantUseCase(repo interfaces.Repository, kbCache *kb.Cache, replyService reply.Service) *AssistantUseCase {
	return &AssistantUseCase{
		repo:         repo,
		kbCache:      kbCache,
		replyService: replyService,
	}
}

// AnswerInput is one Global AI answer request
type AnswerInput struct {
	Text           string
	UserID         types.UserID
	ConversationID types.ConversationID
}

// AnswerOutput is the generated reply with its grounding sources
type AnswerOutput struct {
	Reply   string
	Sources []types.CampaignID
}

// Answer runs retrieval, prompt assembly and the completion call, then
// appends the exchange to the user's memory log. Memory failures are
// logged and swallowed so a note-log write never fails the reply.
func (uc *AssistantUseCase) Answer(ctx context.Context, input AnswerInput) (*AnswerOutput, error) {
	if input.Text == "" {
		return nil, goerr.Wrap(ErrEmptyText, "cannot answer")
	}
	if input.UserID == "" {
		return nil, goerr.Wrap(ErrEmptyUserID, "cannot answer")
	}
	if uc.replyService == nil {
		return nil, goerr.Wrap(reply.ErrNotConfigured, "cannot answer")
	}

	cfg, err := uc.repo.AIConfig().Get(ctx)
	if err != nil {
		errutil.Handle(ctx, err, "failed to load AI config, using defaults")
		cfg = model.DefaultAIConfig()
	}

	memories := uc.recentMemories(ctx, input.UserID)

	out, err := uc.replyService.Answer(ctx, reply.Input{
		UserText: input.Text,
		KB:       uc.kbCache.Current(),
		Memories: memories,
	})
	if err != nil {
		return nil, err
	}

	if cfg.MemoryEnabled {
		uc.rememberExchange(ctx, input, out.Reply)
	}

	return &AnswerOutput{
		Reply:   out.Reply,
		Sources: out.Sources,
	}, nil
}

// recentMemories loads the memory window, degrading to none on storage
// failure
func (uc *AssistantUseCase) recentMemories(ctx context.Context, userID types.UserID) []*model.MemoryRecord {
	memories, err := uc.repo.Memory().Recent(ctx, userID, memoryWindow)
	if err != nil {
		errutil.Handle(ctx, err, "failed to load user memory")
		return nil
	}
	return memories
}

// rememberExchange appends the question to the user's memory log.
// Best effort: a lost note must not fail the reply.
func (uc *AssistantUseCase) rememberExchange(ctx context.Context, input AnswerInput, replyText string) {
	record := &model.MemoryRecord{
		ID:        types.NewMemoryID(),
		Title:     truncateTitle(input.Text),
		Type:      "chat",
		CreatedAt: time.Now().UTC(),
		Data: map[string]any{
			"conversationId": input.ConversationID.String(),
			"reply":          replyText,
		},
	}

	if _, err := uc.repo.Memory().Append(ctx, input.UserID, record); err != nil {
		errutil.Handle(ctx, err, "failed to append user memory")
	}
}

func truncateTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= memoryTitleLimit {
		return s
	}
	return string(runes[:memoryTitleLimit])
}
