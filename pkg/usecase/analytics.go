package usecase

import (
	"context"
	"sync"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/domain/model"
	"github.com/flowreach/flowreach/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// analyticsConcurrency bounds parallel message log reads
const analyticsConcurrency = 8

// AnalyticsUseCase computes messaging totals from the conversation
// store
type AnalyticsUseCase struct {
	repo interfaces.Repository
}

func NewAnalyticsUseCase(repo interfaces.Repository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// AnalyticsSummary is the GET /api/analytics payload
type AnalyticsSummary struct {
	ConversationCount int            `json:"conversationCount"`
	MessageCount      int            `json:"messageCount"`
	CustomerMessages  int            `json:"customerMessages"`
	AgentMessages     int            `json:"agentMessages"`
	AIMessages        int            `json:"aiMessages"`
	ByChannel         map[string]int `json:"byChannel"`
	ResponseRate      float64        `json:"responseRate"`
}

// Summary walks every conversation's message log. Response rate is the
// share of customer messages that received a later agent or AI reply
// in the same conversation.
func (uc *AnalyticsUseCase) Summary(ctx context.Context) (*AnalyticsSummary, error) {
	conversations, err := uc.repo.Conversation().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list conversations")
	}

	summary := &AnalyticsSummary{
		ConversationCount: len(conversations),
		ByChannel:         make(map[string]int),
	}

	var mu sync.Mutex
	var answered, customerTotal int

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(analyticsConcurrency)

	for _, conv := range conversations {
		summary.ByChannel[conv.Channel.String()]++

		eg.Go(func() error {
			messages, err := uc.repo.Conversation().ListMessages(egCtx, conv.ID)
			if err != nil {
				return goerr.Wrap(err, "failed to list messages", goerr.V("conversation_id", conv.ID))
			}

			mu.Lock()
			defer mu.Unlock()
			for i, msg := range messages {
				summary.MessageCount++
				switch msg.Sender {
				case types.SenderCustomer:
					summary.CustomerMessages++
					customerTotal++
					if repliedAfter(messages, i) {
						answered++
					}
				case types.SenderAgent:
					summary.AgentMessages++
				case types.SenderAI:
					summary.AIMessages++
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if customerTotal > 0 {
		summary.ResponseRate = float64(answered) / float64(customerTotal)
	}

	return summary, nil
}

// repliedAfter reports whether any agent or AI message follows index i
func repliedAfter(messages []*model.Message, i int) bool {
	for _, msg := range messages[i+1:] {
		if msg.Sender == types.SenderAgent || msg.Sender == types.SenderAI {
			return true
		}
	}
	return false
}
