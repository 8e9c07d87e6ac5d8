package usecase

import (
	"context"

	"github.com/flowreach/flowreach/pkg/domain/interfaces"
	"github.com/flowreach/flowreach/pkg/service/kb"
	"github.com/flowreach/flowreach/pkg/service/meta"
	"github.com/flowreach/flowreach/pkg/service/reply"
	"github.com/flowreach/flowreach/pkg/service/slack"
)

type UseCases struct {
	repo         interfaces.Repository
	kbCache      *kb.Cache
	replyService reply.Service
	metaClient   *meta.Client
	slackService slack.Service

	Assistant    *AssistantUseCase
	Profile      *ProfileUseCase
	Campaign     *CampaignUseCase
	MotherAI     *MotherAIUseCase
	Conversation *ConversationUseCase
	Sales        *SalesUseCase
	AIConfig     *AIConfigUseCase
	Analytics    *AnalyticsUseCase
	Webhook      *WebhookUseCase
}

type Option func(*UseCases)

func WithReplyService(svc reply.Service) Option {
	return func(uc *UseCases) {
		uc.replyService = svc
	}
}

func WithMetaClient(client *meta.Client) Option {
	return func(uc *UseCases) {
		uc.metaClient = client
	}
}

func WithSlackService(svc slack.Service) Option {
	return func(uc *UseCases) {
		uc.slackService = svc
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:    repo,
		kbCache: kb.NewCache(repo),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Assistant = NewAssistantUseCase(repo, uc.kbCache, uc.replyService)
	uc.Profile = NewProfileUseCase(repo, uc.kbCache)
	uc.Campaign = NewCampaignUseCase(repo, uc.kbCache)
	uc.MotherAI = NewMotherAIUseCase(repo, uc.kbCache)
	uc.Conversation = NewConversationUseCase(repo, uc.metaClient, uc.slackService)
	uc.Sales = NewSalesUseCase(repo)
	uc.AIConfig = NewAIConfigUseCase(repo)
	uc.Analytics = NewAnalyticsUseCase(repo)
	uc.Webhook = NewWebhookUseCase(repo, uc.Assistant, uc.metaClient, uc.slackService)

	return uc
}

// WarmupKB builds the knowledge base cache from the repository. Called
// once at startup; later mutations refresh the cache themselves.
func (uc *UseCases) WarmupKB(ctx context.Context) {
	uc.kbCache.Refresh(ctx)
}
