// Package memory provides an in-memory repository implementation,
// used for development and tests.
package memory

import (
	"github.com/flowreach/flowreach/pkg/domain/interfaces"
)

// Repository is an in-memory implementation of interfaces.Repository
type Repository struct {
	profile      *profileRepository
	campaign     *campaignRepository
	motherAI     *motherAIRepository
	memory       *memoryRepository
	conversation *conversationRepository
	sales        *salesRepository
	aiConfig     *aiConfigRepository
}

var _ interfaces.Repository = (*Repository)(nil)

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		profile:      newProfileRepository(),
		campaign:     newCampaignRepository(),
		motherAI:     newMotherAIRepository(),
		memory:       newMemoryRepository(),
		conversation: newConversationRepository(),
		sales:        newSalesRepository(),
		aiConfig:     newAIConfigRepository(),
	}
}

func (r *Repository) Profile() interfaces.ProfileRepository {
	return r.profile
}

func (r *Repository) Campaign() interfaces.CampaignRepository {
	return r.campaign
}

func (r *Repository) MotherAI() interfaces.MotherAIRepository {
	return r.motherAI
}

func (r *Repository) Memory() interfaces.MemoryRepository {
	return r.memory
}

func (r *Repository) Conversation() interfaces.ConversationRepository {
	return r.conversation
}

func (r *Repository) Sales() interfaces.SalesRepository {
	return r.sales
}

func (r *Repository) AIConfig() interfaces.AIConfigRepository {
	return r.aiConfig
}

// Close is a no-op for the in-memory repository
func (r *Repository) Close() error {
	return nil
}
