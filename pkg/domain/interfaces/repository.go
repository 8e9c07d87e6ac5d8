package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Profile() ProfileRepository
	Campaign() CampaignRepository
	MotherAI() MotherAIRepository
	Memory() MemoryRepository
	Conversation() ConversationRepository
	Sales() SalesRepository
	AIConfig() AIConfigRepository

	Close() error
}
