package types

import (
	"strings"

	"github.com/google/uuid"
)

// CampaignID identifies a campaign. Knowledge base items reuse the
// campaign ID of the campaign they were built from.
type CampaignID string

// NewCampaignID generates a new UUID v4 CampaignID
func NewCampaignID() CampaignID {
	return CampaignID(uuid.New().String())
}

func (x CampaignID) String() string {
	return string(x)
}

// MotherAIID identifies a Mother-AI routing config
type MotherAIID string

// NewMotherAIID generates a new UUID v4 MotherAIID
func NewMotherAIID() MotherAIID {
	return MotherAIID(uuid.New().String())
}

func (x MotherAIID) String() string {
	return string(x)
}

// ElementID identifies an element inside a Mother-AI config
type ElementID string

// NewElementID generates a new UUID v4 ElementID
func NewElementID() ElementID {
	return ElementID(uuid.New().String())
}

// MemoryID identifies a memory record
type MemoryID string

// NewMemoryID generates a new UUID v4 MemoryID
func NewMemoryID() MemoryID {
	return MemoryID(uuid.New().String())
}

// SalesID identifies a sales record
type SalesID string

// NewSalesID generates a new UUID v4 SalesID
func NewSalesID() SalesID {
	return SalesID(uuid.New().String())
}

func (x SalesID) String() string {
	return string(x)
}

// MessageID identifies a message inside a conversation
type MessageID string

// NewMessageID generates a new UUID v4 MessageID
func NewMessageID() MessageID {
	return MessageID(uuid.New().String())
}

// ConversationID is the channel-scoped conversation key. Webhook
// adapters derive it from the platform sender ID (e.g. "wa_15551234567").
type ConversationID string

func (x ConversationID) String() string {
	return string(x)
}

// NewConversationID builds the channel-scoped conversation key from a
// platform sender or channel ID.
func NewConversationID(channel ChannelType, externalID string) ConversationID {
	switch channel {
	case ChannelWhatsApp:
		return ConversationID("wa_" + externalID)
	case ChannelMessenger:
		return ConversationID("fb_" + externalID)
	case ChannelSlack:
		return ConversationID("slack_" + externalID)
	}
	return ConversationID(externalID)
}

// ExternalID strips the channel prefix, returning the platform sender
// or channel ID the conversation was created from.
func (x ConversationID) ExternalID() string {
	s := string(x)
	for _, prefix := range []string{"wa_", "fb_", "slack_"} {
		if strings.HasPrefix(s, prefix) {
			return s[len(prefix):]
		}
	}
	return s
}

// UserID identifies the end user a memory log belongs to. For webhook
// traffic this is the platform sender ID.
type UserID string

func (x UserID) String() string {
	return string(x)
}
