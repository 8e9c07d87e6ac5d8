package model

import (
	"time"

	"github.com/flowreach/flowreach/pkg/domain/types"
)

// Conversation is one thread with an end user on a connected channel.
// AIEnabled gates auto-replies for this thread in addition to the
// global AI flag.
type Conversation struct {
	ID          types.ConversationID `json:"id"`
	Name        string               `json:"name"`
	Channel     types.ChannelType    `json:"channel"`
	LastMessage string               `json:"lastMessage"`
	AIEnabled   bool                 `json:"aiEnabled"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// Clone returns a deep copy of the conversation
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

// Message is one entry in a conversation log
type Message struct {
	ID        types.MessageID `json:"id"`
	Sender    types.Sender    `json:"sender"`
	Text      string          `json:"text"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Clone returns a deep copy of the message
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	copied := *m
	return &copied
}
