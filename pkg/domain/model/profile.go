package model

import "time"

// BusinessProfile is the singleton business identity captured during
// onboarding. It seeds the knowledge base and the reply persona.
type BusinessProfile struct {
	Name      string    `json:"name"`
	About     string    `json:"about"`
	Tone      string    `json:"tone"`
	OwnerName string    `json:"ownerName,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the profile
func (p *BusinessProfile) Clone() *BusinessProfile {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}
