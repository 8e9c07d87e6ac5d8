package model

import (
	"time"

	"github.com/flowreach/flowreach/pkg/domain/types"
)

// SalesRecord is one sale tracked by the business. Amount is in minor
// currency units (cents).
type SalesRecord struct {
	ID        types.SalesID     `json:"id"`
	Customer  string            `json:"customer"`
	Item      string            `json:"item"`
	Amount    int64             `json:"amount"`
	Currency  string            `json:"currency"`
	Status    types.SalesStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Clone returns a deep copy of the record
func (s *SalesRecord) Clone() *SalesRecord {
	if s == nil {
		return nil
	}
	copied := *s
	return &copied
}
