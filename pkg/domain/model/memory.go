package model

import (
	"time"

	"github.com/flowreach/flowreach/pkg/domain/types"
)

// MemoryRecord is one note in the per-user interaction log. The log is
// append-only and unbounded; records are never evicted.
type MemoryRecord struct {
	ID        types.MemoryID `json:"id"`
	Title     string         `json:"title"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Clone returns a deep copy of the record
func (m *MemoryRecord) Clone() *MemoryRecord {
	if m == nil {
		return nil
	}
	copied := *m
	if m.Data != nil {
		copied.Data = make(map[string]any, len(m.Data))
		for k, v := range m.Data {
			copied.Data[k] = v
		}
	}
	return &copied
}
