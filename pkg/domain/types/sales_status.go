package types

import "fmt"

// SalesStatus represents the payment status of a sales record
type SalesStatus string

const (
	SalesStatusPending   SalesStatus = "pending"
	SalesStatusPaid      SalesStatus = "paid"
	SalesStatusCancelled SalesStatus = "cancelled"
)

// IsValid checks if the sales status is valid
func (s SalesStatus) IsValid() bool {
	switch s {
	case SalesStatusPending,
		SalesStatusPaid,
		SalesStatusCancelled:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as SalesStatusPending
func (s SalesStatus) Normalize() SalesStatus {
	if s == "" {
		return SalesStatusPending
	}
	return s
}

// String returns the string representation of the sales status
func (s SalesStatus) String() string {
	return string(s)
}

// ParseSalesStatus parses a string into a SalesStatus
func ParseSalesStatus(s string) (SalesStatus, error) {
	status := SalesStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid sales status: %s", s)
	}
	return status, nil
}
