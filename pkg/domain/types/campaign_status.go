package types

import "fmt"

// CampaignStatus represents the lifecycle status of a campaign
type CampaignStatus string

const (
	CampaignStatusDraft  CampaignStatus = "draft"
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusPaused CampaignStatus = "paused"
)

// AllCampaignStatuses returns all valid campaign statuses
func AllCampaignStatuses() []CampaignStatus {
	return []CampaignStatus{
		CampaignStatusDraft,
		CampaignStatusActive,
		CampaignStatusPaused,
	}
}

// IsValid checks if the campaign status is valid
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusDraft,
		CampaignStatusActive,
		CampaignStatusPaused:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as CampaignStatusDraft
func (s CampaignStatus) Normalize() CampaignStatus {
	if s == "" {
		return CampaignStatusDraft
	}
	return s
}

// String returns the string representation of the campaign status
func (s CampaignStatus) String() string {
	return string(s)
}

// ParseCampaignStatus parses a string into a CampaignStatus
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	status := CampaignStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid campaign status: %s", s)
	}
	return status, nil
}
