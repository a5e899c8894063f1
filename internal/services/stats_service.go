package services

import (
	"fmt"

	"github.com/Shreyas8905/simplyCRM/internal/repository"
	"github.com/google/uuid"
)

// StatsService computes dashboard aggregates over a user's contacts.
type StatsService struct {
	contactRepo repository.ContactRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(contactRepo repository.ContactRepository) *StatsService {
	return &StatsService{
		contactRepo: contactRepo,
	}
}

// DashboardStats is the aggregate view of one user's contacts.
type DashboardStats struct {
	TotalContacts    int64                    `json:"totalContacts"`
	ContactsByStatus []repository.StatusCount `json:"contactsByStatus"`
}

// Stats returns the total contact count and per-status counts for the owner.
// Read-only; safe to call concurrently.
func (s *StatsService) Stats(ownerID uuid.UUID) (*DashboardStats, error) {
	total, err := s.contactRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	byStatus, err := s.contactRepo.CountByStatus(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts by status: %w", err)
	}

	return &DashboardStats{
		TotalContacts:    total,
		ContactsByStatus: byStatus,
	}, nil
}
