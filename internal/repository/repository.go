package repository

import (
	"github.com/Shreyas8905/simplyCRM/internal/models"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by email (callers pass lowercased emails)
	FindByEmail(email string) (*models.User, error)
}

// StatusCount is one group of the per-status contact aggregation.
type StatusCount struct {
	Status models.ContactStatus `json:"status"`
	Count  int64                `json:"count"`
}

// ContactRepository defines the interface for contact data access. Every
// method that touches an existing record is scoped by the owning user, so a
// contact owned by someone else behaves exactly like a missing one.
type ContactRepository interface {
	// Create creates a new contact
	Create(contact *models.Contact) error

	// FindByIDAndOwner finds a contact by ID, scoped to its owner
	FindByIDAndOwner(id, ownerID uuid.UUID) (*models.Contact, error)

	// ListByOwner returns all contacts of an owner, newest first
	ListByOwner(ownerID uuid.UUID) ([]models.Contact, error)

	// Update persists changes to a contact
	Update(contact *models.Contact) error

	// Delete permanently removes a contact, scoped to its owner
	Delete(id, ownerID uuid.UUID) error

	// CountByOwner counts all contacts of an owner
	CountByOwner(ownerID uuid.UUID) (int64, error)

	// CountByStatus groups an owner's contacts by status and counts each group
	CountByStatus(ownerID uuid.UUID) ([]StatusCount, error)
}
