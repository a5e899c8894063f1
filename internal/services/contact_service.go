package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Shreyas8905/simplyCRM/internal/models"
	"github.com/Shreyas8905/simplyCRM/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound       = errors.New("contact not found")
	ErrContactFieldsRequired = errors.New("first name, last name, email, and phone are required")
	ErrInvalidStatus         = errors.New("invalid status value")
	ErrInvalidSource         = errors.New("invalid source value")
)

// ContactService handles the contact lifecycle. Every operation is scoped by
// the owner resolved from the session; a contact owned by another user is
// reported as not found.
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// CreateContactInput represents input for creating a contact.
type CreateContactInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Company    string
	JobTitle   string
	Status     models.ContactStatus
	Source     models.ContactSource
	Notes      string
	AssignedTo *uuid.UUID
}

// UpdateContactInput holds the mutable contact fields. Only non-nil fields
// are applied; owner, id, and createdAt can never be touched through it.
// ClearAssignedTo removes the assignment (an explicit null in the request),
// while a nil AssignedTo leaves it untouched.
type UpdateContactInput struct {
	FirstName       *string
	LastName        *string
	Email           *string
	Phone           *string
	Company         *string
	JobTitle        *string
	Status          *models.ContactStatus
	Source          *models.ContactSource
	Notes           *string
	AssignedTo      *uuid.UUID
	ClearAssignedTo bool
}

// List returns all contacts of the owner, newest first.
func (s *ContactService) List(ownerID uuid.UUID) ([]models.Contact, error) {
	contacts, err := s.contactRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// Create validates the required fields and stores a new contact owned by
// ownerID. Omitted status and source fall back to their defaults.
func (s *ContactService) Create(ownerID uuid.UUID, input CreateContactInput) (*models.Contact, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if firstName == "" || lastName == "" || email == "" || phone == "" {
		return nil, ErrContactFieldsRequired
	}

	status := input.Status
	if status == "" {
		status = models.StatusLead
	} else if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	source := input.Source
	if source == "" {
		source = models.SourceOther
	} else if !source.Valid() {
		return nil, ErrInvalidSource
	}

	contact := &models.Contact{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        strings.ToLower(email),
		Phone:        phone,
		Company:      strings.TrimSpace(input.Company),
		JobTitle:     strings.TrimSpace(input.JobTitle),
		Status:       status,
		Source:       source,
		Notes:        strings.TrimSpace(input.Notes),
		AssignedToID: input.AssignedTo,
		CreatedByID:  ownerID,
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	// Reload so AssignedTo is resolved for the response.
	return s.Get(ownerID, contact.ID)
}

// Get returns a single owned contact.
func (s *ContactService) Get(ownerID, contactID uuid.UUID) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByIDAndOwner(contactID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	return contact, nil
}

// Update applies the non-nil fields of input to an owned contact.
func (s *ContactService) Update(ownerID, contactID uuid.UUID, input UpdateContactInput) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByIDAndOwner(contactID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}

	if input.FirstName != nil {
		contact.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		contact.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		contact.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Phone != nil {
		contact.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Company != nil {
		contact.Company = strings.TrimSpace(*input.Company)
	}
	if input.JobTitle != nil {
		contact.JobTitle = strings.TrimSpace(*input.JobTitle)
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		contact.Status = *input.Status
	}
	if input.Source != nil {
		if !input.Source.Valid() {
			return nil, ErrInvalidSource
		}
		contact.Source = *input.Source
	}
	if input.Notes != nil {
		contact.Notes = strings.TrimSpace(*input.Notes)
	}
	if input.ClearAssignedTo {
		contact.AssignedToID = nil
		contact.AssignedTo = nil
	} else if input.AssignedTo != nil {
		contact.AssignedToID = input.AssignedTo
		contact.AssignedTo = nil
	}

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return s.Get(ownerID, contactID)
}

// Delete permanently removes an owned contact.
func (s *ContactService) Delete(ownerID, contactID uuid.UUID) error {
	err := s.contactRepo.Delete(contactID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
