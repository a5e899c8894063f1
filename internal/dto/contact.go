package dto

import (
	"time"

	"github.com/Shreyas8905/simplyCRM/internal/models"
	"github.com/google/uuid"
)

// AssignedUserDTO is the minimal projection of the user a contact is
// assigned to.
type AssignedUserDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContactDTO represents a contact in API responses
type ContactDTO struct {
	ID         uuid.UUID            `json:"id"`
	FirstName  string               `json:"firstName"`
	LastName   string               `json:"lastName"`
	Email      string               `json:"email"`
	Phone      string               `json:"phone"`
	Company    string               `json:"company,omitempty"`
	JobTitle   string               `json:"jobTitle,omitempty"`
	Status     models.ContactStatus `json:"status"`
	Source     models.ContactSource `json:"source"`
	Notes      string               `json:"notes,omitempty"`
	AssignedTo *AssignedUserDTO     `json:"assignedTo,omitempty"`
	CreatedBy  uuid.UUID            `json:"createdBy"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// ToContactDTO converts a Contact model to ContactDTO
func ToContactDTO(contact models.Contact) ContactDTO {
	dto := ContactDTO{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Company:   contact.Company,
		JobTitle:  contact.JobTitle,
		Status:    contact.Status,
		Source:    contact.Source,
		Notes:     contact.Notes,
		CreatedBy: contact.CreatedByID,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}

	// Include the assignee projection if preloaded. A dangling AssignedToID
	// resolves to nothing and is omitted, matching a null assignment.
	if contact.AssignedTo != nil {
		dto.AssignedTo = &AssignedUserDTO{
			Name:  contact.AssignedTo.Name,
			Email: contact.AssignedTo.Email,
		}
	}

	return dto
}

// ToContactDTOs converts a slice of contacts, preserving order. The result
// is never nil so empty lists serialize as [].
func ToContactDTOs(contacts []models.Contact) []ContactDTO {
	dtos := make([]ContactDTO, len(contacts))
	for i, contact := range contacts {
		dtos[i] = ToContactDTO(contact)
	}
	return dtos
}
