package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactStatus string

const (
	StatusLead        ContactStatus = "lead"
	StatusOpportunity ContactStatus = "opportunity"
	StatusCustomer    ContactStatus = "customer"
	StatusClosed      ContactStatus = "closed"
)

// Valid reports whether the status is one of the known pipeline stages.
func (s ContactStatus) Valid() bool {
	switch s {
	case StatusLead, StatusOpportunity, StatusCustomer, StatusClosed:
		return true
	}
	return false
}

type ContactSource string

const (
	SourceWebsite     ContactSource = "website"
	SourceReferral    ContactSource = "referral"
	SourceSocialMedia ContactSource = "social_media"
	SourceColdCall    ContactSource = "cold_call"
	SourceOther       ContactSource = "other"
)

// Valid reports whether the source is one of the known acquisition channels.
func (s ContactSource) Valid() bool {
	switch s {
	case SourceWebsite, SourceReferral, SourceSocialMedia, SourceColdCall, SourceOther:
		return true
	}
	return false
}

// Contact is owned by exactly one user (CreatedByID) and may be soft-linked
// to another user (AssignedToID) for display. Deletes are permanent.
type Contact struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName    string        `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName     string        `gorm:"type:varchar(255);not null" json:"lastName"`
	Email        string        `gorm:"type:varchar(255);not null" json:"email"`
	Phone        string        `gorm:"type:varchar(50);not null" json:"phone"`
	Company      string        `gorm:"type:varchar(255)" json:"company"`
	JobTitle     string        `gorm:"type:varchar(255)" json:"jobTitle"`
	Status       ContactStatus `gorm:"type:varchar(20);not null;default:'lead'" json:"status"`
	Source       ContactSource `gorm:"type:varchar(20);not null;default:'other'" json:"source"`
	Notes        string        `gorm:"type:text" json:"notes"`
	AssignedToID *uuid.UUID    `gorm:"type:uuid" json:"assignedToId"`
	CreatedByID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"createdBy"`
	CreatedAt    time.Time     `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`

	// Relations
	AssignedTo *User `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`
	CreatedBy  User  `gorm:"foreignKey:CreatedByID" json:"-"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = StatusLead
	}
	if c.Source == "" {
		c.Source = SourceOther
	}
	return nil
}
