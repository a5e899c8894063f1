package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityCall    ActivityType = "call"
	ActivityEmail   ActivityType = "email"
	ActivityMeeting ActivityType = "meeting"
	ActivityNote    ActivityType = "note"
	ActivityTask    ActivityType = "task"
)

// Activity records a dated interaction with a contact. The table is migrated
// but no endpoint serves it yet.
type Activity struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ContactID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"contactId"`
	Type        ActivityType `gorm:"type:varchar(20);not null" json:"type"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	DueDate     *time.Time   `json:"dueDate"`
	Completed   bool         `gorm:"not null;default:false" json:"completed"`
	CreatedByID uuid.UUID    `gorm:"type:uuid;not null" json:"createdBy"`
	CreatedAt   time.Time    `json:"createdAt"`

	// Relations
	Contact   Contact `gorm:"foreignKey:ContactID" json:"-"`
	CreatedBy User    `gorm:"foreignKey:CreatedByID" json:"-"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
