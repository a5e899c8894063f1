package repository

import (
	"github.com/Shreyas8905/simplyCRM/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

// Create creates a new contact
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindByIDAndOwner finds a contact by ID, scoped to its owner
func (r *GormContactRepository) FindByIDAndOwner(id, ownerID uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.
		Preload("AssignedTo").
		Where("id = ? AND created_by_id = ?", id, ownerID).
		First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListByOwner returns all contacts of an owner, newest first
func (r *GormContactRepository) ListByOwner(ownerID uuid.UUID) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.
		Preload("AssignedTo").
		Where("created_by_id = ?", ownerID).
		Order("created_at DESC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// Update persists changes to a contact. Associations are omitted so a
// preloaded assignee is never written back through the contact.
func (r *GormContactRepository) Update(contact *models.Contact) error {
	return r.db.Omit(clause.Associations).Save(contact).Error
}

// Delete permanently removes a contact, scoped to its owner
func (r *GormContactRepository) Delete(id, ownerID uuid.UUID) error {
	result := r.db.
		Where("id = ? AND created_by_id = ?", id, ownerID).
		Delete(&models.Contact{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByOwner counts all contacts of an owner
func (r *GormContactRepository) CountByOwner(ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).
		Where("created_by_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

// CountByStatus groups an owner's contacts by status and counts each group.
// Statuses with no contacts produce no row.
func (r *GormContactRepository) CountByStatus(ownerID uuid.UUID) ([]StatusCount, error) {
	counts := make([]StatusCount, 0)
	err := r.db.Model(&models.Contact{}).
		Select("status, count(*) as count").
		Where("created_by_id = ?", ownerID).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
