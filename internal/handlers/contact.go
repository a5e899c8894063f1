package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Shreyas8905/simplyCRM/internal/dto"
	apierrors "github.com/Shreyas8905/simplyCRM/internal/errors"
	"github.com/Shreyas8905/simplyCRM/internal/middleware"
	"github.com/Shreyas8905/simplyCRM/internal/models"
	"github.com/Shreyas8905/simplyCRM/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactHandler coordinates contact CRUD HTTP handlers.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ListContacts returns all contacts owned by the current user, newest first.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	contacts, err := h.contactService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": dto.ToContactDTOs(contacts),
	})
}

// CreateContact creates a new contact owned by the current user.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateContactRequest struct {
		FirstName  string               `json:"firstName"`
		LastName   string               `json:"lastName"`
		Email      string               `json:"email"`
		Phone      string               `json:"phone"`
		Company    string               `json:"company"`
		JobTitle   string               `json:"jobTitle"`
		Status     models.ContactStatus `json:"status"`
		Source     models.ContactSource `json:"source"`
		Notes      string               `json:"notes"`
		AssignedTo *uuid.UUID           `json:"assignedTo"`
	}

	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.Create(userID, services.CreateContactInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		JobTitle:   req.JobTitle,
		Status:     req.Status,
		Source:     req.Source,
		Notes:      req.Notes,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact created successfully",
		"contact": dto.ToContactDTO(*contact),
	})
}

// GetContact returns a single owned contact.
func (h *ContactHandler) GetContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	contactID, ok := contactIDParam(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Get(userID, contactID)
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contact": dto.ToContactDTO(*contact),
	})
}

// UpdateContact applies a partial update to an owned contact.
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	contactID, ok := contactIDParam(c)
	if !ok {
		return
	}

	type UpdateContactRequest struct {
		FirstName  *string               `json:"firstName"`
		LastName   *string               `json:"lastName"`
		Email      *string               `json:"email"`
		Phone      *string               `json:"phone"`
		Company    *string               `json:"company"`
		JobTitle   *string               `json:"jobTitle"`
		Status     *models.ContactStatus `json:"status"`
		Source     *models.ContactSource `json:"source"`
		Notes      *string               `json:"notes"`
		AssignedTo nullableUUID          `json:"assignedTo"`
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		JobTitle:  req.JobTitle,
		Status:    req.Status,
		Source:    req.Source,
		Notes:     req.Notes,
	}
	if req.AssignedTo.Set {
		if req.AssignedTo.Value == nil {
			input.ClearAssignedTo = true
		} else {
			input.AssignedTo = req.AssignedTo.Value
		}
	}

	contact, err := h.contactService.Update(userID, contactID, input)
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact updated successfully",
		"contact": dto.ToContactDTO(*contact),
	})
}

// DeleteContact permanently removes an owned contact.
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	contactID, ok := contactIDParam(c)
	if !ok {
		return
	}

	if err := h.contactService.Delete(userID, contactID); err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact deleted successfully",
	})
}

// nullableUUID distinguishes an explicit JSON null from an absent field:
// Set is true whenever the field appeared in the body at all, and Value is
// nil only for an explicit null.
type nullableUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (n *nullableUUID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.Value = &id
	return nil
}

// contactIDParam parses the :id path parameter. A malformed id is reported
// as not found, indistinguishable from a missing record.
func contactIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Contact not found")
		return uuid.Nil, false
	}
	return id, true
}

func respondContactError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrContactFieldsRequired):
		apierrors.BadRequest(c, "First name, last name, email, and phone are required")
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, "Invalid status value")
	case errors.Is(err, services.ErrInvalidSource):
		apierrors.BadRequest(c, "Invalid source value")
	case errors.Is(err, services.ErrContactNotFound):
		apierrors.NotFound(c, "Contact not found")
	default:
		apierrors.InternalError(c, "")
	}
}
