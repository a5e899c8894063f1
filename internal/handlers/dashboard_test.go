package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Shreyas8905/simplyCRM/internal/constants"
	"github.com/Shreyas8905/simplyCRM/internal/database"
	"github.com/Shreyas8905/simplyCRM/internal/models"
	"github.com/Shreyas8905/simplyCRM/internal/repository"
	"github.com/Shreyas8905/simplyCRM/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDashboardTestEnv(t *testing.T) (*gorm.DB, *DashboardHandler) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Contact{})
	require.NoError(t, err)

	database.SetDB(db)

	contactRepo := repository.NewContactRepository(db)
	handler := NewDashboardHandler(services.NewStatsService(contactRepo))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, handler
}

func seedContact(t *testing.T, db *gorm.DB, ownerID uuid.UUID, status models.ContactStatus) {
	t.Helper()

	contact := &models.Contact{
		FirstName:   "Seed",
		LastName:    "Contact",
		Email:       "seed@example.com",
		Phone:       "555-0000",
		Status:      status,
		CreatedByID: ownerID,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, db.Create(contact).Error)
}

func TestDashboardHandler_GetStats(t *testing.T) {
	db, handler := setupDashboardTestEnv(t)

	owner := &models.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(owner).Error)
	other := &models.User{Name: "Other", Email: "other@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(other).Error)

	seedContact(t, db, owner.ID, models.StatusLead)
	seedContact(t, db, owner.ID, models.StatusLead)
	seedContact(t, db, owner.ID, models.StatusCustomer)
	// Another user's contact must not leak into the aggregates
	seedContact(t, db, other.ID, models.StatusClosed)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/dashboard/stats", nil)
	c.Set(constants.ContextKeyUserID, owner.ID.String())

	handler.GetStats(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		TotalContacts    int64                    `json:"totalContacts"`
		ContactsByStatus []repository.StatusCount `json:"contactsByStatus"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.EqualValues(t, 3, response.TotalContacts)

	byStatus := make(map[models.ContactStatus]int64, len(response.ContactsByStatus))
	for _, group := range response.ContactsByStatus {
		byStatus[group.Status] = group.Count
	}
	require.Len(t, byStatus, 2)
	require.EqualValues(t, 2, byStatus[models.StatusLead])
	require.EqualValues(t, 1, byStatus[models.StatusCustomer])

	// Statuses without contacts produce no entry
	_, hasOpportunity := byStatus[models.StatusOpportunity]
	require.False(t, hasOpportunity)
}

func TestDashboardHandler_GetStats_EmptyOwner(t *testing.T) {
	db, handler := setupDashboardTestEnv(t)

	owner := &models.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(owner).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/dashboard/stats", nil)
	c.Set(constants.ContextKeyUserID, owner.ID.String())

	handler.GetStats(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"totalContacts":0,"contactsByStatus":[]}`, w.Body.String())
}

func TestDashboardHandler_GetStats_Unauthenticated(t *testing.T) {
	_, handler := setupDashboardTestEnv(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/dashboard/stats", nil)

	handler.GetStats(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
