package database

import (
	"testing"

	"github.com/Shreyas8905/simplyCRM/internal/config"
	"github.com/Shreyas8905/simplyCRM/internal/logger"
	"github.com/Shreyas8905/simplyCRM/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestEnsureAdmin_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	log, err := logger.New("test")
	require.NoError(t, err)

	cfg := &config.Config{
		AdminName:     "System Administrator",
		AdminEmail:    "Admin@CRM.com",
		AdminPassword: "admin123",
	}

	require.NoError(t, EnsureAdmin(db, cfg, log))
	require.NoError(t, EnsureAdmin(db, cfg, log))

	var admins []models.User
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)

	admin := admins[0]
	require.Equal(t, "admin@crm.com", admin.Email)
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
}
