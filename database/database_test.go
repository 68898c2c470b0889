package database

import (
	"fmt"
	"strings"
	"testing"

	"cms/config"
	"cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func seedConfig() *config.Config {
	return &config.Config{
		AdminEmail:    "admin@church.org",
		AdminPassword: "sup3r-secret",
		SaltRound:     bcrypt.MinCost,
	}
}

func TestSeedAdmin_CreatesOnce(t *testing.T) {
	db := newSeedDB(t)
	cfg := seedConfig()

	require.NoError(t, SeedAdmin(db, cfg))
	require.NoError(t, SeedAdmin(db, cfg))

	var admins []models.AdminUser
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, cfg.AdminEmail, admins[0].Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(admins[0].Password), []byte(cfg.AdminPassword)))
}

func TestSeedAdmin_SkipsWithoutCredentials(t *testing.T) {
	db := newSeedDB(t)

	require.NoError(t, SeedAdmin(db, &config.Config{SaltRound: bcrypt.MinCost}))

	var count int64
	db.Model(&models.AdminUser{}).Count(&count)
	assert.Zero(t, count)
}

func TestSeedAdmin_PropagatesLookupErrors(t *testing.T) {
	db := newSeedDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.AdminUser{}))

	err := SeedAdmin(db, seedConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up admin user")
}
