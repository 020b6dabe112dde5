package database_test

import (
	"testing"

	"katalog/internal/database"
	"katalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(database.Config{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestSeedReferenceData_Idempotent(t *testing.T) {
	db, err := database.Open(database.Config{Driver: "sqlite", DSN: "file::memory:", Silent: true})
	require.NoError(t, err)
	defer database.Close(db)
	require.NoError(t, database.Migrate(db))

	require.NoError(t, database.SeedReferenceData(db))

	var countries, cities, currencies, tags int64
	require.NoError(t, db.Model(&models.Country{}).Count(&countries).Error)
	require.NoError(t, db.Model(&models.City{}).Count(&cities).Error)
	require.NoError(t, db.Model(&models.Currency{}).Count(&currencies).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	assert.Equal(t, int64(11), countries)
	assert.Equal(t, int64(10), currencies, "Guam and USA share USD")

	require.NoError(t, database.SeedReferenceData(db))

	var again int64
	require.NoError(t, db.Model(&models.City{}).Count(&again).Error)
	assert.Equal(t, cities, again)
	require.NoError(t, db.Model(&models.Tag{}).Count(&again).Error)
	assert.Equal(t, tags, again)

	var tokyo models.City
	require.NoError(t, db.Preload("Country.Currency").First(&tokyo, "name = ?", "Tokyo").Error)
	assert.Equal(t, "Japan", tokyo.Country.Name)
	assert.Equal(t, "JPY", tokyo.Country.Currency.Code)
}
