package database

import (
	"fmt"
	"log"

	"katalog/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds database connection details.
type Config struct {
	Driver string
	DSN    string
	Silent bool
}

// Open connects to the database selected by cfg.Driver.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	gormCfg := &gorm.Config{}
	if cfg.Silent {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == "sqlite" {
		// sqlite allows a single writer; one connection also keeps an
		// in-memory database alive for the lifetime of the pool.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates every catalog table.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Currency{},
		&models.Country{},
		&models.City{},
		&models.Category{},
		&models.Subcategory{},
		&models.Tag{},
		&models.Product{},
		&models.ProductTag{},
		&models.Like{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// SeedReferenceData inserts the built-in currencies, countries, cities,
// categories, subcategories and tags. Rows that already exist are kept, so
// seeding is safe on every start.
func SeedReferenceData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, c := range referenceCountries {
			currency := models.Currency{Code: c.currencyCode, Name: c.currencyName}
			if err := tx.Where(models.Currency{Code: c.currencyCode}).FirstOrCreate(&currency).Error; err != nil {
				return fmt.Errorf("failed to seed currency %s: %w", c.currencyCode, err)
			}

			country := models.Country{Name: c.name, Code: c.code, CurrencyID: currency.ID}
			if err := tx.Where(models.Country{Name: c.name}).FirstOrCreate(&country).Error; err != nil {
				return fmt.Errorf("failed to seed country %s: %w", c.name, err)
			}

			for _, name := range c.cities {
				city := models.City{CountryID: country.ID, Name: name}
				if err := tx.Where(models.City{CountryID: country.ID, Name: name}).FirstOrCreate(&city).Error; err != nil {
					return fmt.Errorf("failed to seed city %s: %w", name, err)
				}
			}
		}

		for _, c := range referenceCategories {
			category := models.Category{Name: c.name}
			if err := tx.Where(models.Category{Name: c.name}).FirstOrCreate(&category).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", c.name, err)
			}
			for _, name := range c.subcategories {
				sub := models.Subcategory{CategoryID: category.ID, Name: name}
				if err := tx.Where(models.Subcategory{CategoryID: category.ID, Name: name}).FirstOrCreate(&sub).Error; err != nil {
					return fmt.Errorf("failed to seed subcategory %s: %w", name, err)
				}
			}
		}

		for _, name := range referenceTags {
			tag := models.Tag{Name: name}
			if err := tx.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
				return fmt.Errorf("failed to seed tag %s: %w", name, err)
			}
		}

		log.Printf("Seeded reference data: %d countries, %d categories, %d tags",
			len(referenceCountries), len(referenceCategories), len(referenceTags))
		return nil
	})
}
