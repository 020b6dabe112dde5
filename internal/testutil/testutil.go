// Package testutil provides an in-memory catalog database for tests.
package testutil

import (
	"testing"
	"time"

	"katalog/internal/database"
	"katalog/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Fixture holds the reference rows and products created by Seed.
//
// Products:
//
//	P1  Tokyo  Snacks  {Spicy}
//	P2  Osaka  Snacks  {Spicy, Halal}
//	P3  Tokyo  Shoes   {}
type Fixture struct {
	JPY models.Currency
	KRW models.Currency

	Japan models.Country
	Korea models.Country

	Tokyo models.City
	Osaka models.City
	Seoul models.City

	Food    models.Category
	Fashion models.Category
	Snacks  models.Subcategory
	Shoes   models.Subcategory

	Spicy models.Tag
	Halal models.Tag
	Vegan models.Tag

	P1 models.Product
	P2 models.Product
	P3 models.Product
}

// NewDB opens a migrated in-memory sqlite database that lives until the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(database.Config{Driver: "sqlite", DSN: "file::memory:", Silent: true})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	require.NoError(t, database.Migrate(db))
	return db
}

// Seed inserts the fixture into db. Products are created one second apart,
// P1 first, and carry distinct prices P1=300, P2=100, P3=200.
func Seed(t *testing.T, db *gorm.DB) *Fixture {
	t.Helper()
	f := &Fixture{
		JPY:     models.Currency{Code: "JPY", Name: "Japanese Yen"},
		KRW:     models.Currency{Code: "KRW", Name: "Korean Won"},
		Food:    models.Category{Name: "Food"},
		Fashion: models.Category{Name: "Fashion"},
		Spicy:   models.Tag{Name: "Spicy"},
		Halal:   models.Tag{Name: "Halal"},
		Vegan:   models.Tag{Name: "Vegan"},
	}
	create := func(v interface{}) {
		require.NoError(t, db.Create(v).Error)
	}

	create(&f.JPY)
	create(&f.KRW)
	f.Japan = models.Country{Name: "Japan", Code: "JP", CurrencyID: f.JPY.ID}
	f.Korea = models.Country{Name: "Korea", Code: "KR", CurrencyID: f.KRW.ID}
	create(&f.Japan)
	create(&f.Korea)
	f.Tokyo = models.City{CountryID: f.Japan.ID, Name: "Tokyo"}
	f.Osaka = models.City{CountryID: f.Japan.ID, Name: "Osaka"}
	f.Seoul = models.City{CountryID: f.Korea.ID, Name: "Seoul"}
	create(&f.Tokyo)
	create(&f.Osaka)
	create(&f.Seoul)

	create(&f.Food)
	create(&f.Fashion)
	f.Snacks = models.Subcategory{CategoryID: f.Food.ID, Name: "Snacks"}
	f.Shoes = models.Subcategory{CategoryID: f.Fashion.ID, Name: "Shoes"}
	create(&f.Snacks)
	create(&f.Shoes)

	create(&f.Spicy)
	create(&f.Halal)
	create(&f.Vegan)

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	newProduct := func(name string, price int, city models.City, sub models.Subcategory, offset int, tags ...models.Tag) models.Product {
		p := models.Product{
			MemberID:      1,
			Name:          name,
			Description:   name + " description",
			Price:         price,
			Rating:        4.5,
			CityID:        city.ID,
			SubcategoryID: sub.ID,
			CurrencyID:    f.JPY.ID,
			CreatedAt:     base.Add(time.Duration(offset) * time.Second),
		}
		for _, tag := range tags {
			p.ProductTags = append(p.ProductTags, models.ProductTag{TagID: tag.ID})
		}
		create(&p)
		return p
	}
	f.P1 = newProduct("Spicy Senbei", 300, f.Tokyo, f.Snacks, 0, f.Spicy)
	f.P2 = newProduct("Halal Ramen Chips", 100, f.Osaka, f.Snacks, 1, f.Spicy, f.Halal)
	f.P3 = newProduct("Tokyo Sneakers", 200, f.Tokyo, f.Shoes, 2)
	return f
}

// IDs returns the IDs of products in order.
func IDs(products []models.Product) []uint {
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
