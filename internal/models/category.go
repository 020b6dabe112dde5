package models

// Category is the top level of the product taxonomy.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(50);uniqueIndex;not null"`
}

// Subcategory belongs to exactly one Category.
type Subcategory struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	CategoryID uint     `json:"category_id" gorm:"not null;index"`
	Category   Category `json:"category"`
	Name       string   `json:"name" gorm:"type:varchar(50);not null"`
}

// Tag is a free-form label. Any tag may be attached to any product.
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(50);uniqueIndex;not null"`
}
