package models

// Currency is a reference currency such as JPY.
type Currency struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"type:varchar(3);uniqueIndex;not null"`
	Name string `json:"name" gorm:"type:varchar(50);not null"`
}

// Country groups cities under one catalog. Product listings never span countries.
type Country struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	Name       string   `json:"name" gorm:"type:varchar(50);uniqueIndex;not null"`
	Code       string   `json:"code" gorm:"type:varchar(2);not null"`
	CurrencyID uint     `json:"currency_id" gorm:"not null"`
	Currency   Currency `json:"currency"`
}

// City belongs to exactly one Country.
type City struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	CountryID uint    `json:"country_id" gorm:"not null;index"`
	Country   Country `json:"country"`
	Name      string  `json:"name" gorm:"type:varchar(50);not null"`
}
