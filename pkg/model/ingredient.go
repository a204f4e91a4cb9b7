package model

import "gorm.io/gorm"

type Ingredient struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex"`
	Category    string
	ABV         *float64 `gorm:"check:abv IS NULL OR (abv >= 0 AND abv <= 100)"`
	Description string
}
