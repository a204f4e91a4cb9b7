package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UUID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()"`
	Username  string    `gorm:"uniqueIndex"`
	FirstName string
	LastName  string
	Email     string
}

type Rating struct {
	gorm.Model
	UserID     uint `gorm:"uniqueIndex:idx_rating_unique"`
	CocktailID uint `gorm:"uniqueIndex:idx_rating_unique"`
	Score      int  `gorm:"check:score >= 1 AND score <= 5"`
	Private    bool
	Comment    string

	User     User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Cocktail Cocktail `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type CocktailImage struct {
	gorm.Model
	CocktailID uint
	Path       string
	AltText    string

	Cocktail Cocktail `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
