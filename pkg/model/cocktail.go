package model

import "gorm.io/gorm"

type GlassType struct {
	gorm.Model
	Name string `gorm:"uniqueIndex"`
}

type Cocktail struct {
	gorm.Model
	Name         string `gorm:"uniqueIndex"`
	Description  string
	Instructions *string
	Category     string
	Timing       string
	Taste        string
	GlassTypeID  *uint
	Source       string
	Aliases      []CocktailAlias `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	GlassType *GlassType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

type CocktailAlias struct {
	gorm.Model
	CocktailID uint   `gorm:"uniqueIndex:idx_cocktail_alias_unique"`
	Name       string `gorm:"uniqueIndex:idx_cocktail_alias_unique"`
}

// CocktailIngredient is the normalized cross-reference between a cocktail
// and one of its ingredients. Quantity is kept verbatim as authored; no unit
// coercion happens at migration time. SourceDataset records which dataset
// produced the row.
type CocktailIngredient struct {
	gorm.Model
	CocktailID      uint `gorm:"uniqueIndex:idx_cocktail_ingredient_unique"`
	IngredientID    uint `gorm:"uniqueIndex:idx_cocktail_ingredient_unique"`
	Quantity        string
	Unit            string
	IngredientOrder int
	Optional        bool
	Notes           string
	SourceDataset   string `gorm:"index"`

	Cocktail   Cocktail   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Ingredient Ingredient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
