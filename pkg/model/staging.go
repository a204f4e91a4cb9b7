package model

// Staging tables are loaded from the raw CSV dumps by external tooling and
// read here as migration input. They carry no gorm bookkeeping columns.

// Measurement is the legacy denormalized association table: cocktail and
// ingredient are referenced by free-text name rather than by key.
type Measurement struct {
	ID             uint `gorm:"primaryKey"`
	CocktailName   string
	IngredientName string
	Quantity       string
}

func (Measurement) TableName() string { return "measurements" }

type TheCocktailDBRecord struct {
	ID              uint `gorm:"primaryKey"`
	Drink           string
	Category        *string
	Glass           *string
	Instructions    *string
	IngredientOrder *int
	Ingredient      *string
	Measure         *string
}

func (TheCocktailDBRecord) TableName() string { return "the_cocktail_db" }

type BostonCocktailRecord struct {
	ID               uint `gorm:"primaryKey"`
	Name             string
	Category         *string
	IngredientNumber *string
	Ingredient       *string
	Measure          *string
}

func (BostonCocktailRecord) TableName() string { return "boston_cocktails" }
