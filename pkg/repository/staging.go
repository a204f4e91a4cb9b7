package repository

import (
	"context"

	"github.com/gregj/bartenders-friend/pkg/model"
)

// StagedCocktail is one distinct drink aggregated out of a staging table.
type StagedCocktail struct {
	Name         string
	Category     *string
	Glass        *string
	Instructions *string
}

// StagedIngredientLink is one ordered ingredient row for a staged drink.
type StagedIngredientLink struct {
	IngredientOrder *int
	Ingredient      string
	Measure         *string
}

// ListMeasurements returns the legacy denormalized rows, grouped by cocktail
// so the backfill can assign a stable per-cocktail position.
func (r *Repository) ListMeasurements(ctx context.Context) ([]*model.Measurement, error) {
	var measurements []*model.Measurement

	result := r.DB.WithContext(ctx).Order("cocktail_name, id").Find(&measurements)
	if result.Error != nil {
		return nil, result.Error
	}

	return measurements, nil
}

// DistinctCocktailDBDrinks aggregates the_cocktail_db staging rows into one
// row per drink. A non-positive limit means no limit.
func (r *Repository) DistinctCocktailDBDrinks(ctx context.Context, limit int) ([]StagedCocktail, error) {
	var drinks []StagedCocktail

	query := r.DB.WithContext(ctx).Table("the_cocktail_db").
		Select("drink as name, max(category) as category, max(glass) as glass, max(instructions) as instructions").
		Group("drink").
		Order("drink")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if result := query.Scan(&drinks); result.Error != nil {
		return nil, result.Error
	}

	return drinks, nil
}

func (r *Repository) CocktailDBIngredients(ctx context.Context, drink string) ([]StagedIngredientLink, error) {
	var links []StagedIngredientLink

	result := r.DB.WithContext(ctx).Table("the_cocktail_db").
		Select("ingredient_order, ingredient, measure").
		Where("drink = ? AND ingredient IS NOT NULL", drink).
		Order("ingredient_order NULLS LAST").
		Scan(&links)

	if result.Error != nil {
		return nil, result.Error
	}

	return links, nil
}

// DistinctBostonCocktails aggregates boston_cocktails staging rows into one
// row per name. The dataset carries no glass or instructions.
func (r *Repository) DistinctBostonCocktails(ctx context.Context, limit int) ([]StagedCocktail, error) {
	var drinks []StagedCocktail

	query := r.DB.WithContext(ctx).Table("boston_cocktails").
		Select("name, max(category) as category").
		Group("name").
		Order("name")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if result := query.Scan(&drinks); result.Error != nil {
		return nil, result.Error
	}

	return drinks, nil
}

// BostonIngredients returns the staged ingredient rows for one cocktail with
// the textual ingredient_number parsed into an order where it is numeric.
func (r *Repository) BostonIngredients(ctx context.Context, name string) ([]StagedIngredientLink, error) {
	var links []StagedIngredientLink

	result := r.DB.WithContext(ctx).Table("boston_cocktails").
		Select(`case when ingredient_number ~ '^\d+$' then ingredient_number::int else null end as ingredient_order, `+
			"ingredient, measure").
		Where("name = ? AND ingredient IS NOT NULL", name).
		Order("ingredient_order NULLS LAST").
		Scan(&links)

	if result.Error != nil {
		return nil, result.Error
	}

	return links, nil
}
