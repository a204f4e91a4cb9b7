package repository

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gregj/bartenders-friend/pkg/model"
)

var ErrCocktailNotFound = errors.New("cocktail not found")

var glassTitle = cases.Title(language.English)

// UpsertCocktail inserts a cocktail or refreshes an existing one by name.
// Instructions, description and glass are only ever filled in, never nulled
// out, so a dataset without instructions cannot erase a richer record.
func (r *Repository) UpsertCocktail(ctx context.Context, cocktail model.Cocktail) (*model.Cocktail, error) {
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"category":      gorm.Expr(`"excluded"."category"`),
			"source":        gorm.Expr(`"excluded"."source"`),
			"glass_type_id": gorm.Expr(`COALESCE("excluded"."glass_type_id", "cocktails"."glass_type_id")`),
			"description":   gorm.Expr(`COALESCE(NULLIF("excluded"."description", ''), "cocktails"."description")`),
			"instructions":  gorm.Expr(`COALESCE("excluded"."instructions", "cocktails"."instructions")`),
		}),
	}).Create(&cocktail)

	if result.Error != nil {
		return nil, result.Error
	}

	return &cocktail, nil
}

func (r *Repository) FindCocktailByName(ctx context.Context, name string) (*model.Cocktail, error) {
	var cocktail model.Cocktail

	result := r.DB.WithContext(ctx).Where("name = ?", name).First(&cocktail)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCocktailNotFound
		}

		return nil, result.Error
	}

	return &cocktail, nil
}

func (r *Repository) ListCocktails(ctx context.Context) ([]*model.Cocktail, error) {
	var cocktails []*model.Cocktail

	result := r.DB.WithContext(ctx).Select("id", "name").Order("name").Find(&cocktails)
	if result.Error != nil {
		return nil, result.Error
	}

	return cocktails, nil
}

// CocktailsMissingInstructions is the source-precedence policy: a cocktail
// whose instructions are still null has not been populated from a structured
// dataset, so the legacy derivation is allowed to contribute its links.
func (r *Repository) CocktailsMissingInstructions(ctx context.Context) ([]*model.Cocktail, error) {
	var cocktails []*model.Cocktail

	result := r.DB.WithContext(ctx).Select("id", "name").
		Where("instructions IS NULL").
		Order("name").
		Find(&cocktails)
	if result.Error != nil {
		return nil, result.Error
	}

	return cocktails, nil
}

// GetOrCreateGlassType looks up a glass by its title-cased name, creating it
// lazily on first sight.
func (r *Repository) GetOrCreateGlassType(ctx context.Context, name string) (*model.GlassType, error) {
	glass := model.GlassType{Name: glassTitle.String(strings.TrimSpace(name))}

	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&glass); result.Error != nil {
		return nil, result.Error
	}

	if glass.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("name = ?", glass.Name).First(&glass); result.Error != nil {
			return nil, result.Error
		}
	}

	return &glass, nil
}

// LinkIngredients upserts cocktail/ingredient associations in batches of
// batchSize rows. On conflict the incoming row wins: re-importing a
// structured dataset refreshes quantity, order and provenance. Callers must
// not pass the same (cocktail, ingredient) pair twice in one call.
func (r *Repository) LinkIngredients(ctx context.Context, links []model.CocktailIngredient, batchSize int) error {
	if len(links) == 0 {
		return nil
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cocktail_id"}, {Name: "ingredient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit", "ingredient_order", "optional", "notes", "source_dataset"}),
	}).CreateInBatches(links, batchSize)

	return result.Error
}

// LinkIngredientIfAbsent inserts a cocktail/ingredient association unless the
// pair already exists, in which case it reports false and leaves the existing
// row untouched. This is what makes the legacy backfill re-runnable.
func (r *Repository) LinkIngredientIfAbsent(ctx context.Context, link model.CocktailIngredient) (bool, error) {
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cocktail_id"}, {Name: "ingredient_id"}},
		DoNothing: true,
	}).Create(&link)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
