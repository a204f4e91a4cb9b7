package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm/clause"

	"github.com/gregj/bartenders-friend/pkg/model"
)

var ErrEmptyIngredientName = errors.New("ingredient name cannot be empty")

// GetOrCreateIngredient looks up an ingredient by trimmed name, creating it
// lazily on first sight.
func (r *Repository) GetOrCreateIngredient(ctx context.Context, name string) (*model.Ingredient, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyIngredientName
	}

	ingredient := model.Ingredient{Name: trimmed}

	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&ingredient); result.Error != nil {
		return nil, result.Error
	}

	if ingredient.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("name = ?", trimmed).First(&ingredient); result.Error != nil {
			return nil, result.Error
		}
	}

	return &ingredient, nil
}
