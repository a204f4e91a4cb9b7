package migration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gregj/bartenders-friend/pkg/model"
	"github.com/gregj/bartenders-friend/pkg/repository"
)

// SourceBoth imports every staging dataset in one invocation.
const SourceBoth = "both"

var ErrUnknownSource = errors.New("unknown source dataset")

// ImportStats summarizes one dataset import.
type ImportStats struct {
	Dataset            string
	CocktailsUpserted  int
	LinksUpserted      int
	SkippedIngredients int
}

// ImportSources promotes staging rows into the normalized schema. Each
// dataset runs in its own transaction, so a failure in one does not roll back
// the other; with SourceBoth the failures are aggregated.
func (m *Migrator) ImportSources(ctx context.Context, source string, limit int, dryRun bool) ([]ImportStats, error) {
	if source != CocktailDBDataset && source != BostonDataset && source != SourceBoth {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, source)
	}

	var (
		stats []ImportStats
		errs  error
	)

	if source == CocktailDBDataset || source == SourceBoth {
		imported, err := m.importDataset(ctx, CocktailDBDataset, limit, dryRun)
		if !multierr.AppendInto(&errs, err) {
			stats = append(stats, *imported)
		}
	}

	if source == BostonDataset || source == SourceBoth {
		imported, err := m.importDataset(ctx, BostonDataset, limit, dryRun)
		if !multierr.AppendInto(&errs, err) {
			stats = append(stats, *imported)
		}
	}

	return stats, errs
}

func (m *Migrator) importDataset(ctx context.Context, dataset string, limit int, dryRun bool) (*ImportStats, error) {
	stats := &ImportStats{Dataset: dataset}

	err := m.repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := m.repo.WithTx(tx)

		drinks, err := m.listStagedDrinks(ctx, repo, dataset, limit)
		if err != nil {
			return err
		}

		m.logger.Info("importing staged cocktails", zap.String("dataset", dataset), zap.Int("cocktails", len(drinks)))

		var links []model.CocktailIngredient

		for _, drink := range drinks {
			drinkLinks, err := m.importDrink(ctx, repo, dataset, drink, stats)
			if err != nil {
				return err
			}

			links = append(links, drinkLinks...)
		}

		links = dedupeLinks(links)

		if err := repo.LinkIngredients(ctx, links, m.batchSize); err != nil {
			return err
		}

		stats.LinksUpserted = len(links)

		if dryRun {
			return errDryRun
		}

		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return nil, fmt.Errorf("importing %s: %w", dataset, err)
	}

	return stats, nil
}

func (m *Migrator) importDrink(ctx context.Context, repo *repository.Repository, dataset string, drink repository.StagedCocktail, stats *ImportStats) ([]model.CocktailIngredient, error) {
	var glassTypeID *uint

	if glass := strings.TrimSpace(pointy.StringValue(drink.Glass, "")); glass != "" {
		glassType, err := repo.GetOrCreateGlassType(ctx, glass)
		if err != nil {
			return nil, err
		}

		glassTypeID = &glassType.ID
	}

	cocktail, err := repo.UpsertCocktail(ctx, model.Cocktail{
		Name:         strings.TrimSpace(drink.Name),
		Category:     pointy.StringValue(drink.Category, ""),
		Instructions: drink.Instructions,
		GlassTypeID:  glassTypeID,
		Source:       dataset,
	})
	if err != nil {
		return nil, err
	}

	stats.CocktailsUpserted++

	staged, err := m.listStagedIngredients(ctx, repo, dataset, drink.Name)
	if err != nil {
		return nil, err
	}

	links := make([]model.CocktailIngredient, 0, len(staged))

	for index, row := range staged {
		ingredient, err := repo.GetOrCreateIngredient(ctx, row.Ingredient)
		if err != nil {
			if errors.Is(err, repository.ErrEmptyIngredientName) {
				stats.SkippedIngredients++

				continue
			}

			return nil, err
		}

		// Staged rows without a numeric order keep their scan position so
		// every link carries a total order.
		order := index + 1
		if row.IngredientOrder != nil {
			order = *row.IngredientOrder
		}

		links = append(links, model.CocktailIngredient{
			CocktailID:      cocktail.ID,
			IngredientID:    ingredient.ID,
			Quantity:        pointy.StringValue(row.Measure, ""),
			IngredientOrder: order,
			SourceDataset:   dataset,
		})
	}

	return links, nil
}

// dedupeLinks keeps the last staged row for each (cocktail, ingredient) pair
// so a multi-row upsert never touches the same target row twice.
func dedupeLinks(links []model.CocktailIngredient) []model.CocktailIngredient {
	type pair struct {
		cocktailID   uint
		ingredientID uint
	}

	index := make(map[pair]int, len(links))
	deduped := make([]model.CocktailIngredient, 0, len(links))

	for _, link := range links {
		key := pair{cocktailID: link.CocktailID, ingredientID: link.IngredientID}

		if at, ok := index[key]; ok {
			deduped[at] = link

			continue
		}

		index[key] = len(deduped)
		deduped = append(deduped, link)
	}

	return deduped
}

func (m *Migrator) listStagedDrinks(ctx context.Context, repo *repository.Repository, dataset string, limit int) ([]repository.StagedCocktail, error) {
	if dataset == CocktailDBDataset {
		return repo.DistinctCocktailDBDrinks(ctx, limit)
	}

	return repo.DistinctBostonCocktails(ctx, limit)
}

func (m *Migrator) listStagedIngredients(ctx context.Context, repo *repository.Repository, dataset string, drink string) ([]repository.StagedIngredientLink, error) {
	if dataset == CocktailDBDataset {
		return repo.CocktailDBIngredients(ctx, drink)
	}

	return repo.BostonIngredients(ctx, drink)
}
