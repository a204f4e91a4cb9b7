package migration

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gregj/bartenders-friend/pkg/model"
	"github.com/gregj/bartenders-friend/pkg/repository"
)

// Provenance tags carried on cocktail_ingredients rows.
const (
	CocktailDBDataset = "the_cocktail_db"
	BostonDataset     = "boston_cocktails"

	// LegacyDataset tags rows derived from the denormalized measurements
	// table, which was originally loaded from the boston dump.
	LegacyDataset = BostonDataset
)

// errDryRun forces a rollback at the end of a dry run.
var errDryRun = errors.New("dry run requested")

const defaultBatchSize = 500

// Migrator runs the one-shot data migrations against the catalog. The
// importers insert links in batches of batchSize rows; the backfill inserts
// row by row because it has to account for each pair individually.
type Migrator struct {
	repo      *repository.Repository
	logger    *zap.Logger
	batchSize int
}

func NewMigrator(repo *repository.Repository, logger *zap.Logger, batchSize int) *Migrator {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Migrator{repo: repo, logger: logger, batchSize: batchSize}
}

// BackfillResult summarizes one backfill run.
type BackfillResult struct {
	Migrated           int
	SkippedExisting    int
	SkippedPrecedence  int
	SkippedEmpty       int
	UnmatchedCocktails []string
}

// BackfillLegacyMeasurements moves rows from the denormalized measurements
// table into cocktail_ingredients. A row is carried over only when its
// cocktail has no instructions yet; cocktails already populated by a
// structured dataset keep their existing links (structured sources win).
// Pairs already present are left untouched, so a second run is a no-op. The
// whole backfill runs in one transaction: it either commits completely or
// leaves no trace.
func (m *Migrator) BackfillLegacyMeasurements(ctx context.Context, dryRun bool) (*BackfillResult, error) {
	result := &BackfillResult{}

	err := m.repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := m.repo.WithTx(tx)

		cocktails, err := repo.ListCocktails(ctx)
		if err != nil {
			return err
		}

		ids := make(map[string]uint, len(cocktails))
		for _, cocktail := range cocktails {
			ids[normalizeName(cocktail.Name)] = cocktail.ID
		}

		missing, err := repo.CocktailsMissingInstructions(ctx)
		if err != nil {
			return err
		}

		eligible := make(map[uint]struct{}, len(missing))
		for _, cocktail := range missing {
			eligible[cocktail.ID] = struct{}{}
		}

		measurements, err := repo.ListMeasurements(ctx)
		if err != nil {
			return err
		}

		unmatched := make(map[string]struct{})
		positions := make(map[uint]int, len(eligible))

		for _, measurement := range measurements {
			key := normalizeName(measurement.CocktailName)

			cocktailID, ok := ids[key]
			if !ok {
				if _, seen := unmatched[key]; !seen {
					unmatched[key] = struct{}{}
					result.UnmatchedCocktails = append(result.UnmatchedCocktails, strings.TrimSpace(measurement.CocktailName))
				}

				continue
			}

			if _, ok := eligible[cocktailID]; !ok {
				result.SkippedPrecedence++

				continue
			}

			ingredient, err := repo.GetOrCreateIngredient(ctx, measurement.IngredientName)
			if err != nil {
				if errors.Is(err, repository.ErrEmptyIngredientName) {
					result.SkippedEmpty++

					continue
				}

				return err
			}

			positions[cocktailID]++

			inserted, err := repo.LinkIngredientIfAbsent(ctx, model.CocktailIngredient{
				CocktailID:      cocktailID,
				IngredientID:    ingredient.ID,
				Quantity:        measurement.Quantity,
				IngredientOrder: positions[cocktailID],
				SourceDataset:   LegacyDataset,
			})
			if err != nil {
				return err
			}

			if inserted {
				result.Migrated++
			} else {
				result.SkippedExisting++
			}
		}

		if dryRun {
			return errDryRun
		}

		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return nil, err
	}

	for _, name := range result.UnmatchedCocktails {
		m.logger.Warn("measurement references unknown cocktail", zap.String("cocktail", name))
	}

	return result, nil
}

// normalizeName makes free-text name matching tolerant of case and
// surrounding whitespace. Quantities are never touched.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
