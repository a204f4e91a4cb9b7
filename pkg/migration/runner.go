package migration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gregj/bartenders-friend/pkg/model"
)

// SchemaMigration records one applied schema version.
type SchemaMigration struct {
	Version   string `gorm:"primaryKey"`
	AppliedAt time.Time
}

func (SchemaMigration) TableName() string { return "schema_migrations" }

// Step is a single versioned schema change. Versions sort lexically and must
// be unique; a step runs at most once per database.
type Step struct {
	Version string
	Apply   func(tx *gorm.DB) error
}

var (
	ErrDuplicateVersion  = errors.New("duplicate migration version")
	ErrUnorderedVersions = errors.New("migration versions out of order")
)

const createSchemaMigrations = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version text PRIMARY KEY,
	applied_at timestamptz NOT NULL
)`

// Steps returns the schema history in application order. The catalog grew in
// stages: base tables first, then the peripheral entities, then the raw
// staging tables, and finally the normalized cross-reference table.
func Steps() []Step {
	return []Step{
		{
			Version: "0001_catalog_base",
			Apply: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.GlassType{}, &model.Cocktail{}, &model.CocktailAlias{}, &model.Ingredient{})
			},
		},
		{
			Version: "0002_peripheral_entities",
			Apply: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.User{}, &model.Rating{}, &model.CocktailImage{})
			},
		},
		{
			Version: "0003_staging_tables",
			Apply: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.Measurement{}, &model.TheCocktailDBRecord{}, &model.BostonCocktailRecord{})
			},
		},
		{
			Version: "0004_cocktail_ingredients",
			Apply: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.CocktailIngredient{})
			},
		},
	}
}

// Runner applies pending schema steps in order, each inside its own
// transaction, and records applied versions in schema_migrations.
type Runner struct {
	db     *gorm.DB
	logger *zap.Logger
	steps  []Step
}

func NewRunner(db *gorm.DB, logger *zap.Logger, steps []Step) *Runner {
	return &Runner{db: db, logger: logger, steps: steps}
}

func (r *Runner) Run(ctx context.Context) error {
	if err := validateSteps(r.steps); err != nil {
		return err
	}

	if result := r.db.WithContext(ctx).Exec(createSchemaMigrations); result.Error != nil {
		return fmt.Errorf("creating schema_migrations: %w", result.Error)
	}

	var records []SchemaMigration
	if result := r.db.WithContext(ctx).Find(&records); result.Error != nil {
		return result.Error
	}

	applied := make(map[string]struct{}, len(records))
	for _, record := range records {
		applied[record.Version] = struct{}{}
	}

	for _, step := range r.steps {
		if _, ok := applied[step.Version]; ok {
			r.logger.Debug("migration already applied", zap.String("version", step.Version))

			continue
		}

		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := step.Apply(tx); err != nil {
				return fmt.Errorf("applying %s: %w", step.Version, err)
			}

			return tx.Create(&SchemaMigration{Version: step.Version, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return err
		}

		r.logger.Info("applied migration", zap.String("version", step.Version))
	}

	return nil
}

func validateSteps(steps []Step) error {
	seen := make(map[string]struct{}, len(steps))

	previous := ""
	for _, step := range steps {
		if _, ok := seen[step.Version]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateVersion, step.Version)
		}

		if step.Version <= previous {
			return fmt.Errorf("%w: %s after %s", ErrUnorderedVersions, step.Version, previous)
		}

		seen[step.Version] = struct{}{}
		previous = step.Version
	}

	return nil
}
