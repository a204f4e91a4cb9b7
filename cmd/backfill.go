package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/gregj/bartenders-friend/pkg/migration"
)

type BackfillCmd struct {
	ConfigFile string `default:".bartenders-friend.toml" help:"Path to config file" short:"c"`
	DryRun     bool   `help:"Run inside a transaction and roll back"`
}

func (b *BackfillCmd) Run(cli *Context) error {
	repo, conf, logger, err := setup(b.ConfigFile, cli.Debug)
	if err != nil {
		return err
	}
	defer repo.Close()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	ctx := context.Background()

	result, err := migration.NewMigrator(repo, logger, conf.Migration.BatchSize).BackfillLegacyMeasurements(ctx, b.DryRun)
	if err != nil {
		logger.Error("backfill failed", zap.Error(err))

		return err
	}

	logger.Info("backfill finished",
		zap.Int("migrated", result.Migrated),
		zap.Int("skipped_existing", result.SkippedExisting),
		zap.Int("skipped_precedence", result.SkippedPrecedence),
		zap.Int("skipped_empty", result.SkippedEmpty),
		zap.Int("unmatched_cocktails", len(result.UnmatchedCocktails)),
		zap.Bool("dry_run", b.DryRun))

	return reportSummary(ctx, repo, logger)
}
