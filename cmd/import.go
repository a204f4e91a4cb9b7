package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/gregj/bartenders-friend/pkg/migration"
)

type ImportCmd struct {
	ConfigFile string `default:".bartenders-friend.toml" help:"Path to config file" short:"c"`
	Source     string `default:"both" enum:"the_cocktail_db,boston_cocktails,both" help:"Which staging dataset to import"`
	Limit      int    `default:"0" help:"Limit cocktails per source (for testing)"`
	DryRun     bool   `help:"Run inside a transaction and roll back"`
}

func (i *ImportCmd) Run(cli *Context) error {
	repo, conf, logger, err := setup(i.ConfigFile, cli.Debug)
	if err != nil {
		return err
	}
	defer repo.Close()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	ctx := context.Background()

	migrator := migration.NewMigrator(repo, logger, conf.Migration.BatchSize)

	stats, err := migrator.ImportSources(ctx, i.Source, i.Limit, i.DryRun)
	for _, imported := range stats {
		logger.Info("import finished",
			zap.String("dataset", imported.Dataset),
			zap.Int("cocktails_upserted", imported.CocktailsUpserted),
			zap.Int("links_upserted", imported.LinksUpserted),
			zap.Int("skipped_ingredients", imported.SkippedIngredients),
			zap.Bool("dry_run", i.DryRun))
	}

	if err != nil {
		logger.Error("import failed", zap.Error(err))

		return err
	}

	return reportSummary(ctx, repo, logger)
}
