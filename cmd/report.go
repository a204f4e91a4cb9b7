package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/gregj/bartenders-friend/pkg/repository"
)

type ReportCmd struct {
	ConfigFile string `default:".bartenders-friend.toml" help:"Path to config file" short:"c"`
}

func (r *ReportCmd) Run(cli *Context) error {
	repo, _, logger, err := setup(r.ConfigFile, cli.Debug)
	if err != nil {
		return err
	}
	defer repo.Close()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	return reportSummary(context.Background(), repo, logger)
}

// reportSummary logs the per-dataset link counts used as the post-migration
// integrity check.
func reportSummary(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	summaries, err := repo.SummarizeBySourceDataset(ctx)
	if err != nil {
		logger.Error("error summarizing ingredient links", zap.Error(err))

		return err
	}

	for _, summary := range summaries {
		logger.Info("ingredient links by source",
			zap.String("source_dataset", summary.SourceDataset),
			zap.Int64("links", summary.Links),
			zap.Int64("cocktails", summary.Cocktails),
			zap.Int64("ingredients", summary.Ingredients))
	}

	return nil
}
