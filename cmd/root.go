package cmd

import (
	"go.uber.org/zap"

	"github.com/gregj/bartenders-friend/configs"
	"github.com/gregj/bartenders-friend/pkg/repository"
)

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Migrate  MigrateCmd  `cmd:"" default:"1"                    help:"Apply pending schema migrations"`
	Import   ImportCmd   `cmd:"" help:"Import staging datasets into the normalized schema"`
	Backfill BackfillCmd `cmd:"" help:"Backfill legacy measurements into cocktail_ingredients"`
	Report   ReportCmd   `cmd:"" help:"Summarize ingredient links by source dataset"`
}

// setup builds the logger, loads the config and opens the repository shared
// by every command.
func setup(configFile string, debug bool) (*repository.Repository, *configs.Config, *zap.Logger, error) {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()

	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return nil, nil, nil, err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return nil, nil, nil, err
	}

	return repo, conf, logger, nil
}
