package cmd

import (
	"context"

	"github.com/gregj/bartenders-friend/pkg/migration"
)

type MigrateCmd struct {
	ConfigFile string `default:".bartenders-friend.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(cli *Context) error {
	repo, _, logger, err := setup(m.ConfigFile, cli.Debug)
	if err != nil {
		return err
	}
	defer repo.Close()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	return migration.NewRunner(repo.DB, logger, migration.Steps()).Run(context.Background())
}
