package main

import (
	"github.com/alecthomas/kong"

	"github.com/gregj/bartenders-friend/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("bartenders-friend"), kong.Description("Bartender's Friend manages the cocktail catalog schema and its data migrations."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
