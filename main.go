package main

import (
	"log/slog"
	"os"

	"storegen/icon"
	"storegen/pack"
	"storegen/parallel"
	"storegen/shot"
	"storegen/tile"

	"github.com/alecthomas/kong"
)

var cli struct {
	Jobs int `help:"Number of parallel workers, 0 for one per CPU" default:"1"`

	Icon icon.CLICmd `cmd:"" help:"Generate the application icon"`
	Tile tile.CLICmd `cmd:"" help:"Generate promotional tiles and the stylized screenshot"`
	Shot shot.CLICmd `cmd:"" help:"Prepare captured screenshots for the store listing"`
	Pack pack.CLICmd `cmd:"" help:"Bundle the project into the distributable archive"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("storegen"),
		kong.Description("Generates store listing assets and packages the extension."),
		kong.UsageOnError(),
	)

	pool := parallel.Start(cli.Jobs)
	if err := kctx.Run(parallel.WorkerFunc(pool.Do), parallel.WaitFunc(pool.Wait)); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
