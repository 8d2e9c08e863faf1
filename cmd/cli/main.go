package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/buperadmin/kwitansi-cli/internal/buildinfo"
	"github.com/buperadmin/kwitansi-cli/internal/client/cli"
	"github.com/buperadmin/kwitansi-cli/internal/client/config"
	"github.com/buperadmin/kwitansi-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)
}
