package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/linkdash/internal/buildinfo"
	"github.com/dmitrijs2005/linkdash/internal/client/cli"
	"github.com/dmitrijs2005/linkdash/internal/client/config"
	"github.com/dmitrijs2005/linkdash/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig(ctx)
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
