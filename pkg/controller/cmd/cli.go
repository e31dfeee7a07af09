package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/secmon-lab/retailprep/pkg/controller/cmd/config"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/utils"

	"github.com/urfave/cli/v2"
)

func Run(argv []string) error {
	var (
		logger    config.Logger
		sentryCfg config.Sentry
	)

	if err := loadEnvFile(); err != nil {
		utils.Logger().Error("failed to load env file", utils.ErrLog(err))
		return err
	}

	app := cli.App{
		Name:        "retailprep",
		Usage:       "Provision test resources for Retail API tutorials",
		Description: "Create Cloud Storage buckets with fixture files, import products into the Retail catalog and load BigQuery tables",
		Version:     types.AppVersion,
		Flags:       mergeFlags(logger.Flags(), sentryCfg.Flags()),
		Before: func(c *cli.Context) error {
			logger, err := logger.Configure()
			if err != nil {
				return err
			}
			utils.SetLogger(logger)

			return sentryCfg.Configure()
		},
		Commands: []*cli.Command{
			setupCommand(),
			bucketCommand(),
			importCommand(),
			tableCommand(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, argv); err != nil {
		utils.HandleError(ctx, "failed to run command", err)
		if sentryCfg.Enabled() {
			sentry.Flush(2 * time.Second)
		}
		return err
	}

	return nil
}
