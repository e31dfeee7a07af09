package config

import (
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/utils"
	"github.com/urfave/cli/v2"
)

type Sentry struct {
	dsn string
	env string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Category:    "Sentry",
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting",
			EnvVars:     []string{"RETAILPREP_SENTRY_DSN"},
			Destination: &x.dsn,
		},
		&cli.StringFlag{
			Category:    "Sentry",
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			EnvVars:     []string{"RETAILPREP_SENTRY_ENV"},
			Destination: &x.env,
		},
	}
}

func (x *Sentry) Configure() error {
	if x.dsn == "" {
		utils.Logger().Debug("sentry is not enabled")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.env,
		Release:     types.AppVersion,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry", goerr.V("env", x.env))
	}
	utils.Logger().Info("enable sentry", "sentry", x)

	return nil
}

func (x *Sentry) Enabled() bool { return x.dsn != "" }

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("enabled", x.dsn != ""),
		slog.String("env", x.env),
	)
}
