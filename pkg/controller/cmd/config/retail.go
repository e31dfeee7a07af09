package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/usecase"
	"github.com/urfave/cli/v2"
)

type Retail struct {
	branch         types.RetailBranch
	reconciliation string
	pollInterval   time.Duration
}

func (x *Retail) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Category:    "Retail",
			Name:        "retail-branch",
			Usage:       "Full resource name of catalog branch, default branch of the project is used if empty",
			EnvVars:     []string{"RETAILPREP_RETAIL_BRANCH"},
			Destination: (*string)(&x.branch),
		},
		&cli.StringFlag{
			Category:    "Retail",
			Name:        "reconciliation-mode",
			Usage:       "Reconciliation mode of product import [INCREMENTAL, FULL]",
			EnvVars:     []string{"RETAILPREP_RECONCILIATION_MODE"},
			Destination: &x.reconciliation,
			Value:       string(types.ReconcileIncremental),
		},
		&cli.DurationFlag{
			Category:    "Retail",
			Name:        "poll-interval",
			Usage:       "Interval to poll import operation",
			EnvVars:     []string{"RETAILPREP_POLL_INTERVAL"},
			Destination: &x.pollInterval,
			Value:       5 * time.Second,
		},
	}
}

func (x *Retail) HasBranch() bool { return x.branch != "" }

func (x *Retail) Configure() ([]usecase.Option, error) {
	mode := types.ReconciliationMode(x.reconciliation)
	switch mode {
	case types.ReconcileIncremental, types.ReconcileFull:
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid reconciliation mode", goerr.V("mode", x.reconciliation))
	}

	if x.pollInterval <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "poll interval must be positive", goerr.V("interval", x.pollInterval))
	}

	options := []usecase.Option{
		usecase.WithReconciliationMode(mode),
		usecase.WithPollInterval(x.pollInterval),
	}
	if x.branch != "" {
		options = append(options, usecase.WithBranch(x.branch))
	}

	return options, nil
}

func (x *Retail) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("branch", x.branch.String()),
		slog.String("reconciliation_mode", x.reconciliation),
		slog.String("poll_interval", x.pollInterval.String()),
	)
}
