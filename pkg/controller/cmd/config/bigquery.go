package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/infra/bq"
	"github.com/secmon-lab/retailprep/pkg/infra/bqcli"
	"github.com/secmon-lab/retailprep/pkg/infra/dump"
	"github.com/urfave/cli/v2"
)

type BigQuery struct {
	backend     string
	command     string
	dumpDir     string
	location    string
	expiration  time.Duration
	description string
}

const (
	BigQueryBackendCLI  = "cli"
	BigQueryBackendAPI  = "api"
	BigQueryBackendDump = "dump"
)

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Category:    "BigQuery",
			Name:        "bigquery-backend",
			Usage:       "How to operate BigQuery [cli, api, dump]",
			EnvVars:     []string{"RETAILPREP_BIGQUERY_BACKEND"},
			Destination: &x.backend,
			Value:       BigQueryBackendCLI,
		},
		&cli.StringFlag{
			Category:    "BigQuery",
			Name:        "bq-command",
			Usage:       "Path of bq command for cli backend",
			EnvVars:     []string{"RETAILPREP_BQ_COMMAND"},
			Destination: &x.command,
			Value:       bqcli.DefaultCommand,
		},
		&cli.StringFlag{
			Category:    "BigQuery",
			Name:        "dump-dir",
			Aliases:     []string{"o"},
			Usage:       "Output directory for dump backend",
			EnvVars:     []string{"RETAILPREP_DUMP_DIR"},
			Destination: &x.dumpDir,
			Value:       ".",
		},
		&cli.StringFlag{
			Category:    "BigQuery",
			Name:        "dataset-location",
			Usage:       "Location of newly created datasets",
			EnvVars:     []string{"RETAILPREP_DATASET_LOCATION"},
			Destination: &x.location,
			Value:       model.DefaultDatasetLocation,
		},
		&cli.DurationFlag{
			Category:    "BigQuery",
			Name:        "default-table-expiration",
			Usage:       "Default table expiration of newly created datasets",
			EnvVars:     []string{"RETAILPREP_DEFAULT_TABLE_EXPIRATION"},
			Destination: &x.expiration,
			Value:       model.DefaultTableExpiration,
		},
		&cli.StringFlag{
			Category:    "BigQuery",
			Name:        "dataset-description",
			Usage:       "Description of newly created datasets",
			EnvVars:     []string{"RETAILPREP_DATASET_DESCRIPTION"},
			Destination: &x.description,
			Value:       model.DefaultDatasetDescription,
		},
	}
}

// Configure returns the BigQuery client of selected backend. The caller closes it if it is an io.Closer.
func (x *BigQuery) Configure(ctx context.Context, projectID types.GoogleProjectID) (interfaces.BigQuery, error) {
	switch x.backend {
	case BigQueryBackendCLI:
		return bqcli.New(projectID, bqcli.WithCommand(x.command)), nil

	case BigQueryBackendAPI:
		return bq.New(ctx, projectID)

	case BigQueryBackendDump:
		return dump.New(x.dumpDir), nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid bigquery backend", goerr.V("backend", x.backend))
	}
}

func (x *BigQuery) DatasetConfig() model.DatasetConfig {
	return model.DatasetConfig{
		Location:               x.location,
		DefaultTableExpiration: x.expiration,
		Description:            x.description,
	}
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.String("command", x.command),
		slog.String("dump_dir", x.dumpDir),
		slog.String("location", x.location),
		slog.String("expiration", x.expiration.String()),
		slog.String("description", x.description),
	)
}

// NeedsProject is false only for dump backend that never reaches BigQuery
func (x *BigQuery) NeedsProject() bool {
	return x.backend != BigQueryBackendDump
}
