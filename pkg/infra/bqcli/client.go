package bqcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/utils"
)

// Client operates BigQuery through the bq command line tool
type Client struct {
	command   string
	projectID types.GoogleProjectID
	runner    Runner
}

const DefaultCommand = "bq"

type Option func(*Client)

func WithCommand(command string) Option {
	return func(c *Client) {
		c.command = command
	}
}

func WithRunner(runner Runner) Option {
	return func(c *Client) {
		c.runner = runner
	}
}

func New(projectID types.GoogleProjectID, options ...Option) *Client {
	c := &Client{
		command:   DefaultCommand,
		projectID: projectID,
		runner:    execRunner{},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (x *Client) datasetRef(dataset types.BQDatasetID) string {
	return fmt.Sprintf("%s:%s", x.projectID, dataset)
}

func (x *Client) tableRef(dataset types.BQDatasetID, table types.BQTableID) string {
	return fmt.Sprintf("%s:%s.%s", x.projectID, dataset, table)
}

func (x *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	utils.CtxLogger(ctx).Debug("run bq command", "command", x.command, "args", args)

	stdout, stderr, err := x.runner.Run(ctx, x.command, args...)
	if err != nil {
		output := strings.TrimSpace(string(stdout) + "\n" + string(stderr))
		if strings.Contains(output, "Not found") {
			return nil, goerr.Wrap(types.ErrNotFound, "bq reported not found",
				goerr.V("args", args),
				goerr.V("output", output),
			)
		}

		return nil, goerr.Wrap(types.ErrCommandFailed, err.Error(),
			goerr.V("command", x.command),
			goerr.V("args", args),
			goerr.V("output", output),
		)
	}

	return stdout, nil
}

// DatasetExists implements interfaces.BigQuery.
func (x *Client) DatasetExists(ctx context.Context, dataset types.BQDatasetID) (bool, error) {
	if _, err := x.run(ctx, "show", "--format=json", x.datasetRef(dataset)); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateDataset implements interfaces.BigQuery.
func (x *Client) CreateDataset(ctx context.Context, dataset types.BQDatasetID, cfg *model.DatasetConfig) error {
	out, err := x.run(ctx,
		"--location="+cfg.Location,
		"mk",
		"-d",
		"--default_table_expiration", strconv.FormatInt(int64(cfg.DefaultTableExpiration.Seconds()), 10),
		"--description", cfg.Description,
		x.datasetRef(dataset),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create dataset", goerr.V("dataset", dataset))
	}

	utils.CtxLogger(ctx).Info("bq mk output", "output", string(bytes.TrimSpace(out)))
	return nil
}

// GetTableSchema implements interfaces.BigQuery.
func (x *Client) GetTableSchema(ctx context.Context, dataset types.BQDatasetID, table types.BQTableID) (bigquery.Schema, error) {
	out, err := x.run(ctx, "show", "--schema", "--format=json", x.tableRef(dataset, table))
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	schema, err := bigquery.SchemaFromJSON(bytes.TrimSpace(out))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse table schema", goerr.V("output", string(out)))
	}

	return schema, nil
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, spec *model.TableSpec) error {
	if spec.Schema == nil {
		return goerr.Wrap(types.ErrAssertion, "schema is required to create table", goerr.V("table", spec.String()))
	}

	out, err := x.run(ctx, "mk", "--table", x.tableRef(spec.Dataset, spec.Table), spec.Schema.Path)
	if err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("table", spec.String()))
	}

	utils.CtxLogger(ctx).Info("bq mk output", "output", string(bytes.TrimSpace(out)))
	return nil
}

// Load implements interfaces.BigQuery.
func (x *Client) Load(ctx context.Context, spec *model.LoadSpec) error {
	if spec.Schema == nil {
		return goerr.Wrap(types.ErrAssertion, "schema is required to load table", goerr.V("table", spec.String()))
	}

	out, err := x.run(ctx,
		"load",
		"--source_format=NEWLINE_DELIMITED_JSON",
		x.tableRef(spec.Dataset, spec.Table),
		spec.Source,
		spec.Schema.Path,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to load data", goerr.V("table", spec.String()), goerr.V("source", spec.Source))
	}

	utils.CtxLogger(ctx).Info("bq load output", "output", string(bytes.TrimSpace(out)))
	return nil
}

var _ interfaces.BigQuery = &Client{}
