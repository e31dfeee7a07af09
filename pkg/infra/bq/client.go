package bq

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/utils"
	"google.golang.org/api/googleapi"
)

// Client operates BigQuery through the BigQuery API directly, without the bq command
type Client struct {
	bqClient  *bigquery.Client
	projectID types.GoogleProjectID
}

var _ interfaces.BigQuery = &Client{}

func New(ctx context.Context, projectID types.GoogleProjectID) (*Client, error) {
	bqClient, err := bigquery.NewClient(ctx, projectID.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create bigquery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient:  bqClient,
		projectID: projectID,
	}, nil
}

func (x *Client) Close() error {
	if err := x.bqClient.Close(); err != nil {
		return goerr.Wrap(err, "failed to close bigquery client")
	}
	return nil
}

func isNotFound(err error) bool {
	var gErr *googleapi.Error
	return errors.As(err, &gErr) && gErr.Code == http.StatusNotFound
}

// DatasetExists implements interfaces.BigQuery.
func (x *Client) DatasetExists(ctx context.Context, dataset types.BQDatasetID) (bool, error) {
	if _, err := x.bqClient.Dataset(dataset.String()).Metadata(ctx); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get dataset metadata", goerr.V("dataset", dataset))
	}

	return true, nil
}

// CreateDataset implements interfaces.BigQuery.
func (x *Client) CreateDataset(ctx context.Context, dataset types.BQDatasetID, cfg *model.DatasetConfig) error {
	md := &bigquery.DatasetMetadata{
		Location:               cfg.Location,
		DefaultTableExpiration: cfg.DefaultTableExpiration,
		Description:            cfg.Description,
	}
	if err := x.bqClient.Dataset(dataset.String()).Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create dataset", goerr.V("dataset", dataset))
	}

	return nil
}

// GetTableSchema implements interfaces.BigQuery. If the table does not exist, it returns nil.
func (x *Client) GetTableSchema(ctx context.Context, dataset types.BQDatasetID, table types.BQTableID) (bigquery.Schema, error) {
	md, err := x.bqClient.Dataset(dataset.String()).Table(table.String()).Metadata(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", goerr.V("dataset", dataset), goerr.V("table", table))
	}

	return md.Schema, nil
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, spec *model.TableSpec) error {
	if spec.Schema == nil {
		return goerr.Wrap(types.ErrAssertion, "schema is required to create table", goerr.V("table", spec.String()))
	}

	md := &bigquery.TableMetadata{
		Schema: spec.Schema.Fields,
	}
	if err := x.bqClient.Dataset(spec.Dataset.String()).Table(spec.Table.String()).Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("table", spec.String()))
	}

	return nil
}

// Load implements interfaces.BigQuery. It runs a load job with the local newline delimited JSON file and waits for its completion.
func (x *Client) Load(ctx context.Context, spec *model.LoadSpec) error {
	if spec.Schema == nil {
		return goerr.Wrap(types.ErrAssertion, "schema is required to load table", goerr.V("table", spec.String()))
	}

	fd, err := os.Open(filepath.Clean(spec.Source))
	if err != nil {
		return goerr.Wrap(err, "failed to open source file", goerr.V("source", spec.Source))
	}
	defer utils.SafeClose(fd)

	src := bigquery.NewReaderSource(fd)
	src.SourceFormat = bigquery.JSON
	src.Schema = spec.Schema.Fields

	loader := x.bqClient.Dataset(spec.Dataset.String()).Table(spec.Table.String()).LoaderFrom(src)
	loader.WriteDisposition = bigquery.WriteAppend

	job, err := loader.Run(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to start load job", goerr.V("table", spec.String()))
	}
	utils.CtxLogger(ctx).Info("load job started", "job_id", job.ID(), "table", spec.String())

	status, err := job.Wait(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to wait load job", goerr.V("job_id", job.ID()))
	}
	if err := status.Err(); err != nil {
		return goerr.Wrap(err, "load job failed",
			goerr.V("job_id", job.ID()),
			goerr.V("table", spec.String()),
			goerr.V("errors", status.Errors),
		)
	}

	if status.Statistics != nil {
		if stats, ok := status.Statistics.Details.(*bigquery.LoadStatistics); ok {
			utils.CtxLogger(ctx).Info("load job completed", "table", spec.String(), "output_rows", stats.OutputRows)
		}
	}

	return nil
}
