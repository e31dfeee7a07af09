package dump

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/utils"
)

// Client is a dry-run implementation of interfaces.BigQuery. It writes what would be created or loaded into files under outDir instead of calling BigQuery.
type Client struct {
	outDir string
}

// New returns a new instance of dumper Client.
func New(outDir string) *Client {
	return &Client{
		outDir: filepath.Clean(outDir),
	}
}

func (x *Client) datasetPath(dataset types.BQDatasetID) string {
	return filepath.Join(x.outDir, fmt.Sprintf("%s.dataset.json", dataset))
}

func (x *Client) schemaPath(dataset types.BQDatasetID, table types.BQTableID) string {
	return filepath.Join(x.outDir, fmt.Sprintf("%s.%s.schema.json", dataset, table))
}

func (x *Client) logPath(dataset types.BQDatasetID, table types.BQTableID) string {
	return filepath.Join(x.outDir, fmt.Sprintf("%s.%s.log", dataset, table))
}

// DatasetExists implements interfaces.BigQuery. A dataset exists if "{outDir}/{dataset}.dataset.json" exists.
func (x *Client) DatasetExists(ctx context.Context, dataset types.BQDatasetID) (bool, error) {
	if _, err := os.Stat(x.datasetPath(dataset)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to stat dataset file", goerr.V("dataset", dataset))
	}
	return true, nil
}

type datasetFile struct {
	Location                      string `json:"location"`
	DefaultTableExpirationSeconds int64  `json:"default_table_expiration"`
	Description                   string `json:"description"`
}

// CreateDataset implements interfaces.BigQuery. It writes dataset configuration to "{outDir}/{dataset}.dataset.json".
func (x *Client) CreateDataset(ctx context.Context, dataset types.BQDatasetID, cfg *model.DatasetConfig) error {
	raw, err := json.MarshalIndent(datasetFile{
		Location:                      cfg.Location,
		DefaultTableExpirationSeconds: int64(cfg.DefaultTableExpiration.Seconds()),
		Description:                   cfg.Description,
	}, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal dataset config", goerr.V("dataset", dataset))
	}

	fpath := x.datasetPath(dataset)
	if err := os.WriteFile(fpath, raw, 0600); err != nil {
		return goerr.Wrap(err, "failed to write dataset file", goerr.V("file", fpath))
	}

	return nil
}

// GetTableSchema implements interfaces.BigQuery. It reads "{outDir}/{dataset}.{table}.schema.json" if exists.
func (x *Client) GetTableSchema(ctx context.Context, dataset types.BQDatasetID, table types.BQTableID) (bigquery.Schema, error) {
	fpath := x.schemaPath(dataset, table)
	raw, err := os.ReadFile(filepath.Clean(fpath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read schema file", goerr.V("file", fpath))
	}

	schema, err := bigquery.SchemaFromJSON(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse schema file", goerr.V("file", fpath))
	}
	return schema, nil
}

// CreateTable implements interfaces.BigQuery. It writes schema to "{outDir}/{dataset}.{table}.schema.json". If the file exists, it overwrites the file.
func (x *Client) CreateTable(ctx context.Context, spec *model.TableSpec) error {
	if spec.Schema == nil {
		return goerr.Wrap(types.ErrAssertion, "schema is required to create table", goerr.V("table", spec.String()))
	}

	raw, err := spec.Schema.Fields.ToJSONFields()
	if err != nil {
		return goerr.Wrap(err, "failed to convert schema to JSON fields", goerr.V("table", spec.String()))
	}

	fpath := x.schemaPath(spec.Dataset, spec.Table)
	if err := os.WriteFile(fpath, raw, 0600); err != nil {
		return goerr.Wrap(err, "failed to write schema", goerr.V("file", fpath))
	}

	return nil
}

// Load implements interfaces.BigQuery. It validates each line of the source file as JSON and appends it to "{outDir}/{dataset}.{table}.log".
func (x *Client) Load(ctx context.Context, spec *model.LoadSpec) error {
	src, err := os.Open(filepath.Clean(spec.Source))
	if err != nil {
		return goerr.Wrap(err, "failed to open source file", goerr.V("source", spec.Source))
	}
	defer utils.SafeClose(src)

	fpath := x.logPath(spec.Dataset, spec.Table)
	fd, err := os.OpenFile(filepath.Clean(fpath), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return goerr.Wrap(err, "failed to create file", goerr.V("file", fpath))
	}
	defer utils.SafeClose(fd)

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	encoder := json.NewEncoder(fd)

	var n int
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record any
		if err := json.Unmarshal(line, &record); err != nil {
			return goerr.Wrap(err, "invalid JSON line in source", goerr.V("source", spec.Source), goerr.V("line", n+1))
		}
		if err := encoder.Encode(record); err != nil {
			return goerr.Wrap(err, "failed to encode record", goerr.V("file", fpath))
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return goerr.Wrap(err, "failed to read source file", goerr.V("source", spec.Source))
	}

	utils.CtxLogger(ctx).Info("dumped records", "table", spec.String(), "file", fpath, "count", n)
	return nil
}

var _ interfaces.BigQuery = &Client{}
