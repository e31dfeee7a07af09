package model

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
)

type DatasetConfig struct {
	Location               string
	DefaultTableExpiration time.Duration
	Description            string
}

const (
	DefaultDatasetLocation    = "US"
	DefaultTableExpiration    = time.Hour
	DefaultDatasetDescription = "This is my dataset."
)

// TableSchema is a BigQuery JSON schema file. The bq CLI consumes Path, the API client consumes Fields.
type TableSchema struct {
	Path   string
	Fields bigquery.Schema
}

func LoadTableSchema(path string) (*TableSchema, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read schema file", goerr.V("path", path))
	}

	fields, err := bigquery.SchemaFromJSON(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse schema file", goerr.V("path", path))
	}

	return &TableSchema{
		Path:   path,
		Fields: fields,
	}, nil
}

type TableSpec struct {
	Dataset types.BQDatasetID
	Table   types.BQTableID
	Schema  *TableSchema
}

// String returns dataset.table
func (x TableSpec) String() string {
	return fmt.Sprintf("%s.%s", x.Dataset, x.Table)
}

// LoadSpec describes a newline delimited JSON file to be loaded into a table
type LoadSpec struct {
	TableSpec
	Source string
}

const (
	DefaultProductsDataset types.BQDatasetID = "products"
	DefaultProductsTable   types.BQTableID   = "products"
	DefaultEventsDataset   types.BQDatasetID = "user_events"
	DefaultEventsTable     types.BQTableID   = "events"
)
