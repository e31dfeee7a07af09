package bq

import (
	"context"
	"sync"

	"cloud.google.com/go/bigquery"
	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
)

type Mock struct {
	MockDatasetExists  func(ctx context.Context, dataset types.BQDatasetID) (bool, error)
	MockCreateDataset  func(ctx context.Context, dataset types.BQDatasetID, cfg *model.DatasetConfig) error
	MockGetTableSchema func(ctx context.Context, dataset types.BQDatasetID, table types.BQTableID) (bigquery.Schema, error)
	MockCreateTable    func(ctx context.Context, spec *model.TableSpec) error
	MockLoad           func(ctx context.Context, spec *model.LoadSpec) error
}

func NewMock() *Mock {
	return &Mock{}
}

var _ interfaces.BigQuery = &Mock{}

func (x *Mock) DatasetExists(ctx context.Context, dataset types.BQDatasetID) (bool, error) {
	if x.MockDatasetExists != nil {
		return x.MockDatasetExists(ctx, dataset)
	}
	return false, nil
}

func (x *Mock) CreateDataset(ctx context.Context, dataset types.BQDatasetID, cfg *model.DatasetConfig) error {
	if x.MockCreateDataset != nil {
		return x.MockCreateDataset(ctx, dataset, cfg)
	}
	return nil
}

func (x *Mock) GetTableSchema(ctx context.Context, dataset types.BQDatasetID, table types.BQTableID) (bigquery.Schema, error) {
	if x.MockGetTableSchema != nil {
		return x.MockGetTableSchema(ctx, dataset, table)
	}
	return nil, nil
}

func (x *Mock) CreateTable(ctx context.Context, spec *model.TableSpec) error {
	if x.MockCreateTable != nil {
		return x.MockCreateTable(ctx, spec)
	}
	return nil
}

func (x *Mock) Load(ctx context.Context, spec *model.LoadSpec) error {
	if x.MockLoad != nil {
		return x.MockLoad(ctx, spec)
	}
	return nil
}

func NewGeneralMock() *GeneralMock {
	return &GeneralMock{
		Datasets: map[types.BQDatasetID]*model.DatasetConfig{},
		Tables:   map[string]bigquery.Schema{},
	}
}

// GeneralMock keeps datasets and tables in memory and records every mutation
type GeneralMock struct {
	Datasets map[types.BQDatasetID]*model.DatasetConfig
	Tables   map[string]bigquery.Schema // key is dataset.table

	CreatedDatasets []types.BQDatasetID
	CreatedTables   []*model.TableSpec
	Loaded          []*model.LoadSpec

	mutex sync.Mutex
}

// DatasetExists implements interfaces.BigQuery.
func (x *GeneralMock) DatasetExists(ctx context.Context, dataset types.BQDatasetID) (bool, error) {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	_, ok := x.Datasets[dataset]
	return ok, nil
}

// CreateDataset implements interfaces.BigQuery.
func (x *GeneralMock) CreateDataset(ctx context.Context, dataset types.BQDatasetID, cfg *model.DatasetConfig) error {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	x.Datasets[dataset] = cfg
	x.CreatedDatasets = append(x.CreatedDatasets, dataset)
	return nil
}

// GetTableSchema implements interfaces.BigQuery.
func (x *GeneralMock) GetTableSchema(ctx context.Context, dataset types.BQDatasetID, table types.BQTableID) (bigquery.Schema, error) {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	key := model.TableSpec{Dataset: dataset, Table: table}.String()
	return x.Tables[key], nil
}

// CreateTable implements interfaces.BigQuery.
func (x *GeneralMock) CreateTable(ctx context.Context, spec *model.TableSpec) error {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	var fields bigquery.Schema
	if spec.Schema != nil {
		fields = spec.Schema.Fields
	}
	x.Tables[spec.String()] = fields
	x.CreatedTables = append(x.CreatedTables, spec)
	return nil
}

// Load implements interfaces.BigQuery.
func (x *GeneralMock) Load(ctx context.Context, spec *model.LoadSpec) error {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	x.Loaded = append(x.Loaded, spec)
	return nil
}

var _ interfaces.BigQuery = &GeneralMock{}
