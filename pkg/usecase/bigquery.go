package usecase

import (
	"context"

	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/utils"
)

func (x *UseCase) EnsureDataset(ctx context.Context, dataset types.BQDatasetID) error {
	logger := utils.CtxLogger(ctx)
	logger.Info("creating dataset", "dataset", dataset)

	exists, err := x.clients.BigQuery().DatasetExists(ctx, dataset)
	if err != nil {
		return err
	}
	if exists {
		logger.Info("dataset already exists", "dataset", dataset)
		return nil
	}

	cfg := x.datasetConfig
	if err := x.clients.BigQuery().CreateDataset(ctx, dataset, &cfg); err != nil {
		return err
	}
	logger.Info("dataset is created", "dataset", dataset)

	return nil
}

// EnsureTable creates the table unless it exists. An existing table is never modified even if its schema differs.
func (x *UseCase) EnsureTable(ctx context.Context, spec *model.TableSpec) error {
	if spec.Schema == nil {
		return goerr.Wrap(types.ErrInvalidOption, "table schema is required", goerr.V("table", spec.String()))
	}

	logger := utils.CtxLogger(ctx)
	logger.Info("creating BigQuery table", "table", spec.String())

	current, err := x.clients.BigQuery().GetTableSchema(ctx, spec.Dataset, spec.Table)
	if err != nil {
		return err
	}

	if current == nil {
		if err := x.clients.BigQuery().CreateTable(ctx, spec); err != nil {
			return err
		}
		logger.Info("table is created", "table", spec.String(), "schema", spec.Schema.Path)
		return nil
	}

	if !bqs.Equal(current, spec.Schema.Fields) {
		logger.Warn("table already exists with different schema, leave it as is",
			"table", spec.String(),
			"schema", spec.Schema.Path,
		)
		return nil
	}

	logger.Info("table already exists", "table", spec.String())
	return nil
}

func (x *UseCase) LoadTable(ctx context.Context, spec *model.LoadSpec) error {
	utils.CtxLogger(ctx).Info("uploading data to the table", "source", spec.Source, "table", spec.String())
	return x.clients.BigQuery().Load(ctx, spec)
}

// ProvisionTable ensures dataset and table of the spec, then loads the source file into the table
func (x *UseCase) ProvisionTable(ctx context.Context, spec *model.LoadSpec) error {
	if err := x.EnsureDataset(ctx, spec.Dataset); err != nil {
		return err
	}
	if err := x.EnsureTable(ctx, &spec.TableSpec); err != nil {
		return err
	}
	return x.LoadTable(ctx, spec)
}
