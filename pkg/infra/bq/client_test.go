package bq_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/infra/bq"
	"github.com/secmon-lab/retailprep/pkg/utils"
)

func TestDatasetAndTable(t *testing.T) {
	var (
		projectID = types.GoogleProjectID(utils.LoadEnv(t, "TEST_BIGQUERY_PROJECT_ID"))
		datasetID = types.BQDatasetID(utils.LoadEnv(t, "TEST_BIGQUERY_DATASET_ID"))
	)

	ctx := context.Background()
	client := gt.R1(bq.New(ctx, projectID)).NoError(t)
	defer utils.SafeClose(client)

	exists := gt.R1(client.DatasetExists(ctx, datasetID)).NoError(t)
	if !exists {
		gt.NoError(t, client.CreateDataset(ctx, datasetID, &model.DatasetConfig{
			Location:               model.DefaultDatasetLocation,
			DefaultTableExpiration: model.DefaultTableExpiration,
			Description:            model.DefaultDatasetDescription,
		}))
	}
	gt.True(t, gt.R1(client.DatasetExists(ctx, datasetID)).NoError(t))

	tableID := types.BQTableID(time.Now().Format("products_20060102_150405"))
	notYet := gt.R1(client.GetTableSchema(ctx, datasetID, tableID)).NoError(t)
	gt.True(t, notYet == nil)

	schema := &model.TableSchema{
		Fields: bigquery.Schema{
			{Name: "id", Type: bigquery.StringFieldType, Required: true},
			{Name: "title", Type: bigquery.StringFieldType},
		},
	}
	spec := model.TableSpec{Dataset: datasetID, Table: tableID, Schema: schema}
	gt.NoError(t, client.CreateTable(ctx, &spec))

	created := gt.R1(client.GetTableSchema(ctx, datasetID, tableID)).NoError(t)
	gt.True(t, bqs.Equal(created, schema.Fields))

	src := filepath.Join(t.TempDir(), "products.json")
	gt.NoError(t, os.WriteFile(src, []byte(`{"id":"1","title":"shirt"}`+"\n"+`{"id":"2","title":"shoes"}`+"\n"), 0600))
	gt.NoError(t, client.Load(ctx, &model.LoadSpec{TableSpec: spec, Source: src}))
}
