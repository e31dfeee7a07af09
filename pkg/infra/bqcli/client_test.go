package bqcli_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/infra/bqcli"
)

type call struct {
	name string
	args []string
}

type mockRunner struct {
	calls  []call
	stdout []byte
	stderr []byte
	err    error
}

func (x *mockRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	x.calls = append(x.calls, call{name: name, args: args})
	return x.stdout, x.stderr, x.err
}

var testSchema = &model.TableSchema{
	Path: "../resources/product_schema.json",
	Fields: bigquery.Schema{
		{Name: "id", Type: bigquery.StringFieldType},
	},
}

func TestCreateDataset(t *testing.T) {
	runner := &mockRunner{}
	client := bqcli.New("my-project", bqcli.WithRunner(runner))

	gt.NoError(t, client.CreateDataset(context.Background(), "products", &model.DatasetConfig{
		Location:               "US",
		DefaultTableExpiration: time.Hour,
		Description:            "This is my dataset.",
	}))

	gt.A(t, runner.calls).Length(1).At(0, func(t testing.TB, v call) {
		gt.Equal(t, v.name, "bq")
		gt.Equal(t, v.args, []string{
			"--location=US", "mk", "-d",
			"--default_table_expiration", "3600",
			"--description", "This is my dataset.",
			"my-project:products",
		})
	})
}

func TestCreateTable(t *testing.T) {
	runner := &mockRunner{}
	client := bqcli.New("my-project", bqcli.WithRunner(runner), bqcli.WithCommand("/usr/bin/bq"))

	gt.NoError(t, client.CreateTable(context.Background(), &model.TableSpec{
		Dataset: "products",
		Table:   "products",
		Schema:  testSchema,
	}))

	gt.A(t, runner.calls).Length(1).At(0, func(t testing.TB, v call) {
		gt.Equal(t, v.name, "/usr/bin/bq")
		gt.Equal(t, v.args, []string{
			"mk", "--table", "my-project:products.products", "../resources/product_schema.json",
		})
	})
}

func TestLoad(t *testing.T) {
	runner := &mockRunner{}
	client := bqcli.New("my-project", bqcli.WithRunner(runner))

	gt.NoError(t, client.Load(context.Background(), &model.LoadSpec{
		TableSpec: model.TableSpec{
			Dataset: "user_events",
			Table:   "events",
			Schema:  &model.TableSchema{Path: "../resources/events_schema.json"},
		},
		Source: "../resources/user_events.json",
	}))

	gt.A(t, runner.calls).Length(1).At(0, func(t testing.TB, v call) {
		gt.Equal(t, v.args, []string{
			"load", "--source_format=NEWLINE_DELIMITED_JSON",
			"my-project:user_events.events",
			"../resources/user_events.json",
			"../resources/events_schema.json",
		})
	})
}

func TestDatasetExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		runner := &mockRunner{stdout: []byte(`{"kind":"bigquery#dataset"}`)}
		client := bqcli.New("my-project", bqcli.WithRunner(runner))

		gt.True(t, gt.R1(client.DatasetExists(context.Background(), "products")).NoError(t))
		gt.Equal(t, runner.calls[0].args, []string{"show", "--format=json", "my-project:products"})
	})

	t.Run("not found", func(t *testing.T) {
		runner := &mockRunner{
			stdout: []byte("BigQuery error in show operation: Not found: Dataset my-project:products"),
			err:    errors.New("exit status 2"),
		}
		client := bqcli.New("my-project", bqcli.WithRunner(runner))

		gt.False(t, gt.R1(client.DatasetExists(context.Background(), "products")).NoError(t))
	})

	t.Run("other failure", func(t *testing.T) {
		runner := &mockRunner{
			stderr: []byte("You do not currently have an active account selected."),
			err:    errors.New("exit status 1"),
		}
		client := bqcli.New("my-project", bqcli.WithRunner(runner))

		_, err := client.DatasetExists(context.Background(), "products")
		gt.Error(t, err).Is(types.ErrCommandFailed)
	})
}

func TestGetTableSchema(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		runner := &mockRunner{
			stdout: []byte(`[{"name":"id","type":"STRING","mode":"REQUIRED"},{"name":"title","type":"STRING"}]` + "\n"),
		}
		client := bqcli.New("my-project", bqcli.WithRunner(runner))

		schema := gt.R1(client.GetTableSchema(context.Background(), "products", "products")).NoError(t)
		gt.A(t, schema).Length(2).At(0, func(t testing.TB, v *bigquery.FieldSchema) {
			gt.Equal(t, v.Name, "id")
			gt.True(t, v.Required)
		})
		gt.Equal(t, runner.calls[0].args, []string{"show", "--schema", "--format=json", "my-project:products.products"})
	})

	t.Run("not found", func(t *testing.T) {
		runner := &mockRunner{
			stdout: []byte("BigQuery error in show operation: Not found: Table my-project:products.products"),
			err:    errors.New("exit status 2"),
		}
		client := bqcli.New("my-project", bqcli.WithRunner(runner))

		schema := gt.R1(client.GetTableSchema(context.Background(), "products", "products")).NoError(t)
		gt.True(t, schema == nil)
	})
}

func TestCreateTableWithoutSchema(t *testing.T) {
	client := bqcli.New("my-project", bqcli.WithRunner(&mockRunner{}))
	err := client.CreateTable(context.Background(), &model.TableSpec{Dataset: "d", Table: "t"})
	gt.Error(t, err).Is(types.ErrAssertion)
}
