package model_test

import (
	"path/filepath"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
)

func TestLoadTableSchema(t *testing.T) {
	t.Run("valid schema", func(t *testing.T) {
		schema := gt.R1(model.LoadTableSchema(filepath.Join("testdata", "schema.json"))).NoError(t)
		gt.Equal(t, schema.Path, filepath.Join("testdata", "schema.json"))
		gt.A(t, schema.Fields).Length(3).
			At(0, func(t testing.TB, v *bigquery.FieldSchema) {
				gt.Equal(t, v.Name, "id")
				gt.True(t, v.Required)
			}).
			At(2, func(t testing.TB, v *bigquery.FieldSchema) {
				gt.Equal(t, v.Name, "categories")
				gt.True(t, v.Repeated)
			})
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := model.LoadTableSchema(filepath.Join("testdata", "no_such_schema.json"))
		gt.Error(t, err)
	})

	t.Run("broken file", func(t *testing.T) {
		_, err := model.LoadTableSchema(filepath.Join("testdata", "broken_schema.json"))
		gt.Error(t, err)
	})
}

func TestTableSpec_String(t *testing.T) {
	spec := model.TableSpec{Dataset: model.DefaultEventsDataset, Table: model.DefaultEventsTable}
	gt.Equal(t, spec.String(), "user_events.events")
}
