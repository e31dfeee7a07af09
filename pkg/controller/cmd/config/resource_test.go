package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/retailprep/pkg/controller/cmd/config"
	"github.com/urfave/cli/v2"
)

const testSchema = `[{"name": "id", "type": "STRING", "mode": "REQUIRED"}]`

func TestResource(t *testing.T) {
	dir := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "product_schema.json"), []byte(testSchema), 0600))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "events_schema.json"), []byte(testSchema), 0600))

	var resource config.Resource
	app := cli.App{
		Name:  "test",
		Flags: resource.Flags(),
		Action: func(c *cli.Context) error {
			products := resource.ProductsFixture("products-bucket")
			gt.Equal(t, products.Path, filepath.Join(dir, "products.json"))
			gt.Equal(t, products.Object.URL(), "gs://products-bucket/products.json")

			events := resource.EventsFixture("events-bucket")
			gt.Equal(t, events.Object.URL(), "gs://events-bucket/user_events.json")

			specs := gt.R1(resource.LoadSpecs()).NoError(t)
			gt.A(t, specs).Length(2)
			gt.Equal(t, specs[0].String(), "products.products")
			gt.Equal(t, specs[0].Source, filepath.Join(dir, "products.json"))
			gt.Equal(t, specs[1].String(), "user_events.custom_events")
			gt.Equal(t, specs[1].Schema.Path, filepath.Join(dir, "events_schema.json"))
			return nil
		},
	}

	gt.NoError(t, app.Run([]string{"cmd", "--resource-dir", dir, "--events-table", "custom_events"}))
}

func TestResourceMissingSchema(t *testing.T) {
	var resource config.Resource
	app := cli.App{
		Name:  "test",
		Flags: resource.Flags(),
		Action: func(c *cli.Context) error {
			_, err := resource.LoadSpecs()
			gt.Error(t, err)
			return nil
		},
	}

	gt.NoError(t, app.Run([]string{"cmd", "--resource-dir", t.TempDir()}))
}
