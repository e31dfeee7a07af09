package config

import (
	"log/slog"
	"path/filepath"

	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/urfave/cli/v2"
)

// Resource locates fixture and schema files and names the tables they are loaded into
type Resource struct {
	dir string

	productsFile  string
	eventsFile    string
	productSchema string
	eventsSchema  string

	productsDataset types.BQDatasetID
	productsTable   types.BQTableID
	eventsDataset   types.BQDatasetID
	eventsTable     types.BQTableID
}

func (x *Resource) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Category:    "Resource",
			Name:        "resource-dir",
			Aliases:     []string{"d"},
			Usage:       "Directory of fixture and schema files",
			EnvVars:     []string{"RETAILPREP_RESOURCE_DIR"},
			Destination: &x.dir,
			Value:       "../resources",
		},
		&cli.StringFlag{
			Category:    "Resource",
			Name:        "products-file",
			Usage:       "Products fixture file name in resource directory",
			EnvVars:     []string{"RETAILPREP_PRODUCTS_FILE"},
			Destination: &x.productsFile,
			Value:       "products.json",
		},
		&cli.StringFlag{
			Category:    "Resource",
			Name:        "events-file",
			Usage:       "User events fixture file name in resource directory",
			EnvVars:     []string{"RETAILPREP_EVENTS_FILE"},
			Destination: &x.eventsFile,
			Value:       "user_events.json",
		},
		&cli.StringFlag{
			Category:    "Resource",
			Name:        "product-schema-file",
			Usage:       "BigQuery schema file name of products table",
			EnvVars:     []string{"RETAILPREP_PRODUCT_SCHEMA_FILE"},
			Destination: &x.productSchema,
			Value:       "product_schema.json",
		},
		&cli.StringFlag{
			Category:    "Resource",
			Name:        "events-schema-file",
			Usage:       "BigQuery schema file name of user events table",
			EnvVars:     []string{"RETAILPREP_EVENTS_SCHEMA_FILE"},
			Destination: &x.eventsSchema,
			Value:       "events_schema.json",
		},
		&cli.StringFlag{
			Category:    "Resource",
			Name:        "products-dataset",
			Usage:       "BigQuery dataset of products",
			EnvVars:     []string{"RETAILPREP_PRODUCTS_DATASET"},
			Destination: (*string)(&x.productsDataset),
			Value:       string(model.DefaultProductsDataset),
		},
		&cli.StringFlag{
			Category:    "Resource",
			Name:        "products-table",
			Usage:       "BigQuery table of products",
			EnvVars:     []string{"RETAILPREP_PRODUCTS_TABLE"},
			Destination: (*string)(&x.productsTable),
			Value:       string(model.DefaultProductsTable),
		},
		&cli.StringFlag{
			Category:    "Resource",
			Name:        "events-dataset",
			Usage:       "BigQuery dataset of user events",
			EnvVars:     []string{"RETAILPREP_EVENTS_DATASET"},
			Destination: (*string)(&x.eventsDataset),
			Value:       string(model.DefaultEventsDataset),
		},
		&cli.StringFlag{
			Category:    "Resource",
			Name:        "events-table",
			Usage:       "BigQuery table of user events",
			EnvVars:     []string{"RETAILPREP_EVENTS_TABLE"},
			Destination: (*string)(&x.eventsTable),
			Value:       string(model.DefaultEventsTable),
		},
	}
}

func (x *Resource) path(name string) string {
	return filepath.Join(x.dir, name)
}

func (x *Resource) ProductsFixture(bucket types.CSBucket) model.Fixture {
	return model.NewFixture(x.path(x.productsFile), bucket)
}

func (x *Resource) EventsFixture(bucket types.CSBucket) model.Fixture {
	return model.NewFixture(x.path(x.eventsFile), bucket)
}

// LoadSpecs reads both schema files and returns products and events load specs in this order
func (x *Resource) LoadSpecs() ([]model.LoadSpec, error) {
	productSchema, err := model.LoadTableSchema(x.path(x.productSchema))
	if err != nil {
		return nil, err
	}
	eventsSchema, err := model.LoadTableSchema(x.path(x.eventsSchema))
	if err != nil {
		return nil, err
	}

	return []model.LoadSpec{
		{
			TableSpec: model.TableSpec{
				Dataset: x.productsDataset,
				Table:   x.productsTable,
				Schema:  productSchema,
			},
			Source: x.path(x.productsFile),
		},
		{
			TableSpec: model.TableSpec{
				Dataset: x.eventsDataset,
				Table:   x.eventsTable,
				Schema:  eventsSchema,
			},
			Source: x.path(x.eventsFile),
		},
	}, nil
}

func (x *Resource) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dir", x.dir),
		slog.String("products_file", x.productsFile),
		slog.String("events_file", x.eventsFile),
		slog.String("product_schema_file", x.productSchema),
		slog.String("events_schema_file", x.eventsSchema),
		slog.String("products_table", string(x.productsDataset)+"."+string(x.productsTable)),
		slog.String("events_table", string(x.eventsDataset)+"."+string(x.eventsTable)),
	)
}
