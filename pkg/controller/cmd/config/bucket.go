package config

import (
	"log/slog"

	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/urfave/cli/v2"
)

type Bucket struct {
	products     types.CSBucket
	events       types.CSBucket
	location     string
	storageClass string
}

const (
	EnvBucketName       = "BUCKET_NAME"
	EnvEventsBucketName = "EVENTS_BUCKET_NAME"
)

func (x *Bucket) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Category:    "Bucket",
			Name:        "bucket-name",
			Usage:       "Cloud Storage bucket for products.json",
			EnvVars:     []string{EnvBucketName},
			Destination: (*string)(&x.products),
		},
		&cli.StringFlag{
			Category:    "Bucket",
			Name:        "events-bucket-name",
			Usage:       "Cloud Storage bucket for user_events.json",
			EnvVars:     []string{EnvEventsBucketName},
			Destination: (*string)(&x.events),
		},
		&cli.StringFlag{
			Category:    "Bucket",
			Name:        "bucket-location",
			Usage:       "Location of newly created buckets",
			EnvVars:     []string{"RETAILPREP_BUCKET_LOCATION"},
			Destination: &x.location,
			Value:       model.DefaultBucketLocation,
		},
		&cli.StringFlag{
			Category:    "Bucket",
			Name:        "bucket-storage-class",
			Usage:       "Storage class of newly created buckets",
			EnvVars:     []string{"RETAILPREP_BUCKET_STORAGE_CLASS"},
			Destination: &x.storageClass,
			Value:       model.DefaultBucketStorageClass,
		},
	}
}

func (x *Bucket) Products() types.CSBucket { return x.products }
func (x *Bucket) Events() types.CSBucket   { return x.events }

func (x *Bucket) RequireProducts() Requirement {
	return Requirement{Flag: "bucket-name", Env: EnvBucketName, Value: x.products.String()}
}

func (x *Bucket) RequireEvents() Requirement {
	return Requirement{Flag: "events-bucket-name", Env: EnvEventsBucketName, Value: x.events.String()}
}

func (x *Bucket) Configure() model.BucketConfig {
	return model.BucketConfig{
		Location:     x.location,
		StorageClass: x.storageClass,
	}
}

func (x *Bucket) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("products", x.products.String()),
		slog.String("events", x.events.String()),
		slog.String("location", x.location),
		slog.String("storage_class", x.storageClass),
	)
}
