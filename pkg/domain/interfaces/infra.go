package interfaces

import (
	"context"
	"io"

	"cloud.google.com/go/bigquery"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
)

type CloudStorage interface {
	ListBuckets(ctx context.Context, project types.GoogleProjectID) ([]*model.Bucket, error)
	CreateBucket(ctx context.Context, project types.GoogleProjectID, bucket types.CSBucket, cfg *model.BucketConfig) (*model.Bucket, error)
	Upload(ctx context.Context, obj model.CloudStorageObject, r io.Reader) error
}

type Retail interface {
	ImportProducts(ctx context.Context, req *model.ImportProductsRequest) (RetailOperation, error)
}

// RetailOperation is a long running operation of the Retail API
type RetailOperation interface {
	Name() string
	Poll(ctx context.Context) (bool, error)
	// Metadata returns nil without error if the operation has no metadata yet
	Metadata() (*model.ImportMetadata, error)
}

type BigQuery interface {
	DatasetExists(ctx context.Context, dataset types.BQDatasetID) (bool, error)
	CreateDataset(ctx context.Context, dataset types.BQDatasetID, cfg *model.DatasetConfig) error

	// GetTableSchema returns nil schema without error if the table does not exist
	GetTableSchema(ctx context.Context, dataset types.BQDatasetID, table types.BQTableID) (bigquery.Schema, error)
	CreateTable(ctx context.Context, spec *model.TableSpec) error
	Load(ctx context.Context, spec *model.LoadSpec) error
}

type PubSub interface {
	EnsureTopic(ctx context.Context, project types.GoogleProjectID, topic types.PubSubTopicID) error
}
