package interfaces

import (
	"context"

	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
)

type UseCase interface {
	EnsureBucket(ctx context.Context, bucket types.CSBucket) (*model.Bucket, error)
	UploadFixture(ctx context.Context, fixture *model.Fixture) error
	ProvisionBucket(ctx context.Context, fixture *model.Fixture) error

	ImportProducts(ctx context.Context, obj model.CloudStorageObject) (*model.ImportMetadata, error)

	EnsureDataset(ctx context.Context, dataset types.BQDatasetID) error
	EnsureTable(ctx context.Context, spec *model.TableSpec) error
	LoadTable(ctx context.Context, spec *model.LoadSpec) error
	ProvisionTable(ctx context.Context, spec *model.LoadSpec) error

	Setup(ctx context.Context, plan *model.SetupPlan) error
}
