package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/utils"
)

// EnsureBucket returns the bucket if the project already has it, otherwise creates it.
func (x *UseCase) EnsureBucket(ctx context.Context, bucket types.CSBucket) (*model.Bucket, error) {
	if x.projectID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "project ID is required to create bucket")
	}
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket name is empty")
	}

	logger := utils.CtxLogger(ctx)
	logger.Info("creating new bucket", "bucket", bucket)

	buckets, err := x.clients.CloudStorage().ListBuckets(ctx, x.projectID)
	if err != nil {
		return nil, err
	}
	for _, b := range buckets {
		if b.Name == bucket {
			logger.Info("bucket already exists", "bucket", b)
			return b, nil
		}
	}

	cfg := x.bucketConfig
	created, err := x.clients.CloudStorage().CreateBucket(ctx, x.projectID, bucket, &cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("created bucket", "bucket", created)

	return created, nil
}

// UploadFixture uploads a local file to Cloud Storage
func (x *UseCase) UploadFixture(ctx context.Context, fixture *model.Fixture) error {
	fd, err := os.Open(filepath.Clean(fixture.Path))
	if err != nil {
		return goerr.Wrap(err, "failed to open fixture file", goerr.V("path", fixture.Path))
	}
	defer utils.SafeClose(fd)

	stat, err := fd.Stat()
	if err != nil {
		return goerr.Wrap(err, "failed to stat fixture file", goerr.V("path", fixture.Path))
	}

	if err := x.clients.CloudStorage().Upload(ctx, fixture.Object, fd); err != nil {
		return err
	}

	utils.CtxLogger(ctx).Info("data has been uploaded",
		"path", fixture.Path,
		"url", fixture.Object.URL(),
		"size", humanize.Bytes(uint64(stat.Size())), // #nosec G115 file size is never negative
	)
	return nil
}

// ProvisionBucket ensures the bucket of the fixture and uploads the fixture into it
func (x *UseCase) ProvisionBucket(ctx context.Context, fixture *model.Fixture) error {
	if _, err := x.EnsureBucket(ctx, fixture.Object.Bucket); err != nil {
		return err
	}
	return x.UploadFixture(ctx, fixture)
}
