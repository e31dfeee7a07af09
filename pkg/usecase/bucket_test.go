package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/infra"
	"github.com/secmon-lab/retailprep/pkg/infra/cs"
	"github.com/secmon-lab/retailprep/pkg/usecase"
)

func TestEnsureBucket(t *testing.T) {
	testCases := map[string]struct {
		existing    []types.CSBucket
		bucket      types.CSBucket
		createCount int
	}{
		"create new bucket": {
			existing:    []types.CSBucket{"other-bucket"},
			bucket:      "products-bucket",
			createCount: 1,
		},
		"bucket already exists": {
			existing:    []types.CSBucket{"other-bucket", "products-bucket"},
			bucket:      "products-bucket",
			createCount: 0,
		},
	}

	for title, tc := range testCases {
		t.Run(title, func(t *testing.T) {
			mock := cs.NewGeneralMock(tc.existing...)
			uc := usecase.New(
				infra.New(infra.WithCloudStorage(mock)),
				usecase.WithProjectID("my-project"),
			)

			b := gt.R1(uc.EnsureBucket(context.Background(), tc.bucket)).NoError(t)
			gt.Equal(t, b.Name, tc.bucket)
			gt.A(t, mock.Created).Length(tc.createCount)
		})
	}
}

func TestEnsureBucketConfig(t *testing.T) {
	var created *model.BucketConfig
	mock := &cs.Mock{
		MockCreateBucket: func(ctx context.Context, project types.GoogleProjectID, bucket types.CSBucket, cfg *model.BucketConfig) (*model.Bucket, error) {
			gt.Equal(t, project, "my-project")
			created = cfg
			return &model.Bucket{Name: bucket, Location: cfg.Location, StorageClass: cfg.StorageClass}, nil
		},
	}

	t.Run("default location and storage class", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithCloudStorage(mock)), usecase.WithProjectID("my-project"))
		b := gt.R1(uc.EnsureBucket(context.Background(), "events-bucket")).NoError(t)
		gt.Equal(t, created.Location, "US")
		gt.Equal(t, created.StorageClass, "STANDARD")
		gt.Equal(t, b.Location, "US")
	})

	t.Run("custom location and storage class", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithCloudStorage(mock)),
			usecase.WithProjectID("my-project"),
			usecase.WithBucketConfig(model.BucketConfig{Location: "ASIA-NORTHEAST1", StorageClass: "NEARLINE"}),
		)
		gt.R1(uc.EnsureBucket(context.Background(), "events-bucket")).NoError(t)
		gt.Equal(t, created.Location, "ASIA-NORTHEAST1")
		gt.Equal(t, created.StorageClass, "NEARLINE")
	})
}

func TestEnsureBucketError(t *testing.T) {
	t.Run("no project", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithCloudStorage(cs.NewGeneralMock())))
		_, err := uc.EnsureBucket(context.Background(), "products-bucket")
		gt.Error(t, err).Is(types.ErrInvalidOption)
	})

	t.Run("list failure stops creation", func(t *testing.T) {
		listErr := errors.New("permission denied")
		var createCalled bool
		mock := &cs.Mock{
			MockListBuckets: func(ctx context.Context, project types.GoogleProjectID) ([]*model.Bucket, error) {
				return nil, listErr
			},
			MockCreateBucket: func(ctx context.Context, project types.GoogleProjectID, bucket types.CSBucket, cfg *model.BucketConfig) (*model.Bucket, error) {
				createCalled = true
				return nil, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithCloudStorage(mock)), usecase.WithProjectID("my-project"))
		_, err := uc.EnsureBucket(context.Background(), "products-bucket")
		gt.Error(t, err).Is(listErr)
		gt.False(t, createCalled)
	})
}

func TestUploadFixture(t *testing.T) {
	mock := cs.NewGeneralMock()
	uc := usecase.New(infra.New(infra.WithCloudStorage(mock)), usecase.WithProjectID("my-project"))

	path := filepath.Join("testdata", "products.json")
	fixture := model.NewFixture(path, "products-bucket")
	gt.NoError(t, uc.UploadFixture(context.Background(), &fixture))

	expected := gt.R1(os.ReadFile(path)).NoError(t)
	obj := model.CloudStorageObject{Bucket: "products-bucket", Name: "products.json"}
	gt.Equal(t, mock.Objects[obj], expected)
}

func TestUploadFixtureMissingFile(t *testing.T) {
	mock := cs.NewGeneralMock()
	uc := usecase.New(infra.New(infra.WithCloudStorage(mock)), usecase.WithProjectID("my-project"))

	fixture := model.NewFixture(filepath.Join("testdata", "no_such_file.json"), "products-bucket")
	gt.Error(t, uc.UploadFixture(context.Background(), &fixture))
	gt.Equal(t, len(mock.Objects), 0)
}

func TestProvisionBucket(t *testing.T) {
	mock := cs.NewGeneralMock("events-bucket")
	uc := usecase.New(infra.New(infra.WithCloudStorage(mock)), usecase.WithProjectID("my-project"))

	fixture := model.NewFixture(filepath.Join("testdata", "user_events.json"), "events-bucket")
	gt.NoError(t, uc.ProvisionBucket(context.Background(), &fixture))

	gt.A(t, mock.Created).Length(0)
	_, ok := mock.Objects[fixture.Object]
	gt.True(t, ok)
}
