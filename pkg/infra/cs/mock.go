package cs

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
)

type Mock struct {
	MockListBuckets  func(ctx context.Context, project types.GoogleProjectID) ([]*model.Bucket, error)
	MockCreateBucket func(ctx context.Context, project types.GoogleProjectID, bucket types.CSBucket, cfg *model.BucketConfig) (*model.Bucket, error)
	MockUpload       func(ctx context.Context, obj model.CloudStorageObject, r io.Reader) error
}

func (x *Mock) ListBuckets(ctx context.Context, project types.GoogleProjectID) ([]*model.Bucket, error) {
	if x.MockListBuckets != nil {
		return x.MockListBuckets(ctx, project)
	}
	return nil, nil
}

func (x *Mock) CreateBucket(ctx context.Context, project types.GoogleProjectID, bucket types.CSBucket, cfg *model.BucketConfig) (*model.Bucket, error) {
	if x.MockCreateBucket != nil {
		return x.MockCreateBucket(ctx, project, bucket, cfg)
	}
	return &model.Bucket{Name: bucket, Location: cfg.Location, StorageClass: cfg.StorageClass}, nil
}

func (x *Mock) Upload(ctx context.Context, obj model.CloudStorageObject, r io.Reader) error {
	if x.MockUpload != nil {
		return x.MockUpload(ctx, obj, r)
	}
	return nil
}

var _ interfaces.CloudStorage = &Mock{}

// GeneralMock keeps buckets and objects in memory
type GeneralMock struct {
	Buckets []*model.Bucket
	Created []*model.Bucket
	Objects map[model.CloudStorageObject][]byte

	mutex sync.Mutex
}

func NewGeneralMock(existing ...types.CSBucket) *GeneralMock {
	mock := &GeneralMock{
		Objects: map[model.CloudStorageObject][]byte{},
	}
	for _, name := range existing {
		mock.Buckets = append(mock.Buckets, &model.Bucket{
			Name:         name,
			Location:     model.DefaultBucketLocation,
			StorageClass: model.DefaultBucketStorageClass,
		})
	}
	return mock
}

func (x *GeneralMock) ListBuckets(ctx context.Context, project types.GoogleProjectID) ([]*model.Bucket, error) {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	return append([]*model.Bucket{}, x.Buckets...), nil
}

func (x *GeneralMock) CreateBucket(ctx context.Context, project types.GoogleProjectID, bucket types.CSBucket, cfg *model.BucketConfig) (*model.Bucket, error) {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	b := &model.Bucket{
		Name:         bucket,
		Location:     cfg.Location,
		StorageClass: cfg.StorageClass,
	}
	x.Buckets = append(x.Buckets, b)
	x.Created = append(x.Created, b)
	return b, nil
}

func (x *GeneralMock) Upload(ctx context.Context, obj model.CloudStorageObject, r io.Reader) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}

	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.Objects[obj] = buf.Bytes()
	return nil
}

var _ interfaces.CloudStorage = &GeneralMock{}
