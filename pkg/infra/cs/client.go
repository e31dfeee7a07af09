package cs

import (
	"context"
	"errors"
	"io"
	"net/http"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/utils"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
)

type Client struct {
	client *storage.Client
}

func New(ctx context.Context) (*Client, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	return &Client{
		client: client,
	}, nil
}

func (x *Client) Close() error {
	if err := x.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close storage client")
	}
	return nil
}

// ListBuckets implements interfaces.CloudStorage.
func (x *Client) ListBuckets(ctx context.Context, project types.GoogleProjectID) ([]*model.Bucket, error) {
	var buckets []*model.Bucket

	it := x.client.Buckets(ctx, project.String())
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list buckets", goerr.V("project", project))
		}

		buckets = append(buckets, toBucket(attrs))
	}

	return buckets, nil
}

// CreateBucket implements interfaces.CloudStorage. If the bucket has been created by someone else in the meantime, it returns attributes of the existing bucket.
func (x *Client) CreateBucket(ctx context.Context, project types.GoogleProjectID, bucket types.CSBucket, cfg *model.BucketConfig) (*model.Bucket, error) {
	handle := x.client.Bucket(bucket.String())

	if err := handle.Create(ctx, project.String(), &storage.BucketAttrs{
		Location:     cfg.Location,
		StorageClass: cfg.StorageClass,
	}); err != nil {
		var gErr *googleapi.Error
		if !errors.As(err, &gErr) || gErr.Code != http.StatusConflict {
			return nil, goerr.Wrap(err, "failed to create bucket", goerr.V("bucket", bucket), goerr.V("project", project))
		}
		utils.CtxLogger(ctx).Debug("bucket creation conflicted", "bucket", bucket)
	}

	attrs, err := handle.Attrs(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get bucket attributes", goerr.V("bucket", bucket))
	}

	return toBucket(attrs), nil
}

// Upload implements interfaces.CloudStorage.
func (x *Client) Upload(ctx context.Context, obj model.CloudStorageObject, r io.Reader) error {
	w := x.client.
		Bucket(obj.Bucket.String()).
		Object(obj.Name.String()).
		NewWriter(ctx)

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("url", obj.URL()))
	}

	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to close object writer", goerr.V("url", obj.URL()))
	}

	return nil
}

func toBucket(attrs *storage.BucketAttrs) *model.Bucket {
	return &model.Bucket{
		Name:         types.CSBucket(attrs.Name),
		Location:     attrs.Location,
		StorageClass: attrs.StorageClass,
	}
}

var _ interfaces.CloudStorage = &Client{}
