package model

import (
	"log/slog"
	"path/filepath"

	"github.com/secmon-lab/retailprep/pkg/domain/types"
)

type Bucket struct {
	Name         types.CSBucket
	Location     string
	StorageClass string
}

func (x *Bucket) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", x.Name.String()),
		slog.String("location", x.Location),
		slog.String("storage_class", x.StorageClass),
	)
}

// BucketConfig is applied only when a bucket is newly created
type BucketConfig struct {
	Location     string
	StorageClass string
}

const (
	DefaultBucketLocation     = "US"
	DefaultBucketStorageClass = "STANDARD"
)

type CloudStorageObject struct {
	Bucket types.CSBucket
	Name   types.CSObjectID
}

func (x CloudStorageObject) URL() types.CSUrl { return types.NewCSUrl(x.Bucket, x.Name) }

// Fixture is a local file to be uploaded as an object
type Fixture struct {
	Path   string
	Object CloudStorageObject
}

// NewFixture returns a fixture uploaded to the bucket with the base name of path as object name
func NewFixture(path string, bucket types.CSBucket) Fixture {
	return Fixture{
		Path: path,
		Object: CloudStorageObject{
			Bucket: bucket,
			Name:   types.CSObjectID(filepath.Base(path)),
		},
	}
}
