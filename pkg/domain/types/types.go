package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

const AppVersion = "v0.1.0"

// RequestID is a unique identifier for each run of the tool
type RequestID string

func NewRequestID() RequestID      { return RequestID(uuid.NewString()) }
func (x RequestID) Empty() bool    { return x == "" }
func (x RequestID) String() string { return string(x) }

// Google Cloud Platform
type GoogleProjectID string
type GoogleProjectNumber string

func (x GoogleProjectID) String() string     { return string(x) }
func (x GoogleProjectNumber) String() string { return string(x) }

type BQDatasetID string
type BQTableID string

func (x BQDatasetID) String() string { return string(x) }
func (x BQTableID) String() string   { return string(x) }

type CSBucket string
type CSObjectID string
type CSUrl string

func (x CSBucket) String() string   { return string(x) }
func (x CSObjectID) String() string { return string(x) }
func (x CSUrl) String() string      { return string(x) }

// URL returns gs://bucket
func (x CSBucket) URL() CSUrl { return CSUrl("gs://" + string(x)) }

func NewCSUrl(bucket CSBucket, object CSObjectID) CSUrl {
	return CSUrl(fmt.Sprintf("gs://%s/%s", bucket, object))
}

func (x CSUrl) Parse() (CSBucket, CSObjectID, error) {
	// convert gs://bucket/object to (bucket, object)

	if !strings.HasPrefix(string(x), "gs://") {
		return "", "", goerr.Wrap(ErrInvalidOption, "CSUrl has invalid prefix", goerr.V("url", x))
	}

	parts := strings.Split(string(x), "/")
	if len(parts) < 4 {
		return "", "", goerr.Wrap(ErrInvalidOption, "CSUrl is invalid", goerr.V("url", x))
	}

	if parts[0] != "gs:" || parts[1] != "" {
		return "", "", goerr.Wrap(ErrInvalidOption, "CSUrl is invalid", goerr.V("url", x))
	}

	if parts[2] == "" {
		return "", "", goerr.Wrap(ErrInvalidOption, "CSUrl has empty bucket", goerr.V("url", x))
	}

	bucket := CSBucket(parts[2])
	object := CSObjectID(strings.Join(parts[3:], "/"))

	return bucket, object, nil
}

// RetailBranch is a full resource name of a Retail catalog branch
type RetailBranch string

func (x RetailBranch) String() string { return string(x) }

func NewDefaultBranch(number GoogleProjectNumber) RetailBranch {
	return RetailBranch(fmt.Sprintf("projects/%s/locations/global/catalogs/default_catalog/branches/default_branch", number))
}

type ReconciliationMode string

const (
	ReconcileIncremental ReconciliationMode = "INCREMENTAL"
	ReconcileFull        ReconciliationMode = "FULL"
)

type PubSubTopicID string

func (x PubSubTopicID) String() string { return string(x) }

// FullName returns projects/{project}/topics/{topic}. A topic ID that is already a full name is returned as is.
func (x PubSubTopicID) FullName(project GoogleProjectID) string {
	if strings.HasPrefix(string(x), "projects/") {
		return string(x)
	}
	return fmt.Sprintf("projects/%s/topics/%s", project, x)
}
