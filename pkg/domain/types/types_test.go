package types

import (
	"testing"

	"github.com/m-mizutani/gt"
)

func TestCSUrl_Parse(t *testing.T) {
	tests := []struct {
		name     string
		url      CSUrl
		expected CSBucket
		object   CSObjectID
		wantErr  bool
	}{
		{
			name:     "Valid URL",
			url:      "gs://my-bucket/products.json",
			expected: "my-bucket",
			object:   "products.json",
			wantErr:  false,
		},
		{
			name:     "Valid URL with sub directory",
			url:      "gs://my-bucket/error/products.json",
			expected: "my-bucket",
			object:   "error/products.json",
			wantErr:  false,
		},
		{
			name:    "Invalid prefix",
			url:     "http://my-bucket/my-object",
			wantErr: true,
		},
		{
			name:    "Invalid prefix format 1",
			url:     "gs:/my-bucket/my-object",
			wantErr: true,
		},
		{
			name:    "Invalid prefix format 2",
			url:     "gs:///my-bucket",
			wantErr: true,
		},
		{
			name:    "no object",
			url:     "gs://my-bucket",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, object, err := tt.url.Parse()

			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if bucket != tt.expected {
				t.Errorf("Parse() bucket = %v, expected %v", bucket, tt.expected)
			}

			if object != tt.object {
				t.Errorf("Parse() object = %v, expected %v", object, tt.object)
			}
		})
	}
}

func TestNewCSUrl(t *testing.T) {
	url := NewCSUrl("products-bucket", "products.json")
	gt.Equal(t, url, "gs://products-bucket/products.json")

	bucket, object := gt.R2(url.Parse()).NoError(t)
	gt.Equal(t, bucket, "products-bucket")
	gt.Equal(t, object, "products.json")

	gt.Equal(t, CSBucket("products-bucket").URL(), "gs://products-bucket")
}

func TestNewDefaultBranch(t *testing.T) {
	gt.Equal(t,
		NewDefaultBranch("123456789"),
		"projects/123456789/locations/global/catalogs/default_catalog/branches/default_branch",
	)
}

func TestPubSubTopicID_FullName(t *testing.T) {
	gt.Equal(t, PubSubTopicID("import-done").FullName("my-project"), "projects/my-project/topics/import-done")
	gt.Equal(t, PubSubTopicID("projects/other/topics/x").FullName("my-project"), "projects/other/topics/x")
}
