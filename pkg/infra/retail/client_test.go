package retail

import (
	"testing"

	"cloud.google.com/go/retail/apiv2/retailpb"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
)

func TestToImportProductsRequest(t *testing.T) {
	t.Run("incremental import from bucket", func(t *testing.T) {
		req := &model.ImportProductsRequest{
			Branch:       types.NewDefaultBranch("1234"),
			InputURIs:    []types.CSUrl{"gs://products-bucket/products.json"},
			ErrorsPrefix: "gs://products-bucket/error",
		}

		pbReq := gt.R1(toImportProductsRequest(req)).NoError(t)
		gt.Equal(t, pbReq.GetParent(), "projects/1234/locations/global/catalogs/default_catalog/branches/default_branch")
		gt.Equal(t, pbReq.GetReconciliationMode(), retailpb.ImportProductsRequest_INCREMENTAL)
		gt.A(t, pbReq.GetInputConfig().GetGcsSource().GetInputUris()).Length(1).
			At(0, func(t testing.TB, v string) {
				gt.Equal(t, v, "gs://products-bucket/products.json")
			})
		gt.Equal(t, pbReq.GetErrorsConfig().GetGcsPrefix(), "gs://products-bucket/error")
		gt.Equal(t, pbReq.GetNotificationPubsubTopic(), "")
	})

	t.Run("full reconciliation with notification", func(t *testing.T) {
		req := &model.ImportProductsRequest{
			Branch:            types.NewDefaultBranch("1234"),
			InputURIs:         []types.CSUrl{"gs://products-bucket/products.json"},
			Reconciliation:    types.ReconcileFull,
			NotificationTopic: "projects/p/topics/t",
		}

		pbReq := gt.R1(toImportProductsRequest(req)).NoError(t)
		gt.Equal(t, pbReq.GetReconciliationMode(), retailpb.ImportProductsRequest_FULL)
		gt.Equal(t, pbReq.GetNotificationPubsubTopic(), "projects/p/topics/t")
		gt.True(t, pbReq.GetErrorsConfig() == nil)
	})

	t.Run("no input", func(t *testing.T) {
		_, err := toImportProductsRequest(&model.ImportProductsRequest{
			Branch: types.NewDefaultBranch("1234"),
		})
		gt.Error(t, err).Is(types.ErrInvalidOption)
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := toImportProductsRequest(&model.ImportProductsRequest{
			Branch:         types.NewDefaultBranch("1234"),
			InputURIs:      []types.CSUrl{"gs://b/o"},
			Reconciliation: "PARTIAL",
		})
		gt.Error(t, err).Is(types.ErrInvalidOption)
	})
}
