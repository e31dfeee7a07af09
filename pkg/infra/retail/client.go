package retail

import (
	"context"

	retail "cloud.google.com/go/retail/apiv2"
	"cloud.google.com/go/retail/apiv2/retailpb"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/utils"
	"google.golang.org/protobuf/encoding/protojson"
)

type Client struct {
	client *retail.ProductClient
}

func New(ctx context.Context) (*Client, error) {
	client, err := retail.NewProductClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create retail product client")
	}

	return &Client{client: client}, nil
}

func (x *Client) Close() error {
	if err := x.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close retail product client")
	}
	return nil
}

// ImportProducts implements interfaces.Retail.
func (x *Client) ImportProducts(ctx context.Context, req *model.ImportProductsRequest) (interfaces.RetailOperation, error) {
	pbReq, err := toImportProductsRequest(req)
	if err != nil {
		return nil, err
	}
	utils.CtxLogger(ctx).Debug("import products request", "request", protojson.Format(pbReq))

	op, err := x.client.ImportProducts(ctx, pbReq)
	if err != nil {
		return nil, wrapAPIError(err, "failed to start product import", goerr.V("parent", req.Branch))
	}

	return &operation{op: op}, nil
}

func toImportProductsRequest(req *model.ImportProductsRequest) (*retailpb.ImportProductsRequest, error) {
	if len(req.InputURIs) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no input URI for product import")
	}

	var mode retailpb.ImportProductsRequest_ReconciliationMode
	switch req.Reconciliation {
	case types.ReconcileIncremental, "":
		mode = retailpb.ImportProductsRequest_INCREMENTAL
	case types.ReconcileFull:
		mode = retailpb.ImportProductsRequest_FULL
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid reconciliation mode", goerr.V("mode", req.Reconciliation))
	}

	uris := make([]string, len(req.InputURIs))
	for i := range req.InputURIs {
		uris[i] = req.InputURIs[i].String()
	}

	pbReq := &retailpb.ImportProductsRequest{
		Parent: req.Branch.String(),
		InputConfig: &retailpb.ProductInputConfig{
			Source: &retailpb.ProductInputConfig_GcsSource{
				GcsSource: &retailpb.GcsSource{
					InputUris: uris,
				},
			},
		},
		ReconciliationMode:      mode,
		NotificationPubsubTopic: req.NotificationTopic,
	}

	if req.ErrorsPrefix != "" {
		pbReq.ErrorsConfig = &retailpb.ImportErrorsConfig{
			Destination: &retailpb.ImportErrorsConfig_GcsPrefix{
				GcsPrefix: req.ErrorsPrefix.String(),
			},
		}
	}

	return pbReq, nil
}

type operation struct {
	op *retail.ImportProductsOperation
}

func (x *operation) Name() string { return x.op.Name() }

// Poll fetches the latest state of the operation once. It returns error if the operation has finished with failure.
func (x *operation) Poll(ctx context.Context) (bool, error) {
	if _, err := x.op.Poll(ctx); err != nil {
		return x.op.Done(), wrapAPIError(err, "import operation failed", goerr.V("operation", x.op.Name()))
	}
	return x.op.Done(), nil
}

func (x *operation) Metadata() (*model.ImportMetadata, error) {
	md, err := x.op.Metadata()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode import metadata", goerr.V("operation", x.op.Name()))
	}
	if md == nil {
		return nil, nil
	}

	return &model.ImportMetadata{
		SuccessCount: md.GetSuccessCount(),
		FailureCount: md.GetFailureCount(),
	}, nil
}

func wrapAPIError(err error, msg string, options ...goerr.Option) error {
	if apiErr, ok := apierror.FromError(err); ok {
		options = append(options,
			goerr.V("reason", apiErr.Reason()),
			goerr.V("status", apiErr.GRPCStatus().Code().String()),
		)
	}
	return goerr.Wrap(err, msg, options...)
}

var _ interfaces.Retail = &Client{}
