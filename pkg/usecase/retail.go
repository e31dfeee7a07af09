package usecase

import (
	"context"
	"errors"

	"github.com/googleapis/gax-go/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/utils"
)

func (x *UseCase) importBranch() (types.RetailBranch, error) {
	if x.branch != "" {
		return x.branch, nil
	}
	if x.projectNumber == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "project number is required to import products")
	}
	return types.NewDefaultBranch(x.projectNumber), nil
}

// ImportProducts imports products in the object into the Retail catalog and blocks until the import operation is completed.
func (x *UseCase) ImportProducts(ctx context.Context, obj model.CloudStorageObject) (*model.ImportMetadata, error) {
	logger := utils.CtxLogger(ctx)

	branch, err := x.importBranch()
	if err != nil {
		return nil, err
	}

	req := &model.ImportProductsRequest{
		Branch:         branch,
		InputURIs:      []types.CSUrl{obj.URL()},
		ErrorsPrefix:   types.CSUrl(obj.Bucket.URL().String() + "/error"),
		Reconciliation: x.reconciliation,
	}

	if x.notificationTopic != "" {
		if x.clients.PubSub() == nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "pubsub client is required for notification topic")
		}
		if err := x.clients.PubSub().EnsureTopic(ctx, x.projectID, x.notificationTopic); err != nil {
			return nil, err
		}
		req.NotificationTopic = x.notificationTopic.FullName(x.projectID)
	}

	logger.Info("import products from cloud storage", "request", req)

	op, err := x.clients.Retail().ImportProducts(ctx, req)
	if err != nil {
		return nil, err
	}
	logger.Info("import operation is started", "operation", op.Name())

	for {
		done, err := op.Poll(ctx)
		if err != nil {
			logImportMetadata(ctx, op)
			return nil, goerr.Wrap(errors.Join(types.ErrImportFailed, err), "import operation is failed",
				goerr.V("operation", op.Name()))
		}
		if done {
			break
		}

		logger.Info("please wait till operation is completed", "operation", op.Name())
		if err := gax.Sleep(ctx, x.pollInterval); err != nil {
			return nil, goerr.Wrap(err, "interrupted while waiting import operation", goerr.V("operation", op.Name()))
		}
	}
	logger.Info("import products operation is completed", "operation", op.Name())

	md := logImportMetadata(ctx, op)
	logger.Info("wait 2-5 minutes till products become indexed in the catalog, after that they will be available for search")

	return md, nil
}

func logImportMetadata(ctx context.Context, op interfaces.RetailOperation) *model.ImportMetadata {
	logger := utils.CtxLogger(ctx)

	md, err := op.Metadata()
	if err != nil {
		logger.Warn("failed to get operation metadata", utils.ErrLog(err))
		return nil
	}
	if md == nil {
		logger.Info("operation metadata is empty", "operation", op.Name())
		return nil
	}

	logger.Info("import result",
		"operation", op.Name(),
		"success_count", md.SuccessCount,
		"failure_count", md.FailureCount,
	)
	return md
}
