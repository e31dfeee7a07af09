package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/utils"
)

// Setup provisions all test resources in order: buckets with fixtures, product import, then BigQuery tables. It stops at the first error.
func (x *UseCase) Setup(ctx context.Context, plan *model.SetupPlan) error {
	if plan == nil {
		return goerr.Wrap(types.ErrAssertion, "setup plan is nil")
	}

	reqID, ctx := utils.CtxRequestID(ctx)
	logger := utils.CtxLogger(ctx).With("request_id", reqID)
	ctx = utils.CtxWithLogger(ctx, logger)

	logger.Info("start setup")

	for _, fixture := range []*model.Fixture{&plan.Products, &plan.Events} {
		if err := x.ProvisionBucket(ctx, fixture); err != nil {
			return goerr.Wrap(err, "failed to provision bucket", goerr.V("url", fixture.Object.URL()))
		}
	}

	if _, err := x.ImportProducts(ctx, plan.Products.Object); err != nil {
		return goerr.Wrap(err, "failed to import products", goerr.V("url", plan.Products.Object.URL()))
	}

	for i := range plan.Tables {
		if err := x.ProvisionTable(ctx, &plan.Tables[i]); err != nil {
			return goerr.Wrap(err, "failed to provision table", goerr.V("table", plan.Tables[i].String()))
		}
	}

	logger.Info("setup is completed")
	return nil
}
