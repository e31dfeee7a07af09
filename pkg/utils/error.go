package utils

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
)

// HandleError reports err to Sentry (no-op if Sentry is not initialized) and logs it with the run ID.
func HandleError(ctx context.Context, msg string, err error) {
	reqID, ctx := CtxRequestID(ctx)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("request_id", reqID.String())
		for k, v := range goerr.Values(err) {
			scope.SetExtra(fmt.Sprintf("%v", k), v)
		}
	})
	evID := hub.CaptureException(err)

	CtxLogger(ctx).Error(msg, ErrLog(err), "sentry.EventID", evID)
}
