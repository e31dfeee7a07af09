package utils_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/retailprep/pkg/utils"
)

func TestCtxRequestID(t *testing.T) {
	ctx := context.Background()

	id1, ctx := utils.CtxRequestID(ctx)
	gt.False(t, id1.Empty())

	id2, _ := utils.CtxRequestID(ctx)
	gt.Equal(t, id1, id2)
}

func TestCtxLogger(t *testing.T) {
	ctx := context.Background()
	gt.Equal(t, utils.CtxLogger(ctx), utils.Logger())

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx = utils.CtxWithLogger(ctx, l)
	gt.Equal(t, utils.CtxLogger(ctx), l)
}
