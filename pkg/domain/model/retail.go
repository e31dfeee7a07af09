package model

import (
	"log/slog"

	"github.com/secmon-lab/retailprep/pkg/domain/types"
)

type ImportProductsRequest struct {
	Branch            types.RetailBranch
	InputURIs         []types.CSUrl
	ErrorsPrefix      types.CSUrl
	Reconciliation    types.ReconciliationMode
	NotificationTopic string
}

func (x *ImportProductsRequest) LogValue() slog.Value {
	uris := make([]string, len(x.InputURIs))
	for i := range x.InputURIs {
		uris[i] = x.InputURIs[i].String()
	}
	return slog.GroupValue(
		slog.String("parent", x.Branch.String()),
		slog.Any("input_uris", uris),
		slog.String("errors_prefix", x.ErrorsPrefix.String()),
		slog.String("reconciliation_mode", string(x.Reconciliation)),
		slog.String("notification_topic", x.NotificationTopic),
	)
}

type ImportMetadata struct {
	SuccessCount int64
	FailureCount int64
}
