package retail

import (
	"context"
	"sync"

	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
)

type Mock struct {
	MockImportProducts func(ctx context.Context, req *model.ImportProductsRequest) (interfaces.RetailOperation, error)

	Requests []*model.ImportProductsRequest
	mutex    sync.Mutex
}

func (x *Mock) ImportProducts(ctx context.Context, req *model.ImportProductsRequest) (interfaces.RetailOperation, error) {
	x.mutex.Lock()
	x.Requests = append(x.Requests, req)
	x.mutex.Unlock()

	if x.MockImportProducts != nil {
		return x.MockImportProducts(ctx, req)
	}
	return &MockOperation{ID: "operations/mock", PollsUntilDone: 1}, nil
}

var _ interfaces.Retail = &Mock{}

// MockOperation becomes done after PollsUntilDone calls of Poll
type MockOperation struct {
	ID             string
	PollsUntilDone int
	Err            error
	Meta           *model.ImportMetadata

	Polled int
}

func (x *MockOperation) Name() string { return x.ID }

func (x *MockOperation) Poll(ctx context.Context) (bool, error) {
	x.Polled++
	if x.Polled < x.PollsUntilDone {
		return false, nil
	}
	return true, x.Err
}

func (x *MockOperation) Metadata() (*model.ImportMetadata, error) {
	return x.Meta, nil
}

var _ interfaces.RetailOperation = &MockOperation{}
