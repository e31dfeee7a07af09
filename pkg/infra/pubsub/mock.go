package pubsub

import (
	"context"

	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
)

type Mock struct {
	MockEnsureTopic func(ctx context.Context, project types.GoogleProjectID, topic types.PubSubTopicID) error
	Ensured         []string
}

func NewMock() *Mock {
	return &Mock{}
}

func (x *Mock) EnsureTopic(ctx context.Context, project types.GoogleProjectID, topic types.PubSubTopicID) error {
	x.Ensured = append(x.Ensured, topic.FullName(project))
	if x.MockEnsureTopic != nil {
		return x.MockEnsureTopic(ctx, project, topic)
	}
	return nil
}

var _ interfaces.PubSub = &Mock{}
