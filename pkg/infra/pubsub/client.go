package pubsub

import (
	"context"

	"cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Client struct {
	client *pubsub.Client
}

func New(ctx context.Context, projectID types.GoogleProjectID) (*Client, error) {
	client, err := pubsub.NewClient(ctx, projectID.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create pubsub client", goerr.V("projectID", projectID))
	}

	return &Client{client: client}, nil
}

func (x *Client) Close() error {
	if err := x.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close pubsub client")
	}
	return nil
}

// EnsureTopic implements interfaces.PubSub. It creates the topic if it does not exist.
func (x *Client) EnsureTopic(ctx context.Context, project types.GoogleProjectID, topic types.PubSubTopicID) error {
	name := topic.FullName(project)

	_, err := x.client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name})
	if err == nil {
		utils.CtxLogger(ctx).Info("notification topic already exists", "topic", name)
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return goerr.Wrap(err, "failed to get topic", goerr.V("topic", name))
	}

	if _, err := x.client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: name}); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return goerr.Wrap(err, "failed to create topic", goerr.V("topic", name))
	}
	utils.CtxLogger(ctx).Info("created notification topic", "topic", name)

	return nil
}

var _ interfaces.PubSub = &Client{}
