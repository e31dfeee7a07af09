package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/infra/pubsub"
	"github.com/urfave/cli/v2"
)

// PubSub configures the topic notified when the product import is completed
type PubSub struct {
	topicID types.PubSubTopicID
}

func (x *PubSub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Category:    "Retail",
			Name:        "notification-topic",
			Usage:       "Pub/Sub topic ID notified when import is completed, created if missing",
			EnvVars:     []string{"RETAILPREP_NOTIFICATION_TOPIC"},
			Destination: (*string)(&x.topicID),
		},
	}
}

func (x *PubSub) TopicID() types.PubSubTopicID { return x.topicID }

// Configure returns nil client without error when no topic is given
func (x *PubSub) Configure(ctx context.Context, projectID types.GoogleProjectID) (*pubsub.Client, error) {
	if x.topicID == "" {
		return nil, nil
	}

	return pubsub.New(ctx, projectID)
}

func (x *PubSub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("topic_id", string(x.topicID)),
	)
}
