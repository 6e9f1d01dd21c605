package pubsub

import (
	"context"
	"encoding/json"

	"video-studio/domain/model"
	"video-studio/infrastructure/logger"

	"cloud.google.com/go/pubsub"
)

// NewPubSub creates the Google Pub/Sub client.
func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	return pubsub.NewClient(ctx, projectID)
}

// IJobEvents publishes normalized job updates for downstream consumers.
type IJobEvents interface {
	PublishUpdate(ctx context.Context, update model.JobUpdate) (string, error)
}

// JobEvents publishes job updates to a Pub/Sub topic.
type JobEvents struct {
	client *pubsub.Client
	topic  string
}

func NewJobEvents(client *pubsub.Client, topic string) IJobEvents {
	if topic == "" {
		topic = "job-updates"
	}
	return &JobEvents{client: client, topic: topic}
}

func (p *JobEvents) PublishUpdate(ctx context.Context, update model.JobUpdate) (string, error) {
	payload, err := json.Marshal(update)
	if err != nil {
		return "", err
	}

	topic := p.client.Topic(p.topic)
	exists, err := topic.Exists(ctx)
	if err != nil {
		return "", err
	}
	if !exists {
		if _, err := p.client.CreateTopic(ctx, p.topic); err != nil {
			return "", err
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		return "", err
	}

	logger.GetLogger().WithField("server ID", serverID).Info("Job update published")
	return serverID, nil
}
