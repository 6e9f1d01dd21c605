package servicebus

import (
	"context"
	"encoding/json"

	"video-studio/domain/model"
	"video-studio/infrastructure/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

// NewServiceBus creates the Azure Service Bus client with the default
// credential chain.
func NewServiceBus(_ context.Context, namespace string) (*azservicebus.Client, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, err
	}
	return azservicebus.NewClient(namespace, cred, nil)
}

// IJobEvents mirrors the Pub/Sub sink for deployments on Azure.
type IJobEvents interface {
	SendUpdate(ctx context.Context, update model.JobUpdate) error
}

// JobEvents sends job updates to a Service Bus queue.
type JobEvents struct {
	client *azservicebus.Client
	queue  string
}

func NewJobEvents(client *azservicebus.Client, queue string) IJobEvents {
	if queue == "" {
		queue = "job-updates"
	}
	return &JobEvents{client: client, queue: queue}
}

func (s *JobEvents) SendUpdate(ctx context.Context, update model.JobUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}

	sender, err := s.client.NewSender(s.queue, nil)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while making new sender service bus.")
		return err
	}
	defer func(sender *azservicebus.Sender, ctx context.Context) {
		if err := sender.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing sender.")
		}
	}(sender, context.Background())

	if err := sender.SendMessage(ctx, &azservicebus.Message{Body: payload}, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending job update.")
		return err
	}
	return nil
}
