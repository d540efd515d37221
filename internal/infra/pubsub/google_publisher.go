package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"trainbook/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements AlarmCommandPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.AlarmCommandPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	// Commands for one alarm id must reach the device in the order they were issued.
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishAlarmCommand publishes cmd and waits for the server id
func (p *googlePubSubPublisher) PublishAlarmCommand(ctx context.Context, cmd *service.AlarmCommand) error {
	data, err := json.Marshal(cmd)
	if err != nil {
		return errors.WithStack(err)
	}

	alarmID := strconv.FormatInt(cmd.AlarmID, 10)
	msg := &pubsub.Message{
		Data:        data,
		Attributes:  commandAttributes(cmd),
		OrderingKey: alarmID,
	}

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordering key stays paused until resumed.
		p.publisher.ResumePublish(alarmID)

		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Alarm command published",
		slog.String("action", string(cmd.Action)),
		slog.Int64("alarm_id", cmd.AlarmID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// commandAttributes carries the routing fields outside the payload for subscription filters.
func commandAttributes(cmd *service.AlarmCommand) map[string]string {
	attributes := map[string]string{
		"action":   string(cmd.Action),
		"alarm_id": strconv.FormatInt(cmd.AlarmID, 10),
	}
	if cmd.RequestID != "" {
		attributes["request_id"] = cmd.RequestID
	}

	return attributes
}
