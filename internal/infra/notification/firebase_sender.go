package notification

import (
	"context"

	"trainbook/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit of tokens per multicast request.
const maxMulticastTokens = 500

type firebaseSender struct {
	client *messaging.Client
}

// NewFirebaseSender creates a PushSender backed by Firebase Cloud Messaging
func NewFirebaseSender(ctx context.Context, projectID, credentialsPath string) (service.PushSender, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{
		client: client,
	}, nil
}

// SendMulticast sends msg to tokens in batches of at most 500.
func (s *firebaseSender) SendMulticast(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushResult, error) {
	result := &service.PushResult{InvalidTokens: make([]string, 0)}

	for start := 0; start < len(tokens); start += maxMulticastTokens {
		batch := tokens[start:min(start+maxMulticastTokens, len(tokens))]

		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
			Android: &messaging.AndroidConfig{
				Priority: "high",
				Notification: &messaging.AndroidNotification{
					Priority: messaging.PriorityMax,
				},
			},
		})
		if err != nil {
			return result, errors.Wrap(err, "failed to send multicast notification")
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, batch[idx])
			}
		}
	}

	return result, nil
}
