package service

import (
	"context"
)

// PushMessage is the content of a push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult is the per-token outcome of a multicast push.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the push service reported as invalid or unregistered
}

// PushSender defines the interface for push notification services
type PushSender interface {
	// SendMulticast sends msg to every device token in one request
	SendMulticast(ctx context.Context, tokens []string, msg PushMessage) (*PushResult, error)
}
