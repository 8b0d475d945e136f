package push

import (
	"context"
	"log/slog"

	"eventbill/internal/metrics"
	"eventbill/internal/model"
)

// Sender delivers one notification to the provider. Implementations make a
// single attempt; there is no retry or queueing.
type Sender interface {
	Send(ctx context.Context, req model.PushNotificationRequest) error
}

// Relay forwards notification requests to the configured Sender and records
// the outcome. Provider failures are logged and returned to the caller.
type Relay struct {
	sender Sender
}

func NewRelay(sender Sender) *Relay {
	return &Relay{sender: sender}
}

func (r *Relay) Send(ctx context.Context, req model.PushNotificationRequest) error {
	err := r.sender.Send(ctx, req)
	if err != nil {
		slog.Error("push delivery failed", "topic", req.Topic, "error", err)
		metrics.PushDeliveries.WithLabelValues("failed").Inc()
		return err
	}

	slog.Info("push delivered", "topic", req.Topic)
	metrics.PushDeliveries.WithLabelValues("sent").Inc()
	return nil
}
