package push

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SherClockHolmes/webpush-go"

	"eventbill/internal/model"
)

// WebPushSender delivers over the Web Push protocol. The request token is a
// serialized subscription: {"endpoint": ..., "keys": {"p256dh": ..., "auth": ...}}.
type WebPushSender struct {
	vapidPublicKey  string
	vapidPrivateKey string
	subscriber      string
}

func NewWebPushSender(vapidPublicKey, vapidPrivateKey, subscriber string) (*WebPushSender, error) {
	if vapidPublicKey == "" || vapidPrivateKey == "" {
		privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
		if err != nil {
			return nil, fmt.Errorf("generate VAPID keys: %w", err)
		}
		vapidPrivateKey = privateKey
		vapidPublicKey = publicKey
	}

	return &WebPushSender{
		vapidPublicKey:  vapidPublicKey,
		vapidPrivateKey: vapidPrivateKey,
		subscriber:      subscriber,
	}, nil
}

type payload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Topic   string `json:"topic,omitempty"`
}

func (s *WebPushSender) Send(ctx context.Context, req model.PushNotificationRequest) error {
	var sub webpush.Subscription
	if err := json.Unmarshal([]byte(req.Token), &sub); err != nil {
		return fmt.Errorf("decode subscription token: %w", err)
	}

	body, err := json.Marshal(payload{Title: req.Title, Message: req.Message, Topic: req.Topic})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, &sub, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.vapidPublicKey,
		VAPIDPrivateKey: s.vapidPrivateKey,
		TTL:             30,
	})
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("provider rejected notification: status %d", resp.StatusCode)
	}

	return nil
}
