package push

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"eventbill/internal/model"
)

type fakeSender struct {
	err   error
	calls int
}

func (f *fakeSender) Send(context.Context, model.PushNotificationRequest) error {
	f.calls++
	return f.err
}

func TestRelaySingleAttempt(t *testing.T) {
	sender := &fakeSender{err: errors.New("provider down")}
	relay := NewRelay(sender)

	err := relay.Send(context.Background(), model.PushNotificationRequest{Token: "tok"})
	assert.Error(t, err)
	assert.Equal(t, 1, sender.calls, "relay must not retry")
}

func TestRelaySuccess(t *testing.T) {
	sender := &fakeSender{}
	relay := NewRelay(sender)

	err := relay.Send(context.Background(), model.PushNotificationRequest{Token: "tok"})
	assert.NoError(t, err)
	assert.Equal(t, 1, sender.calls)
}

func TestWebPushSenderRejectsBadToken(t *testing.T) {
	sender, err := NewWebPushSender("", "", "mailto:admin@example.com")
	assert.NoError(t, err)

	err = sender.Send(context.Background(), model.PushNotificationRequest{Token: "not-json"})
	assert.Error(t, err)
}
