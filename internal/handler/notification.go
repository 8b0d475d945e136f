package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"eventbill/internal/model"
	"eventbill/internal/push"
)

// SendTokenNotificationHandler relays a notification to the push provider
// and surfaces the real delivery outcome: 200 on success, 502 when the
// single delivery attempt fails.
func SendTokenNotificationHandler(relay *push.Relay) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.PushNotificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if req.Token == "" {
			http.Error(w, "token is required", http.StatusBadRequest)
			return
		}

		if err := relay.Send(r.Context(), req); err != nil {
			writeJSON(w, http.StatusBadGateway, model.PushNotificationResponse{
				Status:  http.StatusBadGateway,
				Message: "Notification delivery failed.",
			})
			return
		}

		writeJSON(w, http.StatusOK, model.PushNotificationResponse{
			Status:    http.StatusOK,
			Message:   "Notification has been sent.",
			ReceiptID: uuid.NewString(),
		})
	}
}
