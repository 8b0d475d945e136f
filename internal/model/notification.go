package model

// PushNotificationRequest is the transient payload relayed to the push
// provider. Token is the provider delivery address; nothing here is persisted.
type PushNotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Topic   string `json:"topic"`
	Token   string `json:"token"`
}

// PushNotificationResponse acknowledges a relay attempt.
type PushNotificationResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	ReceiptID string `json:"receiptId,omitempty"`
}
