package webhooks

// WebhookEvent is the inbound Gallabox webhook body.
type WebhookEvent struct {
	Data EventData `json:"data"`
}

// EventData carries the sender and message of one WhatsApp event.
type EventData struct {
	From    string       `json:"from"`
	Message EventMessage `json:"message"`
}

// EventMessage is the message portion of a webhook event.
type EventMessage struct {
	Text string `json:"text"`
}
