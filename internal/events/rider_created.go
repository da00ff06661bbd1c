package events

import "time"

const RiderCreatedTopic = "fleet.rider.lifecycle.v1"

type RiderCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	RiderID      string    `json:"rider_id"`
	CredentialID string    `json:"credential_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
