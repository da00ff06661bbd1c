package events

import "time"

const ProgressRecordedTopic = "fleet.progress.v1"

type ProgressRecordedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RiderID    string    `json:"rider_id"`
	ProgressID string    `json:"progress_id"`
	Date       time.Time `json:"date"`
	OccurredAt time.Time `json:"occurred_at"`
}
