package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingCreated       EventType = "booking_created"
	EventBookingStatusChanged EventType = "booking_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	BookingID int64       `json:"booking_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	UserID   int64  `json:"user_id"`
	EventID  int64  `json:"event_id"`
	VendorID *int64 `json:"vendor_id,omitempty"`
	Status   string `json:"status"`
}

// BookingStatusChangedPayload payload.
type BookingStatusChangedPayload struct {
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}
