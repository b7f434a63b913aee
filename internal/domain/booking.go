package domain

import "time"

// BookingStatusPending is the status assigned when none is supplied.
const BookingStatusPending = "pending"

// Booking ties a user to an event, optionally through a vendor. UserID and
// EventID must reference existing rows at creation time; VendorID is a soft
// reference. CreatedAt is assigned by the store.
type Booking struct {
	ID        int64
	UserID    int64
	EventID   int64
	VendorID  *int64
	Status    string
	CreatedAt time.Time
}
