package domain

import "time"

// Event is a planned occasion. CreatedBy is a soft reference to a user id;
// it is stored as given and never revalidated after creation.
type Event struct {
	ID          int64
	Title       string
	Description *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
	CreatedBy   *int64
}
