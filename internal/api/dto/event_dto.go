package dto

// CreateEventRequest payload for event creation. Date fields are ISO-8601
// strings.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	CreatedBy   *int64  `json:"created_by"`
}

// UpdateEventRequest payload for partial event updates.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
}

// EventResponse is the public shape of an event. Times are RFC3339 or null.
type EventResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	CreatedBy   *int64  `json:"created_by"`
}
