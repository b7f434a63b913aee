package dto

// ListResponse is the envelope for paginated list endpoints. Total is the
// full unfiltered count, not the size of Items.
type ListResponse struct {
	Items    any   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// DeleteResponse confirms an idempotent removal.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// MetricsResponse reports stored entity totals and process uptime.
type MetricsResponse struct {
	Users         int64 `json:"users"`
	Events        int64 `json:"events"`
	Vendors       int64 `json:"vendors"`
	Bookings      int64 `json:"bookings"`
	UptimeSeconds int64 `json:"uptime_seconds"`
}
