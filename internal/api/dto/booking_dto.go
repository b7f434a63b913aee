package dto

// CreateBookingRequest payload for booking creation.
type CreateBookingRequest struct {
	UserID   int64  `json:"user_id"`
	EventID  int64  `json:"event_id"`
	VendorID *int64 `json:"vendor_id"`
	Status   string `json:"status"`
}

// UpdateBookingRequest payload for partial booking updates.
type UpdateBookingRequest struct {
	Status   *string `json:"status"`
	VendorID *int64  `json:"vendor_id"`
}

// BookingResponse is the public shape of a booking.
type BookingResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	EventID   int64  `json:"event_id"`
	VendorID  *int64 `json:"vendor_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
