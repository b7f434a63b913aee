package dto

// CreateVendorRequest payload for vendor creation.
type CreateVendorRequest struct {
	Name         string  `json:"name"`
	Service      *string `json:"service"`
	ContactEmail *string `json:"contact_email"`
}

// UpdateVendorRequest payload for partial vendor updates.
type UpdateVendorRequest struct {
	Name         *string `json:"name"`
	Service      *string `json:"service"`
	ContactEmail *string `json:"contact_email"`
}

// VendorResponse is the public shape of a vendor.
type VendorResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Service      *string `json:"service"`
	ContactEmail *string `json:"contact_email"`
}
