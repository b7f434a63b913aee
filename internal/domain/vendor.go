package domain

// Vendor is an external service provider with an independent lifecycle.
type Vendor struct {
	ID           int64
	Name         string
	Service      *string
	ContactEmail *string
}
