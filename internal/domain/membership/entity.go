package membership

// Order is the slice of the commerce order resource this service acts on.
// Fetched fresh per invocation, never cached.
type Order struct {
	ID               int64
	Status           string
	CustomerID       int64 // 0 for guest checkout
	BillingEmail     string
	BillingFirstName string
	BillingLastName  string
}

// IsGuest reports whether the order has no linked customer account.
func (o Order) IsGuest() bool {
	return o.CustomerID == 0
}

// AudienceMember is the contact upserted into the marketing audience.
type AudienceMember struct {
	Email     string
	FirstName string
	LastName  string
}
