package membership

import "context"

//go:generate mockgen -source ports.go -destination mock_ports.go -package membership

// CommerceGateway is the narrow view of the commerce platform this service
// needs.
type CommerceGateway interface {
	FetchOrder(ctx context.Context, orderID int64) (Order, error)
	UpdateCustomerGroup(ctx context.Context, customerID int64, groupID int) error
}

// AudienceGateway is the narrow view of the marketing platform.
type AudienceGateway interface {
	UpsertMember(ctx context.Context, member AudienceMember) error
	TagMember(ctx context.Context, email string, tag string) error
}
