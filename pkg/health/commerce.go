package health

import "context"

// Pinger is implemented by API clients that can verify connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CommerceChecker checks commerce API reachability.
type CommerceChecker struct {
	client Pinger
}

// NewCommerceChecker creates a new commerce API health checker.
func NewCommerceChecker(client Pinger) *CommerceChecker {
	return &CommerceChecker{client: client}
}

// Name returns "commerce".
func (c *CommerceChecker) Name() string {
	return "commerce"
}

// Check pings the commerce API.
func (c *CommerceChecker) Check(ctx context.Context) Result {
	if err := c.client.Ping(ctx); err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	return Result{Status: StatusUp}
}
