package membership

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"membersync/pkg/metrics"
)

// Outcome is the terminal state of one webhook invocation.
type Outcome string

const (
	OutcomeIgnored          Outcome = "ignored"
	OutcomeNotEligible      Outcome = "not_eligible"
	OutcomeGuestSkipped     Outcome = "guest_skipped"
	OutcomeCustomerMoved    Outcome = "customer_moved"
	OutcomeAudienceUpserted Outcome = "audience_upserted"
	OutcomeProcessed        Outcome = "processed"
)

// Result is what the transport reports back to the webhook sender. Every
// handled invocation maps to exactly one outcome.
type Result struct {
	Outcome Outcome
	Message string
}

// Service promotes the buyer behind an eligible order into the member group
// and mirrors the contact into the marketing audience.
type Service struct {
	commerce CommerceGateway
	audience AudienceGateway // nil when marketing config is absent
	eligible StatusSet
	groupID  int
	tag      string
}

func NewService(commerce CommerceGateway, audience AudienceGateway, eligible StatusSet, groupID int, tag string) *Service {
	return &Service{
		commerce: commerce,
		audience: audience,
		eligible: eligible,
		groupID:  groupID,
		tag:      tag,
	}
}

// Process runs the linear chain for one webhook delivery: parse, fetch,
// eligibility gate, group promotion, audience upsert. Any upstream failure
// aborts the invocation; side effects already performed are not rolled back,
// both upstream APIs are idempotent on redelivery.
func (s *Service) Process(ctx context.Context, payload []byte) (Result, error) {
	event := ParseEvent(payload)
	orderID, ok := event.OrderID()
	if !ok {
		slog.InfoContext(ctx, "no order id in webhook payload, ignoring")
		return s.done(Result{
			Outcome: OutcomeIgnored,
			Message: "Ignoring webhook: no order id in payload",
		}), nil
	}

	order, err := s.commerce.FetchOrder(ctx, orderID)
	if err != nil {
		return Result{}, fmt.Errorf("fetch order %d: %w", orderID, err)
	}
	slog.InfoContext(ctx, "order fetched",
		slog.Int64("order_id", order.ID),
		slog.String("status", order.Status),
		slog.Int64("customer_id", order.CustomerID),
	)

	if !s.eligible.Contains(order.Status) {
		return s.done(Result{
			Outcome: OutcomeNotEligible,
			Message: fmt.Sprintf("Order %d status %q is not eligible yet", orderID, order.Status),
		}), nil
	}

	promoted := false
	if order.IsGuest() {
		slog.InfoContext(ctx, "guest checkout, skipping group promotion", slog.Int64("order_id", orderID))
	} else {
		if err := s.commerce.UpdateCustomerGroup(ctx, order.CustomerID, s.groupID); err != nil {
			return Result{}, fmt.Errorf("move customer %d to group %d: %w", order.CustomerID, s.groupID, err)
		}
		promoted = true
		slog.InfoContext(ctx, "customer moved to member group",
			slog.Int64("customer_id", order.CustomerID),
			slog.Int("group_id", s.groupID),
		)
	}

	upserted := false
	email := strings.ToLower(strings.TrimSpace(order.BillingEmail))
	switch {
	case email == "":
		slog.InfoContext(ctx, "no billing email on order, skipping audience upsert", slog.Int64("order_id", orderID))
	case s.audience == nil:
		slog.InfoContext(ctx, "audience sync not configured, skipping upsert", slog.Int64("order_id", orderID))
	default:
		member := AudienceMember{
			Email:     email,
			FirstName: order.BillingFirstName,
			LastName:  order.BillingLastName,
		}
		if err := s.audience.UpsertMember(ctx, member); err != nil {
			return Result{}, fmt.Errorf("upsert audience member for order %d: %w", orderID, err)
		}
		if err := s.audience.TagMember(ctx, email, s.tag); err != nil {
			return Result{}, fmt.Errorf("tag audience member for order %d: %w", orderID, err)
		}
		upserted = true
		slog.InfoContext(ctx, "audience member upserted and tagged",
			slog.Int64("order_id", orderID),
			slog.String("tag", s.tag),
		)
	}

	return s.done(s.resultFor(order, promoted, upserted)), nil
}

func (s *Service) resultFor(order Order, promoted, upserted bool) Result {
	switch {
	case promoted && upserted:
		return Result{
			Outcome: OutcomeProcessed,
			Message: fmt.Sprintf("Order %d processed: customer %d moved to group %d, audience member upserted", order.ID, order.CustomerID, s.groupID),
		}
	case promoted:
		return Result{
			Outcome: OutcomeCustomerMoved,
			Message: fmt.Sprintf("Order %d processed: customer %d moved to group %d", order.ID, order.CustomerID, s.groupID),
		}
	case upserted:
		return Result{
			Outcome: OutcomeAudienceUpserted,
			Message: fmt.Sprintf("Order %d processed: guest checkout, audience member upserted", order.ID),
		}
	default:
		return Result{
			Outcome: OutcomeGuestSkipped,
			Message: fmt.Sprintf("Order %d processed: guest checkout, nothing to update", order.ID),
		}
	}
}

func (s *Service) done(res Result) Result {
	metrics.WebhookOutcomesTotal.WithLabelValues(string(res.Outcome)).Inc()
	return res
}
