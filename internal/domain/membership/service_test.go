package membership

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func memberService(t *testing.T, withAudience bool) (*Service, *MockCommerceGateway, *MockAudienceGateway) {
	t.Helper()

	ctrl := gomock.NewController(t)
	commerce := NewMockCommerceGateway(ctrl)
	audienceMock := NewMockAudienceGateway(ctrl)

	var audience AudienceGateway
	if withAudience {
		audience = audienceMock
	}

	eligible := NewStatusSet([]string{"Completed", "Shipped", "Awaiting Fulfillment", "Awaiting Shipment"})
	service := NewService(commerce, audience, eligible, 2, "Members Only")

	return service, commerce, audienceMock
}

func TestService_Process(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should ignore payloads without an order id", func(t *testing.T) {
		testCases := []struct {
			name    string
			payload string
		}{
			{name: "empty data object", payload: `{"data":{}}`},
			{name: "no data key", payload: `{"producer":"stores/abc"}`},
			{name: "empty body", payload: ``},
			{name: "garbage body", payload: `not json at all`},
			{name: "null id", payload: `{"data":{"id":null}}`},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// given
				service, _, _ := memberService(t, true)

				// when
				res, err := service.Process(ctx, []byte(tc.payload))

				// then
				require.NoError(t, err)
				assert.Equal(t, OutcomeIgnored, res.Outcome)
				assert.Contains(t, res.Message, "Ignoring")
			})
		}
	})

	t.Run("should not write anything for ineligible order status", func(t *testing.T) {
		// given
		service, commerce, _ := memberService(t, true)
		commerce.EXPECT().FetchOrder(gomock.Any(), int64(502)).
			Return(Order{ID: 502, Status: "Pending", CustomerID: 7}, nil)

		// when
		res, err := service.Process(ctx, []byte(`{"data":{"id":502}}`))

		// then
		require.NoError(t, err)
		assert.Equal(t, OutcomeNotEligible, res.Outcome)
		assert.Contains(t, res.Message, "not eligible yet")
		assert.Contains(t, res.Message, "502")
	})

	t.Run("should move eligible customer to the member group", func(t *testing.T) {
		// given
		service, commerce, _ := memberService(t, false)
		commerce.EXPECT().FetchOrder(gomock.Any(), int64(501)).
			Return(Order{ID: 501, Status: "Completed", CustomerID: 42}, nil)
		commerce.EXPECT().UpdateCustomerGroup(gomock.Any(), int64(42), 2).Return(nil)

		// when
		res, err := service.Process(ctx, []byte(`{"data":{"id":501}}`))

		// then
		require.NoError(t, err)
		assert.Equal(t, OutcomeCustomerMoved, res.Outcome)
		assert.Contains(t, res.Message, "42")
		assert.Contains(t, res.Message, "501")
	})

	t.Run("should match eligible statuses case-insensitively", func(t *testing.T) {
		// given
		service, commerce, _ := memberService(t, false)
		commerce.EXPECT().FetchOrder(gomock.Any(), int64(77)).
			Return(Order{ID: 77, Status: "awaiting fulfillment", CustomerID: 9}, nil)
		commerce.EXPECT().UpdateCustomerGroup(gomock.Any(), int64(9), 2).Return(nil)

		// when
		res, err := service.Process(ctx, []byte(`{"data":{"id":77}}`))

		// then
		require.NoError(t, err)
		assert.Equal(t, OutcomeCustomerMoved, res.Outcome)
	})

	t.Run("should upsert guest buyer into audience without group promotion", func(t *testing.T) {
		// given
		service, commerce, audience := memberService(t, true)
		commerce.EXPECT().FetchOrder(gomock.Any(), int64(501)).
			Return(Order{
				ID:               501,
				Status:           "Completed",
				BillingEmail:     "A@B.com",
				BillingFirstName: "Ada",
				BillingLastName:  "Byron",
			}, nil)
		audience.EXPECT().UpsertMember(gomock.Any(), AudienceMember{
			Email:     "a@b.com",
			FirstName: "Ada",
			LastName:  "Byron",
		}).Return(nil)
		audience.EXPECT().TagMember(gomock.Any(), "a@b.com", "Members Only").Return(nil)

		// when
		res, err := service.Process(ctx, []byte(`{"data":{"id":501}}`))

		// then
		require.NoError(t, err)
		assert.Equal(t, OutcomeAudienceUpserted, res.Outcome)
		assert.Contains(t, res.Message, "guest")
	})

	t.Run("should do both promotion and audience upsert for a full order", func(t *testing.T) {
		// given
		service, commerce, audience := memberService(t, true)
		commerce.EXPECT().FetchOrder(gomock.Any(), int64(501)).
			Return(Order{
				ID:           501,
				Status:       "Shipped",
				CustomerID:   42,
				BillingEmail: "buyer@example.com",
			}, nil)
		commerce.EXPECT().UpdateCustomerGroup(gomock.Any(), int64(42), 2).Return(nil)
		audience.EXPECT().UpsertMember(gomock.Any(), gomock.Any()).Return(nil)
		audience.EXPECT().TagMember(gomock.Any(), "buyer@example.com", "Members Only").Return(nil)

		// when
		res, err := service.Process(ctx, []byte(`{"data":{"id":501}}`))

		// then
		require.NoError(t, err)
		assert.Equal(t, OutcomeProcessed, res.Outcome)
		assert.Contains(t, res.Message, "audience member upserted")
	})

	t.Run("should skip audience step when order has no billing email", func(t *testing.T) {
		// given
		service, commerce, _ := memberService(t, true)
		commerce.EXPECT().FetchOrder(gomock.Any(), int64(11)).
			Return(Order{ID: 11, Status: "Completed", CustomerID: 3}, nil)
		commerce.EXPECT().UpdateCustomerGroup(gomock.Any(), int64(3), 2).Return(nil)

		// when
		res, err := service.Process(ctx, []byte(`{"data":{"id":11}}`))

		// then
		require.NoError(t, err)
		assert.Equal(t, OutcomeCustomerMoved, res.Outcome)
	})

	t.Run("should skip guest order entirely when audience sync is disabled", func(t *testing.T) {
		// given
		service, commerce, _ := memberService(t, false)
		commerce.EXPECT().FetchOrder(gomock.Any(), int64(12)).
			Return(Order{ID: 12, Status: "Completed", BillingEmail: "guest@example.com"}, nil)

		// when
		res, err := service.Process(ctx, []byte(`{"data":{"id":12}}`))

		// then
		require.NoError(t, err)
		assert.Equal(t, OutcomeGuestSkipped, res.Outcome)
	})

	t.Run("should fail hard when the order fetch fails", func(t *testing.T) {
		// given
		service, commerce, _ := memberService(t, true)
		commerce.EXPECT().FetchOrder(gomock.Any(), int64(501)).
			Return(Order{}, errors.New("bigcommerce 403 Forbidden: denied"))

		// when
		_, err := service.Process(ctx, []byte(`{"data":{"id":501}}`))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch order 501")
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("should fail hard when the group update fails", func(t *testing.T) {
		// given
		service, commerce, _ := memberService(t, true)
		commerce.EXPECT().FetchOrder(gomock.Any(), int64(501)).
			Return(Order{ID: 501, Status: "Completed", CustomerID: 42}, nil)
		commerce.EXPECT().UpdateCustomerGroup(gomock.Any(), int64(42), 2).
			Return(errors.New("bigcommerce 500 Internal Server Error: boom"))

		// when
		_, err := service.Process(ctx, []byte(`{"data":{"id":501}}`))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "move customer 42")
	})

	t.Run("should fail hard when the audience upsert fails, without touching tags", func(t *testing.T) {
		// given
		service, commerce, audience := memberService(t, true)
		commerce.EXPECT().FetchOrder(gomock.Any(), int64(501)).
			Return(Order{ID: 501, Status: "Completed", CustomerID: 42, BillingEmail: "x@y.z"}, nil)
		commerce.EXPECT().UpdateCustomerGroup(gomock.Any(), int64(42), 2).Return(nil)
		audience.EXPECT().UpsertMember(gomock.Any(), gomock.Any()).
			Return(errors.New("mailchimp 400 Bad Request: invalid"))

		// when
		_, err := service.Process(ctx, []byte(`{"data":{"id":501}}`))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upsert audience member")
	})

	t.Run("should fail hard when tagging fails after a successful upsert", func(t *testing.T) {
		// given
		service, commerce, audience := memberService(t, true)
		commerce.EXPECT().FetchOrder(gomock.Any(), int64(501)).
			Return(Order{ID: 501, Status: "Completed", CustomerID: 42, BillingEmail: "x@y.z"}, nil)
		commerce.EXPECT().UpdateCustomerGroup(gomock.Any(), int64(42), 2).Return(nil)
		audience.EXPECT().UpsertMember(gomock.Any(), gomock.Any()).Return(nil)
		audience.EXPECT().TagMember(gomock.Any(), "x@y.z", "Members Only").
			Return(errors.New("mailchimp 500 Internal Server Error: boom"))

		// when
		_, err := service.Process(ctx, []byte(`{"data":{"id":501}}`))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tag audience member")
	})
}
