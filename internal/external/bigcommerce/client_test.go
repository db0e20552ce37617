//go:build !integration

package bigcommerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchOrder(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/orders/501", r.URL.Path)
			assert.Equal(t, "secret-token", r.Header.Get("X-Auth-Token"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": 501,
				"status": "Completed",
				"customer_id": 42,
				"billing_address": {"email": "A@B.com", "first_name": "Ada", "last_name": "Byron"}
			}`))
		}))
		defer server.Close()

		client := New("abc123", "secret-token", server.URL, nil)

		order, err := client.FetchOrder(context.Background(), 501)
		require.NoError(t, err)
		assert.Equal(t, int64(501), order.ID)
		assert.Equal(t, "Completed", order.Status)
		assert.Equal(t, int64(42), order.CustomerID)
		assert.Equal(t, "A@B.com", order.BillingEmail)
		assert.Equal(t, "Ada", order.BillingFirstName)
		assert.Equal(t, "Byron", order.BillingLastName)
		assert.False(t, order.IsGuest())
	})

	t.Run("guest order has no customer id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": 502, "status": "Completed", "customer_id": 0}`))
		}))
		defer server.Close()

		client := New("abc123", "secret-token", server.URL, nil)

		order, err := client.FetchOrder(context.Background(), 502)
		require.NoError(t, err)
		assert.True(t, order.IsGuest())
	})

	t.Run("non-2xx carries status and body in the error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title":"Order not found"}`))
		}))
		defer server.Close()

		client := New("abc123", "secret-token", server.URL, nil)

		_, err := client.FetchOrder(context.Background(), 999)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "Order not found")
	})
}

func TestClient_UpdateCustomerGroup(t *testing.T) {
	t.Run("sends a bare single-element array", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/customers", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body []map[string]int64
			err := json.NewDecoder(r.Body).Decode(&body)
			require.NoError(t, err)
			require.Len(t, body, 1)
			assert.Equal(t, int64(42), body[0]["id"])
			assert.Equal(t, int64(2), body[0]["customer_group_id"])

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := New("abc123", "secret-token", server.URL, nil)

		err := client.UpdateCustomerGroup(context.Background(), 42, 2)
		require.NoError(t, err)
	})

	t.Run("non-2xx is a hard failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"title":"invalid group"}`))
		}))
		defer server.Close()

		client := New("abc123", "secret-token", server.URL, nil)

		err := client.UpdateCustomerGroup(context.Background(), 42, 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "422")
	})
}

func TestClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/time", r.URL.Path)
		_, _ = w.Write([]byte(`{"time": 1756700000}`))
	}))
	defer server.Close()

	client := New("abc123", "secret-token", server.URL, nil)

	assert.NoError(t, client.Ping(context.Background()))
}

func TestNew_DefaultBaseURL(t *testing.T) {
	client := New("abc123", "secret-token", "", nil)

	assert.Equal(t, "https://api.bigcommerce.com/stores/abc123/v2", client.BaseURL)
}
