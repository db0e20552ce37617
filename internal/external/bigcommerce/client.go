// Package bigcommerce is a thin client for the BigCommerce v2 store API,
// covering only what the membership flow needs.
package bigcommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"membersync/internal/domain/membership"
	"membersync/pkg/metrics"
)

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New creates a client for the given store. baseURL overrides the public API
// host, used by tests and regional proxies; empty means the default
// https://api.bigcommerce.com/stores/{hash}/v2.
func New(storeHash, token, baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://api.bigcommerce.com/stores/%s/v2", storeHash)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    httpClient,
	}
}

type orderResp struct {
	ID             int64  `json:"id"`
	Status         string `json:"status"`
	CustomerID     int64  `json:"customer_id"`
	BillingAddress struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	} `json:"billing_address"`
}

// FetchOrder reads one order by id.
func (c *Client) FetchOrder(ctx context.Context, orderID int64) (membership.Order, error) {
	raw, err := c.do(ctx, "fetch_order", http.MethodGet, fmt.Sprintf("%s/orders/%d", c.BaseURL, orderID), nil)
	if err != nil {
		return membership.Order{}, err
	}

	var out orderResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return membership.Order{}, fmt.Errorf("decode order: %w", err)
	}

	return membership.Order{
		ID:               out.ID,
		Status:           out.Status,
		CustomerID:       out.CustomerID,
		BillingEmail:     out.BillingAddress.Email,
		BillingFirstName: out.BillingAddress.FirstName,
		BillingLastName:  out.BillingAddress.LastName,
	}, nil
}

type customerGroupUpdate struct {
	ID              int64 `json:"id"`
	CustomerGroupID int   `json:"customer_group_id"`
}

// UpdateCustomerGroup reassigns the customer to the given group via the bulk
// customers endpoint. The payload is a bare array of update commands, not an
// envelope object; the endpoint rejects anything else.
func (c *Client) UpdateCustomerGroup(ctx context.Context, customerID int64, groupID int) error {
	body := []customerGroupUpdate{{ID: customerID, CustomerGroupID: groupID}}

	j, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	_, err = c.do(ctx, "update_customer_group", http.MethodPut, c.BaseURL+"/customers", bytes.NewReader(j))
	return err
}

// Ping verifies store API connectivity, used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, "ping", http.MethodGet, c.BaseURL+"/time", nil)
	return err
}

func (c *Client) do(ctx context.Context, operation, method, url string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		metrics.ObserveOutbound("bigcommerce", operation, "error", start)
		return nil, fmt.Errorf("http: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.ObserveOutbound("bigcommerce", operation, strconv.Itoa(resp.StatusCode), start)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("bigcommerce %s: %s", resp.Status, string(raw))
	}
	return raw, nil
}
