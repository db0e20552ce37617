// Package mailchimp is a thin client for the Mailchimp marketing API v3,
// covering audience member upsert and tagging.
package mailchimp

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"membersync/internal/domain/membership"
	"membersync/pkg/metrics"
)

type Client struct {
	BaseURL string
	APIKey  string
	ListID  string
	HTTP    *http.Client
}

// New creates a client for the given audience. baseURL overrides the
// datacenter host, used by tests; empty means the default
// https://{dc}.api.mailchimp.com/3.0.
func New(apiKey, listID, baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.api.mailchimp.com/3.0", DatacenterFromKey(apiKey))
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		ListID:  listID,
		HTTP:    httpClient,
	}
}

// DatacenterFromKey extracts the datacenter code embedded after the last
// dash of an API key, e.g. "xxxx-us21" -> "us21". Empty when the key carries
// none.
func DatacenterFromKey(apiKey string) string {
	idx := strings.LastIndex(apiKey, "-")
	if idx < 0 || idx == len(apiKey)-1 {
		return ""
	}
	return apiKey[idx+1:]
}

// MemberHash is the idempotent member key: lowercase-hex md5 of the trimmed,
// lowercased email. Mailchimp addresses list members by this hash.
func MemberHash(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

type upsertReq struct {
	EmailAddress string            `json:"email_address"`
	StatusIfNew  string            `json:"status_if_new"`
	MergeFields  map[string]string `json:"merge_fields"`
}

// UpsertMember creates or updates the audience member addressed by the email
// hash. New members are subscribed; existing ones keep their status.
func (c *Client) UpsertMember(ctx context.Context, member membership.AudienceMember) error {
	body := upsertReq{
		EmailAddress: member.Email,
		StatusIfNew:  "subscribed",
		MergeFields: map[string]string{
			"FNAME": member.FirstName,
			"LNAME": member.LastName,
		},
	}

	j, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	url := fmt.Sprintf("%s/lists/%s/members/%s", c.BaseURL, c.ListID, MemberHash(member.Email))
	return c.do(ctx, "upsert_member", http.MethodPut, url, bytes.NewReader(j))
}

type tagReq struct {
	Tags []tag `json:"tags"`
}

type tag struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// TagMember adds an active tag to the member addressed by the email hash.
func (c *Client) TagMember(ctx context.Context, email string, name string) error {
	j, err := json.Marshal(tagReq{Tags: []tag{{Name: name, Status: "active"}}})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	url := fmt.Sprintf("%s/lists/%s/members/%s/tags", c.BaseURL, c.ListID, MemberHash(email))
	return c.do(ctx, "tag_member", http.MethodPost, url, bytes.NewReader(j))
}

func (c *Client) do(ctx context.Context, operation, method, url string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	// Mailchimp ignores the basic auth username; only the key matters.
	req.SetBasicAuth("anystring", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		metrics.ObserveOutbound("mailchimp", operation, "error", start)
		return fmt.Errorf("http: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.ObserveOutbound("mailchimp", operation, strconv.Itoa(resp.StatusCode), start)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("mailchimp %s: %s", resp.Status, string(raw))
	}
	return nil
}
