// Package remote is the HTTP client for the authoritative lead-records
// service. It only distinguishes success from failure; retries and
// transport behavior are delegated to retryablehttp.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/pkg/lead"
)

const defaultRetryMax = 3

// Client talks to the lead-records REST API.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

// NewClient builds a client for the service rooted at baseURL.
func NewClient(baseURL string) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = log.New(io.Discard, "", 0)
	rc.RetryMax = defaultRetryMax
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    rc,
	}
}

// List fetches every record the remote store holds.
func (c *Client) List(ctx context.Context) ([]lead.Record, error) {
	body, err := c.do(ctx, http.MethodGet, "/lead-records", nil)
	if err != nil {
		return nil, err
	}
	return decodeRecords(gjson.GetBytes(body, "records"))
}

// Import submits a full batch in one call and returns the server's
// canonical batch; the server is the source of truth for identity
// assignment.
func (c *Client) Import(ctx context.Context, rows []lead.Record, replaceExisting bool) ([]lead.Record, error) {
	payload := struct {
		Rows            []wireRecord `json:"rows"`
		ReplaceExisting bool         `json:"replaceExisting"`
	}{Rows: toWireBatch(rows), ReplaceExisting: replaceExisting}

	body, err := c.do(ctx, http.MethodPost, "/lead-records/import", payload)
	if err != nil {
		return nil, err
	}
	return decodeRecords(gjson.GetBytes(body, "records"))
}

// Create submits a single new record and returns the persisted copy.
func (c *Client) Create(ctx context.Context, row lead.Record) (lead.Record, error) {
	payload := struct {
		Row wireRecord `json:"row"`
	}{Row: toWire(row)}

	body, err := c.do(ctx, http.MethodPost, "/lead-records", payload)
	if err != nil {
		return lead.Record{}, err
	}
	return decodeRecord(gjson.GetBytes(body, "record"))
}

// Update replaces the remote record with the given id.
func (c *Client) Update(ctx context.Context, id string, row lead.Record) (lead.Record, error) {
	payload := struct {
		Row wireRecord `json:"row"`
	}{Row: toWire(row)}

	body, err := c.do(ctx, http.MethodPut, "/lead-records/"+id, payload)
	if err != nil {
		return lead.Record{}, err
	}
	return decodeRecord(gjson.GetBytes(body, "record"))
}

// Delete removes the remote record with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/lead-records/"+id, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = strings.NewReader(string(raw))
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: server returned %d: %s", method, path, res.StatusCode, snippet(body))
	}
	return body, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	if s == "" {
		s = "(empty body)"
	}
	return s
}

func decodeRecords(result gjson.Result) ([]lead.Record, error) {
	if !result.IsArray() {
		return nil, fmt.Errorf("malformed response: missing records array")
	}
	var wires []wireRecord
	if err := json.Unmarshal([]byte(result.Raw), &wires); err != nil {
		return nil, fmt.Errorf("malformed records array: %w", err)
	}
	out := make([]lead.Record, 0, len(wires))
	for _, w := range wires {
		rec, err := fromWire(w)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeRecord(result gjson.Result) (lead.Record, error) {
	if !result.IsObject() {
		return lead.Record{}, fmt.Errorf("malformed response: missing record object")
	}
	var w wireRecord
	if err := json.Unmarshal([]byte(result.Raw), &w); err != nil {
		return lead.Record{}, fmt.Errorf("malformed record object: %w", err)
	}
	return fromWire(w)
}
