// Package tonrates implements a minimal client for the public tonapi.io
// rates endpoint. It is independent of the GiftAsset gateway: no auth
// header, no payload truncation, just the TON/USD spot rate.
package tonrates

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// DefaultBaseURL is the public TON API address.
const DefaultBaseURL = "https://tonapi.io"

// DefaultTimeout bounds the rates round trip.
const DefaultTimeout = 30 * time.Second

// Doer performs a HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches spot rates from tonapi.io.
type Client struct {
	baseURL    string
	httpClient Doer
}

// New returns a new rates client.
func New() *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// WithBaseURL overrides the rates service address.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithHTTPClient overrides the underlying HTTP client.
func (c *Client) WithHTTPClient(client Doer) *Client {
	c.httpClient = client
	return c
}

// TONPrice returns the current TON rate object in USD, extracted from the
// rates.TON field of the response. A missing field yields an empty object.
func (c *Client) TONPrice(ctx context.Context) (any, error) {
	u := c.baseURL + "/v2/rates?tokens=ton&currencies=usd"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return nil, errors.Errorf("rates service returned status %d: %s", res.StatusCode, body)
	}

	var data struct {
		Rates map[string]any `json:"rates"`
	}
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	ton, ok := data.Rates["TON"]
	if !ok {
		return map[string]any{}, nil
	}
	return ton, nil
}
