// Package gateway implements the client for the GiftAsset marketplace data API.
// It is the single choke point for outbound calls: it builds requests,
// classifies and unwraps responses, and bounds oversized payloads before
// they are handed to tools.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/GIFT-ASSET/giftasset-mcp/pkg/metricskey"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/values"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/GIFT-ASSET/giftasset-mcp", "gateway")

const (
	// DefaultBaseURL is the production GiftAsset API address.
	DefaultBaseURL = "https://api.giftasset.dev/"
	// DefaultTimeout bounds every upstream round trip.
	DefaultTimeout = 30 * time.Second

	apiTokenHeader = "x-api-token"
)

// Doer performs a HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the GiftAsset API. The underlying HTTP client is
// shared across all calls and is safe for concurrent use; each call issues
// exactly one independent upstream request.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient Doer
}

// Option is an option for the GiftAsset client.
type Option func(*Client)

// WithBaseURL overrides the upstream base address.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client Doer) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout overrides the per-call timeout. It has no effect when the
// HTTP client was replaced with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if hc, ok := c.httpClient.(*http.Client); ok {
			hc.Timeout = timeout
		}
	}
}

// New returns a new GiftAsset client. An empty apiKey is permitted:
// requests are still sent, but the upstream may reject them with 403.
func New(apiKey string, opts ...Option) *Client {
	if apiKey == "" {
		logger.KV(xlog.WARNING,
			"reason", "api_key_not_set",
			"msg", "GIFTASSET_API_KEY is not set, API calls might fail with 403 Forbidden")
	}
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiTokenHeader, c.apiKey)
	}
}

// request issues one upstream call and classifies the outcome:
// transport failure, HTTP rejection, ok:false rejection, or success.
// On success the payload is unwrapped from the optional result envelope.
func (c *Client) request(ctx context.Context, method, endpoint string, params url.Values, body any) (any, error) {
	u := strings.TrimSuffix(c.baseURL, "/") + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var payload io.Reader
	if body != nil {
		bs, err := json.Marshal(body)
		if err != nil {
			return nil, unexpectedError(errors.Wrap(err, "marshal payload"))
		}
		payload = bytes.NewReader(bs)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return nil, unexpectedError(errors.Wrap(err, "create request"))
	}
	c.setHeaders(req)

	started := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		metricskey.StatsGatewayCallsFailed.IncrCounter(1, endpoint)
		logger.ContextKV(ctx, xlog.ERROR,
			"endpoint", endpoint,
			"err", err.Error())
		return nil, connectivityError(err)
	}
	defer func() {
		_ = res.Body.Close()
	}()
	metricskey.PerfGatewayCall.MeasureSince(started, endpoint)

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		metricskey.StatsGatewayCallsFailed.IncrCounter(1, endpoint)
		return nil, connectivityError(err)
	}

	if res.StatusCode >= 400 {
		metricskey.StatsGatewayCallsFailed.IncrCounter(1, endpoint)
		logger.ContextKV(ctx, xlog.ERROR,
			"endpoint", endpoint,
			"status", res.StatusCode)

		var parsed any
		if err := json.Unmarshal(raw, &parsed); err == nil {
			return nil, rejectionJSONError(res.StatusCode, parsed)
		}
		return nil, rejectionTextError(res.StatusCode, string(raw))
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		metricskey.StatsGatewayCallsFailed.IncrCounter(1, endpoint)
		return nil, unexpectedError(errors.Wrap(err, "decode response"))
	}

	if m, ok := data.(map[string]any); ok {
		// Some endpoints wrap the payload in {ok, result}, others return it raw.
		if v, present := m["ok"]; present {
			if b, _ := v.(bool); !b {
				desc := values.StringsCoalesce(values.MapAny(m).String("description"), "Unknown error")
				metricskey.StatsGatewayCallsFailed.IncrCounter(1, endpoint)
				logger.ContextKV(ctx, xlog.ERROR,
					"endpoint", endpoint,
					"status", res.StatusCode,
					"description", desc)
				return nil, rejectionNotOKError(desc)
			}
		}
		metricskey.StatsGatewayCallsSucceeded.IncrCounter(1, endpoint)
		if result, present := m["result"]; present {
			return result, nil
		}
		return data, nil
	}

	metricskey.StatsGatewayCallsSucceeded.IncrCounter(1, endpoint)
	return data, nil
}
