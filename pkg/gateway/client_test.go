package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GIFT-ASSET/giftasset-mcp/pkg/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GiftInfo_UnwrapsResultEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/gifts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "testkey", r.Header.Get("x-api-token"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "plushpepe-1", body["slug"])

		_, _ = w.Write([]byte(`{"ok":true,"result":{"slug":"plushpepe-1","model":"Frogzilla"}}`))
	}))
	defer server.Close()

	c := gateway.New("testkey", gateway.WithBaseURL(server.URL), gateway.WithHTTPClient(server.Client()))

	data, err := c.GiftInfo(context.Background(), "plushpepe-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"slug": "plushpepe-1", "model": "Frogzilla"}, data)
}

func Test_Request_RawBodyWithoutEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"slug":"a"},{"slug":"b"}]`))
	}))
	defer server.Close()

	c := gateway.New("testkey", gateway.WithBaseURL(server.URL))

	data, err := c.AllCollectionsLastSale(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"slug": "a"}, map[string]any{"slug": "b"}}, data)
}

func Test_Request_NotOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"description":"gift not found"}`))
	}))
	defer server.Close()

	c := gateway.New("testkey", gateway.WithBaseURL(server.URL))

	_, err := c.GiftInfo(context.Background(), "nosuch-1")
	require.Error(t, err)
	assert.Equal(t, gateway.KindUpstreamRejection, gateway.KindOf(err))
	assert.Contains(t, err.Error(), "gift not found")
}

func Test_Request_NotOKWithoutDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false}`))
	}))
	defer server.Close()

	c := gateway.New("testkey", gateway.WithBaseURL(server.URL))

	_, err := c.GiftInfo(context.Background(), "nosuch-1")
	require.Error(t, err)
	assert.EqualError(t, err, "API Error: Unknown error")
}

func Test_Request_HTTPErrorJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"description":"not found"}`))
	}))
	defer server.Close()

	c := gateway.New("testkey", gateway.WithBaseURL(server.URL))

	_, err := c.GiftInfo(context.Background(), "nosuch-1")
	require.Error(t, err)
	assert.Equal(t, gateway.KindUpstreamRejection, gateway.KindOf(err))
	assert.Contains(t, err.Error(), "API Error 404")
	assert.Contains(t, err.Error(), `"description":"not found"`)

	var ge *gateway.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, http.StatusNotFound, ge.StatusCode)
}

func Test_Request_HTTPErrorTextBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`route not found`))
	}))
	defer server.Close()

	c := gateway.New("testkey", gateway.WithBaseURL(server.URL))

	_, err := c.GiftInfo(context.Background(), "nosuch-1")
	require.Error(t, err)
	assert.EqualError(t, err, "HTTP Error 404: route not found")
}

func Test_Request_Connectivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := gateway.New("testkey", gateway.WithBaseURL(server.URL))

	_, err := c.GiftInfo(context.Background(), "plushpepe-1")
	require.Error(t, err)
	assert.Equal(t, gateway.KindConnectivity, gateway.KindOf(err))
	assert.Contains(t, err.Error(), "Connection Error: Could not reach GiftAsset API.")
}

func Test_New_WithoutAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// degraded mode: the request is still sent, just without the token
		_, ok := r.Header["X-Api-Token"]
		assert.False(t, ok)
		_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
	}))
	defer server.Close()

	c := gateway.New("", gateway.WithBaseURL(server.URL))

	_, err := c.GiftInfo(context.Background(), "plushpepe-1")
	require.NoError(t, err)
}

func Test_GiftInfo_TruncatesOversizedList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items := make([]map[string]any, 50)
		for i := range items {
			items[i] = map[string]any{"n": i}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": items})
	}))
	defer server.Close()

	c := gateway.New("testkey", gateway.WithBaseURL(server.URL))

	data, err := c.GiftInfo(context.Background(), "plushpepe-1")
	require.NoError(t, err)

	m, ok := data.(map[string]any)
	require.True(t, ok)
	assert.Len(t, m["items"], 20)
	assert.Equal(t, "List truncated: showing top 20 out of 50 items due to context limits.", m["note"])
}
