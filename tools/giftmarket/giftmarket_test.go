package giftmarket_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GIFT-ASSET/giftasset-mcp/pkg/gateway"
	"github.com/GIFT-ASSET/giftasset-mcp/tools"
	"github.com/GIFT-ASSET/giftasset-mcp/tools/giftmarket"
	"github.com/GIFT-ASSET/giftasset-mcp/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return gateway.New("testkey", gateway.WithBaseURL(server.URL), gateway.WithHTTPClient(server.Client()))
}

func Test_InfoTool_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/gifts", r.URL.Path)
		_, _ = w.Write([]byte(`{"ok":true,"result":{"slug":"plushpepe-1","model":"Frogzilla"}}`))
	})

	tool := giftmarket.NewInfoTool(client)
	assert.Equal(t, "get_gift_info", tool.Name())
	assert.Contains(t, tool.Description(), "slug")

	out, err := tool.Call(context.Background(), `{"slug":"plushpepe-1"}`)
	require.NoError(t, err)

	exp := `{
  "status": "success",
  "data": {
    "model": "Frogzilla",
    "slug": "plushpepe-1"
  }
}`
	assert.Equal(t, exp, out)
}

func Test_InfoTool_Parameters(t *testing.T) {
	client := gateway.New("testkey")
	tool := giftmarket.NewInfoTool(client)

	exp := `{
	"properties": {
		"slug": {
			"type": "string",
			"title": "Slug",
			"description": "Slug of the gift (e.g. 'plushpepe-1')"
		}
	},
	"type": "object",
	"required": [
		"slug"
	]
}`
	assert.Equal(t, exp, utils.ToJSONIndent(tool.Parameters()))
}

func Test_InfoTool_ConnectivityErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	client := gateway.New("testkey", gateway.WithBaseURL(server.URL))

	tool := giftmarket.NewInfoTool(client)

	out, err := tool.Call(context.Background(), `{"slug":"plushpepe-1"}`)
	require.NoError(t, err, "failures must be reported inside the envelope")
	assert.Contains(t, out, `"status": "error"`)
	assert.Contains(t, out, "Connection Error: Could not reach GiftAsset API.")
}

func Test_InfoTool_UpstreamRejectionEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"description":"gift not found"}`))
	})

	tool := giftmarket.NewInfoTool(client)

	out, err := tool.Call(context.Background(), `{"slug":"nosuch-1"}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "error"`)
	assert.Contains(t, out, "gift not found")
}

func Test_InfoTool_BadInputEnvelope(t *testing.T) {
	client := gateway.New("testkey")
	tool := giftmarket.NewInfoTool(client)

	out, err := tool.Call(context.Background(), `this is not json`)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "error"`)
}

func Test_InfoTool_LenientInput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	})

	tool := giftmarket.NewInfoTool(client)

	out, err := tool.Call(context.Background(), "Here you go: {\"slug\":\"plushpepe-1\"} hope that helps")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "success"`)
}

func Test_UserGiftsTool_MissingIdentifier(t *testing.T) {
	client := gateway.New("testkey")
	tool := giftmarket.NewUserGiftsTool(client)

	out, err := tool.Call(context.Background(), `{}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "error"`)
	assert.Contains(t, out, "Must provide either username or telegram_id")
}

func Test_UserGiftsTool_LimitOutOfRange(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	tool := giftmarket.NewUserGiftsTool(client)

	out, err := tool.Call(context.Background(), `{"username":"durov","limit":500}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "error"`)
	assert.False(t, called, "validation failures must not reach the network")
}

func Test_MarketActionsTool_InvalidMode(t *testing.T) {
	client := gateway.New("testkey")
	tool := giftmarket.NewMarketActionsTool(client)

	out, err := tool.Call(context.Background(), `{"mode":"bogus"}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "error"`)
}

func Test_UpdateStatsTool_IgnoresInput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/gifts/get_gifts_update_stat", r.URL.Path)
		_, _ = w.Write([]byte(`{"ok":true,"result":{"updated_today":3}}`))
	})

	tool := giftmarket.NewUpdateStatsTool(client)

	out, err := tool.Call(context.Background(), ``)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "success"`)
	assert.Contains(t, out, `"updated_today": 3`)
}

type fakeRegistrator struct {
	names    []string
	handlers []any
}

func (r *fakeRegistrator) RegisterTool(name string, description string, handler any) error {
	r.names = append(r.names, name)
	r.handlers = append(r.handlers, handler)
	return nil
}

func Test_All_RegisterMCP(t *testing.T) {
	client := gateway.New("testkey")

	all := giftmarket.All(client)
	require.Len(t, all, 9)

	reg := &fakeRegistrator{}
	for _, tool := range all {
		require.NoError(t, tool.RegisterMCP(reg))
	}
	assert.Equal(t, []string{
		"get_gift_info",
		"get_market_actions",
		"get_gifts_aggregator",
		"get_unique_last_sales",
		"get_all_collections_last_sale",
		"get_gifts_update_stat",
		"get_user_gifts",
		"get_gifts_price_list",
		"get_gifts_price_list_history",
	}, reg.names)
	for _, h := range reg.handlers {
		assert.NotNil(t, h)
	}
}

func Test_RunMCP_EnvelopeText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"result":{"slug":"plushpepe-1"}}`))
	})

	tool := giftmarket.NewInfoTool(client)

	resp, err := tool.RunMCP(context.Background(), &giftmarket.InfoRequest{Slug: "plushpepe-1"})
	require.NoError(t, err)
	require.Len(t, resp.Content, 1)
	require.NotNil(t, resp.Content[0].TextContent)
	assert.Contains(t, resp.Content[0].TextContent.Text, `"status": "success"`)
}

var _ tools.IMCPTool = (*giftmarket.InfoTool)(nil)
