// Package tonprice exposes the TON/USD spot rate as a tool. It bypasses the
// GiftAsset gateway and calls the public rates feed directly, sharing only
// the response envelope convention with the marketplace tools.
package tonprice

import (
	"context"
	"reflect"
	"time"

	"github.com/GIFT-ASSET/giftasset-mcp/pkg/metricskey"
	"github.com/GIFT-ASSET/giftasset-mcp/pkg/tonrates"
	"github.com/GIFT-ASSET/giftasset-mcp/schema"
	"github.com/GIFT-ASSET/giftasset-mcp/tools"
	"github.com/effective-security/xlog"
	mcp "github.com/metoro-io/mcp-golang"
)

var logger = xlog.NewPackageLogger("github.com/GIFT-ASSET/giftasset-mcp", "tonprice")

const ToolName = "get_ton_price"

// Request represents the tool input. The capability takes no parameters.
type Request struct{}

// Tool returns the current price of TON in USD.
type Tool struct {
	name        string
	description string
	client      *tonrates.Client
}

var _ tools.MCPTool[Request] = (*Tool)(nil)

func New(client *tonrates.Client) *Tool {
	return &Tool{
		name:        ToolName,
		description: "Get the current price of TON (The Open Network) in USD.",
		client:      client,
	}
}

func (t *Tool) Name() string {
	return t.name
}

func (t *Tool) Description() string {
	return t.description
}

func (t *Tool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(Request{}))
	return sc.Parameters
}

func (t *Tool) Run(ctx context.Context, _ *Request) (any, error) {
	defer metricskey.PerfToolCall.MeasureSince(time.Now(), t.name)
	return t.client.TONPrice(ctx)
}

func (t *Tool) Call(ctx context.Context, _ string) (string, error) {
	data, err := t.Run(ctx, &Request{})
	if err != nil {
		metricskey.StatsToolCallsFailed.IncrCounter(1, t.name)
		logger.KV(xlog.ERROR,
			"tool", t.name,
			"err", err.Error())
		return tools.Failure(err).JSON(), nil
	}
	metricskey.StatsToolCallsSucceeded.IncrCounter(1, t.name)
	return tools.Success(data).JSON(), nil
}

func (t *Tool) RunMCP(ctx context.Context, _ *Request) (*mcp.ToolResponse, error) {
	out, _ := t.Call(ctx, "{}")
	return mcp.NewToolResponse(mcp.NewTextContent(out)), nil
}

func (t *Tool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, func(ctx context.Context, args Request) (*mcp.ToolResponse, error) {
		return t.RunMCP(ctx, &args)
	})
}
