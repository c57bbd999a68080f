package giftmarket

import (
	"context"
	"reflect"
	"time"

	"github.com/GIFT-ASSET/giftasset-mcp/pkg/gateway"
	"github.com/GIFT-ASSET/giftasset-mcp/pkg/metricskey"
	"github.com/GIFT-ASSET/giftasset-mcp/schema"
	"github.com/GIFT-ASSET/giftasset-mcp/tools"
	mcp "github.com/metoro-io/mcp-golang"
)

const PriceHistoryToolName = "get_gifts_price_list_history"

// PriceHistoryRequest represents the tool input. Omit the collection name
// to retrieve history for all collections.
type PriceHistoryRequest struct {
	CollectionName string `json:"collection_name,omitempty" jsonschema:"title=Collection,description=Name of a specific collection to retrieve history for (e.g. 'Loot Bag')"`
}

// PriceHistoryTool returns historical price data with 24h and 7d timeframes.
type PriceHistoryTool struct {
	name        string
	description string
	client      *gateway.Client
}

var _ tools.MCPTool[PriceHistoryRequest] = (*PriceHistoryTool)(nil)

func NewPriceHistoryTool(client *gateway.Client) *PriceHistoryTool {
	return &PriceHistoryTool{
		name:        PriceHistoryToolName,
		description: "Get historical price data for gift collections with 24h and 7d timeframes.",
		client:      client,
	}
}

func (t *PriceHistoryTool) Name() string {
	return t.name
}

func (t *PriceHistoryTool) Description() string {
	return t.description
}

func (t *PriceHistoryTool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(PriceHistoryRequest{}))
	return sc.Parameters
}

func (t *PriceHistoryTool) Run(ctx context.Context, req *PriceHistoryRequest) (any, error) {
	defer metricskey.PerfToolCall.MeasureSince(time.Now(), t.name)
	return t.client.GiftsPriceHistory(ctx, req.CollectionName)
}

func (t *PriceHistoryTool) Call(ctx context.Context, input string) (string, error) {
	var req PriceHistoryRequest
	if err := decodeInput(input, &req); err != nil {
		return failureEnvelope(t.name, err), nil
	}
	data, err := t.Run(ctx, &req)
	if err != nil {
		return failureEnvelope(t.name, err), nil
	}
	return successEnvelope(t.name, data), nil
}

func (t *PriceHistoryTool) RunMCP(ctx context.Context, req *PriceHistoryRequest) (*mcp.ToolResponse, error) {
	data, err := t.Run(ctx, req)
	return respond(t.name, data, err)
}

func (t *PriceHistoryTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, func(ctx context.Context, args PriceHistoryRequest) (*mcp.ToolResponse, error) {
		return t.RunMCP(ctx, &args)
	})
}
