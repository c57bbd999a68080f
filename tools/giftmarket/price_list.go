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

const PriceListToolName = "get_gifts_price_list"

// PriceListRequest represents the tool input.
type PriceListRequest struct {
	Models    *bool `json:"models,omitempty" jsonschema:"title=Models,description=If true return model-level prices instead of collection-level"`
	Premarket *bool `json:"premarket,omitempty" jsonschema:"title=Premarket,description=If true filter to include only premarket collections"`
}

// PriceListTool returns current floor prices for all gift collections.
type PriceListTool struct {
	name        string
	description string
	client      *gateway.Client
}

var _ tools.MCPTool[PriceListRequest] = (*PriceListTool)(nil)

func NewPriceListTool(client *gateway.Client) *PriceListTool {
	return &PriceListTool{
		name:        PriceListToolName,
		description: "Get current floor prices for all gift collections across all marketplaces.",
		client:      client,
	}
}

func (t *PriceListTool) Name() string {
	return t.name
}

func (t *PriceListTool) Description() string {
	return t.description
}

func (t *PriceListTool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(PriceListRequest{}))
	return sc.Parameters
}

func (t *PriceListTool) Run(ctx context.Context, req *PriceListRequest) (any, error) {
	defer metricskey.PerfToolCall.MeasureSince(time.Now(), t.name)
	return t.client.GiftsPriceList(ctx, req.Models, req.Premarket)
}

func (t *PriceListTool) Call(ctx context.Context, input string) (string, error) {
	var req PriceListRequest
	if err := decodeInput(input, &req); err != nil {
		return failureEnvelope(t.name, err), nil
	}
	data, err := t.Run(ctx, &req)
	if err != nil {
		return failureEnvelope(t.name, err), nil
	}
	return successEnvelope(t.name, data), nil
}

func (t *PriceListTool) RunMCP(ctx context.Context, req *PriceListRequest) (*mcp.ToolResponse, error) {
	data, err := t.Run(ctx, req)
	return respond(t.name, data, err)
}

func (t *PriceListTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, func(ctx context.Context, args PriceListRequest) (*mcp.ToolResponse, error) {
		return t.RunMCP(ctx, &args)
	})
}
