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
	"github.com/pkg/errors"
)

const MarketActionsToolName = "get_market_actions"

// MarketActionsRequest represents the tool input. Optional filters are
// omitted from the upstream request entirely when unset.
type MarketActionsRequest struct {
	Page       int      `json:"page,omitempty" jsonschema:"title=Page,description=Page number for pagination,default=0"`
	Mode       string   `json:"mode,omitempty" jsonschema:"title=Mode,description=Grouping mode for market aggregation,default=collection_number,enum=collection_number,enum=collection,enum=number,enum=model,enum=pattern,enum=backdrop" validate:"omitempty,oneof=collection_number collection number model pattern backdrop"`
	ActionType string   `json:"action_type,omitempty" jsonschema:"title=Action Type,description=Market action type,default=buy,enum=buy,enum=listing,enum=change_price" validate:"omitempty,oneof=buy listing change_price"`
	Gift       string   `json:"gift,omitempty" jsonschema:"title=Gift,description=Optional gift identifier (slug or URL)"`
	MinPrice   *float64 `json:"min_price,omitempty" jsonschema:"title=Min Price,description=Optional minimum price filter in TON"`
	MaxPrice   *float64 `json:"max_price,omitempty" jsonschema:"title=Max Price,description=Optional maximum price filter in TON"`
	Market     string   `json:"market,omitempty" jsonschema:"title=Market,description=Optional market filter ('offchain', etc)"`
}

// MarketActionsTool returns aggregated market actions (buys, listings,
// price changes) for gifts.
type MarketActionsTool struct {
	name        string
	description string
	client      *gateway.Client
}

var _ tools.MCPTool[MarketActionsRequest] = (*MarketActionsTool)(nil)

func NewMarketActionsTool(client *gateway.Client) *MarketActionsTool {
	return &MarketActionsTool{
		name:        MarketActionsToolName,
		description: "Get aggregated market actions (buys, listings, price changes) for gifts.",
		client:      client,
	}
}

func (t *MarketActionsTool) Name() string {
	return t.name
}

func (t *MarketActionsTool) Description() string {
	return t.description
}

func (t *MarketActionsTool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(MarketActionsRequest{}))
	return sc.Parameters
}

func (t *MarketActionsTool) Run(ctx context.Context, req *MarketActionsRequest) (any, error) {
	defer metricskey.PerfToolCall.MeasureSince(time.Now(), t.name)
	if err := validate.Struct(req); err != nil {
		return nil, errors.WithStack(err)
	}
	return t.client.MarketActions(ctx, gateway.MarketActionsParams{
		Page:       req.Page,
		Mode:       req.Mode,
		ActionType: req.ActionType,
		Gift:       req.Gift,
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		Market:     req.Market,
	})
}

func (t *MarketActionsTool) Call(ctx context.Context, input string) (string, error) {
	var req MarketActionsRequest
	if err := decodeInput(input, &req); err != nil {
		return failureEnvelope(t.name, err), nil
	}
	data, err := t.Run(ctx, &req)
	if err != nil {
		return failureEnvelope(t.name, err), nil
	}
	return successEnvelope(t.name, data), nil
}

func (t *MarketActionsTool) RunMCP(ctx context.Context, req *MarketActionsRequest) (*mcp.ToolResponse, error) {
	data, err := t.Run(ctx, req)
	return respond(t.name, data, err)
}

func (t *MarketActionsTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, func(ctx context.Context, args MarketActionsRequest) (*mcp.ToolResponse, error) {
		return t.RunMCP(ctx, &args)
	})
}
