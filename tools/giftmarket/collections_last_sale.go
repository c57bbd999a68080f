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

const CollectionsLastSaleToolName = "get_all_collections_last_sale"

// CollectionsLastSaleRequest represents the tool input. The capability
// takes no parameters.
type CollectionsLastSaleRequest struct{}

type CollectionsLastSaleTool struct {
	name        string
	description string
	client      *gateway.Client
}

var _ tools.MCPTool[CollectionsLastSaleRequest] = (*CollectionsLastSaleTool)(nil)

func NewCollectionsLastSaleTool(client *gateway.Client) *CollectionsLastSaleTool {
	return &CollectionsLastSaleTool{
		name:        CollectionsLastSaleToolName,
		description: "Get last sale on providers for all collections.",
		client:      client,
	}
}

func (t *CollectionsLastSaleTool) Name() string {
	return t.name
}

func (t *CollectionsLastSaleTool) Description() string {
	return t.description
}

func (t *CollectionsLastSaleTool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(CollectionsLastSaleRequest{}))
	return sc.Parameters
}

func (t *CollectionsLastSaleTool) Run(ctx context.Context, _ *CollectionsLastSaleRequest) (any, error) {
	defer metricskey.PerfToolCall.MeasureSince(time.Now(), t.name)
	return t.client.AllCollectionsLastSale(ctx)
}

func (t *CollectionsLastSaleTool) Call(ctx context.Context, _ string) (string, error) {
	data, err := t.Run(ctx, &CollectionsLastSaleRequest{})
	if err != nil {
		return failureEnvelope(t.name, err), nil
	}
	return successEnvelope(t.name, data), nil
}

func (t *CollectionsLastSaleTool) RunMCP(ctx context.Context, req *CollectionsLastSaleRequest) (*mcp.ToolResponse, error) {
	data, err := t.Run(ctx, req)
	return respond(t.name, data, err)
}

func (t *CollectionsLastSaleTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, func(ctx context.Context, args CollectionsLastSaleRequest) (*mcp.ToolResponse, error) {
		return t.RunMCP(ctx, &args)
	})
}
