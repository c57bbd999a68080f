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

const AggregatorToolName = "get_gifts_aggregator"

// AggregatorRequest represents the tool input. Unset optional filters are
// forwarded upstream as explicit nulls; the aggregator schema requires
// every key to be present.
type AggregatorRequest struct {
	Page           int      `json:"page,omitempty" jsonschema:"title=Page,description=Page number to fetch,default=0"`
	Name           string   `json:"name,omitempty" jsonschema:"title=Name,description=NFT name filter (use 'All' to disable),default=All"`
	Model          string   `json:"model,omitempty" jsonschema:"title=Model,description=Model name filter (use 'All' to disable),default=All"`
	Symbol         string   `json:"symbol,omitempty" jsonschema:"title=Symbol,description=Symbol name filter (use 'All' to disable),default=All"`
	Backdrop       string   `json:"backdrop,omitempty" jsonschema:"title=Backdrop,description=Backdrop name filter (use 'All' to disable),default=All"`
	Number         *int     `json:"number,omitempty" jsonschema:"title=Number,description=Specific gift number"`
	FromPrice      *int     `json:"from_price,omitempty" jsonschema:"title=From Price,description=Minimum price filter"`
	ToPrice        *int     `json:"to_price,omitempty" jsonschema:"title=To Price,description=Maximum price filter"`
	Markets        []string `json:"markets,omitempty" jsonschema:"title=Markets,description=List of specific markets ['tonnel' 'portals' 'fragment']"`
	BlockchainView *bool    `json:"blockchain_view,omitempty" jsonschema:"title=Blockchain View,description=Filter by blockchain view availability"`
	Receiver       *int64   `json:"receiver,omitempty" jsonschema:"title=Receiver,description=Receiver telegram_id"`
}

// AggregatorTool returns unified NFT listings across the supported markets.
type AggregatorTool struct {
	name        string
	description string
	client      *gateway.Client
}

var _ tools.MCPTool[AggregatorRequest] = (*AggregatorTool)(nil)

func NewAggregatorTool(client *gateway.Client) *AggregatorTool {
	return &AggregatorTool{
		name:        AggregatorToolName,
		description: "Get filtered NFT gift aggregator data. Returns unified NFTs lists from various markets.",
		client:      client,
	}
}

func (t *AggregatorTool) Name() string {
	return t.name
}

func (t *AggregatorTool) Description() string {
	return t.description
}

func (t *AggregatorTool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(AggregatorRequest{}))
	return sc.Parameters
}

func (t *AggregatorTool) Run(ctx context.Context, req *AggregatorRequest) (any, error) {
	defer metricskey.PerfToolCall.MeasureSince(time.Now(), t.name)
	if err := validate.Struct(req); err != nil {
		return nil, errors.WithStack(err)
	}
	return t.client.GiftsAggregator(ctx, gateway.AggregatorParams{
		Page:           req.Page,
		Name:           req.Name,
		Model:          req.Model,
		Symbol:         req.Symbol,
		Backdrop:       req.Backdrop,
		Number:         req.Number,
		FromPrice:      req.FromPrice,
		ToPrice:        req.ToPrice,
		Markets:        req.Markets,
		BlockchainView: req.BlockchainView,
		Receiver:       req.Receiver,
	})
}

func (t *AggregatorTool) Call(ctx context.Context, input string) (string, error) {
	var req AggregatorRequest
	if err := decodeInput(input, &req); err != nil {
		return failureEnvelope(t.name, err), nil
	}
	data, err := t.Run(ctx, &req)
	if err != nil {
		return failureEnvelope(t.name, err), nil
	}
	return successEnvelope(t.name, data), nil
}

func (t *AggregatorTool) RunMCP(ctx context.Context, req *AggregatorRequest) (*mcp.ToolResponse, error) {
	data, err := t.Run(ctx, req)
	return respond(t.name, data, err)
}

func (t *AggregatorTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, func(ctx context.Context, args AggregatorRequest) (*mcp.ToolResponse, error) {
		return t.RunMCP(ctx, &args)
	})
}
