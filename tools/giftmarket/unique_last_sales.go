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

const UniqueLastSalesToolName = "get_unique_last_sales"

// UniqueLastSalesRequest represents the tool input.
type UniqueLastSalesRequest struct {
	CollectionName string `json:"collection_name" jsonschema:"title=Collection,description=Name of the collection (e.g. 'Evil Eye')" validate:"required"`
	Limit          int    `json:"limit,omitempty" jsonschema:"title=Limit,description=Number of gifts to return,default=10" validate:"omitempty,min=1,max=50"`
	ModelName      string `json:"model_name,omitempty" jsonschema:"title=Model,description=Optional model name filter"`
}

// UniqueLastSalesTool returns the unique last sales for a collection.
type UniqueLastSalesTool struct {
	name        string
	description string
	client      *gateway.Client
}

var _ tools.MCPTool[UniqueLastSalesRequest] = (*UniqueLastSalesTool)(nil)

func NewUniqueLastSalesTool(client *gateway.Client) *UniqueLastSalesTool {
	return &UniqueLastSalesTool{
		name:        UniqueLastSalesToolName,
		description: "Get unique last sales for a specific collection.",
		client:      client,
	}
}

func (t *UniqueLastSalesTool) Name() string {
	return t.name
}

func (t *UniqueLastSalesTool) Description() string {
	return t.description
}

func (t *UniqueLastSalesTool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(UniqueLastSalesRequest{}))
	return sc.Parameters
}

func (t *UniqueLastSalesTool) Run(ctx context.Context, req *UniqueLastSalesRequest) (any, error) {
	defer metricskey.PerfToolCall.MeasureSince(time.Now(), t.name)
	if err := validate.Struct(req); err != nil {
		return nil, errors.WithStack(err)
	}
	return t.client.UniqueLastSales(ctx, req.CollectionName, req.Limit, req.ModelName)
}

func (t *UniqueLastSalesTool) Call(ctx context.Context, input string) (string, error) {
	var req UniqueLastSalesRequest
	if err := decodeInput(input, &req); err != nil {
		return failureEnvelope(t.name, err), nil
	}
	data, err := t.Run(ctx, &req)
	if err != nil {
		return failureEnvelope(t.name, err), nil
	}
	return successEnvelope(t.name, data), nil
}

func (t *UniqueLastSalesTool) RunMCP(ctx context.Context, req *UniqueLastSalesRequest) (*mcp.ToolResponse, error) {
	data, err := t.Run(ctx, req)
	return respond(t.name, data, err)
}

func (t *UniqueLastSalesTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, func(ctx context.Context, args UniqueLastSalesRequest) (*mcp.ToolResponse, error) {
		return t.RunMCP(ctx, &args)
	})
}
