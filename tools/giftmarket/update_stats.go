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

const UpdateStatsToolName = "get_gifts_update_stat"

// UpdateStatsRequest represents the tool input. The capability takes no
// parameters.
type UpdateStatsRequest struct{}

type UpdateStatsTool struct {
	name        string
	description string
	client      *gateway.Client
}

var _ tools.MCPTool[UpdateStatsRequest] = (*UpdateStatsTool)(nil)

func NewUpdateStatsTool(client *gateway.Client) *UpdateStatsTool {
	return &UpdateStatsTool{
		name:        UpdateStatsToolName,
		description: "Get statistics on gift improvements/upgrades per day.",
		client:      client,
	}
}

func (t *UpdateStatsTool) Name() string {
	return t.name
}

func (t *UpdateStatsTool) Description() string {
	return t.description
}

func (t *UpdateStatsTool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(UpdateStatsRequest{}))
	return sc.Parameters
}

func (t *UpdateStatsTool) Run(ctx context.Context, _ *UpdateStatsRequest) (any, error) {
	defer metricskey.PerfToolCall.MeasureSince(time.Now(), t.name)
	return t.client.GiftsUpdateStats(ctx)
}

func (t *UpdateStatsTool) Call(ctx context.Context, _ string) (string, error) {
	data, err := t.Run(ctx, &UpdateStatsRequest{})
	if err != nil {
		return failureEnvelope(t.name, err), nil
	}
	return successEnvelope(t.name, data), nil
}

func (t *UpdateStatsTool) RunMCP(ctx context.Context, req *UpdateStatsRequest) (*mcp.ToolResponse, error) {
	data, err := t.Run(ctx, req)
	return respond(t.name, data, err)
}

func (t *UpdateStatsTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, func(ctx context.Context, args UpdateStatsRequest) (*mcp.ToolResponse, error) {
		return t.RunMCP(ctx, &args)
	})
}
