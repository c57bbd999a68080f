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

const InfoToolName = "get_gift_info"

// InfoRequest represents the tool input.
type InfoRequest struct {
	Slug string `json:"slug" jsonschema:"title=Slug,description=Slug of the gift (e.g. 'plushpepe-1')" validate:"required"`
}

// InfoTool returns all information about a specific gift.
type InfoTool struct {
	name        string
	description string
	client      *gateway.Client
}

var _ tools.MCPTool[InfoRequest] = (*InfoTool)(nil)

func NewInfoTool(client *gateway.Client) *InfoTool {
	return &InfoTool{
		name:        InfoToolName,
		description: "Get all information about a specific Telegram Gift using its slug.",
		client:      client,
	}
}

func (t *InfoTool) Name() string {
	return t.name
}

func (t *InfoTool) Description() string {
	return t.description
}

func (t *InfoTool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(InfoRequest{}))
	return sc.Parameters
}

func (t *InfoTool) Run(ctx context.Context, req *InfoRequest) (any, error) {
	defer metricskey.PerfToolCall.MeasureSince(time.Now(), t.name)
	if err := validate.Struct(req); err != nil {
		return nil, errors.WithStack(err)
	}
	return t.client.GiftInfo(ctx, req.Slug)
}

func (t *InfoTool) Call(ctx context.Context, input string) (string, error) {
	var req InfoRequest
	if err := decodeInput(input, &req); err != nil {
		return failureEnvelope(t.name, err), nil
	}
	data, err := t.Run(ctx, &req)
	if err != nil {
		return failureEnvelope(t.name, err), nil
	}
	return successEnvelope(t.name, data), nil
}

func (t *InfoTool) RunMCP(ctx context.Context, req *InfoRequest) (*mcp.ToolResponse, error) {
	data, err := t.Run(ctx, req)
	return respond(t.name, data, err)
}

func (t *InfoTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, func(ctx context.Context, args InfoRequest) (*mcp.ToolResponse, error) {
		return t.RunMCP(ctx, &args)
	})
}
