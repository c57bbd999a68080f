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

const UserGiftsToolName = "get_user_gifts"

// UserGiftsRequest represents the tool input. At least one of username or
// telegram_id must be provided; the gateway enforces the precondition
// before any network call.
type UserGiftsRequest struct {
	Username   string `json:"username,omitempty" jsonschema:"title=Username,description=Telegram username (without @)"`
	TelegramID int64  `json:"telegram_id,omitempty" jsonschema:"title=Telegram ID,description=Telegram numeric ID"`
	Limit      int    `json:"limit,omitempty" jsonschema:"title=Limit,description=Number of gifts to return (1-50),default=50" validate:"omitempty,min=1,max=50"`
	Offset     int    `json:"offset,omitempty" jsonschema:"title=Offset,description=Pagination offset" validate:"omitempty,min=0"`
}

// UserGiftsTool returns a paginated list of gifts owned by a Telegram user.
type UserGiftsTool struct {
	name        string
	description string
	client      *gateway.Client
}

var _ tools.MCPTool[UserGiftsRequest] = (*UserGiftsTool)(nil)

func NewUserGiftsTool(client *gateway.Client) *UserGiftsTool {
	return &UserGiftsTool{
		name:        UserGiftsToolName,
		description: "Get a paginated list of NFT gifts owned by a specific Telegram user. Must provide either username or telegram_id.",
		client:      client,
	}
}

func (t *UserGiftsTool) Name() string {
	return t.name
}

func (t *UserGiftsTool) Description() string {
	return t.description
}

func (t *UserGiftsTool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(UserGiftsRequest{}))
	return sc.Parameters
}

func (t *UserGiftsTool) Run(ctx context.Context, req *UserGiftsRequest) (any, error) {
	defer metricskey.PerfToolCall.MeasureSince(time.Now(), t.name)
	if err := validate.Struct(req); err != nil {
		return nil, errors.WithStack(err)
	}
	return t.client.UserGifts(ctx, gateway.UserGiftsParams{
		Username:   req.Username,
		TelegramID: req.TelegramID,
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
}

func (t *UserGiftsTool) Call(ctx context.Context, input string) (string, error) {
	var req UserGiftsRequest
	if err := decodeInput(input, &req); err != nil {
		return failureEnvelope(t.name, err), nil
	}
	data, err := t.Run(ctx, &req)
	if err != nil {
		return failureEnvelope(t.name, err), nil
	}
	return successEnvelope(t.name, data), nil
}

func (t *UserGiftsTool) RunMCP(ctx context.Context, req *UserGiftsRequest) (*mcp.ToolResponse, error) {
	data, err := t.Run(ctx, req)
	return respond(t.name, data, err)
}

func (t *UserGiftsTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, func(ctx context.Context, args UserGiftsRequest) (*mcp.ToolResponse, error) {
		return t.RunMCP(ctx, &args)
	})
}
