// Package giftmarket exposes the GiftAsset marketplace capabilities as
// tools. Every tool delegates to the gateway client and wraps the outcome
// in the uniform {status, data|message} envelope; no failure escapes a
// tool's boundary.
package giftmarket

import (
	"github.com/GIFT-ASSET/giftasset-mcp/pkg/gateway"
	"github.com/GIFT-ASSET/giftasset-mcp/pkg/metricskey"
	"github.com/GIFT-ASSET/giftasset-mcp/tools"
	"github.com/GIFT-ASSET/giftasset-mcp/utils"
	"github.com/bububa/ljson"
	"github.com/effective-security/xlog"
	"github.com/go-playground/validator/v10"
	mcp "github.com/metoro-io/mcp-golang"
	"github.com/pkg/errors"
)

var logger = xlog.NewPackageLogger("github.com/GIFT-ASSET/giftasset-mcp", "giftmarket")

var validate = validator.New()

// All returns every marketplace tool bound to the given client.
func All(client *gateway.Client) []tools.IMCPTool {
	return []tools.IMCPTool{
		NewInfoTool(client),
		NewMarketActionsTool(client),
		NewAggregatorTool(client),
		NewUniqueLastSalesTool(client),
		NewCollectionsLastSaleTool(client),
		NewUpdateStatsTool(client),
		NewUserGiftsTool(client),
		NewPriceListTool(client),
		NewPriceHistoryTool(client),
	}
}

// decodeInput leniently parses a tool input string into req.
func decodeInput(input string, req any) error {
	if err := ljson.Unmarshal(utils.CleanJSON([]byte(input)), req); err != nil {
		return errors.WithMessage(err, "failed to unmarshal input")
	}
	return nil
}

func successEnvelope(tool string, data any) string {
	metricskey.StatsToolCallsSucceeded.IncrCounter(1, tool)
	return tools.Success(data).JSON()
}

func failureEnvelope(tool string, err error) string {
	metricskey.StatsToolCallsFailed.IncrCounter(1, tool)
	logger.KV(xlog.ERROR,
		"tool", tool,
		"err", err.Error())
	return tools.Failure(err).JSON()
}

// respond converts a capability outcome into an MCP text response carrying
// the envelope. The returned error is always nil: failures travel inside
// the envelope, never as protocol faults.
func respond(tool string, data any, err error) (*mcp.ToolResponse, error) {
	if err != nil {
		return mcp.NewToolResponse(mcp.NewTextContent(failureEnvelope(tool, err))), nil
	}
	return mcp.NewToolResponse(mcp.NewTextContent(successEnvelope(tool, data))), nil
}
