// Package mcpserver assembles the GiftAsset tool surface into an MCP server.
package mcpserver

import (
	"github.com/GIFT-ASSET/giftasset-mcp/pkg/config"
	"github.com/GIFT-ASSET/giftasset-mcp/pkg/gateway"
	"github.com/GIFT-ASSET/giftasset-mcp/pkg/tonrates"
	"github.com/GIFT-ASSET/giftasset-mcp/tools"
	"github.com/GIFT-ASSET/giftasset-mcp/tools/giftmarket"
	"github.com/GIFT-ASSET/giftasset-mcp/tools/tonprice"
	"github.com/cockroachdb/errors"
	mcp_golang "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport"
)

// ServerName identifies the server to MCP clients.
const ServerName = "giftasset-mcp"

// ServerVersion is reported during the MCP handshake.
const ServerVersion = "1.0.0"

// Tools returns every tool the server exposes, in registration order.
func Tools(cfg *config.Config) []tools.IMCPTool {
	client := gateway.New(cfg.GiftAsset.Token, gateway.WithBaseURL(cfg.GiftAsset.BaseURL))
	all := giftmarket.All(client)
	all = append(all, tonprice.New(tonrates.New()))
	return all
}

// New builds an MCP server over the given transport with every GiftAsset
// tool registered.
func New(cfg *config.Config, tr transport.Transport) (*mcp_golang.Server, error) {
	server := mcp_golang.NewServer(tr,
		mcp_golang.WithName(ServerName),
		mcp_golang.WithVersion(ServerVersion),
	)
	for _, tool := range Tools(cfg) {
		if err := tool.RegisterMCP(server); err != nil {
			return nil, errors.WithMessagef(err, "failed to register tool: %s", tool.Name())
		}
	}
	return server, nil
}
