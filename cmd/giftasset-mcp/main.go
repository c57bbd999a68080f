// Command giftasset-mcp serves the GiftAsset marketplace tools over the
// Model Context Protocol on stdin/stdout.
//
// Usage:
//
//	GIFTASSET_API_KEY=... giftasset-mcp [flags]
//
// Flags:
//
//	-cfg string  Path to an optional YAML configuration file
//	-D           Enable debug logging
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/GIFT-ASSET/giftasset-mcp/pkg/config"
	"github.com/GIFT-ASSET/giftasset-mcp/pkg/mcpserver"
	"github.com/effective-security/xlog"
	"github.com/metoro-io/mcp-golang/transport/stdio"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "giftasset-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgFile = flag.String("cfg", "", "Path to an optional YAML configuration file")
		debug   = flag.Bool("D", false, "Enable debug logging")
	)
	flag.Parse()

	// stdout carries the MCP protocol, so all logging goes to stderr.
	xlog.SetFormatter(xlog.NewStringFormatter(os.Stderr))
	if *debug {
		xlog.SetGlobalLogLevel(xlog.DEBUG)
	} else {
		xlog.SetGlobalLogLevel(xlog.INFO)
	}

	cfg, err := config.LoadConfig(*cfgFile)
	if err != nil {
		return err
	}

	server, err := mcpserver.New(cfg, stdio.NewStdioServerTransport())
	if err != nil {
		return err
	}
	if err := server.Serve(); err != nil {
		return err
	}

	// Serve returns once the transport is connected; the session lasts
	// until the client kills the process or sends a signal.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}
