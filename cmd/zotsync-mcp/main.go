package main

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"zotsync/internal/adapters/keychain"
	"zotsync/internal/adapters/logseqcli"
	mcpadapter "zotsync/internal/adapters/mcp"
	"zotsync/internal/adapters/zoteroweb"
	"zotsync/internal/application/commands"
	"zotsync/internal/config"
)

func main() {
	store := keychain.NewStore(config.ServiceName)
	loadCmd := commands.NewLoadCredentialsCommand(store, config.KeyLibraryID, config.KeyAPIKey)
	creds, err := loadCmd.Execute(context.Background())
	if err != nil {
		log.Fatalf("zotsync-mcp: %v (run `zotsync setup` first)", err)
	}

	source := logseqcli.NewGraph(
		logseqcli.WithBinary(config.LogseqBin()),
		logseqcli.WithProperty(config.ZoteroProperty()),
	)
	library := zoteroweb.NewClient(config.ZoteroAPI(), creds.LibraryID, creds.APIKey)

	mcpServer := server.NewMCPServer(
		"zotsync-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, source, library, config.TagName)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("zotsync-mcp: %v", err)
	}
}
