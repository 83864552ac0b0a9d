// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server for Claude Desktop integration
package cli

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/crmdash/handlers"
)

// NewMCPServer registers the CRM tools and resources on a fresh server.
func NewMCPServer(env *Env, version string) *mcp.Server {
	recordHandlers := handlers.NewRecordHandlers(env.Store, env.Loader)
	statusHandlers := handlers.NewStatusHandlers(env.Store, env.Loader)
	resourceHandlers := handlers.NewResourceHandlers(env.Store, env.Loader)
	promptHandlers := handlers.NewPromptHandlers(env.Store, env.Loader)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "crmdash",
		Version: version,
	}, nil)

	// Register tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_contacts",
		Description: "List contacts from the active CRM integration, or demo data when none is connected",
	}, recordHandlers.ListContacts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_deals",
		Description: "List deals with stage, value and probability",
	}, recordHandlers.ListDeals)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_activities",
		Description: "List calls, emails, meetings and tasks",
	}, recordHandlers.ListActivities)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_companies",
		Description: "List companies with industry, revenue and status",
	}, recordHandlers.ListCompanies)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "test_connection",
		Description: "Test the connection to the active integration platform",
	}, statusHandlers.TestConnection)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_integration_status",
		Description: "Show the active platform and which platforms are available or connected",
	}, statusHandlers.GetIntegrationStatus)

	// Register resources
	for _, resource := range resourceHandlers.Resources() {
		server.AddResource(resource, resourceHandlers.ReadResource)
	}

	// Register prompts
	for _, prompt := range promptHandlers.Prompts() {
		server.AddPrompt(prompt, promptHandlers.GetPrompt)
	}

	return server
}

// MCPCommand starts the MCP server on stdio
func MCPCommand(env *Env, version string) error {
	env.Logger.Info("starting MCP server")

	server := NewMCPServer(env, version)

	// Run server on stdio transport
	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
