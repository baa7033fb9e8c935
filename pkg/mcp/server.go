package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/urmzd/homai-roku/pkg/device"
)

// Server wraps the MCP server with the hub's device control functionality
type Server struct {
	mcpServer  *server.MCPServer
	registry   *device.Registry
	discoverer device.Discoverer
}

// NewServer creates a new MCP server for device control. discoverer may be
// nil, in which case discover_devices reports an error.
func NewServer(registry *device.Registry, discoverer device.Discoverer, version string) *Server {
	s := &Server{
		registry:   registry,
		discoverer: discoverer,
	}

	s.mcpServer = server.NewMCPServer(
		"homai-roku",
		version,
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
