package mcp

import "github.com/mark3labs/mcp-go/mcp"

const deviceIDDescription = "Device ID or friendly name"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Health check
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check the health of the hub and how many registered devices are available"),
		),
		s.handleGetHealth,
	)

	// Devices
	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List all registered media devices"),
		),
		s.handleListDevices,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_device",
			mcp.WithDescription("Get a registered device by ID or friendly name, including the buttons it accepts"),
			mcp.WithString("id", mcp.Required(), mcp.Description(deviceIDDescription)),
		),
		s.handleGetDevice,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("rename_device",
			mcp.WithDescription("Change a device's friendly name"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Device ID or current friendly name")),
			mcp.WithString("new_name", mcp.Required(), mcp.Description("New friendly name for the device")),
		),
		s.handleRenameDevice,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("remove_device",
			mcp.WithDescription("Remove a device from the hub"),
			mcp.WithString("id", mcp.Required(), mcp.Description(deviceIDDescription)),
		),
		s.handleRemoveDevice,
	)

	// Remote control
	s.mcpServer.AddTool(
		mcp.NewTool("press_button",
			mcp.WithDescription("Press a remote button by its standard name (HOME, BACK, SELECT, PLAY, VOLUME_UP, POWER, ...). get_device lists the accepted names"),
			mcp.WithString("id", mcp.Required(), mcp.Description(deviceIDDescription)),
			mcp.WithString("button", mcp.Required(), mcp.Description("Standard button name")),
		),
		s.handlePressButton,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("switch_input",
			mcp.WithDescription("Switch a TV to one of its inputs"),
			mcp.WithString("id", mcp.Required(), mcp.Description(deviceIDDescription)),
			mcp.WithString("input", mcp.Required(), mcp.Description("Input name: HDMI1-HDMI4, AV1, TUNER")),
		),
		s.handleSwitchInput,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_power_state",
			mcp.WithDescription("Report whether a device is on or off"),
			mcp.WithString("id", mcp.Required(), mcp.Description(deviceIDDescription)),
		),
		s.handleGetPowerState,
	)

	// Apps
	s.mcpServer.AddTool(
		mcp.NewTool("list_apps",
			mcp.WithDescription("List the apps installed on a device"),
			mcp.WithString("id", mcp.Required(), mcp.Description(deviceIDDescription)),
		),
		s.handleListApps,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_active_app",
			mcp.WithDescription("Get the app in the foreground. No app means the home screen is showing"),
			mcp.WithString("id", mcp.Required(), mcp.Description(deviceIDDescription)),
		),
		s.handleGetActiveApp,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("launch_app",
			mcp.WithDescription("Launch an app by its ID or case-insensitive name, optionally deep-linking to content"),
			mcp.WithString("id", mcp.Required(), mcp.Description(deviceIDDescription)),
			mcp.WithString("app", mcp.Required(), mcp.Description("App ID (e.g. 12) or name (e.g. Netflix)")),
			mcp.WithString("content_id", mcp.Description("Deep-link content ID")),
			mcp.WithString("media_type", mcp.Description("Deep-link media type (movie, episode, series, ...)")),
		),
		s.handleLaunchApp,
	)

	// Info
	s.mcpServer.AddTool(
		mcp.NewTool("get_device_info",
			mcp.WithDescription("Get the device-info document (model, software version, network, power mode)"),
			mcp.WithString("id", mcp.Required(), mcp.Description(deviceIDDescription)),
		),
		s.handleGetDeviceInfo,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_media_player",
			mcp.WithDescription("Get playback state, position, and stream format"),
			mcp.WithString("id", mcp.Required(), mcp.Description(deviceIDDescription)),
		),
		s.handleGetMediaPlayer,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("search",
			mcp.WithDescription("Open the device's content search. One of keyword, title, or tmsid is required"),
			mcp.WithString("id", mcp.Required(), mcp.Description(deviceIDDescription)),
			mcp.WithString("keyword", mcp.Description("Free-text search keyword")),
			mcp.WithString("title", mcp.Description("Exact content title")),
			mcp.WithString("tmsid", mcp.Description("TMS content ID")),
			mcp.WithString("type",
				mcp.Description("Content type"),
				mcp.Enum("movie", "tv-show", "person", "channel", "game"),
			),
			mcp.WithNumber("season", mcp.Description("Season number for tv-show searches")),
			mcp.WithBoolean("launch", mcp.Description("Launch the first match")),
			mcp.WithArray("providers",
				mcp.Description("Preferred providers: channel IDs or provider names"),
				mcp.Items(map[string]any{"type": "string"}),
			),
		),
		s.handleSearch,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("type_text",
			mcp.WithDescription("Type literal text into the focused field"),
			mcp.WithString("id", mcp.Required(), mcp.Description(deviceIDDescription)),
			mcp.WithString("text", mcp.Required(), mcp.Description("Text to type")),
		),
		s.handleTypeText,
	)

	// Discovery
	s.mcpServer.AddTool(
		mcp.NewTool("discover_devices",
			mcp.WithDescription("Scan the local network for media devices"),
			mcp.WithNumber("timeout_seconds",
				mcp.Description("How long to listen for replies in seconds (default 10, max 60)"),
			),
		),
		s.handleDiscoverDevices,
	)
}
