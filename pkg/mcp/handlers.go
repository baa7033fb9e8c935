package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/urmzd/homai-roku/pkg/device"
)

const (
	defaultDiscoverSeconds = 10
	maxDiscoverSeconds     = 60
)

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices := s.registry.List()

	unavailable := 0
	for _, d := range devices {
		if _, ctrl, err := s.registry.Get(d.ID); err == nil {
			if _, null := ctrl.(*device.NullController); null {
				unavailable++
			}
		}
	}

	status := "healthy"
	if unavailable > 0 {
		status = "degraded"
	}

	out := GetHealthOutput{
		Status:      status,
		Devices:     len(devices),
		Unavailable: unavailable,
		Scanning:    s.discoverer != nil && s.discoverer.Scanning(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices := s.registry.List()

	infos := make([]DeviceInfo, 0, len(devices))
	for _, d := range devices {
		_, ctrl, err := s.registry.Get(d.ID)
		if err != nil {
			// Removed between List and Get.
			continue
		}
		infos = append(infos, DeviceToInfo(d, ctrl))
	}

	out := ListDevicesOutput{
		Devices: infos,
		Count:   len(infos),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, ctrl, errResult := s.lookup(request)
	if errResult != nil {
		return errResult, nil
	}

	out := GetDeviceOutput{Device: DeviceToInfo(d, ctrl)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleRenameDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	newName, err := requiredString(request, "new_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := s.registry.Rename(ctx, id, newName); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to rename device: %s", err)), nil
	}

	out := RenameDeviceOutput{
		Success: true,
		Message: fmt.Sprintf("Device %q renamed to %q", id, newName),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleRemoveDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.registry.Remove(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to remove device: %s", err)), nil
	}

	out := RemoveDeviceOutput{
		Success: true,
		Message: fmt.Sprintf("Device %q removed", id),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handlePressButton(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, ctrl, errResult := s.lookup(request)
	if errResult != nil {
		return errResult, nil
	}
	button, err := requiredString(request, "button")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := ctrl.PressButton(ctx, button); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to press button: %s", err)), nil
	}

	out := ActionOutput{Device: d.Name, Action: "button", Value: button}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSwitchInput(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, ctrl, errResult := s.lookup(request)
	if errResult != nil {
		return errResult, nil
	}
	input, err := requiredString(request, "input")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := ctrl.SwitchInput(ctx, input); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to switch input: %s", err)), nil
	}

	out := ActionOutput{Device: d.Name, Action: "input", Value: input}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetPowerState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, ctrl, errResult := s.lookup(request)
	if errResult != nil {
		return errResult, nil
	}

	power, err := ctrl.PowerState(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get power state: %s", err)), nil
	}

	out := PowerStateOutput{Device: d.Name, Power: power}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListApps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, ctrl, errResult := s.lookup(request)
	if errResult != nil {
		return errResult, nil
	}

	apps, err := ctrl.Apps(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list apps: %s", err)), nil
	}

	out := ListAppsOutput{Device: d.Name, Apps: apps, Count: len(apps)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetActiveApp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, ctrl, errResult := s.lookup(request)
	if errResult != nil {
		return errResult, nil
	}

	active, err := ctrl.ActiveApp(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get active app: %s", err)), nil
	}

	out := ActiveAppOutput{Device: d.Name, ActiveApp: *active}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleLaunchApp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, ctrl, errResult := s.lookup(request)
	if errResult != nil {
		return errResult, nil
	}
	app, err := requiredString(request, "app")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := map[string]string{}
	if v := optionalString(request, "content_id"); v != "" {
		params["contentId"] = v
	}
	if v := optionalString(request, "media_type"); v != "" {
		params["mediaType"] = v
	}

	launched, err := ctrl.Launch(ctx, app, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to launch app: %s", err)), nil
	}

	out := LaunchAppOutput{Device: d.Name, App: launched}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetDeviceInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, ctrl, errResult := s.lookup(request)
	if errResult != nil {
		return errResult, nil
	}

	info, err := ctrl.Info(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get device info: %s", err)), nil
	}

	out := DeviceInfoOutput{Device: d.Name, Info: info}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetMediaPlayer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, ctrl, errResult := s.lookup(request)
	if errResult != nil {
		return errResult, nil
	}

	player, err := ctrl.MediaPlayer(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get media player: %s", err)), nil
	}

	out := MediaPlayerOutput{Device: d.Name, Player: *player}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, ctrl, errResult := s.lookup(request)
	if errResult != nil {
		return errResult, nil
	}

	args := request.GetArguments()
	query := device.SearchQuery{
		Keyword:   optionalString(request, "keyword"),
		Title:     optionalString(request, "title"),
		TMSID:     optionalString(request, "tmsid"),
		Type:      optionalString(request, "type"),
		Providers: stringSlice(args["providers"]),
	}
	if season, ok := args["season"].(float64); ok && season > 0 {
		query.Season = int(season)
	}
	if launch, ok := args["launch"].(bool); ok {
		query.Launch = launch
	}

	if err := query.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := ctrl.Search(ctx, query); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search: %s", err)), nil
	}

	value := query.Keyword
	if value == "" {
		value = query.Title
	}
	out := ActionOutput{Device: d.Name, Action: "search", Value: value}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleTypeText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, ctrl, errResult := s.lookup(request)
	if errResult != nil {
		return errResult, nil
	}
	text, err := requiredString(request, "text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := ctrl.TypeText(ctx, text); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to type text: %s", err)), nil
	}

	out := ActionOutput{Device: d.Name, Action: "text", Value: text}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleDiscoverDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.discoverer == nil {
		return mcp.NewToolResultError("discovery is not available"), nil
	}

	seconds := defaultDiscoverSeconds
	if v, ok := request.GetArguments()["timeout_seconds"].(float64); ok && v > 0 {
		seconds = int(v)
	}
	if seconds > maxDiscoverSeconds {
		return mcp.NewToolResultError(fmt.Sprintf("timeout_seconds cannot exceed %d", maxDiscoverSeconds)), nil
	}

	found, err := s.discoverer.DiscoverAll(ctx, time.Duration(seconds)*time.Second)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to discover devices: %s", err)), nil
	}
	if found == nil {
		found = []device.DiscoveredInfo{}
	}

	out := DiscoverDevicesOutput{Devices: found, Count: len(found)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

// lookup resolves the "id" argument against the registry. A non-nil result
// is the error to return to the client.
func (s *Server) lookup(request mcp.CallToolRequest) (device.Device, device.MediaController, *mcp.CallToolResult) {
	id, err := requiredString(request, "id")
	if err != nil {
		return device.Device{}, nil, mcp.NewToolResultError(err.Error())
	}
	d, ctrl, err := s.registry.Get(id)
	if err != nil {
		return device.Device{}, nil, mcp.NewToolResultError(fmt.Sprintf("device not found: %s", id))
	}
	return d, ctrl, nil
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func optionalString(request mcp.CallToolRequest, key string) string {
	s, _ := request.GetArguments()[key].(string)
	return s
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func formatJSON(v any) string {
	b, err := encodeJSON(v)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}

func encodeJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
