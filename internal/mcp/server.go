// Package mcp exposes screen detection and presentation launching as
// MCP tools over stdio.
package mcp

import (
	"context"
	"runtime"

	"github.com/charmbracelet/log"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/showwall/internal/plan"
)

const (
	ServerName    = "showwall"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for multi-screen presentation control.
type Server struct {
	mcpServer *mcpsdk.Server
	planner   *plan.Planner
	logger    *log.Logger
}

// NewServer creates an MCP server backed by the given planner.
func NewServer(planner *plan.Planner, logger *log.Logger) *Server {
	s := &Server{
		planner: planner,
		logger:  logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_screens",
		Description: "List the physical display screens detected on this host, with their positions and sizes in virtual-desktop coordinates. Performs no launches.",
	}, s.handleListScreens)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "launch_presentations",
		Description: "Launch browser windows for the given URLs and distribute them across the detected screens. With more URLs than screens, screens are split into side-by-side panes. Failures for individual items are reported in errors; the remaining items are still launched.",
	}, s.handleLaunchPresentations)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "launch_window",
		Description: "Launch a single browser window full-screen on an explicit screen index. An out-of-range screen_id falls back to screen 0.",
	}, s.handleLaunchWindow)
}

func (s *Server) handleListScreens(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListScreensInput) (*mcpsdk.CallToolResult, ListScreensOutput, error) {
	screens := s.planner.Screens()

	out := ListScreensOutput{
		Screens: make([]ScreenInfo, 0, len(screens)),
		System:  runtime.GOOS,
	}
	for _, sc := range screens {
		out.Screens = append(out.Screens, ScreenInfo{
			ID:      sc.ID,
			X:       sc.X,
			Y:       sc.Y,
			Width:   sc.Width,
			Height:  sc.Height,
			Primary: sc.Primary,
			Name:    sc.Name,
		})
	}
	return nil, out, nil
}

func (s *Server) handleLaunchPresentations(_ context.Context, _ *mcpsdk.CallToolRequest, args LaunchPresentationsInput) (*mcpsdk.CallToolResult, LaunchPresentationsOutput, error) {
	req := plan.Request{
		Presentations: make([]plan.Presentation, 0, len(args.Presentations)),
	}
	for _, p := range args.Presentations {
		req.Presentations = append(req.Presentations, plan.Presentation{
			URL:     p.URL,
			Browser: p.Browser,
		})
	}

	s.logger.Info("mcp launch_presentations", "count", len(args.Presentations))
	report := s.planner.Distribute(req)

	return nil, LaunchPresentationsOutput{
		Success: report.Success,
		Windows: report.Windows,
		Errors:  report.Errors,
	}, nil
}

func (s *Server) handleLaunchWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args LaunchWindowInput) (*mcpsdk.CallToolResult, LaunchWindowOutput, error) {
	screenID := args.ScreenID
	report := s.planner.LaunchOne(plan.Presentation{
		URL:      args.URL,
		Browser:  args.Browser,
		ScreenID: &screenID,
	})

	out := LaunchWindowOutput{
		Success: report.Success,
		Errors:  report.Errors,
	}
	if len(report.Windows) > 0 {
		out.ScreenID = report.Windows[0].ScreenID
		out.PID = report.Windows[0].PID
	}
	return nil, out, nil
}
