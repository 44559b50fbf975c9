//go:build windows

package platform

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/1broseidon/showwall/internal/config"
	"github.com/1broseidon/showwall/internal/launch"
	"github.com/1broseidon/showwall/internal/screen"
)

// PowerShell win32 interop takes noticeably longer than a native tool;
// give it more headroom than the configured command timeout.
const powershellTimeout = 5 * time.Second

// New builds the Windows backend: screenshot-library display detection
// and a PowerShell-based foreground window placer.
func New(cfg *config.Config, logger *log.Logger) *Backend {
	provider := screen.NewChain(logger,
		cfg.FallbackScreen.Width, cfg.FallbackScreen.Height,
		screen.ScreenshotProvider{},
	)

	return &Backend{
		Screens: provider,
		Placers: []launch.Placer{&powershellPlacer{}},
	}
}

// powershellPlacer moves the foreground window via user32 interop.
type powershellPlacer struct{}

var _ launch.Placer = (*powershellPlacer)(nil)

func (p *powershellPlacer) Name() string { return "powershell" }

const moveWindowScript = `
Add-Type @"
using System;
using System.Runtime.InteropServices;
public class Win32 {
    [DllImport("user32.dll")] public static extern IntPtr GetForegroundWindow();
    [DllImport("user32.dll")] public static extern bool MoveWindow(IntPtr hWnd, int X, int Y, int nWidth, int nHeight, bool bRepaint);
    [DllImport("user32.dll")] public static extern bool ShowWindow(IntPtr hWnd, int nCmdShow);
}
"@
$hwnd = [Win32]::GetForegroundWindow()
[Win32]::ShowWindow($hwnd, 1) | Out-Null
[Win32]::MoveWindow($hwnd, %d, %d, %d, %d, $true) | Out-Null
`

func (p *powershellPlacer) Place(rect screen.Rect, fullscreen bool) error {
	script := fmt.Sprintf(moveWindowScript, rect.X, rect.Y, rect.Width, rect.Height)
	if fullscreen {
		// SW_MAXIMIZE after the move approximates fullscreen.
		script += "[Win32]::ShowWindow($hwnd, 3) | Out-Null\n"
	}
	if _, err := runCommand(powershellTimeout, "powershell", "-NoProfile", "-Command", script); err != nil {
		return fmt.Errorf("powershell window move failed: %w", err)
	}
	return nil
}
