package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/showwall/internal/config"
	"github.com/1broseidon/showwall/internal/launch"
	"github.com/1broseidon/showwall/internal/plan"
	"github.com/1broseidon/showwall/internal/platform"
	"github.com/1broseidon/showwall/internal/screen"
)

func main() {
	// Bare invocation is diagnostic mode: report the detected screens
	// and perform no launches.
	if len(os.Args) < 2 {
		os.Exit(runDiagnostic())
	}

	// A JSON object as the first argument is a launch request.
	if strings.HasPrefix(strings.TrimSpace(os.Args[1]), "{") {
		os.Exit(runLaunchJSON([]byte(os.Args[1])))
	}

	switch os.Args[1] {
	case "launch":
		os.Exit(runLaunch(os.Args[2:]))
	case "screens":
		os.Exit(runScreens(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: showwall [<command>] [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  showwall '<json>'       Launch presentations from a JSON request")
	fmt.Fprintln(w, "  showwall                Diagnostic mode: print detected screens, launch nothing")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  launch [--file PATH]    Launch presentations (JSON argument, file, or stdin)")
	fmt.Fprintln(w, "  screens [--json]        List detected screens")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate         Validate configuration")
	fmt.Fprintln(w, "  config print            Print effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve               Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'showwall <command> --help' for command-specific options.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "The JSON request has the form:")
	fmt.Fprintln(w, `  {"presentations": [{"url": "https://...", "browser": "chrome"}, ...]}`)
}

// newLogger builds the stderr logger. Stdout is reserved for report
// JSON and must stay clean.
func newLogger(cfg *config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "showwall"})
	switch cfg.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// newPlanner wires the platform backend into a planner. The returned
// func releases platform resources.
func newPlanner(cfg *config.Config, logger *log.Logger) (*plan.Planner, func()) {
	backend := platform.New(cfg, logger)

	executor := launch.NewExecutor(
		browserResolver(cfg),
		backend.Placers,
		cfg.SettleDelay(),
		cfg.FullscreenEnabled(),
		logger,
	)

	planner := plan.NewPlanner(backend.Screens, executor, cfg.InterLaunchDelay(), logger)
	return planner, backend.Close
}

func runDiagnostic() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger := newLogger(cfg)

	backend := platform.New(cfg, logger)
	defer backend.Close()

	screens, err := backend.Screens.Detect()
	if err != nil || len(screens) == 0 {
		screens = []screen.Screen{screen.Fallback(cfg.FallbackScreen.Width, cfg.FallbackScreen.Height)}
	}

	diagnostic := struct {
		Screens []screen.Screen `json:"screens"`
		System  string          `json:"system"`
	}{
		Screens: screens,
		System:  runtime.GOOS,
	}

	return emitJSON(diagnostic)
}

func runScreens(args []string) int {
	fs := flag.NewFlagSet("screens", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: showwall screens [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List the detected screens. Performs no launches.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output screen details as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "screens takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger := newLogger(cfg)

	backend := platform.New(cfg, logger)
	defer backend.Close()

	screens, err := backend.Screens.Detect()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	sort.Slice(screens, func(i, j int) bool { return screens[i].ID < screens[j].ID })

	if *jsonOut {
		return emitJSON(screens)
	}

	for _, s := range screens {
		line := fmt.Sprintf("screen %d: %dx%d+%d+%d", s.ID, s.Width, s.Height, s.X, s.Y)
		if s.Primary {
			line += " primary"
		}
		if s.Name != "" {
			line += " " + s.Name
		}
		fmt.Println(line)
	}
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  showwall config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  showwall config print [--path PATH]")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/showwall/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var err error
		if *path == "" {
			_, err = config.Load()
		} else {
			_, err = config.LoadFromPath(*path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/showwall/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var cfg *config.Config
		var err error
		if *path == "" {
			cfg, err = config.Load()
		} else {
			cfg, err = config.LoadFromPath(*path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

// emitJSON writes v to stdout, indented when stdout is a terminal.
func emitJSON(v any) int {
	enc := json.NewEncoder(os.Stdout)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
