package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/showwall/internal/browser"
	"github.com/1broseidon/showwall/internal/config"
	"github.com/1broseidon/showwall/internal/plan"
)

func browserResolver(cfg *config.Config) *browser.Resolver {
	return browser.NewResolver(cfg.Browsers)
}

// runLaunchJSON is the primary boundary: one JSON request in, one JSON
// report out. The exit code carries no success signal beyond "the
// process ran"; callers must inspect the report.
func runLaunchJSON(data []byte) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger := newLogger(cfg)

	req, err := plan.ParseRequest(data)
	if err != nil {
		// Malformed input short-circuits before any launch attempt.
		return emitJSON(plan.InvalidJSONReport(err))
	}

	planner, cleanup := newPlanner(cfg, logger)
	defer cleanup()

	report := planner.Distribute(req)
	return emitJSON(report)
}

func runLaunch(args []string) int {
	fs := flag.NewFlagSet("launch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: showwall launch [--file PATH] [JSON]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Launch presentations from a JSON request. The request is read from")
		fmt.Fprintln(os.Stderr, "the argument, from --file, or from stdin, in that order of preference.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	file := fs.String("file", "", "Read the JSON request from a file")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	var data []byte
	switch {
	case fs.NArg() > 0:
		data = []byte(fs.Arg(0))
	case *file != "":
		var err error
		data, err = os.ReadFile(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	default:
		var err error
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	return runLaunchJSON(data)
}
