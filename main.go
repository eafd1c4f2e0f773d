package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mfletcher/duolist/internal/app"
	"github.com/mfletcher/duolist/internal/config"
	"github.com/mfletcher/duolist/internal/logging"
	"github.com/mfletcher/duolist/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
	logging.SetVerbose(runtimeCfg.App.Verbose)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		if errors.Is(err, app.ErrCancelled) {
			os.Exit(1)
		}
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["choicesSource"] = choicesSource(cfg.App.ChoicesPath)
	payload["tty"] = collectTTYDetails()
	return payload
}

// choicesSource labels where the choices come from, since stdin input changes
// which descriptor carries keystrokes.
func choicesSource(path string) string {
	if path == "-" {
		return "stdin"
	}
	return "file"
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects the standard descriptors plus /dev/tty, which
// carries keystrokes when the choices arrive on stdin.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes)+1)
	var detected *ttyDetected
	for _, probe := range probes {
		entry := probeDescriptor(probe.name, int(probe.fd))
		if entry.IsTerminal && entry.Error == "" && detected == nil {
			detected = &ttyDetected{Source: probe.name, Width: entry.Width, Height: entry.Height}
		}
		results = append(results, entry)
	}

	if tty, err := os.Open("/dev/tty"); err == nil {
		entry := probeDescriptor("tty", int(tty.Fd()))
		tty.Close()
		if entry.IsTerminal && entry.Error == "" && detected == nil {
			detected = &ttyDetected{Source: "tty", Width: entry.Width, Height: entry.Height}
		}
		results = append(results, entry)
	} else {
		results = append(results, ttyProbeResult{Name: "tty", Error: err.Error()})
	}

	return ttyDetails{Detected: detected, Probes: results}
}

func probeDescriptor(name string, fd int) ttyProbeResult {
	entry := ttyProbeResult{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return entry
	}
	entry.IsTerminal = true
	if width, height, err := term.GetSize(fd); err == nil {
		entry.Width = width
		entry.Height = height
	} else {
		entry.Error = err.Error()
	}
	return entry
}
