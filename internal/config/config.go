package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mfletcher/duolist/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envChoices = "DUOLIST_CHOICES"
	envOutput  = "DUOLIST_OUTPUT"
	envField   = "DUOLIST_FIELD"
	envStacked = "DUOLIST_STACKED"
	envSort    = "DUOLIST_SORT"
	envFuzzy   = "DUOLIST_FUZZY"
	envWidth   = "DUOLIST_WIDTH"
	envHeight  = "DUOLIST_HEIGHT"
	envFooter  = "DUOLIST_FOOTER"
	envWatch   = "DUOLIST_WATCH"
	envLang    = "DUOLIST_LANG"
	envVerbose = "DUOLIST_VERBOSE"
	envTrace   = "DUOLIST_TRACE"
	envLogFile = "DUOLIST_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("duolist", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	choicesPath := fs.String("choices", envOrDefault(env, envChoices, ""), "path to the choices file ('-' reads stdin)")
	output := fs.String("output", envOrDefault(env, envOutput, ""), "write chosen values to this file instead of stdout")
	field := fs.String("field", envOrDefault(env, envField, "items"), "field name shown in the list headers")
	stacked := fs.Bool("stacked", envOrBool(env, envStacked, false), "stack the two lists vertically")
	sortFlag := fs.Bool("sort", envOrBool(env, envSort, false), "sort the available list by text at startup")
	fuzzy := fs.Bool("fuzzy", envOrBool(env, envFuzzy, false), "use fuzzy matching for the filter instead of token substrings")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, true), "show the footer hint rows")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload the choices file when it changes on disk")
	lang := fs.String("lang", envOrDefault(env, envLang, ""), "path to a YAML translation catalog")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "log informational messages")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			ChoicesPath: *choicesPath,
			OutputPath:  *output,
			FieldName:   *field,
			Stacked:     *stacked,
			Sort:        *sortFlag,
			Fuzzy:       *fuzzy,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Watch:       *watch,
			CatalogPath: *lang,
			Verbose:     *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"choices": *choicesPath,
			"output":  *output,
			"field":   *field,
			"stacked": strconv.FormatBool(*stacked),
			"sort":    strconv.FormatBool(*sortFlag),
			"fuzzy":   strconv.FormatBool(*fuzzy),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"watch":   strconv.FormatBool(*watch),
			"lang":    *lang,
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.ChoicesPath) == "" {
		return fmt.Errorf("a choices file is required (--choices or %s)", envChoices)
	}
	return nil
}
