package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/mfletcher/duolist/internal/backend"
	"github.com/mfletcher/duolist/internal/choices"
	"github.com/mfletcher/duolist/internal/i18n"
	"github.com/mfletcher/duolist/internal/logging"
	"github.com/mfletcher/duolist/internal/logging/events"
	"github.com/mfletcher/duolist/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	ChoicesPath string
	OutputPath  string
	FieldName   string
	Stacked     bool
	Sort        bool
	Fuzzy       bool
	Width       int
	Height      int
	ShowFooter  bool
	Watch       bool
	CatalogPath string
	Verbose     bool
}

// ErrCancelled reports that the user dismissed the picker without submitting.
var ErrCancelled = errors.New("cancelled")

// Run bootstraps and executes the picker. On submit it writes the chosen
// values, one per line, to the output path (stdout when empty).
func Run(cfg Config) error {
	catalog := i18n.Default()
	if cfg.CatalogPath != "" {
		loaded, err := i18n.LoadFile(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		catalog = loaded
	}

	set, err := choices.Load(cfg.ChoicesPath)
	if err != nil {
		return err
	}
	logging.Info("loaded %d available and %d chosen items from %s",
		len(set.Available), len(set.Chosen), cfg.ChoicesPath)

	var watcher *backend.Watcher
	if cfg.Watch && cfg.ChoicesPath != "-" {
		watcher = backend.NewWatcher(cfg.ChoicesPath, 1500*time.Millisecond)
		defer watcher.Stop()
		logging.Info("watching %s for changes", cfg.ChoicesPath)
	}

	model := ui.NewModel(ui.Options{
		FieldName:  cfg.FieldName,
		Available:  set.Available,
		Chosen:     set.Chosen,
		Stacked:    cfg.Stacked,
		Sort:       cfg.Sort,
		Fuzzy:      cfg.Fuzzy,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Catalog:    catalog,
		Watcher:    watcher,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr)}
	if cfg.ChoicesPath == "-" {
		// Stdin carried the choices, so key input has to come from the tty.
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("open tty for input: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	} else if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return errors.New("duolist needs an interactive terminal")
	}

	program := tea.NewProgram(model, opts...)
	finalModel, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}

	final, ok := finalModel.(*ui.Model)
	if !ok || !final.Submitted() {
		events.App.Cancel(cfg.FieldName)
		return ErrCancelled
	}

	values := final.ChosenValues()
	events.App.Submit(cfg.FieldName, len(values))
	logging.Info("submitting %d chosen values", len(values))
	return writeResult(cfg.OutputPath, values)
}

func writeResult(path string, values []string) error {
	payload := strings.Join(values, "\n")
	if payload != "" {
		payload += "\n"
	}
	if path == "" {
		_, err := os.Stdout.WriteString(payload)
		return err
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
