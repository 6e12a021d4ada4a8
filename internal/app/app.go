package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tile-grid-control/internal/backend"
	"github.com/atomicstack/tile-grid-control/internal/tile"
	"github.com/atomicstack/tile-grid-control/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	ManifestPath string
	Width        int
	Height       int
	Gap          int
	ShowFooter   bool
	Watch        bool
	Verbose      bool
}

// Run bootstraps and executes the Bubble Tea program. When the user selects
// a tile that has no command, its id is printed to stdout so the invoking
// shell can act on it.
func Run(cfg Config) error {
	manifest, err := tile.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	var watcher *backend.Watcher
	if cfg.Watch {
		watcher, err = backend.NewWatcher(cfg.ManifestPath, 250*time.Millisecond)
		if err != nil {
			return fmt.Errorf("watch manifest: %w", err)
		}
		defer watcher.Stop()
	}

	model := ui.NewModel(ui.Options{
		Manifest:     manifest,
		ManifestPath: cfg.ManifestPath,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Gap:          cfg.Gap,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		Backend:      watcher,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	if m, ok := final.(*ui.Model); ok {
		if selected := m.Selected(); selected != nil {
			fmt.Println(selected.ID)
		}
	}
	return nil
}
