package command

import (
	"os/exec"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tile-grid-control/internal/logging/events"
)

// Request describes a tile activation.
type Request struct {
	ID    string
	Label string
	Argv  []string
}

// Result reports the outcome of an activation.
type Result struct {
	ID     string
	Label  string
	Output string
	Err    error
}

// Bus coordinates tile activations. A mutex serialises execution so rapid
// repeated activations never run concurrently.
type Bus struct {
	mu sync.Mutex
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps the activation into a Bubble Tea command while emitting
// trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		b.mu.Lock()
		defer b.mu.Unlock()
		if len(req.Argv) == 0 {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		out, err := exec.Command(req.Argv[0], req.Argv[1:]...).CombinedOutput()
		events.Command.Result(req.ID, req.Label, err == nil)
		return Result{ID: req.ID, Label: req.Label, Output: string(out), Err: err}
	}
}
