package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tile-grid-control/internal/backend"
	"github.com/atomicstack/tile-grid-control/internal/grid"
	"github.com/atomicstack/tile-grid-control/internal/logging/events"
	"github.com/atomicstack/tile-grid-control/internal/render"
	"github.com/atomicstack/tile-grid-control/internal/theme"
	"github.com/atomicstack/tile-grid-control/internal/tile"
	"github.com/atomicstack/tile-grid-control/internal/ui/command"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a new Model.
type Options struct {
	Manifest     *tile.Manifest
	ManifestPath string
	Width        int
	Height       int
	Gap          int
	ShowFooter   bool
	Verbose      bool
	Backend      *backend.Watcher
}

// Model implements the Bubble Tea model for the tile grid.
type Model struct {
	collection  *grid.Collection
	metrics     *grid.Metrics
	navigator   *grid.Navigator
	coordinator *grid.Coordinator
	follower    *grid.Follower
	renderer    *render.Renderer

	manifestTitle string
	manifestPath  string
	full          []tile.Spec

	filter       string
	filterCursor cursor.Model

	selected    *tile.Tile
	inputActive bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	gap         int
	showFooter  bool
	verbose     bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	backend *backend.Watcher
	bus     *command.Bus

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state from the manifest and configuration.
func NewModel(opts Options) *Model {
	collection := grid.NewCollection()
	metrics := grid.NewMetrics()
	navigator := grid.NewNavigator(collection.Len)
	renderer := render.New(styles)
	coordinator := grid.NewCoordinator(collection, metrics, navigator, renderer, opts.Gap)

	m := &Model{
		collection:   collection,
		metrics:      metrics,
		navigator:    navigator,
		coordinator:  coordinator,
		follower:     &grid.Follower{},
		renderer:     renderer,
		manifestPath: opts.ManifestPath,
		gap:          opts.Gap,
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		backend:      opts.Backend,
		bus:          command.New(),
		inputActive:  true,
	}
	navigator.SetListener(m.onFocusChange)

	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		coordinator.SetContainerWidth(opts.Width)
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	if opts.Manifest != nil {
		m.manifestTitle = opts.Manifest.Title
		m.full = opts.Manifest.Tiles
	}
	m.populate(m.full)
	m.registerHandlers()
	return m
}

// Selected returns the tile chosen by the user, if any.
func (m *Model) Selected() *tile.Tile {
	return m.selected
}

// onFocusChange reacts to every focus transition: the focus visual itself is
// derived at render time from the navigator's index, so the only side
// effects here are tracing and keeping the focused tile visible.
func (m *Model) onFocusChange(prev, next int) {
	events.UI.FocusChange(prev, next)
	m.follower.Follow(next, m.metrics.Columns(), m.collection.Len(), m.visibleRows())
}

// populate rebuilds the grid from the given specs as one logical operation:
// clear, then append each spec. Focus lands on the first tile (or empty).
func (m *Model) populate(specs []tile.Spec) {
	cleared := m.collection.Len()
	m.coordinator.Clear()
	if cleared > 0 {
		events.Grid.Cleared(cleared)
	}
	for _, spec := range specs {
		entry, err := m.coordinator.Add(spec)
		if err != nil {
			m.errMsg = err.Error()
			events.Grid.ManifestError(err)
			continue
		}
		events.Grid.TileAdded(entry.Tile.ID, entry.Tile.Title, m.collection.Len())
	}
	m.follower.Reset()
	m.follower.Follow(m.navigator.FocusedIndex(), m.metrics.Columns(), m.collection.Len(), m.visibleRows())
	events.UI.FocusRegister(m.collection.Len(), m.navigator.FocusedIndex())
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleActivationResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.coordinator.SetContainerWidth(m.width)
	sample := 0
	if entry, err := m.collection.At(0); err == nil {
		sample = entry.Width()
	}
	events.Grid.Columns(m.width, sample, m.gap, m.metrics.Columns())
	m.follower.Follow(m.navigator.FocusedIndex(), m.metrics.Columns(), m.collection.Len(), m.visibleRows())
	return nil
}

func (m *Model) handleActivationResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	events.Action.Success(result.Label)
	if m.verbose {
		m.setInfo("Launched " + result.Label)
	}
	return tea.Quit
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
