// Package render draws tile boxes. It is the only place that knows what a
// tile looks like; the grid package consumes it through the
// grid.Renderer interface so navigation logic stays free of any terminal
// dependency.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tile-grid-control/internal/theme"
	"github.com/atomicstack/tile-grid-control/internal/tile"
)

const (
	// TileWidth is the total box width in cells, borders included.
	TileWidth = 22
	// TileHeight is the number of terminal lines one tile occupies.
	TileHeight = 4
)

type borderSet struct {
	tl, tr, bl, br, h, v string
}

var (
	roundedBorder = borderSet{tl: "╭", tr: "╮", bl: "╰", br: "╯", h: "─", v: "│"}
	doubleBorder  = borderSet{tl: "╔", tr: "╗", bl: "╚", br: "╝", h: "═", v: "║"}
)

// Renderer draws tile boxes and caches rendered output per tile id. Release
// evicts a tile's cached renders when the tile is destroyed.
type Renderer struct {
	styles *theme.Styles
	cache  map[cacheKey]string
}

type cacheKey struct {
	id      string
	focused bool
}

// New returns a renderer using the provided style set.
func New(styles *theme.Styles) *Renderer {
	if styles == nil {
		styles = theme.Default()
	}
	return &Renderer{styles: styles, cache: make(map[cacheKey]string)}
}

// Render returns the tile's box, TileHeight lines joined with newlines. The
// focused variant uses a double border and brighter text.
func (r *Renderer) Render(t tile.Tile, focused bool) string {
	key := cacheKey{id: t.ID, focused: focused}
	if cached, ok := r.cache[key]; ok {
		return cached
	}
	rendered := r.box(t, focused)
	r.cache[key] = rendered
	return rendered
}

// Measure reports the visual width of the tile's rendered box in cells.
func (r *Renderer) Measure(t tile.Tile) int {
	rendered := r.Render(t, false)
	if nl := strings.IndexByte(rendered, '\n'); nl >= 0 {
		rendered = rendered[:nl]
	}
	return lipgloss.Width(rendered)
}

// Release evicts the tile's cached renders.
func (r *Renderer) Release(t tile.Tile) {
	delete(r.cache, cacheKey{id: t.ID, focused: false})
	delete(r.cache, cacheKey{id: t.ID, focused: true})
}

func (r *Renderer) box(t tile.Tile, focused bool) string {
	border := roundedBorder
	borderStyle := r.styles.TileBorder
	titleStyle := r.styles.TileTitle
	bodyStyle := r.styles.TileBody
	if focused {
		border = doubleBorder
		borderStyle = r.styles.TileBorderFocused
		titleStyle = r.styles.TileTitleFocused
		bodyStyle = r.styles.TileBodyFocused
	}

	inner := TileWidth - 4 // borders plus one pad column each side
	title := fit(t.Label(), inner)
	subtitle := fit(t.Subtitle, inner)

	horizontal := strings.Repeat(border.h, TileWidth-2)
	top := render(borderStyle, border.tl+horizontal+border.tr)
	bottom := render(borderStyle, border.bl+horizontal+border.br)
	side := render(borderStyle, border.v)

	lines := []string{
		top,
		side + " " + render(titleStyle, title) + " " + side,
		side + " " + render(bodyStyle, subtitle) + " " + side,
		bottom,
	}
	return strings.Join(lines, "\n")
}

// fit truncates text to the given cell width with an ellipsis tail and pads
// it back out so every box line lands on the same width.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = truncate.StringWithTail(text, uint(width), "…")
	if pad := width - runewidth.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
