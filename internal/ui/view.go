package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tile-grid-control/internal/render"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	if header := m.headerLine(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	if m.collection.Len() == 0 {
		msg := "(no tiles)"
		if m.filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		lines = append(lines, m.gridLines()...)
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "←↓↑→ move  enter/space launch  type to filter  esc clear/quit", style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (error/status + filter prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := applyWidth([]styledLine{
		statusLine,
		{text: m.filterPrompt(), raw: true},
	}, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) headerLine() string {
	total := m.collection.Len()
	if m.filter != "" {
		return fmt.Sprintf("%s → %d/%d tiles", m.manifestTitle, total, len(m.full))
	}
	return fmt.Sprintf("%s → %d tiles", m.manifestTitle, total)
}

// gridLines renders the visible window of grid rows. Each grid row is the
// horizontal join of its tile boxes, so one grid row spans TileHeight
// terminal lines.
func (m *Model) gridLines() []styledLine {
	cols := m.metrics.Columns()
	entries := m.collection.Entries()
	rows := (len(entries) + cols - 1) / cols
	visible := m.visibleRows()
	if visible <= 0 || visible > rows {
		visible = rows
	}
	start := m.follower.Offset()
	if start > rows-visible {
		start = rows - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible

	focusIdx := m.navigator.FocusedIndex()
	gapStr := strings.Repeat(" ", m.gap)
	out := make([]styledLine, 0, visible*render.TileHeight)
	for r := start; r < end; r++ {
		boxes := make([][]string, 0, cols)
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(entries) {
				break
			}
			rendered := m.renderer.Render(entries[i].Tile, i == focusIdx)
			boxes = append(boxes, strings.Split(rendered, "\n"))
		}
		for line := 0; line < render.TileHeight; line++ {
			segments := make([]string, len(boxes))
			for b, box := range boxes {
				segments[b] = box[line]
			}
			out = append(out, styledLine{text: strings.Join(segments, gapStr), raw: true})
		}
	}
	return out
}

// visibleRows reports how many grid rows fit in the current height, or -1
// when the height is not yet known.
func (m *Model) visibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	if m.headerLine() != "" {
		used++
	}
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	rows := remain / render.TileHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) filterPrompt() string {
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if m.filter == "" {
		placeholder := "(type to filter)"
		if styles.FilterPlaceholder != nil {
			placeholder = styles.FilterPlaceholder.Render(placeholder)
		}
		return prompt + placeholder
	}
	text := m.filter
	if styles.Filter != nil {
		text = styles.Filter.Render(text)
	}
	return prompt + text + m.filterCursor.View()
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
