package events

import "github.com/atomicstack/tile-grid-control/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) FocusChange(prev, next int) {
	logging.Trace("focus.change", map[string]interface{}{"prev": prev, "next": next})
}

func (UITracer) FocusRegister(length, focused int) {
	logging.Trace("focus.register", map[string]interface{}{"length": length, "focused": focused})
}

func (UITracer) Activate(tileID, title string) {
	logging.Trace("tile.activate", map[string]interface{}{"tile": tileID, "title": title})
}

func (FilterTracer) Changed(filter string, matches int) {
	logging.Trace("filter.change", map[string]interface{}{"filter": filter, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}
