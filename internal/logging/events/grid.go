package events

import "github.com/atomicstack/tile-grid-control/internal/logging"

type GridTracer struct{}

var Grid = GridTracer{}

func (GridTracer) Columns(containerWidth, sampleWidth, gap, columns int) {
	logging.Trace("grid.columns", map[string]interface{}{
		"container": containerWidth,
		"sample":    sampleWidth,
		"gap":       gap,
		"columns":   columns,
	})
}

func (GridTracer) TileAdded(tileID, title string, length int) {
	logging.Trace("grid.tile-added", map[string]interface{}{
		"tile":   tileID,
		"title":  title,
		"length": length,
	})
}

func (GridTracer) Cleared(removed int) {
	logging.Trace("grid.clear", map[string]interface{}{"removed": removed})
}

func (GridTracer) ManifestReload(path string, tiles int) {
	logging.Trace("manifest.reload", map[string]interface{}{"path": path, "tiles": tiles})
}

func (GridTracer) ManifestError(err error) {
	if err == nil {
		return
	}
	logging.Trace("manifest.error", map[string]interface{}{"error": err.Error()})
}
