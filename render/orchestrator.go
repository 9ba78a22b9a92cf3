package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zhuyin-fighter/arcade"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the arcade render pipeline
type Orchestrator struct {
	layers   []layerEntry
	regCount int
	frame    uint64
}

// NewOrchestrator creates an empty pipeline
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{layers: make([]layerEntry, 0, 8)}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// RenderFrame clears the region and runs every visible layer in priority order
// The caller shows the screen
func (o *Orchestrator) RenderFrame(scr tcell.Screen, region Rect, snap arcade.Snapshot) {
	o.frame++
	ctx := NewContext(o.frame, region, snap)

	Fill(scr, region, Style(RgbText))
	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, scr)
	}
}
