package view

import "slices"

// MIMEText is the payload type carrying a project ID during a drag.
const MIMEText = "text/plain"

// EffectMove is the only drag effect the board allows.
const EffectMove = "move"

// DataTransfer carries the payload of one drag gesture from its source to
// its drop target.
type DataTransfer struct {
	types []string
	data  map[string]string

	// EffectAllowed is set by the drag source.
	EffectAllowed string
}

// NewDataTransfer creates an empty transfer.
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{data: make(map[string]string)}
}

// SetData stores data under format. Formats keep the order in which they
// were first set.
func (dt *DataTransfer) SetData(format, data string) {
	if _, ok := dt.data[format]; !ok {
		dt.types = append(dt.types, format)
	}
	dt.data[format] = data
}

// GetData returns the data stored under format, or "" if none.
func (dt *DataTransfer) GetData(format string) string {
	return dt.data[format]
}

// Types returns the formats set on the transfer.
func (dt *DataTransfer) Types() []string {
	return slices.Clone(dt.types)
}

// Draggable is implemented by components that can be picked up.
type Draggable interface {
	DragStart(dt *DataTransfer)
	DragEnd(dt *DataTransfer)
}

// DropTarget is implemented by components that accept dropped payloads.
type DropTarget interface {
	// DragOver reports whether the target accepts the payload.
	DragOver(dt *DataTransfer) bool
	Drop(dt *DataTransfer)
	DragLeave(dt *DataTransfer)
}

// StartDrag begins a drag on c if it is [Draggable].
func StartDrag(c Component, dt *DataTransfer) bool {
	d, ok := c.(Draggable)
	if !ok {
		return false
	}
	d.DragStart(dt)
	return true
}

// EndDrag finishes a drag on c if it is [Draggable].
func EndDrag(c Component, dt *DataTransfer) bool {
	d, ok := c.(Draggable)
	if !ok {
		return false
	}
	d.DragEnd(dt)
	return true
}

// DropOn delivers dt to c if it is a [DropTarget] that accepts it.
// A rejected payload gets a DragLeave instead of a Drop.
func DropOn(c Component, dt *DataTransfer) bool {
	t, ok := c.(DropTarget)
	if !ok {
		return false
	}
	if !t.DragOver(dt) {
		t.DragLeave(dt)
		return false
	}
	t.Drop(dt)
	return true
}
