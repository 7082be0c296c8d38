package quill

import "unsafe"

// ItemVTable is the fixed operation set shared by every instance of one item
// type. Tables are package-level immutable values (see RectangleVTable,
// ImageVTable); there is no dynamic registration and no teardown. Generated
// components reference them directly from their item trees.
//
// Every operation receives the item through an ItemRef; implementations cast
// ref.Ptr() to their concrete item struct. That cast is sound only when the
// tree that produced the ref pairs this vtable with a matching offset, which
// is the generator's contract (see ComponentType.ItemAt).
type ItemVTable struct {
	// Geometry returns the item's bounding rectangle in the parent item's
	// coordinate space.
	Geometry func(ref ItemRef) Rect

	// Paint emits the item's draw commands. The painter's origin is the
	// item's parent coordinate space, the same space Geometry reports in.
	Paint func(ref ItemRef, p *Painter)

	// HitTest reports whether (x, y), in the item's parent coordinate
	// space, falls on the item.
	HitTest func(ref ItemRef, x, y float64) bool

	// Input delivers a pointer event whose coordinates are local to the
	// item. May be nil for items that ignore input.
	Input func(ref ItemRef, ev MouseEvent)
}

// ItemRef pairs an item's operation table with a pointer to its field data
// inside a component instance. It is the value item operations dispatch on.
// Refs are produced by ComponentType.ItemAt and are only valid while the
// owning instance is live.
type ItemRef struct {
	vt  *ItemVTable
	ptr unsafe.Pointer
}

// VTable returns the item's operation table.
func (r ItemRef) VTable() *ItemVTable {
	return r.vt
}

// Ptr returns the raw pointer to the item's field data. Item operation
// implementations cast this to their concrete item struct type.
func (r ItemRef) Ptr() unsafe.Pointer {
	return r.ptr
}

// Geometry dispatches the geometry operation.
func (r ItemRef) Geometry() Rect {
	return r.vt.Geometry(r)
}

// Paint dispatches the paint operation.
func (r ItemRef) Paint(p *Painter) {
	r.vt.Paint(r, p)
}

// HitTest dispatches the hit-test operation.
func (r ItemRef) HitTest(x, y float64) bool {
	return r.vt.HitTest(r, x, y)
}

// Input dispatches a pointer event. No-op when the item type has no input
// operation.
func (r ItemRef) Input(ev MouseEvent) {
	if r.vt.Input != nil {
		r.vt.Input(r, ev)
	}
}

// MouseEventKind identifies a kind of pointer event.
type MouseEventKind uint8

const (
	MousePressed  MouseEventKind = iota // a pointer button was pressed
	MouseReleased                       // a pointer button was released
	MouseMoved                          // the pointer moved
	MouseExit                           // the pointer left the item or window
)

// MouseEvent carries a pointer event. X and Y are in the coordinate space of
// the item receiving the event.
type MouseEvent struct {
	Kind MouseEventKind
	X, Y float64
}
