package quill

import (
	"testing"
)

func TestWalkBadChildRangePanicsInDebug(t *testing.T) {
	setDebugMode(true)
	defer setDebugMode(false)

	type oneRect struct {
		only Rectangle
	}
	ct := &ComponentType{
		Name: "Broken",
		Tree: ItemTree{
			BuildItemNode(0, RectangleVTable, 5, 1), // range escapes the tree
		},
	}
	c := &oneRect{only: Rectangle{Width: 10, Height: 10}}

	defer func() {
		if recover() == nil {
			t.Error("walk over inconsistent tree did not panic in debug mode")
		}
	}()
	VisitItems(ct, InstanceOf(c), nil, func(ref ItemRef, origin Vec2) bool {
		return true
	})
}

func TestSetDebugModeClearsReleaseTracking(t *testing.T) {
	setDebugMode(true)
	ct := &ComponentType{Name: "Owned", Lifecycle: LifecycleOwned, Release: func(Instance) {}}
	c := newThreeRect()
	ct.Destroy(InstanceOf(c))

	// Toggling debug off and on again forgets prior destroys.
	setDebugMode(false)
	setDebugMode(true)
	defer setDebugMode(false)
	ct.Destroy(InstanceOf(c)) // must not panic
}
