package quill

import (
	"errors"
	"fmt"
	"testing"
	"unsafe"
)

// --- hitItemAt ---

func TestHitItemAtDeepestWins(t *testing.T) {
	ct := threeRectType()
	c := newThreeRect()
	inst := InstanceOf(c)

	tests := []struct {
		name string
		x, y float64
		want unsafe.Pointer
		ok   bool
	}{
		// Children overlap the root; the later pre-order node wins.
		{"left child", 20, 30, unsafe.Pointer(&c.left), true},
		{"right child", 115, 30, unsafe.Pointer(&c.right), true},
		{"root only", 15, 100, unsafe.Pointer(&c.root), true},
		{"miss", 500, 500, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, _, ok := hitItemAt(ct, inst, nil, tt.x, tt.y)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && ref.Ptr() != tt.want {
				t.Error("wrong item hit")
			}
		})
	}
}

func TestHitItemAtOriginReported(t *testing.T) {
	ct := threeRectType()
	c := newThreeRect()

	_, origin, ok := hitItemAt(ct, InstanceOf(c), nil, 20, 30) // left child
	if !ok {
		t.Fatal("expected a hit")
	}
	if origin != (Vec2{10, 20}) {
		t.Errorf("origin = %v, want {10 20}", origin)
	}
}

func TestHitItemAtThroughDynamicSubtree(t *testing.T) {
	host := &dynamicHostComponent{root: Rectangle{X: 30, Y: 40, Width: 100, Height: 100}}

	type subComponent struct {
		content Rectangle
	}
	subType := &ComponentType{
		Name: "Sub",
		Tree: ItemTree{
			BuildItemNode(unsafe.Offsetof(subComponent{}.content), RectangleVTable, 0, 0),
		},
	}
	sub := &subComponent{content: Rectangle{X: 10, Y: 10, Width: 20, Height: 20}}

	resolver := ResolverFunc(func(key uint32) (Subtree, bool) {
		return Subtree{Type: subType, Instance: InstanceOf(sub)}, true
	})

	// The sub content covers [40,50)..[60,70) in window coordinates.
	ref, _, ok := hitItemAt(dynamicHostType(), InstanceOf(host), resolver, 45, 55)
	if !ok {
		t.Fatal("expected a hit")
	}
	if ref.Ptr() != unsafe.Pointer(&sub.content) {
		t.Error("hit should land on the resolved subtree's item")
	}
}

// --- RendererInitError ---

func TestRendererInitErrorWraps(t *testing.T) {
	cause := errors.New("no display")
	err := error(&RendererInitError{Err: cause})

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	var rie *RendererInitError
	if !errors.As(err, &rie) {
		t.Fatal("errors.As should match *RendererInitError")
	}
	if rie.Err != cause {
		t.Error("unwrapped cause mismatch")
	}
	if msg := err.Error(); msg != fmt.Sprintf("quill: renderer failed: %v", cause) {
		t.Errorf("Error() = %q", msg)
	}
}

// --- game.Layout ---

func TestGameLayoutFixedSize(t *testing.T) {
	g := &game{cfg: RunConfig{Width: 320, Height: 240}}
	w, h := g.Layout(1920, 1080)
	if w != 320 || h != 240 {
		t.Errorf("Layout = (%d, %d), want (320, 240)", w, h)
	}
}
