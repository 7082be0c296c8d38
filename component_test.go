package quill

import (
	"testing"
	"unsafe"
)

// --- ItemAt ---

func TestItemAtComputesOffsets(t *testing.T) {
	ct := threeRectType()
	c := newThreeRect()
	inst := InstanceOf(c)

	tests := []struct {
		name string
		node ItemNode
		want unsafe.Pointer
	}{
		{"root", ct.Tree[0].Item, unsafe.Pointer(&c.root)},
		{"left child", ct.Tree[1].Item, unsafe.Pointer(&c.left)},
		{"right child", ct.Tree[2].Item, unsafe.Pointer(&c.right)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ct.ItemAt(inst, tt.node)
			if ref.Ptr() != tt.want {
				t.Errorf("ItemAt ptr = %p, want %p", ref.Ptr(), tt.want)
			}
			if ref.VTable() != RectangleVTable {
				t.Error("ItemAt vtable is not the node's vtable")
			}
		})
	}
}

func TestItemAtDispatch(t *testing.T) {
	ct := threeRectType()
	c := newThreeRect()

	ref := ct.ItemAt(InstanceOf(c), ct.Tree[0].Item)
	got := ref.Geometry()
	want := Rect{10, 20, 200, 100}
	if got != want {
		t.Errorf("Geometry = %v, want %v", got, want)
	}

	// Writes through the instance are visible to the next dispatch.
	c.root.Width = 300
	if ref.Geometry().Width != 300 {
		t.Error("Geometry did not observe instance mutation")
	}
}

// --- Destroy ---

func TestDestroyStaticIdempotent(t *testing.T) {
	ct := threeRectType() // zero Lifecycle is LifecycleStatic
	c := newThreeRect()
	inst := InstanceOf(c)

	for i := 0; i < 5; i++ {
		ct.Destroy(inst)
	}
	// The instance stays fully usable.
	if got := ct.ItemAt(inst, ct.Tree[0].Item).Geometry(); got.Width != 200 {
		t.Errorf("instance unusable after static Destroy: %v", got)
	}
}

func TestDestroyStaticIgnoresRelease(t *testing.T) {
	calls := 0
	ct := &ComponentType{
		Name:      "Static",
		Lifecycle: LifecycleStatic,
		Release:   func(Instance) { calls++ },
	}
	ct.Destroy(Instance{})
	if calls != 0 {
		t.Errorf("Release called %d times for static component, want 0", calls)
	}
}

func TestDestroyOwnedCallsReleaseOnce(t *testing.T) {
	calls := 0
	ct := &ComponentType{
		Name:      "Owned",
		Lifecycle: LifecycleOwned,
		Release:   func(Instance) { calls++ },
	}
	c := newThreeRect()
	ct.Destroy(InstanceOf(c))
	if calls != 1 {
		t.Errorf("Release called %d times, want 1", calls)
	}
}

func TestDestroyOwnedDoubleDestroyPanicsInDebug(t *testing.T) {
	setDebugMode(true)
	defer setDebugMode(false)

	ct := &ComponentType{
		Name:      "Owned",
		Lifecycle: LifecycleOwned,
		Release:   func(Instance) {},
	}
	c := newThreeRect()
	inst := InstanceOf(c)
	ct.Destroy(inst)

	defer func() {
		if recover() == nil {
			t.Error("second Destroy did not panic in debug mode")
		}
	}()
	ct.Destroy(inst)
}

// --- Lifecycle ---

func TestLifecycleString(t *testing.T) {
	tests := []struct {
		l    Lifecycle
		want string
	}{
		{LifecycleStatic, "static"},
		{LifecycleOwned, "owned"},
		{Lifecycle(9), "Lifecycle(9)"},
	}
	for _, tt := range tests {
		if got := tt.l.String(); got != tt.want {
			t.Errorf("Lifecycle(%d).String() = %q, want %q", uint8(tt.l), got, tt.want)
		}
	}
}

// --- Instance ---

func TestInstanceIsZero(t *testing.T) {
	if !(Instance{}).IsZero() {
		t.Error("zero Instance should report IsZero")
	}
	c := newThreeRect()
	if InstanceOf(c).IsZero() {
		t.Error("InstanceOf result should not be zero")
	}
}
