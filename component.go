package quill

import (
	"fmt"
	"unsafe"
)

// Lifecycle states who owns a component instance's memory and what the
// runtime must do with it after the event loop ends.
type Lifecycle uint8

const (
	// LifecycleStatic marks an instance with program duration. Destroy is
	// a no-op and may be called any number of times.
	LifecycleStatic Lifecycle = iota

	// LifecycleOwned marks a heap instance the runtime releases through
	// the descriptor's Release callback, exactly once, after Run returns.
	LifecycleOwned
)

// String returns the lifecycle name.
func (l Lifecycle) String() string {
	switch l {
	case LifecycleStatic:
		return "static"
	case LifecycleOwned:
		return "owned"
	default:
		return fmt.Sprintf("Lifecycle(%d)", uint8(l))
	}
}

// ComponentType describes one compiled component type: its item tree, and how
// instances of it are destroyed. Generated code emits one ComponentType per
// component, usually as a package-level variable shared by every instance.
// Descriptors are immutable after construction and safe to share across
// components and walks.
type ComponentType struct {
	// Name identifies the component in diagnostics.
	Name string

	// Tree is the component's item hierarchy. Node offsets index into
	// instances of this component type.
	Tree ItemTree

	// Lifecycle selects the destruction policy for instances.
	Lifecycle Lifecycle

	// Release frees an owned instance's resources. Required when
	// Lifecycle is LifecycleOwned, ignored otherwise.
	Release func(inst Instance)
}

// Instance is an opaque handle to one running instantiation of a component:
// the memory block whose layout the component's ComponentType describes.
// The zero Instance is invalid. Instances are created with InstanceOf and
// are exclusively owned by the goroutine running their event loop.
type Instance struct {
	ptr unsafe.Pointer
}

// InstanceOf wraps a generated component value in an opaque Instance handle.
// This is the single boundary where a typed component becomes untyped
// instance memory: every ItemAt address is computed relative to v, so v's
// struct layout must match the offsets recorded in the component's item tree.
// v must stay reachable and unmoved for as long as the Instance is in use.
func InstanceOf[T any](v *T) Instance {
	return Instance{ptr: unsafe.Pointer(v)}
}

// IsZero reports whether the handle is the invalid zero Instance.
func (i Instance) IsZero() bool {
	return i.ptr == nil
}

// ItemAt resolves a tree node's item within inst: the item lives at the
// instance base plus the node's offset and dispatches through the node's
// vtable. The pairing of offset and vtable is a precondition the generator
// guarantees; a mismatch is undefined behavior, not a checked error.
func (ct *ComponentType) ItemAt(inst Instance, node ItemNode) ItemRef {
	return ItemRef{vt: node.VTable, ptr: itemPtr(inst, node.Offset)}
}

// Destroy applies the descriptor's destruction policy to inst. For static
// components it does nothing and is idempotent. For owned components it
// invokes Release; callers must do so exactly once, after the instance's
// event loop has returned and no dispatch can still reach the instance.
// In debug mode a second Destroy of an owned instance panics.
func (ct *ComponentType) Destroy(inst Instance) {
	if ct.Lifecycle != LifecycleOwned {
		return
	}
	if debugMode {
		debugCheckReleased(ct, inst)
	}
	if ct.Release != nil {
		ct.Release(inst)
	}
}
