// Package quill is the runtime core for statically compiled declarative UI
// components, rendered with [Ebitengine].
//
// A compiler (external to this package) turns a component description into a
// Go struct holding every item's fields, plus a static [ComponentType]: a
// flat, index-addressed [ItemTree] whose nodes record each item's byte offset
// into that struct and the [ItemVTable] driving it. Quill walks that tree to
// paint and to dispatch pointer input; it never inspects the component struct
// itself.
//
// # Quick start
//
// Generated code needs only two operations to participate in the runtime:
// [BuildItemNode] to encode tree positions, and [Run] to hand an instance to
// the event loop:
//
//	type helloComponent struct {
//		background quill.Rectangle
//	}
//
//	var helloType = &quill.ComponentType{
//		Name: "Hello",
//		Tree: quill.ItemTree{
//			quill.BuildItemNode(unsafe.Offsetof(helloComponent{}.background),
//				quill.RectangleVTable, 0, 0),
//		},
//	}
//
//	func main() {
//		c := &helloComponent{background: quill.Rectangle{
//			Width: 640, Height: 480, Color: quill.Color{0.2, 0.4, 0.8, 1},
//		}}
//		if err := quill.Run(helloType, quill.InstanceOf(c), quill.RunConfig{
//			Title: "Hello", Width: 640, Height: 480,
//		}); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Run blocks until the window closes, then applies the descriptor's
// destruction policy ([LifecycleStatic] or [LifecycleOwned]) to the instance.
//
// # Item trees
//
// An ItemTree is a pre-order sequence of tagged nodes; a node's children are
// the contiguous index range [ChildIndex, ChildIndex+ChildCount). No node
// holds a pointer to another, so a whole tree can live in read-only static
// data and be shared by every instance of its component. Nodes tagged
// [KindDynamic] are indirections: the runtime asks the configured
// [DynamicResolver] for the subtree occupying that position on every walk.
//
// Quill is single-threaded: the tree and the instance are touched only from
// the goroutine running the event loop. Item trees and vtables are immutable
// and may be shared freely; a component instance belongs to exactly one
// event loop.
//
// [Ebitengine]: https://ebitengine.org
package quill
