package quill

import (
	"fmt"
	"unsafe"
)

// NodeKind distinguishes the two item tree node encodings.
type NodeKind uint8

const (
	KindItem    NodeKind = iota // a direct item inside the component instance
	KindDynamic                 // an indirection to a runtime-resolved subtree
)

// ItemNode is the body of a KindItem tree node: where the item's fields live
// inside the component instance, which operation table drives it, and which
// contiguous run of tree nodes holds its children.
type ItemNode struct {
	Offset     uintptr
	VTable     *ItemVTable
	ChildCount uint32
	ChildIndex uint32
}

// DynamicNode is the body of a KindDynamic tree node. Key is a stable
// identifier the generator assigns; the runtime hands it to the configured
// DynamicResolver to obtain the subtree occupying this position.
type DynamicNode struct {
	Key uint32
}

// ItemTreeNode is one position in an item tree. It is a closed tagged union:
// Kind selects which body is meaningful. Nodes are plain values with no
// behavior of their own; the tree they sit in gives them meaning.
type ItemTreeNode struct {
	Kind    NodeKind
	Item    ItemNode
	Dynamic DynamicNode
}

// BuildItemNode assembles a KindItem tree node. It is a pure constructor:
// it performs no validation and cannot fail. Consistency of the offset,
// vtable, and child range is the generator's responsibility; use
// ItemTree.Validate to check the child ranges of a finished tree.
func BuildItemNode(offset uintptr, vt *ItemVTable, childCount, childIndex uint32) ItemTreeNode {
	return ItemTreeNode{
		Kind: KindItem,
		Item: ItemNode{
			Offset:     offset,
			VTable:     vt,
			ChildCount: childCount,
			ChildIndex: childIndex,
		},
	}
}

// BuildDynamicNode assembles a KindDynamic tree node carrying the given
// resolver key. Like BuildItemNode it only assembles a value.
func BuildDynamicNode(key uint32) ItemTreeNode {
	return ItemTreeNode{
		Kind:    KindDynamic,
		Dynamic: DynamicNode{Key: key},
	}
}

// ItemTree is a component's item hierarchy as a flat pre-order sequence.
// Node 0 is the root. A node's children are the contiguous run
// [ChildIndex, ChildIndex+ChildCount) of the same sequence; parents never
// hold references to child values. The whole tree is immutable static data
// once built and may be shared by any number of component instances.
type ItemTree []ItemTreeNode

// Validate checks the structural invariant that every item node's child range
// lies within the tree. It returns a descriptive error for the first
// violation found. Generated trees are consistent by construction; Validate
// exists for debug mode and for hand-written trees in tests and tools.
func (t ItemTree) Validate() error {
	n := uint64(len(t))
	for i := range t {
		node := &t[i]
		if node.Kind != KindItem {
			continue
		}
		if node.Item.VTable == nil {
			return fmt.Errorf("item tree: node %d has nil vtable", i)
		}
		lo := uint64(node.Item.ChildIndex)
		hi := lo + uint64(node.Item.ChildCount)
		if hi > n {
			return fmt.Errorf("item tree: node %d child range [%d, %d) exceeds tree length %d",
				i, lo, hi, n)
		}
	}
	return nil
}

// Subtree is a runtime-resolved component subtree occupying a dynamic node's
// position: a descriptor plus the instance its offsets index into.
type Subtree struct {
	Type     *ComponentType
	Instance Instance
}

// DynamicResolver supplies subtrees for KindDynamic nodes during a walk.
// Resolve returns the subtree for the given key, or ok=false when the key
// currently has no content (the node is then skipped). The resolver is
// consulted on every walk; any caching is the resolver's own concern.
// Resolved subtrees must not lead back to a tree currently being walked.
type DynamicResolver interface {
	Resolve(key uint32) (Subtree, bool)
}

// ResolverFunc adapts a function to the DynamicResolver interface.
type ResolverFunc func(key uint32) (Subtree, bool)

// Resolve calls f.
func (f ResolverFunc) Resolve(key uint32) (Subtree, bool) {
	return f(key)
}

// ItemVisitor is called once per item during a walk. origin is the absolute
// position of the item's parent coordinate space, so the item's absolute
// bounds are ref.Geometry().Translate(origin.X, origin.Y). Returning false
// stops the walk.
type ItemVisitor func(ref ItemRef, origin Vec2) bool

// VisitItems walks the component's item tree in pre-order from the root,
// resolving each item's address inside inst and each dynamic node through
// resolver (which may be nil, in which case dynamic nodes are skipped).
// The walk touches only the calling goroutine; see Run for the threading
// contract.
func VisitItems(ct *ComponentType, inst Instance, resolver DynamicResolver, visit ItemVisitor) {
	if len(ct.Tree) == 0 {
		return
	}
	visitNode(ct, inst, 0, Vec2{}, resolver, visit)
}

// visitNode walks the subtree rooted at index idx. Returns false when the
// visitor aborted the walk.
func visitNode(ct *ComponentType, inst Instance, idx uint32, origin Vec2, resolver DynamicResolver, visit ItemVisitor) bool {
	node := &ct.Tree[idx]
	switch node.Kind {
	case KindItem:
		ref := ct.ItemAt(inst, node.Item)
		if !visit(ref, origin) {
			return false
		}
		geom := ref.Geometry()
		childOrigin := Vec2{origin.X + geom.X, origin.Y + geom.Y}
		if debugMode {
			debugCheckChildRange(ct, idx, node.Item)
		}
		lo := node.Item.ChildIndex
		hi := lo + node.Item.ChildCount
		for c := lo; c < hi; c++ {
			if !visitNode(ct, inst, c, childOrigin, resolver, visit) {
				return false
			}
		}
	case KindDynamic:
		if resolver == nil {
			return true
		}
		sub, ok := resolver.Resolve(node.Dynamic.Key)
		if !ok || sub.Type == nil || len(sub.Type.Tree) == 0 {
			return true
		}
		return visitNode(sub.Type, sub.Instance, 0, origin, resolver, visit)
	}
	return true
}

// itemPtr computes an item's address from the instance base. This is the one
// place pointer arithmetic on instance memory happens.
func itemPtr(inst Instance, offset uintptr) unsafe.Pointer {
	return unsafe.Add(inst.ptr, offset)
}
