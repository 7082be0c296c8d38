package quill

import (
	"fmt"
	"os"
	"time"
	"unsafe"
)

// debugMode mirrors the most recently set RunConfig.Debug flag so that tree
// operations (which lack a config pointer) can check it cheaply. Only valid
// with a single running component; concurrent Runs with differing debug
// settings reflect whichever started last.
var debugMode bool

func setDebugMode(enabled bool) {
	debugMode = enabled
	if !enabled {
		releasedInstances = nil
	}
}

// frameStats holds per-frame timing and command metrics.
// Only populated when RunConfig.Debug is true.
type frameStats struct {
	walkTime     time.Duration
	submitTime   time.Duration
	commandCount int
}

// debugLogFrame prints walk and submit timings to stderr.
func debugLogFrame(name string, stats frameStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[quill] %s: walk: %v | submit: %v | commands: %d\n",
		name, stats.walkTime, stats.submitTime, stats.commandCount)
}

// debugCheckChildRange panics when a node's child range escapes the tree.
// Release mode skips this entirely; a generator-produced tree is consistent
// by construction.
func debugCheckChildRange(ct *ComponentType, idx uint32, node ItemNode) {
	lo := uint64(node.ChildIndex)
	hi := lo + uint64(node.ChildCount)
	if hi > uint64(len(ct.Tree)) {
		panic(fmt.Sprintf("quill debug: component %q node %d child range [%d, %d) escapes tree of %d nodes",
			ct.Name, idx, lo, hi, len(ct.Tree)))
	}
}

// releasedInstances tracks owned instances already destroyed, to catch double
// destroys in debug mode. Keyed by instance base address; cleared whenever
// debug mode is reset.
var releasedInstances map[unsafe.Pointer]bool

// debugCheckReleased panics on a second Destroy of an owned instance.
func debugCheckReleased(ct *ComponentType, inst Instance) {
	if releasedInstances == nil {
		releasedInstances = make(map[unsafe.Pointer]bool)
	}
	if releasedInstances[inst.ptr] {
		panic(fmt.Sprintf("quill debug: double destroy of owned instance of component %q", ct.Name))
	}
	releasedInstances[inst.ptr] = true
}
