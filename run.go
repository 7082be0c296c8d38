package quill

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RendererInitError reports that the rendering backend failed to initialize
// or aborted the event loop. It wraps the backend's error.
type RendererInitError struct {
	Err error
}

// Error implements the error interface.
func (e *RendererInitError) Error() string {
	return fmt.Sprintf("quill: renderer failed: %v", e.Err)
}

// Unwrap returns the backend error.
func (e *RendererInitError) Unwrap() error {
	return e.Err
}

// RunConfig configures the window and event loop started by Run.
// The zero value gives a 640x480 window titled "quill".
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Resolver supplies subtrees for dynamic tree nodes. May be nil when
	// the component has none.
	Resolver DynamicResolver

	// OnFrame, if set, is called once per tick with the tick duration in
	// seconds, before input dispatch and painting. Returning an error
	// ends the event loop; Run returns that error after destroying the
	// instance.
	OnFrame func(dt float64) error

	// ShowFPS overlays current FPS/TPS in the top-left corner.
	ShowFPS bool

	// Debug enables invariant checks and per-frame timing diagnostics on
	// stderr.
	Debug bool
}

// Run opens a window and drives the component's event loop until the window
// is closed, blocking the calling goroutine. Each frame the item tree is
// walked from the root: pointer input is dispatched to the deepest item hit,
// then every item paints through its vtable. Dynamic nodes resolve through
// cfg.Resolver before the walk descends.
//
// The tree and instance are touched only from the event loop; callers must
// not mutate the instance from other goroutines while Run is active. After
// the loop ends the descriptor's destruction policy is applied to inst
// exactly once, and never concurrently with dispatch.
//
// A clean window close returns nil. Backend failures are reported as a
// *RendererInitError rather than aborting the process.
func Run(ct *ComponentType, inst Instance, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "quill"
	}

	defer ct.Destroy(inst)

	setDebugMode(cfg.Debug)
	if cfg.Debug {
		if err := ct.Tree.Validate(); err != nil {
			return fmt.Errorf("component %q: %w", ct.Name, err)
		}
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	g := &game{
		ct:      ct,
		inst:    inst,
		cfg:     cfg,
		painter: newPainter(),
	}

	if err := ebiten.RunGame(g); err != nil {
		if g.frameErr != nil {
			return g.frameErr
		}
		return &RendererInitError{Err: err}
	}
	return nil
}

// game adapts a component to the backend's fixed Update/Draw loop.
type game struct {
	ct      *ComponentType
	inst    Instance
	cfg     RunConfig
	painter *Painter

	frameErr error

	// Pointer state carried across ticks.
	cursorDown bool
	hovered    ItemRef
	hoverSet   bool

	// FPS overlay (ShowFPS).
	fpsImage *ebiten.Image
	fpsSince float64

	stats frameStats
}

// Update runs the per-tick callback and dispatches pointer input.
func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if g.cfg.OnFrame != nil {
		if err := g.cfg.OnFrame(dt); err != nil {
			g.frameErr = err
			return err
		}
	}

	g.processPointer()

	if g.cfg.ShowFPS {
		g.updateFPSOverlay(dt)
	}
	return nil
}

// processPointer diffs mouse state against the previous tick and delivers
// events to the deepest item under the cursor. When the cursor moves off the
// previously hovered item, that item receives a MouseExit first.
func (g *game) processPointer() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	var kind MouseEventKind
	switch {
	case down && !g.cursorDown:
		kind = MousePressed
	case !down && g.cursorDown:
		kind = MouseReleased
	default:
		kind = MouseMoved
	}
	g.cursorDown = down

	ref, origin, ok := hitItemAt(g.ct, g.inst, g.cfg.Resolver, x, y)

	if g.hoverSet && (!ok || ref != g.hovered) {
		g.hovered.Input(MouseEvent{Kind: MouseExit})
	}
	g.hoverSet = ok
	if !ok {
		return
	}
	g.hovered = ref

	geom := ref.Geometry()
	ref.Input(MouseEvent{
		Kind: kind,
		X:    x - origin.X - geom.X,
		Y:    y - origin.Y - geom.Y,
	})
}

// hitItemAt returns the item under (x, y) in window coordinates, along with
// the origin of its parent space. When several items overlap, the one painted
// last (deepest in pre-order) wins.
func hitItemAt(ct *ComponentType, inst Instance, resolver DynamicResolver, x, y float64) (ItemRef, Vec2, bool) {
	var (
		hit       ItemRef
		hitOrigin Vec2
		found     bool
	)
	VisitItems(ct, inst, resolver, func(ref ItemRef, origin Vec2) bool {
		if ref.HitTest(x-origin.X, y-origin.Y) {
			hit = ref
			hitOrigin = origin
			found = true
		}
		return true
	})
	return hit, hitOrigin, found
}

// Draw walks the item tree, collects paint commands, and submits them.
func (g *game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.cfg.Debug {
		t0 = time.Now()
	}

	g.painter.reset()
	paintComponent(g.ct, g.inst, g.cfg.Resolver, g.painter)

	if g.cfg.Debug {
		g.stats.walkTime = time.Since(t0)
		g.stats.commandCount = len(g.painter.commands)
		t0 = time.Now()
	}

	g.painter.submit(screen)

	if g.cfg.Debug {
		g.stats.submitTime = time.Since(t0)
		debugLogFrame(g.ct.Name, g.stats)
	}

	if g.cfg.ShowFPS && g.fpsImage != nil {
		var op ebiten.DrawImageOptions
		screen.DrawImage(g.fpsImage, &op)
	}
}

// Layout reports the fixed logical screen size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// updateFPSOverlay refreshes the FPS/TPS readout roughly twice a second.
func (g *game) updateFPSOverlay(dt float64) {
	if g.fpsImage == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0".
		g.fpsImage = ebiten.NewImage(100, 32)
		g.fpsSince = 1 // force an immediate first draw
	}
	g.fpsSince += dt
	if g.fpsSince < 0.5 {
		return
	}
	g.fpsSince = 0

	g.fpsImage.Clear()
	ebitenutil.DebugPrint(g.fpsImage, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
		ebiten.ActualFPS(), ebiten.ActualTPS()))
}
