package quill

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// paintCommandKind identifies the kind of paint command.
type paintCommandKind uint8

const (
	paintFill  paintCommandKind = iota // solid rectangle via WhitePixel
	paintImage                         // DrawImage scaled into a rectangle
)

// paintCommand is a single draw instruction emitted while painting the item
// tree. Rect is in absolute (window) coordinates.
type paintCommand struct {
	kind  paintCommandKind
	rect  Rect
	color Color
	image *ebiten.Image
}

// Painter collects the draw commands a frame's item walk produces.
// Items paint in their local coordinate space; the painter translates by the
// origin set for the item being painted. Collected commands are replayed onto
// the target image in one pass after the walk, keeping command emission free
// of GPU work (and unit-testable).
type Painter struct {
	origin   Vec2
	commands []paintCommand
}

const defaultPaintCap = 256

// newPainter returns a painter with a reusable command buffer.
func newPainter() *Painter {
	return &Painter{commands: make([]paintCommand, 0, defaultPaintCap)}
}

// reset clears the command buffer, keeping its capacity across frames.
func (p *Painter) reset() {
	p.origin = Vec2{}
	p.commands = p.commands[:0]
}

// FillRect fills r, in the current item's local coordinates, with c.
func (p *Painter) FillRect(r Rect, c Color) {
	p.commands = append(p.commands, paintCommand{
		kind:  paintFill,
		rect:  r.Translate(p.origin.X, p.origin.Y),
		color: c,
	})
}

// DrawImage draws img scaled into r, in the current item's local coordinates,
// multiplied by opacity in [0, 1].
func (p *Painter) DrawImage(img *ebiten.Image, r Rect, opacity float64) {
	if img == nil {
		return
	}
	p.commands = append(p.commands, paintCommand{
		kind:  paintImage,
		rect:  r.Translate(p.origin.X, p.origin.Y),
		color: Color{1, 1, 1, opacity},
		image: img,
	})
}

// submit replays the collected commands onto target.
func (p *Painter) submit(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range p.commands {
		cmd := &p.commands[i]

		src := cmd.image
		if cmd.kind == paintFill {
			src = WhitePixel
		}
		w := src.Bounds().Dx()
		h := src.Bounds().Dy()
		if w == 0 || h == 0 || cmd.rect.Width <= 0 || cmd.rect.Height <= 0 {
			continue
		}

		op.GeoM.Reset()
		op.GeoM.Scale(cmd.rect.Width/float64(w), cmd.rect.Height/float64(h))
		op.GeoM.Translate(cmd.rect.X, cmd.rect.Y)

		// Premultiply at submission; commands carry straight alpha.
		a := float32(cmd.color.A)
		op.ColorScale.Reset()
		op.ColorScale.Scale(float32(cmd.color.R)*a, float32(cmd.color.G)*a, float32(cmd.color.B)*a, a)

		target.DrawImage(src, &op)
	}
}

// paintComponent walks the component's item tree and emits every item's paint
// commands into p.
func paintComponent(ct *ComponentType, inst Instance, resolver DynamicResolver, p *Painter) {
	VisitItems(ct, inst, resolver, func(ref ItemRef, origin Vec2) bool {
		p.origin = origin
		ref.Paint(p)
		return true
	})
	p.origin = Vec2{}
}
