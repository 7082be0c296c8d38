package quill

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Rectangle is a solid-color item. Its fields live inside the component
// instance at the offset its tree node records; generated components embed it
// directly in their component struct.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
	Color         Color
}

// RectangleVTable is the shared operation table for Rectangle items.
var RectangleVTable = &ItemVTable{
	Geometry: func(ref ItemRef) Rect {
		r := (*Rectangle)(ref.Ptr())
		return Rect{r.X, r.Y, r.Width, r.Height}
	},
	Paint: func(ref ItemRef, p *Painter) {
		r := (*Rectangle)(ref.Ptr())
		if r.Color.A <= 0 {
			return
		}
		p.FillRect(Rect{r.X, r.Y, r.Width, r.Height}, r.Color)
	},
	HitTest: func(ref ItemRef, x, y float64) bool {
		r := (*Rectangle)(ref.Ptr())
		return (Rect{r.X, r.Y, r.Width, r.Height}).Contains(x, y)
	},
}

// Image is an item that draws a source image scaled into its bounds.
// A nil Source paints nothing.
type Image struct {
	X, Y          float64
	Width, Height float64
	Source        *ebiten.Image
	Opacity       float64
}

// ImageVTable is the shared operation table for Image items.
var ImageVTable = &ItemVTable{
	Geometry: func(ref ItemRef) Rect {
		im := (*Image)(ref.Ptr())
		return Rect{im.X, im.Y, im.Width, im.Height}
	},
	Paint: func(ref ItemRef, p *Painter) {
		im := (*Image)(ref.Ptr())
		if im.Source == nil || im.Opacity <= 0 {
			return
		}
		p.DrawImage(im.Source, Rect{im.X, im.Y, im.Width, im.Height}, im.Opacity)
	},
	HitTest: func(ref ItemRef, x, y float64) bool {
		im := (*Image)(ref.Ptr())
		return (Rect{im.X, im.Y, im.Width, im.Height}).Contains(x, y)
	},
}

// TouchArea is an invisible item that receives pointer events for the region
// it covers. OnPressed, OnReleased, and OnMoved fire as the runtime dispatches
// events; unset callbacks are skipped. Event coordinates are local to the
// touch area.
type TouchArea struct {
	X, Y          float64
	Width, Height float64
	Pressed       bool

	OnPressed  func(x, y float64)
	OnReleased func(x, y float64)
	OnMoved    func(x, y float64)
}

// TouchAreaVTable is the shared operation table for TouchArea items.
var TouchAreaVTable = &ItemVTable{
	Geometry: func(ref ItemRef) Rect {
		ta := (*TouchArea)(ref.Ptr())
		return Rect{ta.X, ta.Y, ta.Width, ta.Height}
	},
	Paint: func(ref ItemRef, p *Painter) {},
	HitTest: func(ref ItemRef, x, y float64) bool {
		ta := (*TouchArea)(ref.Ptr())
		return (Rect{ta.X, ta.Y, ta.Width, ta.Height}).Contains(x, y)
	},
	Input: func(ref ItemRef, ev MouseEvent) {
		ta := (*TouchArea)(ref.Ptr())
		switch ev.Kind {
		case MousePressed:
			ta.Pressed = true
			if ta.OnPressed != nil {
				ta.OnPressed(ev.X, ev.Y)
			}
		case MouseReleased, MouseExit:
			ta.Pressed = false
			if ev.Kind == MouseReleased && ta.OnReleased != nil {
				ta.OnReleased(ev.X, ev.Y)
			}
		case MouseMoved:
			if ta.OnMoved != nil {
				ta.OnMoved(ev.X, ev.Y)
			}
		}
	},
}
