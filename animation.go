package quill

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 item fields simultaneously. Create one
// via the convenience constructors (TweenRectPosition, TweenRectSize,
// TweenRectColor, TweenImageOpacity) and call Update(dt) each tick, typically
// from RunConfig.OnFrame. The group writes directly into the item's fields
// inside the component instance, so it must not outlive the instance.
//
// There is no global animation manager — callers tick their groups themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields. Done is set once every tween has finished.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenFields creates a TweenGroup animating up to 4 arbitrary float64 fields
// to the given targets. fields and to must have equal length, at most 4.
func TweenFields(duration float64, fn ease.TweenFunc, fields []*float64, to []float64) *TweenGroup {
	n := len(fields)
	if len(to) < n {
		n = len(to)
	}
	if n > 4 {
		n = 4
	}
	g := &TweenGroup{count: n}
	for i := 0; i < n; i++ {
		g.tweens[i] = gween.New(float32(*fields[i]), float32(to[i]), float32(duration), fn)
		g.fields[i] = fields[i]
	}
	return g
}

// TweenRectPosition creates a TweenGroup that animates a Rectangle's X and Y
// to the given coordinates over the specified duration.
func TweenRectPosition(r *Rectangle, toX, toY, duration float64, fn ease.TweenFunc) *TweenGroup {
	return TweenFields(duration, fn, []*float64{&r.X, &r.Y}, []float64{toX, toY})
}

// TweenRectSize creates a TweenGroup that animates a Rectangle's Width and
// Height to the given size over the specified duration.
func TweenRectSize(r *Rectangle, toW, toH, duration float64, fn ease.TweenFunc) *TweenGroup {
	return TweenFields(duration, fn, []*float64{&r.Width, &r.Height}, []float64{toW, toH})
}

// TweenRectColor creates a TweenGroup that animates all four components of a
// Rectangle's Color to the target color over the specified duration.
func TweenRectColor(r *Rectangle, to Color, duration float64, fn ease.TweenFunc) *TweenGroup {
	return TweenFields(duration, fn,
		[]*float64{&r.Color.R, &r.Color.G, &r.Color.B, &r.Color.A},
		[]float64{to.R, to.G, to.B, to.A})
}

// TweenImageOpacity creates a TweenGroup that animates an Image's Opacity to
// the target value over the specified duration.
func TweenImageOpacity(im *Image, to, duration float64, fn ease.TweenFunc) *TweenGroup {
	return TweenFields(duration, fn, []*float64{&im.Opacity}, []float64{to})
}
