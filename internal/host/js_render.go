//go:build js && wasm

package host

import (
	"fmt"
	"image/color"

	"dirscan/internal/host/draw"
)

// PresentFrame replays the draw list on the canvas 2D context. The
// context transform carries the device pixel ratio so all coordinates
// stay logical.
func (a *jsAdapter) PresentFrame(list *draw.List) error {
	if a.detached.Load() || !a.canvas.Get("isConnected").Bool() {
		a.detached.Store(true)
		return ErrSurfaceLost
	}

	ctx := a.ctx2d
	ctx.Call("setTransform", a.scale, 0, 0, a.scale, 0, 0)

	ctx.Set("fillStyle", cssColor(list.Background))
	ctx.Call("fillRect", 0, 0, a.width, a.height)

	for _, cmd := range list.Commands {
		switch c := cmd.(type) {
		case draw.FillRect:
			a.jsFillRect(c)
		case draw.Text:
			a.jsDrawText(c)
		}
	}
	return nil
}

func (a *jsAdapter) jsFillRect(c draw.FillRect) {
	ctx := a.ctx2d
	ctx.Set("fillStyle", cssColor(c.Color))
	if c.Radius > 0 {
		ctx.Call("beginPath")
		ctx.Call("roundRect", c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, c.Radius)
		ctx.Call("fill")
		return
	}
	ctx.Call("fillRect", c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
}

func (a *jsAdapter) jsDrawText(c draw.Text) {
	ctx := a.ctx2d
	ctx.Set("fillStyle", cssColor(c.Color))
	ctx.Set("font", fmt.Sprintf("%dpx system-ui, sans-serif", int(c.Size)))
	ctx.Set("textBaseline", "top")

	x := c.X
	switch c.Align {
	case draw.AlignCenter:
		ctx.Set("textAlign", "center")
		x = c.X + c.MaxWidth/2
	case draw.AlignRight:
		ctx.Set("textAlign", "right")
		x = c.X + c.MaxWidth
	default:
		ctx.Set("textAlign", "left")
	}

	if c.MaxWidth > 0 {
		ctx.Call("fillText", c.Text, x, c.Y, c.MaxWidth)
		return
	}
	ctx.Call("fillText", c.Text, x, c.Y)
}

// cssColor renders an NRGBA as a CSS rgba() value.
func cssColor(c color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}
