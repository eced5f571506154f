package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontSize = 20

// Canvas draws scene primitives straight to the raylib framebuffer. It must
// be used between BeginDrawing and EndDrawing.
type Canvas struct {
	Font rl.Font
}

func NewCanvas(font rl.Font) *Canvas {
	return &Canvas{Font: font}
}

func col(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

func (c *Canvas) Clear(bg color.RGBA) {
	rl.ClearBackground(col(bg))
}

func (c *Canvas) Pixel(x, y int, fg color.RGBA) {
	rl.DrawPixel(int32(x), int32(y), col(fg))
}

func (c *Canvas) Line(x0, y0, x1, y1, thick float64, fg color.RGBA) {
	if thick <= 1 {
		rl.DrawLineV(vec(x0, y0), vec(x1, y1), col(fg))
		return
	}
	rl.DrawLineEx(vec(x0, y0), vec(x1, y1), float32(thick), col(fg))
}

func (c *Canvas) Circle(cx, cy, r float64, fg color.RGBA) {
	rl.DrawCircleV(vec(cx, cy), float32(r), col(fg))
}

func (c *Canvas) Rect(x, y, w, h float64, fg color.RGBA) {
	rl.DrawRectangleV(vec(x, y), vec(w, h), col(fg))
}

func (c *Canvas) Text(s string, x, y float64, fg color.RGBA) {
	rl.DrawTextEx(c.Font, s, vec(x, y), fontSize, 2, col(fg))
}
