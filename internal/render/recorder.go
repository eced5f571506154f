package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"os"

	"github.com/san-kum/milankovitch/internal/insolation"
	"github.com/san-kum/milankovitch/internal/scene"
)

// ErrNoFrames is returned when saving a recording that captured nothing.
var ErrNoFrames = errors.New("render: no frames recorded")

// Palette covers every colour the scene draws with.
func Palette() color.Palette {
	p := color.Palette{scene.Black, scene.White, scene.Yellow, scene.Orange, scene.Red, scene.Blue}
	for _, c := range insolation.Palette {
		p = append(p, c)
	}
	return p
}

// Recorder accumulates paletted frames for an animated GIF.
type Recorder struct {
	Frames  []*image.Paletted
	Delay   int // hundredths of a second per frame
	palette color.Palette
}

func NewRecorder(fps int) *Recorder {
	delay := 2
	if fps > 0 {
		delay = max(1, 100/fps)
	}
	return &Recorder{Delay: delay, palette: Palette()}
}

// Capture quantises img into a new frame.
func (rec *Recorder) Capture(img image.Image) {
	frame := image.NewPaletted(img.Bounds(), rec.palette)
	draw.Draw(frame, frame.Bounds(), img, img.Bounds().Min, draw.Src)
	rec.Frames = append(rec.Frames, frame)
}

func (rec *Recorder) Len() int { return len(rec.Frames) }

// Reset drops every captured frame.
func (rec *Recorder) Reset() { rec.Frames = rec.Frames[:0] }

// Save encodes the captured frames as a looping GIF.
func (rec *Recorder) Save(path string) error {
	if len(rec.Frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range rec.Frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, rec.Delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
