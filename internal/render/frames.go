package render

import (
	"context"
	"fmt"

	"github.com/san-kum/milankovitch/internal/scene"
)

// Options selects which timesteps RenderFrames draws.
type Options struct {
	From  int // first timestep
	Count int // number of frames
	Every int // timesteps between frames
}

// RenderFrames draws Count frames of s starting at From, Every timesteps
// apart, wrapping at the end of the dataset, and hands each to the recorder.
func RenderFrames(ctx context.Context, s *scene.Scene, rec *Recorder, opt Options) error {
	n := s.Data.Len()
	if n == 0 {
		return fmt.Errorf("render: empty dataset")
	}
	if opt.Count <= 0 {
		return fmt.Errorf("render: frame count must be positive (got %d)", opt.Count)
	}
	every := max(1, opt.Every)

	r := NewRaster(scene.Width, scene.Height)
	idx := ((opt.From % n) + n) % n
	for k := 0; k < opt.Count; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Render(r, idx); err != nil {
			return err
		}
		rec.Capture(r.Img)
		idx = (idx + every) % n
	}
	return nil
}

// Snapshot renders a single timestep into a fresh raster.
func Snapshot(s *scene.Scene, i int) (*Raster, error) {
	r := NewRaster(scene.Width, scene.Height)
	if err := s.Render(r, i); err != nil {
		return nil, err
	}
	return r, nil
}
