package render

import (
	"context"
	"errors"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/milankovitch/internal/insolation"
	"github.com/san-kum/milankovitch/internal/scene"
	"github.com/san-kum/milankovitch/internal/series"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	raw, err := series.Synthesize(401, series.DefaultSourceStep)
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}
	ds, err := series.NewDataset(raw, 1000, raw.Span())
	if err != nil {
		t.Fatalf("dataset failed: %v", err)
	}
	return scene.New(ds)
}

func TestRasterPrimitives(t *testing.T) {
	r := NewRaster(50, 50)
	r.Clear(scene.Black)

	r.Circle(25, 25, 5, scene.Blue)
	if got := r.Img.RGBAAt(25, 25); got != scene.Blue {
		t.Errorf("expected blue at circle centre, got %v", got)
	}
	if got := r.Img.RGBAAt(35, 25); got != scene.Black {
		t.Errorf("expected background outside circle, got %v", got)
	}

	r.Line(0, 10, 49, 10, 5, scene.Red)
	if got := r.Img.RGBAAt(20, 11); got != scene.Red {
		t.Errorf("expected red inside thick line, got %v", got)
	}
	if got := r.Img.RGBAAt(20, 16); got == scene.Red {
		t.Error("thick line too wide")
	}

	r.Line(0, 40, 49, 40, 1, scene.White)
	if got := r.Img.RGBAAt(30, 40); got != scene.White {
		t.Errorf("expected thin line pixel, got %v", got)
	}
	for _, y := range []int{39, 41} {
		if got := r.Img.RGBAAt(30, y); got != scene.Black {
			t.Errorf("thin line should cover one row, got %v at y=%d", got, y)
		}
	}

	r.Rect(45, 45, 10, 10, scene.Yellow)
	if got := r.Img.RGBAAt(49, 49); got != scene.Yellow {
		t.Errorf("expected clipped rect to fill the corner, got %v", got)
	}

	// Out of bounds writes are ignored.
	r.Pixel(-1, 3, scene.White)
	r.Pixel(500, 3, scene.White)
}

func TestRasterPaths(t *testing.T) {
	r := NewRaster(40, 40)
	r.Clear(scene.Black)

	// A diagonal stroke is filled along its whole length and anti-aliased
	// at its edges.
	r.Line(5, 5, 35, 35, 6, scene.Red)
	if got := r.Img.RGBAAt(20, 20); got != scene.Red {
		t.Errorf("expected red on the diagonal, got %v", got)
	}
	partial := false
	for x := 0; x < 40; x++ {
		if c := r.Img.RGBAAt(x, 10); c.R > 0 && c.R < 255 {
			partial = true
		}
	}
	if !partial {
		t.Error("expected blended pixels at the stroke edge")
	}

	// Round caps close the gap between segments meeting at an angle.
	r.Clear(scene.Black)
	r.Line(5, 30, 20, 30, 6, scene.White)
	r.Line(20, 30, 20, 5, 6, scene.White)
	if got := r.Img.RGBAAt(21, 31); got != scene.White {
		t.Errorf("expected joined corner, got %v", got)
	}

	// Shapes wholly or partly off the image are clipped.
	r.Circle(-50, -50, 10, scene.Blue)
	r.Line(-10, 20, 60, 20, 3, scene.Blue)
	r.Rect(30, -5, 100, 10, scene.Yellow)
	if got := r.Img.RGBAAt(0, 20); got != scene.Blue {
		t.Errorf("expected clipped line at the left edge, got %v", got)
	}
	if got := r.Img.RGBAAt(39, 2); got != scene.Yellow {
		t.Errorf("expected clipped rect in the corner, got %v", got)
	}
}

func TestRasterText(t *testing.T) {
	r := NewRaster(100, 30)
	r.Clear(scene.Black)
	r.Text("90N", 5, 5, scene.White)

	lit := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 100; x++ {
			if r.Img.RGBAAt(x, y) != scene.Black {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected text to mark pixels")
	}
}

func TestSnapshotDrawsHeatmap(t *testing.T) {
	s := testScene(t)
	r, err := Snapshot(s, 5)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	// Cell centres of the heatmap carry palette colours.
	px := r.Img.RGBAAt(int(s.Heatmap.Origin.X)+5, int(s.Heatmap.Origin.Y)+5)
	found := false
	for _, c := range insolation.Palette {
		if c == px {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a palette colour in the heatmap, got %v", px)
	}
}

func TestRecorderSave(t *testing.T) {
	s := testScene(t)
	rec := NewRecorder(scene.FPS)
	if err := RenderFrames(context.Background(), s, rec, Options{From: 398, Count: 4, Every: 1}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if rec.Len() != 4 {
		t.Fatalf("expected 4 frames, got %d", rec.Len())
	}

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := rec.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(anim.Image) != 4 {
		t.Errorf("expected 4 frames in gif, got %d", len(anim.Image))
	}
	if anim.Image[0].Bounds().Dx() != scene.Width {
		t.Errorf("expected width %d, got %d", scene.Width, anim.Image[0].Bounds().Dx())
	}

	rec.Reset()
	if err := rec.Save(path); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestRenderFramesValidation(t *testing.T) {
	s := testScene(t)
	rec := NewRecorder(0)
	if err := RenderFrames(context.Background(), s, rec, Options{Count: 0}); err == nil {
		t.Error("expected error for zero count")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := RenderFrames(ctx, s, rec, Options{Count: 3}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPaletteContainsSceneColours(t *testing.T) {
	p := Palette()
	for _, c := range []color.RGBA{scene.Black, scene.White, scene.Red, insolation.Palette[19]} {
		if p.Convert(c) != color.Color(c) {
			t.Errorf("palette should hold %v exactly", c)
		}
	}
}
