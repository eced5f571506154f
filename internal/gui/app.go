package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/san-kum/milankovitch/internal/logging"
	"github.com/san-kum/milankovitch/internal/render"
	"github.com/san-kum/milankovitch/internal/scene"
	"github.com/san-kum/milankovitch/internal/series"
)

var _ scene.Canvas = (*Canvas)(nil)

type App struct {
	Scene    *scene.Scene
	Timeline *scene.Timeline
	Step     int
	FPS      int
	ShowHUD  bool
	Font     rl.Font

	canvas *Canvas
	logger log.Logger
}

// initWindow opens the fixed-size scene window titled with the timestep and
// disables the default exit key so Q and Esc go through Update.
func initWindow(step, fps int) {
	rl.InitWindow(scene.Width, scene.Height, fmt.Sprintf("Milankovitch Cycles (timestep: %d years)", step))
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

func NewApp(ds *series.Dataset, step, fps int, logger log.Logger) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	font := rl.GetFontDefault()
	return &App{
		Scene:    scene.New(ds),
		Timeline: scene.NewTimeline(ds.Len()),
		Step:     step,
		FPS:      fps,
		Font:     font,
		canvas:   NewCanvas(font),
		logger:   logger,
	}
}

// Run opens the window and plays ds until it is closed.
func Run(ds *series.Dataset, step, fps int, logger log.Logger) error {
	if fps <= 0 {
		fps = scene.FPS
	}
	initWindow(step, fps)
	defer rl.CloseWindow()
	app := NewApp(ds, step, fps, logger)
	return app.RunLoop()
}

func (a *App) RunLoop() error {
	level.Info(a.logger).Log("msg", "window opened", "timestep", a.Step, "frames", a.Timeline.Len())
	for !rl.WindowShouldClose() {
		if quit := a.Update(); quit {
			return nil
		}
		if err := a.Draw(); err != nil {
			return err
		}
		a.Timeline.Tick()
	}
	return nil
}

// Update polls the keyboard. It reports whether the user asked to quit.
func (a *App) Update() bool {
	switch {
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		return true
	case rl.IsKeyPressed(rl.KeySpace):
		a.Timeline.TogglePause()
	case rl.IsKeyPressed(rl.KeyLeft):
		a.Timeline.StepBack()
	case rl.IsKeyPressed(rl.KeyRight):
		a.Timeline.StepForward()
	case rl.IsKeyPressed(rl.KeyHome):
		a.Timeline.Seek(0)
	case rl.IsKeyPressed(rl.KeyH):
		a.ShowHUD = !a.ShowHUD
	case rl.IsKeyPressed(rl.KeyS):
		a.screenshot()
	}
	return false
}

// Draw renders the scene at the current index.
func (a *App) Draw() error {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	if err := a.Scene.Render(a.canvas, a.Timeline.Index()); err != nil {
		return err
	}
	if a.ShowHUD {
		a.DrawHUD()
	}
	return nil
}

func (a *App) DrawHUD() {
	status := "RUNNING"
	if a.Timeline.Paused() {
		status = "PAUSED"
	}
	a.canvas.Text(fmt.Sprintf("%s  %d FPS", status, rl.GetFPS()), 10, scene.Height-20, scene.Yellow)
}

// screenshot saves the current timestep as a PNG next to the binary.
func (a *App) screenshot() {
	i := a.Timeline.Index()
	r, err := render.Snapshot(a.Scene, i)
	if err != nil {
		level.Error(a.logger).Log("msg", "snapshot failed", "err", err)
		return
	}
	path := fmt.Sprintf("milankovitch_%d_%s.png", i, time.Now().Format("150405"))
	if err := render.SavePNG(path, r.Img); err != nil {
		level.Error(a.logger).Log("msg", "save snapshot", "path", path, "err", err)
		return
	}
	level.Info(a.logger).Log("msg", "snapshot saved", "path", path)
}
