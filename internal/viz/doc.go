// Package viz plays the Milankovitch scene in the terminal.
//
// The scene is rasterised into a Braille [Canvas] (2x4 dots per cell) through
// the [Braille] adapter and shown next to a stats panel built with Bubble Tea
// and Lip Gloss.
//
// # Key Bindings
//
//	Space      - Pause/Resume
//	Left/Right - Step one timestep while paused
//	T          - Cycle color themes
//	G          - Toggle GIF recording
//	?          - Show help overlay
//	Q          - Quit
//
// # Recording
//
// While recording, every frame is also drawn at full resolution and saved as
// an animated GIF when recording stops.
package viz
