// Package scene lays out the Milankovitch diagrams on a 650x650 frame.
//
// Each object owns only the geometry needed for the current timestep and
// exposes an Update/Draw pair:
//
//   - [Sun] and [Orbit]: the orbital ellipse around a fixed Sun (top left)
//   - [Earth]: axial tilt (top right)
//   - [Precession]: axis wobble between two ellipse tracks (bottom left)
//   - [Heatmap]: latitude x season insolation (bottom right)
//   - strips and [Overlay]: scrolling plots, labels and quadrant lines
//
// Drawing goes through [Canvas], so the same [Scene] renders to a raylib
// window, a terminal braille canvas or an image.
package scene
