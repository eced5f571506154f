package insolation

import "image/color"

// Palette runs from the weakest (blue) to the strongest (red) insolation.
var Palette = []color.RGBA{
	{28, 3, 252, 255}, {3, 61, 252, 255}, {3, 115, 252, 255}, {3, 202, 252, 255},
	{3, 244, 252, 255}, {3, 242, 219, 255}, {3, 252, 177, 255}, {2, 252, 132, 255},
	{3, 252, 73, 255}, {23, 252, 3, 255}, {98, 252, 3, 255}, {117, 252, 3, 255},
	{240, 252, 3, 255}, {252, 207, 3, 255}, {252, 169, 3, 255}, {252, 132, 3, 255},
	{252, 94, 3, 255}, {252, 53, 3, 255}, {252, 32, 3, 255}, {252, 3, 3, 255},
}

// Color returns the palette entry for level, clamped to the palette.
func Color(level int) color.RGBA {
	return Palette[max(0, min(len(Palette)-1, level))]
}
