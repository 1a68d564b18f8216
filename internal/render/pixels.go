package render

import (
	"image"
	"image/color"
)

const (
	// shade is the brighten/darken factor used for bevel edges.
	shade = 0.7
	// floor is the smallest channel value Brighter works from, 1/(1-shade).
	floor = 3
)

// Fill is a solid rectangle of one colour.
type Fill struct {
	Rect  image.Rectangle
	Color color.RGBA
}

// Brighter scales each channel up by 1/shade. Pure black becomes a dark grey
// and tiny nonzero channels are lifted so they can grow.
func Brighter(c color.RGBA) color.RGBA {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return color.RGBA{R: floor, G: floor, B: floor, A: c.A}
	}
	up := func(v uint8) uint8 {
		if v > 0 && v < floor {
			v = floor
		}
		f := float64(v) / shade
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}

// Darker scales each channel down by shade.
func Darker(c color.RGBA) color.RGBA {
	down := func(v uint8) uint8 { return uint8(float64(v) * shade) }
	return color.RGBA{R: down(c.R), G: down(c.G), B: down(c.B), A: c.A}
}

// Bevel splits r into a raised 3-D tile: the face in c, a one-pixel light
// edge along the top and left, and a dark edge along the bottom and right.
func Bevel(r image.Rectangle, c color.RGBA) []Fill {
	w, h := r.Dx(), r.Dy()
	if w < 2 || h < 2 {
		return []Fill{{Rect: r, Color: c}}
	}
	x, y := r.Min.X, r.Min.Y
	light, dark := Brighter(c), Darker(c)
	return []Fill{
		{Rect: image.Rect(x+1, y+1, x+w-1, y+h-1), Color: c},
		{Rect: image.Rect(x, y, x+1, y+h), Color: light},
		{Rect: image.Rect(x+1, y, x+w-1, y+1), Color: light},
		{Rect: image.Rect(x+1, y+h-1, x+w, y+h), Color: dark},
		{Rect: image.Rect(x+w-1, y, x+w, y+h-1), Color: dark},
	}
}
