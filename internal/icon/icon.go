// Package icon renders sun and moon toggle icons for status bars and trays.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"github.com/darkawower/shade/internal/theme"
)

// DefaultSize is the icon edge length in pixels.
const DefaultSize = 32

// circleSegments controls how finely circles are approximated.
const circleSegments = 64

var glyphColor = color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}

// ForTheme renders the toggle icon matching the active theme: moon while
// light is active, sun while dark is active.
func ForTheme(t theme.Theme, size int) image.Image {
	if t == theme.Light {
		return Moon(size)
	}
	return Sun(size)
}

// Sun renders a sun icon: a central disc with eight rays.
func Sun(size int) image.Image {
	if size <= 0 {
		size = DefaultSize
	}
	r := vector.NewRasterizer(size, size)
	s := float32(size)
	c := s / 2

	circle(r, c, c, 0.22*s, false)

	// rays: thin quads pointing outward
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		ray(r, c, c, 0.30*s, 0.46*s, 0.035*s, angle)
	}

	return rasterize(r, size)
}

// Moon renders a crescent moon: a disc with a same-size disc subtracted
// from its upper-right.
func Moon(size int) image.Image {
	if size <= 0 {
		size = DefaultSize
	}
	r := vector.NewRasterizer(size, size)
	s := float32(size)
	c := s / 2

	circle(r, c, c, 0.38*s, false)
	// reversed winding cuts the bite out of the disc
	circle(r, c+0.26*s, c-0.18*s, 0.34*s, true)

	return rasterize(r, size)
}

// WriteFile renders the icon for the theme and writes it as a PNG,
// creating parent directories as needed.
func WriteFile(path string, t theme.Theme, size int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create icon directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create icon file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, ForTheme(t, size)); err != nil {
		return fmt.Errorf("failed to encode icon: %w", err)
	}

	return nil
}

// circle appends a closed polygonal approximation of a circle. Reversed
// direction flips the winding so overlapping areas cancel out.
func circle(r *vector.Rasterizer, cx, cy, radius float32, reversed bool) {
	r.MoveTo(cx+radius, cy)
	for i := 1; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		if reversed {
			a = -a
		}
		x := cx + radius*float32(math.Cos(a))
		y := cy + radius*float32(math.Sin(a))
		r.LineTo(x, y)
	}
	r.ClosePath()
}

// ray appends a thin quad from the inner to the outer radius at the given
// angle.
func ray(r *vector.Rasterizer, cx, cy, inner, outer, halfWidth float32, angle float64) {
	dx := float32(math.Cos(angle))
	dy := float32(math.Sin(angle))
	// perpendicular
	px := -dy * halfWidth
	py := dx * halfWidth

	r.MoveTo(cx+inner*dx+px, cy+inner*dy+py)
	r.LineTo(cx+outer*dx+px, cy+outer*dy+py)
	r.LineTo(cx+outer*dx-px, cy+outer*dy-py)
	r.LineTo(cx+inner*dx-px, cy+inner*dy-py)
	r.ClosePath()
}

func rasterize(r *vector.Rasterizer, size int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	r.Draw(dst, dst.Bounds(), image.NewUniform(glyphColor), image.Point{})
	return dst
}
