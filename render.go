// Package spark renders small raster "sparkline" charts as PNG images.
//
// A sparkline is drawn from a series of integers and a set of [Options]
// by one of four renderers, selected by the plot [Style]:
//
//   - discrete: a short tick mark per value,
//   - impulse: a bar per value, starting at the base line,
//   - smooth: a polyline with optional min/max/last markers,
//   - error: a fixed red cross, used as a placeholder image.
//
// Rendering is deterministic and has no shared mutable state, so
// independent calls may run concurrently.
package spark

//go:generate go run ./testcases/export

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Style selects the renderer for a sparkline.
type Style uint8

// These are the supported plot styles.
const (
	Discrete Style = iota
	Impulse
	Smooth
	ErrorImage
)

var styleNames = [...]string{
	Discrete:   "discrete",
	Impulse:    "impulse",
	Smooth:     "smooth",
	ErrorImage: "error",
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "Style(" + strconv.Itoa(int(s)) + ")"
}

// ParseStyle returns the plot style with the given name.
func ParseStyle(name string) (Style, error) {
	for s, n := range styleNames {
		if n == name {
			return Style(s), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStyle, "%q", name)
}

// A Renderer draws a series onto a new canvas.
type Renderer func(series []int, opts Options, colors *ColorTable) (*Canvas, error)

var renderers = [...]Renderer{
	Discrete:   discrete,
	Impulse:    impulse,
	Smooth:     smooth,
	ErrorImage: errorImage,
}

// Lookup returns the renderer for the given plot style.
func Lookup(s Style) (Renderer, error) {
	if int(s) >= len(renderers) {
		return nil, errors.Wrapf(ErrUnknownStyle, "%s", s)
	}
	return renderers[s], nil
}

// Size returns the canvas size used for a series of n values.  The size
// does not depend on the data values.  The result may be smaller than
// 1x1, in which case rendering fails with ErrInvalidSize.  Widths which
// do not fit into an int are reported as math.MaxInt.
func Size(n int, opts Options) (width, height int) {
	switch opts.Style {
	case Discrete, Impulse:
		height = opts.heightOr(defaultDiscreteHeight)
		switch {
		case opts.Width < 1:
			return 0, height
		case n > 0 && opts.Width > math.MaxInt/n:
			return math.MaxInt, height
		}
		return n*opts.Width - 1, height
	case Smooth:
		height = opts.heightOr(defaultSmoothHeight)
		switch {
		case n > 1 && opts.Step < 0:
			return 0, height
		case n > 1 && opts.Step > (math.MaxInt-4)/(n-1):
			return math.MaxInt, height
		}
		return (n-1)*opts.Step + 4, height
	default:
		return errorWidth, errorHeight
	}
}

// Draw renders the series with the renderer selected by opts.Style.
func Draw(series []int, opts Options, colors *ColorTable) (*Canvas, error) {
	r, err := Lookup(opts.Style)
	if err != nil {
		return nil, err
	}
	return r(series, opts, colors)
}

// Render draws the series and returns the PNG encoding of the image.
func Render(series []int, opts Options, colors *ColorTable) ([]byte, error) {
	c, err := Draw(series, opts, colors)
	if err != nil {
		return nil, err
	}
	return c.PNG()
}
