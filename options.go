// seehuhn.de/go/spark - sparkline images over HTTP
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package spark

import (
	"cmp"
	"net/url"
	"strconv"
	"strings"
)

// Default option values.
const (
	defaultWidth          = 2
	defaultUpper          = 50
	defaultStep           = 2
	defaultDiscreteHeight = 14
	defaultSmoothHeight   = 20
)

// Limits is the range of data values covered by the plot area.
type Limits struct {
	Min, Max int
}

// DefaultLimits is used when no valid limits are given.
var DefaultLimits = Limits{Min: 0, Max: 100}

// Normalized returns the limits with Max raised to Min if Max < Min.
func (l Limits) Normalized() Limits {
	if l.Max < l.Min {
		l.Max = l.Min
	}
	return l
}

// Contains reports whether v lies in the closed interval [Min, Max].
func (l Limits) Contains(v int) bool {
	return v >= l.Min && v <= l.Max
}

// Options controls the appearance of a sparkline.  Not every field is
// used by every plot style.
type Options struct {
	Style Style

	// Width is the horizontal space per data value for discrete plots.
	Width int

	// Height is the canvas height.  Zero selects the default for the
	// plot style.
	Height int

	// Upper is the threshold from which values are drawn in AboveColor.
	Upper      int
	BelowColor string
	AboveColor string

	Limits Limits

	// LongLines makes discrete plots draw bars from the base line
	// instead of short ticks.  It is always set for impulse plots.
	LongLines bool

	// Step is the horizontal distance between points of smooth plots.
	Step int

	MinColor   string
	MaxColor   string
	LastColor  string
	MinMarker  bool
	MaxMarker  bool
	LastMarker bool
}

// DefaultOptions returns the options used for empty query strings.
func DefaultOptions() Options {
	return Options{
		Style:      Discrete,
		Width:      defaultWidth,
		Upper:      defaultUpper,
		BelowColor: "gray",
		AboveColor: "red",
		Limits:     DefaultLimits,
		Step:       defaultStep,
		MinColor:   "green",
		MaxColor:   "red",
		LastColor:  "blue",
	}
}

// heightOr returns the configured height, or def if none is set.
func (o *Options) heightOr(def int) int {
	if o.Height > 0 {
		return o.Height
	}
	return def
}

// ParseOptions converts query parameters into Options.  Missing or
// malformed values are replaced by their defaults.  The only error is an
// unknown plot type.
func ParseOptions(q url.Values) (Options, error) {
	opts := DefaultOptions()

	style, err := ParseStyle(cmp.Or(q.Get("type"), Discrete.String()))
	if err != nil {
		return Options{}, err
	}
	opts.Style = style
	opts.LongLines = style == Impulse

	opts.Width = positiveInt(q.Get("width"), opts.Width)
	opts.Height = positiveInt(q.Get("height"), 0)
	opts.Step = positiveInt(q.Get("step"), opts.Step)
	if v, err := strconv.Atoi(q.Get("upper")); err == nil {
		opts.Upper = v
	}
	if l, ok := ParseLimits(q.Get("limits")); ok {
		opts.Limits = l
	}

	opts.BelowColor = cmp.Or(q.Get("below-color"), opts.BelowColor)
	opts.AboveColor = cmp.Or(q.Get("above-color"), opts.AboveColor)
	opts.MinColor = cmp.Or(q.Get("min-color"), opts.MinColor)
	opts.MaxColor = cmp.Or(q.Get("max-color"), opts.MaxColor)
	opts.LastColor = cmp.Or(q.Get("last-color"), opts.LastColor)

	opts.MinMarker = q.Get("min-m") == "true"
	opts.MaxMarker = q.Get("max-m") == "true"
	opts.LastMarker = q.Get("last-m") == "true"

	return opts, nil
}

// ParseLimits parses a "min,max" pair of integers.
func ParseLimits(s string) (Limits, bool) {
	a, b, found := strings.Cut(s, ",")
	if !found {
		return Limits{}, false
	}
	lo, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return Limits{}, false
	}
	hi, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return Limits{}, false
	}
	return Limits{Min: lo, Max: hi}, true
}

func positiveInt(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}
