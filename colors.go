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
	"image/color"
	"maps"

	"github.com/cockroachdb/errors"
	"golang.org/x/image/colornames"
)

// ColorTable maps color names to RGBA values.  A ColorTable cannot be
// modified after construction and is safe for concurrent use.
type ColorTable struct {
	colors map[string]color.RGBA
}

// DefaultColors contains the SVG 1.1 color keywords ("white", "gray",
// "red", "green", "blue", ...).
var DefaultColors = NewColorTable(colornames.Map)

// NewColorTable returns a table containing a copy of colors.
func NewColorTable(colors map[string]color.RGBA) *ColorTable {
	return &ColorTable{colors: maps.Clone(colors)}
}

// Lookup returns the color with the given name.  Names are case-sensitive.
func (t *ColorTable) Lookup(name string) (color.RGBA, error) {
	col, ok := t.colors[name]
	if !ok {
		return color.RGBA{}, errors.Wrapf(ErrUnknownColor, "%q", name)
	}
	return col, nil
}

// lookupAll resolves a list of color names in order, stopping at the
// first unknown name.
func (t *ColorTable) lookupAll(names ...string) ([]color.RGBA, error) {
	res := make([]color.RGBA, len(names))
	for i, name := range names {
		col, err := t.Lookup(name)
		if err != nil {
			return nil, err
		}
		res[i] = col
	}
	return res, nil
}
