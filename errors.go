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

import "github.com/cockroachdb/errors"

// Errors returned by the renderers.  Use errors.Is to test for them; the
// returned errors carry additional context.
var (
	// ErrInvalidSize is returned when a canvas would be smaller than 1x1.
	ErrInvalidSize = errors.New("invalid canvas size")

	// ErrUnknownColor is returned for color names missing from the
	// color table.
	ErrUnknownColor = errors.New("unknown color")

	// ErrUnknownStyle is returned for unknown plot types.
	ErrUnknownStyle = errors.New("unknown plot type")

	// ErrEmptySeries is returned when there is no data to plot.
	ErrEmptySeries = errors.New("empty series")

	// ErrEncode is returned when PNG encoding fails.
	ErrEncode = errors.New("PNG encoding failed")
)
