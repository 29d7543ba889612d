// seehuhn.de/go/glyph - a glyph outline rasteriser
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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Degenerate outlines must never make rasterisation fail; they produce
// empty or reduced coverage instead.
var degenerateCases = []TestCase{
	{
		Name:       "empty",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{},
		Outline:    &path.Data{},
	},
	{
		// one segment has zero length
		Name:       "zero_length",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 100, LLy: 100, URx: 900, URy: 500},
		Outline: (&path.Data{}).
			MoveTo(pt(100, 100)).
			LineTo(pt(100, 100)).
			LineTo(pt(900, 100)).
			LineTo(pt(500, 500)).
			Close(),
	},
	{
		// the subpath is never closed
		Name:       "unclosed",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 0, LLy: 0, URx: 800, URy: 600},
		Outline: (&path.Data{}).
			MoveTo(pt(0, 0)).
			LineTo(pt(800, 0)).
			LineTo(pt(400, 600)),
	},
	{
		// all edges are horizontal and sweep no area
		Name:       "flat_line",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 0, LLy: 100, URx: 800, URy: 100},
		Outline: (&path.Data{}).
			MoveTo(pt(0, 100)).
			LineTo(pt(800, 100)).
			Close(),
	},
	{
		// a close directive with no preceding move
		Name:       "close_only",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{},
		Outline:    (&path.Data{}).Close(),
	},
}
