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

var curveCases = []TestCase{
	{
		// a quadratic-outline shape, like a TrueType "o" contour
		Name:       "blob_quad",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 100, LLy: 0, URx: 900, URy: 800},
		Outline:    quadBlob(100, 0, 900, 800),
	},
	{
		// a cubic-outline shape, like a CFF "o" contour
		Name:       "disc_cubic",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 100, LLy: 0, URx: 900, URy: 800},
		Outline:    circle(&path.Data{}, 500, 400, 400, false),
	},
	{
		// control point on the start point
		Name:       "quad_degenerate",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 100, LLy: 100, URx: 900, URy: 500},
		Outline: (&path.Data{}).
			MoveTo(pt(100, 100)).
			QuadTo(pt(100, 100), pt(900, 100)).
			LineTo(pt(500, 500)).
			Close(),
	},
	{
		// nearly straight cubic, stays below the flatness threshold
		Name:       "cubic_flat",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 0, LLy: 0, URx: 1000, URy: 400},
		Outline: (&path.Data{}).
			MoveTo(pt(0, 0)).
			CubeTo(pt(333, 1), pt(667, 1), pt(1000, 0)).
			LineTo(pt(500, 400)).
			Close(),
	},
}

// quadBlob builds a rounded shape from four quadratic curves, with the
// control points at the corners of the given box.
func quadBlob(x1, y1, x2, y2 float64) *path.Data {
	xm := (x1 + x2) / 2
	ym := (y1 + y2) / 2
	return (&path.Data{}).
		MoveTo(pt(xm, y2)).
		QuadTo(pt(x2, y2), pt(x2, ym)).
		QuadTo(pt(x2, y1), pt(xm, y1)).
		QuadTo(pt(x1, y1), pt(x1, ym)).
		QuadTo(pt(x1, y2), pt(xm, y2)).
		Close()
}

// circle appends a circle made of four cubic Bézier curves to p.
// With clockwise set, the contour winds the opposite way, which turns
// the circle into a hole when nested inside another contour.
func circle(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	if clockwise {
		return p.
			MoveTo(pt(cx, cy+r)).
			CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r)).
			CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)).
			Close()
	}
	return p.
		MoveTo(pt(cx, cy+r)).
		CubeTo(pt(cx+kr, cy+r), pt(cx+r, cy+kr), pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-kr), pt(cx+kr, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-kr, cy-r), pt(cx-r, cy-kr), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+kr), pt(cx-kr, cy+r), pt(cx, cy+r)).
		Close()
}
