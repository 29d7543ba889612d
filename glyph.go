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

// Package glyph renders font glyph outlines into anti-aliased coverage
// bitmaps.
//
// A [Glyph] is loaded once from a parsed font and can then be rasterised
// any number of times, at arbitrary subpixel positions and sizes.  Glyphs
// are self-contained: no reference to the font is kept after loading, so
// callers can cache them independently of the font data.
//
// Coverage is computed analytically, by accumulating exact signed pixel
// areas for each outline edge, rather than by supersampling.
//
// Mapping text to glyph ids is out of scope.  Use a shaping library for
// that step and pass the resulting glyph indices to [Load].
package glyph

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Glyph is a loaded glyph outline, ready for rasterisation.
//
// A Glyph is immutable after construction.  Concurrent calls to
// [Glyph.Rasterise] on the same Glyph are safe and produce independent
// bitmaps.
type Glyph struct {
	// unitsPerEm is the number of font design units per em.
	unitsPerEm int

	// bbox is the outline bounding box in design units, y up.
	// An empty rectangle means the glyph is invisible.
	bbox rect.Rect

	// segments is the outline, in source order.
	segments []segment
}

// Load loads the glyph with the given glyph id from a parsed font.
//
// Load returns nil if the glyph id does not exist in the font, or if the
// glyph has no usable outline (for example a bitmap or colored glyph, or
// a malformed glyf entry).  A nil result is an expected outcome, not an
// error; callers typically skip such glyphs.
//
// The function performs no I/O and does not retain a reference to the
// font.
func Load(f *sfnt.Font, gid sfnt.GlyphIndex) *Glyph {
	upem := int(f.UnitsPerEm())
	if upem <= 0 {
		upem = defaultUnitsPerEm
	}

	// At ppem == unitsPerEm the raw 26.6 coordinates returned by the
	// sfnt package are numerically equal to design units.
	ppem := fixed.Int26_6(upem)

	var buf sfnt.Buffer
	segs, err := f.LoadGlyph(&buf, gid, ppem, nil)
	if err != nil {
		return nil
	}

	g := &Glyph{unitsPerEm: upem}
	if len(segs) == 0 {
		// Glyphs like the space have no outline.  The empty bounding
		// box makes Rasterise return a zero-area bitmap.
		return g
	}

	bounds, _, err := f.GlyphBounds(&buf, gid, ppem, font.HintingNone)
	if err != nil {
		return nil
	}
	// The sfnt package uses y-down coordinates; flip to the y-up design
	// space used here.
	g.bbox = rect.Rect{
		LLx: float64(bounds.Min.X),
		LLy: -float64(bounds.Max.Y),
		URx: float64(bounds.Max.X),
		URy: -float64(bounds.Min.Y),
	}

	var b builder
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			// The sfnt package does not emit explicit close
			// operations; contours are closed implicitly at the
			// next MoveTo and at the end of the segment list.
			b.Close()
			b.MoveTo(designPoint(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.LineTo(designPoint(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.QuadTo(designPoint(seg.Args[0]), designPoint(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.CubeTo(designPoint(seg.Args[0]), designPoint(seg.Args[1]), designPoint(seg.Args[2]))
		}
	}
	b.Close()
	g.segments = b.segments

	return g
}

// designPoint converts a 26.6 coordinate pair loaded at ppem ==
// unitsPerEm into a design-space point, flipping y up.
func designPoint(p fixed.Point26_6) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: -float64(p.Y)}
}

// New creates a glyph from an explicit outline description.
//
// The path is interpreted in design units with y pointing up, relative to
// the glyph origin.  The bounding box must enclose the outline; an empty
// rectangle produces an invisible glyph.  A non-positive unitsPerEm is
// replaced by the default of 1000.
//
// New is the entry point for outlines that do not come from an sfnt
// font, for example synthetic test shapes.
func New(unitsPerEm int, bbox rect.Rect, p *path.Data) *Glyph {
	if unitsPerEm <= 0 {
		unitsPerEm = defaultUnitsPerEm
	}

	var b builder
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			b.MoveTo(p.Coords[coordIdx])
			coordIdx++
		case path.CmdLineTo:
			b.LineTo(p.Coords[coordIdx])
			coordIdx++
		case path.CmdQuadTo:
			b.QuadTo(p.Coords[coordIdx], p.Coords[coordIdx+1])
			coordIdx += 2
		case path.CmdCubeTo:
			b.CubeTo(p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2])
			coordIdx += 3
		case path.CmdClose:
			b.Close()
		}
	}

	return &Glyph{
		unitsPerEm: unitsPerEm,
		bbox:       bbox,
		segments:   b.segments,
	}
}

// Rasterise renders the glyph into a coverage bitmap.
//
// The values x and y give the subpixel position of the glyph origin in
// the caller's raster, in pixels with y pointing down.  They need not be
// whole numbers: rendering a glyph with its origin at (3.5, 4.6) uses
// exactly these values.  The size is the number of pixels per em, so
// text at 12px uses size 12.
//
// The returned bitmap carries its own placement: its top-left pixel goes
// at (Left, Top) in the caller's raster.  A zero or negative size, or an
// empty outline, yields a zero-area bitmap; Rasterise never fails.
func (g *Glyph) Rasterise(x, y, size float64) Bitmap {
	// An empty or inverted bounding box marks an invisible glyph.
	if len(g.segments) == 0 || g.bbox.LLx > g.bbox.URx || g.bbox.LLy > g.bbox.URy {
		return Bitmap{Left: int(math.Floor(x)), Top: int(math.Floor(y))}
	}

	// Scale from design units to pixels.
	s := size / float64(g.unitsPerEm)

	// Pixel-aligned bounding box of the glyph in the caller's raster.
	// The y coordinates flip because design space is y-up.  The
	// horizontal slack keeps curves that lie exactly on a pixel
	// boundary from losing coverage to floating point rounding; the
	// row-based accumulation is insensitive to vertical placement, so
	// the vertical bounds need no slack.
	left := int(math.Floor(x + s*g.bbox.LLx - boundarySlack))
	right := int(math.Ceil(x + s*g.bbox.URx + boundarySlack))
	top := int(math.Floor(y - s*g.bbox.URy))
	bottom := int(math.Ceil(y - s*g.bbox.LLy))

	width := right - left
	height := bottom - top
	if width <= 0 || height <= 0 {
		return Bitmap{Left: left, Top: top}
	}

	// Design space to bitmap-local pixel space.
	m := matrix.Matrix{s, 0, 0, -s, x - float64(left), y - float64(top)}

	c := newCanvas(width, height)
	for _, seg := range g.segments {
		switch seg.op {
		case opLine:
			c.line(transform(m, seg.p0), transform(m, seg.p1))
		case opQuad:
			c.quad(transform(m, seg.p0), transform(m, seg.p1), transform(m, seg.p2))
		case opCube:
			c.cube(transform(m, seg.p0), transform(m, seg.p1), transform(m, seg.p2), transform(m, seg.p3))
		}
	}

	return Bitmap{
		Left:     left,
		Top:      top,
		Width:    width,
		Height:   height,
		Coverage: c.accumulate(),
	}
}

// transform applies a matrix to a single point.
func transform(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Bitmap is the result of rasterising a glyph.
type Bitmap struct {
	// Left is the horizontal pixel position (from the left) at which
	// the bitmap goes in the caller's raster.
	Left int

	// Top is the vertical pixel position (from the top) at which the
	// bitmap goes in the caller's raster.
	Top int

	// Width is the bitmap width in pixels.
	Width int

	// Height is the bitmap height in pixels.
	Height int

	// Coverage holds one byte per pixel in row-major order, with length
	// Width*Height.  0 means the pixel is not covered by the glyph at
	// all, 255 means it is fully covered.  When rendering colored text,
	// coverage values can be used directly as alpha values.
	Coverage []uint8
}

// String returns a placement summary of the bitmap.  The coverage bytes
// are omitted.
func (b Bitmap) String() string {
	return fmt.Sprintf("Bitmap(%d, %d, %dx%d)", b.Left, b.Top, b.Width, b.Height)
}
