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

package glyph

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"

	"seehuhn.de/go/glyph/testcases"
)

func benchFont(b *testing.B) *sfnt.Font {
	b.Helper()
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		b.Fatalf("parsing test font: %v", err)
	}
	return f
}

func benchGlyph(b *testing.B, r rune) *Glyph {
	b.Helper()
	f := benchFont(b)
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r)
	if err != nil || gid == 0 {
		b.Fatalf("no glyph for %q", r)
	}
	g := Load(f, gid)
	if g == nil {
		b.Fatalf("glyph for %q did not load", r)
	}
	return g
}

// BenchmarkLoadSimple loads a glyph with straight edges only.
func BenchmarkLoadSimple(b *testing.B) {
	f := benchFont(b)
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, 'A')
	if err != nil || gid == 0 {
		b.Fatal("no glyph for A")
	}

	b.ReportAllocs()
	for b.Loop() {
		Load(f, gid)
	}
}

// BenchmarkLoadComplex loads a glyph with two contours and many curves.
func BenchmarkLoadComplex(b *testing.B) {
	f := benchFont(b)
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, 'g')
	if err != nil || gid == 0 {
		b.Fatal("no glyph for g")
	}

	b.ReportAllocs()
	for b.Loop() {
		Load(f, gid)
	}
}

// BenchmarkRasterise measures rasterisation of loaded glyphs at a
// typical text size.
func BenchmarkRasterise(b *testing.B) {
	glyphs := []struct {
		name string
		r    rune
	}{
		{"simple", 'A'},
		{"complex", 'g'},
	}
	for _, bc := range glyphs {
		b.Run(bc.name, func(b *testing.B) {
			g := benchGlyph(b, bc.r)
			b.ReportAllocs()
			for b.Loop() {
				g.Rasterise(0, 0, 14)
			}
		})
	}
}

// BenchmarkRasteriseCubic measures the cubic subdivision path using
// the disc fixture, which consists of cubic curves only.
func BenchmarkRasteriseCubic(b *testing.B) {
	var tc testcases.TestCase
	for _, c := range testcases.All["curves"] {
		if c.Name == "disc_cubic" {
			tc = c
		}
	}
	g := New(tc.UnitsPerEm, tc.BBox, tc.Outline)

	b.ReportAllocs()
	for b.Loop() {
		g.Rasterise(0, 0, 14)
	}
}

// BenchmarkRingO rasterises the ring fixture at various sizes.
func BenchmarkRingO(b *testing.B) {
	var tc testcases.TestCase
	for _, c := range testcases.All["subpath"] {
		if c.Name == "ring" {
			tc = c
		}
	}
	g := New(tc.UnitsPerEm, tc.BBox, tc.Outline)

	for _, size := range []float64{20, 200, 2000} {
		b.Run(fmt.Sprintf("%gpx", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				g.Rasterise(0, 0, size)
			}
		})
	}
}

// BenchmarkVectorO rasterises the same ring shape with
// x/image/vector, for comparison with BenchmarkRingO.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dpx", size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			// The ring fixture: outer radius 0.4 em, inner 0.2 em,
			// centred in the box.
			center := float32(size) / 2
			outerR := float32(size) * 0.4
			innerR := float32(size) * 0.2

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic
// Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
