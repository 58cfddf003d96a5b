// seehuhn.de/go/pdfgen - a low-level generator for PDF files
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

package pdfgen

// This file implements the path construction, path painting and clipping
// path operators.  These operators are defined in tables 58, 59 and 60 of
// ISO 32000-2:2020.

// MoveTo begins a new subpath by moving the current point to (x, y).
//
// This implements the PDF graphics operator "m".
func (s *Stream) MoveTo(x, y float64) {
	s.op(coord(x), coord(y), "m")
}

// LineTo appends a straight line segment from the current point to (x, y).
//
// This implements the PDF graphics operator "l".
func (s *Stream) LineTo(x, y float64) {
	s.op(coord(x), coord(y), "l")
}

// CurveTo appends a cubic Bézier curve extending from the current point
// to (x3, y3), using (x1, y1) and (x2, y2) as the control points.
//
// This implements the PDF graphics operator "c".
func (s *Stream) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	s.op(coord(x1), coord(y1), coord(x2), coord(y2), coord(x3), coord(y3), "c")
}

// CurveStartTo appends a cubic Bézier curve extending from the current
// point to (x3, y3), using the current point and (x2, y2) as the control
// points.
//
// This implements the PDF graphics operator "v".
func (s *Stream) CurveStartTo(x2, y2, x3, y3 float64) {
	s.op(coord(x2), coord(y2), coord(x3), coord(y3), "v")
}

// CurveEndTo appends a cubic Bézier curve extending from the current
// point to (x3, y3), using (x1, y1) and (x3, y3) as the control points.
//
// This implements the PDF graphics operator "y".
func (s *Stream) CurveEndTo(x1, y1, x3, y3 float64) {
	s.op(coord(x1), coord(y1), coord(x3), coord(y3), "y")
}

// Rectangle appends a rectangle to the current path as a complete
// subpath, with (x, y) the lower-left corner.
//
// This implements the PDF graphics operator "re".
func (s *Stream) Rectangle(x, y, width, height float64) {
	s.op(coord(x), coord(y), coord(width), coord(height), "re")
}

// ClosePath closes the current subpath with a straight line segment back
// to its starting point.
//
// This implements the PDF graphics operator "h".
func (s *Stream) ClosePath() {
	s.op("h")
}

// EndPath ends the path without filling or stroking it.  This is used
// after ClipNonZero and ClipEvenOdd.
//
// This implements the PDF graphics operator "n".
func (s *Stream) EndPath() {
	s.op("n")
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (s *Stream) Stroke() {
	s.op("S")
}

// CloseAndStroke closes and strokes the current path.
//
// This implements the PDF graphics operator "s".
func (s *Stream) CloseAndStroke() {
	s.op("s")
}

// Fill fills the current path, using the nonzero winding number rule.
//
// This implements the PDF graphics operator "f".
func (s *Stream) Fill() {
	s.op("f")
}

// FillEvenOdd fills the current path, using the even-odd rule.
//
// This implements the PDF graphics operator "f*".
func (s *Stream) FillEvenOdd() {
	s.op("f*")
}

// FillAndStroke fills and strokes the current path, using the nonzero
// winding number rule for filling.
//
// This implements the PDF graphics operator "B".
func (s *Stream) FillAndStroke() {
	s.op("B")
}

// FillAndStrokeEvenOdd fills and strokes the current path, using the
// even-odd rule for filling.
//
// This implements the PDF graphics operator "B*".
func (s *Stream) FillAndStrokeEvenOdd() {
	s.op("B*")
}

// CloseFillAndStroke closes, fills and strokes the current path, using
// the nonzero winding number rule for filling.
//
// This implements the PDF graphics operator "b".
func (s *Stream) CloseFillAndStroke() {
	s.op("b")
}

// CloseFillAndStrokeEvenOdd closes, fills and strokes the current path,
// using the even-odd rule for filling.
//
// This implements the PDF graphics operator "b*".
func (s *Stream) CloseFillAndStrokeEvenOdd() {
	s.op("b*")
}

// ClipNonZero intersects the current clipping path with the current path,
// using the nonzero winding number rule.
//
// This implements the PDF graphics operator "W".
func (s *Stream) ClipNonZero() {
	s.op("W")
}

// ClipEvenOdd intersects the current clipping path with the current path,
// using the even-odd rule.
//
// This implements the PDF graphics operator "W*".
func (s *Stream) ClipEvenOdd() {
	s.op("W*")
}
