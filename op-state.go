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

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// This file implements the general and special graphics state operators,
// defined in table 56 of ISO 32000-2:2020.

// PushGraphicsState saves the current graphics state on the state stack.
//
// This implements the PDF graphics operator "q".
func (s *Stream) PushGraphicsState() {
	s.op("q")
}

// PopGraphicsState restores the most recently saved graphics state.
//
// This implements the PDF graphics operator "Q".
func (s *Stream) PopGraphicsState() {
	s.op("Q")
}

// Transform modifies the current transformation matrix.  The elements of
// m are given in the order expected by the operator.
//
// This implements the PDF graphics operator "cm".
func (s *Stream) Transform(m matrix.Matrix) {
	s.op(coord(m[0]), coord(m[1]), coord(m[2]),
		coord(m[3]), coord(m[4]), coord(m[5]), "cm")
}

// SetExtGState sets the parameters listed in the named graphics state
// parameter dictionary.
//
// This implements the PDF graphics operator "gs".
func (s *Stream) SetExtGState(name Name) {
	s.op("/"+string(name), "gs")
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (s *Stream) SetLineWidth(width float64) {
	s.op(coord(width), "w")
}

// SetLineCap sets the line cap style.
//
// This implements the PDF graphics operator "J".
func (s *Stream) SetLineCap(cap int) {
	s.op(strconv.Itoa(cap), "J")
}

// SetLineJoin sets the line join style.
//
// This implements the PDF graphics operator "j".
func (s *Stream) SetLineJoin(join int) {
	s.op(strconv.Itoa(join), "j")
}

// SetMiterLimit sets the miter limit.
//
// This implements the PDF graphics operator "M".
func (s *Stream) SetMiterLimit(limit float64) {
	s.op(coord(limit), "M")
}

// SetDashPattern sets the dash pattern and dash phase.
//
// This implements the PDF graphics operator "d".
func (s *Stream) SetDashPattern(pattern []float64, phase float64) {
	var b strings.Builder
	b.WriteString("[")
	for _, x := range pattern {
		b.WriteString(" ")
		b.WriteString(coord(x))
	}
	b.WriteString(" ]")
	s.op(b.String(), coord(phase), "d")
}
