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
	"io"
	"strconv"

	"seehuhn.de/go/geom/matrix"
)

// This file implements the text object, text state and text showing
// operators, defined in tables 105, 103 and 107 of ISO 32000-2:2020.

// TextBegin starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (s *Stream) TextBegin() {
	s.op("BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (s *Stream) TextEnd() {
	s.op("ET")
}

// TextMatrix sets the text matrix and the text line matrix.
//
// This implements the PDF graphics operator "Tm".
func (s *Stream) TextMatrix(m matrix.Matrix) {
	s.op(coord(m[0]), coord(m[1]), coord(m[2]),
		coord(m[3]), coord(m[4]), coord(m[5]), "Tm")
}

// SetFont selects the font resource with the given name, at the given
// size.
//
// This implements the PDF graphics operator "Tf".
func (s *Stream) SetFont(font Name, size float64) {
	s.op("/"+string(font), coord(size), "Tf")
}

// SetTextRenderMode sets the text rendering mode.
//
// This implements the PDF graphics operator "Tr".
func (s *Stream) SetTextRenderMode(mode int) {
	s.op(strconv.Itoa(mode), "Tr")
}

// TextShow shows a text string.  The string is written as a one-element
// array, so text is typically a *String; its encoding (literal or
// hexadecimal) is determined by the string content as usual.
//
// This implements the PDF graphics operator "TJ".
func (s *Stream) TextShow(text Object) {
	s.ops = append(s.ops, textShow{text})
}

type textShow struct {
	text Object
}

func (t textShow) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "[")
	if err != nil {
		return err
	}
	err = t.text.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "] TJ")
	return err
}
