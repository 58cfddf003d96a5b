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

// This file implements the colour operators, defined in table 73 of
// ISO 32000-2:2020.  All of them set the nonstroking colour by default
// and the stroking colour when the stroke flag is set.

// SetColorSpace selects the colour space for painting operations.
//
// This implements the PDF graphics operators "cs" and "CS".
func (s *Stream) SetColorSpace(space Name, stroke bool) {
	op := "cs"
	if stroke {
		op = "CS"
	}
	s.op("/"+string(space), op)
}

// SetColorRGB sets the colour in the DeviceRGB colour space.
//
// This implements the PDF graphics operators "rg" and "RG".
func (s *Stream) SetColorRGB(r, g, b float64, stroke bool) {
	op := "rg"
	if stroke {
		op = "RG"
	}
	s.op(coord(r), coord(g), coord(b), op)
}

// SetColorSpecial sets the colour to a named resource of the current
// colour space, for example a pattern or separation name.
//
// This implements the PDF graphics operators "scn" and "SCN".
func (s *Stream) SetColorSpecial(name Name, stroke bool) {
	op := "scn"
	if stroke {
		op = "SCN"
	}
	s.op("/"+string(name), op)
}
