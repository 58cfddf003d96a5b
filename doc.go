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

// Package pdfgen generates PDF files from scratch.
//
// The package implements the PDF object model (dictionaries, arrays,
// strings, streams, and indirect references), a document assembler which
// collects objects and assigns object numbers, and a writer which
// serialises the assembled document together with the cross-reference
// table and trailer needed for random access.
//
// The package only writes PDF syntax; it cannot read existing files, and
// it performs no validation of the document structure.  Callers are
// responsible for constructing dictionaries which PDF viewers will
// accept.
package pdfgen
