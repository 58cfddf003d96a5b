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
	"bytes"
	"fmt"
	"io"
	"strconv"
)

const headerLine = "%PDF-1.7"

// headerMarker is a comment containing bytes outside the ASCII range, so
// that naive transfer tools treat the file as binary.
var headerMarker = []byte{'%', 0xf0, 0x9f, 0x96, 0xa4}

// writer tracks the byte position in the output while a document is
// being serialised.  Every offset recorded in the cross-reference table
// comes from this counter.
type writer struct {
	w   io.Writer
	pos int64
}

// writeLine writes content followed by a newline and advances the
// position counter by the number of bytes written.
func (w *writer) writeLine(content []byte) error {
	w.pos += int64(len(content)) + 1
	_, err := w.w.Write(content)
	if err != nil {
		return err
	}
	_, err = w.w.Write([]byte{'\n'})
	return err
}

// writeData writes the encoded form of obj as one line.
func (w *writer) writeData(obj Object) error {
	buf := &bytes.Buffer{}
	err := obj.PDF(buf)
	if err != nil {
		return err
	}
	return w.writeLine(buf.Bytes())
}

// Write serialises the document to out.  The file is written in four
// phases: header, body, cross-reference table and trailer.  The sink is
// owned by the caller and is not closed.
//
// Write does not modify the object graph apart from recording byte
// offsets, so writing the same document twice produces identical output.
func (d *Document) Write(out io.Writer) error {
	w := &writer{w: out}

	err := d.writeHeader(w)
	if err != nil {
		return err
	}
	err = d.writeBody(w)
	if err != nil {
		return err
	}
	xrefPos, err := d.writeCrossReferenceTable(w)
	if err != nil {
		return err
	}
	return d.writeTrailer(w, xrefPos)
}

func (d *Document) writeHeader(w *writer) error {
	err := w.writeLine([]byte(headerLine))
	if err != nil {
		return err
	}
	return w.writeLine(headerMarker)
}

// writeBody writes the indirect form of every non-free object, recording
// the byte offset where each definition starts.
func (d *Document) writeBody(w *writer) error {
	for _, obj := range d.Objects {
		x := obj.ind()
		if x.Free {
			continue
		}
		x.Offset = w.pos

		err := w.writeLine(fmt.Appendf(nil, "%d %d obj", x.Number, x.Generation))
		if err != nil {
			return err
		}
		err = w.writeData(obj)
		if err != nil {
			return err
		}
		err = w.writeLine([]byte("endobj"))
		if err != nil {
			return err
		}
	}
	return nil
}

// writeCrossReferenceTable writes one fixed-width entry per object,
// including the free ones, and returns the byte offset of the table.
func (d *Document) writeCrossReferenceTable(w *writer) (int64, error) {
	xrefPos := w.pos

	err := w.writeLine([]byte("xref"))
	if err != nil {
		return 0, err
	}
	err = w.writeLine([]byte("0 " + strconv.Itoa(len(d.Objects))))
	if err != nil {
		return 0, err
	}
	for _, obj := range d.Objects {
		x := obj.ind()
		flag := byte('n')
		if x.Free {
			flag = 'f'
		}
		err = w.writeLine(fmt.Appendf(nil, "%010d %05d %c ",
			x.Offset, x.Generation, flag))
		if err != nil {
			return 0, err
		}
	}
	return xrefPos, nil
}

func (d *Document) writeTrailer(w *writer, xrefPos int64) error {
	err := w.writeLine([]byte("trailer"))
	if err != nil {
		return err
	}

	trailer := NewDictionary()
	trailer.Set("Size", Integer(len(d.Objects)))
	trailer.Set("Root", d.Catalog.Ref())
	trailer.Set("Info", d.Info.Ref())
	err = w.writeData(trailer)
	if err != nil {
		return err
	}

	err = w.writeLine([]byte("startxref"))
	if err != nil {
		return err
	}
	err = w.writeLine([]byte(strconv.FormatInt(xrefPos, 10)))
	if err != nil {
		return err
	}
	return w.writeLine([]byte("%%EOF"))
}
