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
	"compress/zlib"
	"io"
	"strings"

	"seehuhn.de/go/pdfgen/internal/float"
)

// Stream is a stream object: an ordered list of content-stream operator
// lines, together with the metadata dictionary describing the encoded
// body.
//
// The operator methods (MoveTo, Fill, TextShow, ...) each append one
// operator line.  They perform no validation: operator ordering, BT/ET
// pairing and graphics-state nesting are the caller's responsibility.
type Stream struct {
	Indirect

	// Extra holds caller-supplied entries for the stream dictionary.
	// The Length entry, and the Filter entry when compression is
	// enabled, are computed during encoding and must not be set here.
	Extra *Dictionary

	// Compress enables zlib compression of the stream body.
	Compress bool

	ops []Object
}

// NewStream allocates a new, empty stream.
func NewStream() *Stream {
	return &Stream{Extra: NewDictionary()}
}

// Append adds pre-encoded content lines to the stream.
func (s *Stream) Append(ops ...Object) {
	s.ops = append(s.ops, ops...)
}

// op appends a single operator line, operands first.
func (s *Stream) op(fields ...string) {
	s.ops = append(s.ops, Raw(strings.Join(fields, " ")))
}

func coord(x float64) string {
	return float.Format(x, 6)
}

// PDF implements the Object interface.  The stream body is the
// newline-joined operator list, compressed if requested; the Length entry
// always gives the exact byte count of the body as written.
func (s *Stream) PDF(w io.Writer) error {
	body := &bytes.Buffer{}
	for i, op := range s.ops {
		if i > 0 {
			body.WriteByte('\n')
		}
		err := op.PDF(body)
		if err != nil {
			return err
		}
	}
	data := body.Bytes()

	var extra *Dictionary
	if s.Extra != nil {
		extra = s.Extra.clone()
	} else {
		extra = NewDictionary()
	}
	if s.Compress {
		extra.Set("Filter", Name("FlateDecode"))
		zbuf := &bytes.Buffer{}
		zw := zlib.NewWriter(zbuf)
		_, err := zw.Write(data)
		if err == nil {
			err = zw.Close()
		}
		if err != nil {
			return err
		}
		data = zbuf.Bytes()
	}
	extra.Set("Length", Integer(len(data)))

	err := extra.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nstream\n")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nendstream")
	return err
}
