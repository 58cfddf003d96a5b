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
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"
)

func TestOperators(t *testing.T) {
	cases := []struct {
		name  string
		build func(s *Stream)
		out   string
	}{
		{"MoveTo", func(s *Stream) { s.MoveTo(10, 20) }, "10 20 m"},
		{"LineTo", func(s *Stream) { s.LineTo(10.5, -3) }, "10.5 -3 l"},
		{"CurveTo", func(s *Stream) { s.CurveTo(1, 2, 3, 4, 5, 6) }, "1 2 3 4 5 6 c"},
		{"CurveStartTo", func(s *Stream) { s.CurveStartTo(3, 4, 5, 6) }, "3 4 5 6 v"},
		{"CurveEndTo", func(s *Stream) { s.CurveEndTo(1, 2, 5, 6) }, "1 2 5 6 y"},
		{"Rectangle", func(s *Stream) { s.Rectangle(0, 0, 100, 50) }, "0 0 100 50 re"},
		{"ClosePath", func(s *Stream) { s.ClosePath() }, "h"},
		{"EndPath", func(s *Stream) { s.EndPath() }, "n"},
		{"Stroke", func(s *Stream) { s.Stroke() }, "S"},
		{"CloseAndStroke", func(s *Stream) { s.CloseAndStroke() }, "s"},
		{"Fill", func(s *Stream) { s.Fill() }, "f"},
		{"FillEvenOdd", func(s *Stream) { s.FillEvenOdd() }, "f*"},
		{"FillAndStroke", func(s *Stream) { s.FillAndStroke() }, "B"},
		{"FillAndStrokeEvenOdd", func(s *Stream) { s.FillAndStrokeEvenOdd() }, "B*"},
		{"CloseFillAndStroke", func(s *Stream) { s.CloseFillAndStroke() }, "b"},
		{"CloseFillAndStrokeEvenOdd", func(s *Stream) { s.CloseFillAndStrokeEvenOdd() }, "b*"},
		{"ClipNonZero", func(s *Stream) { s.ClipNonZero() }, "W"},
		{"ClipEvenOdd", func(s *Stream) { s.ClipEvenOdd() }, "W*"},
		{"PushGraphicsState", func(s *Stream) { s.PushGraphicsState() }, "q"},
		{"PopGraphicsState", func(s *Stream) { s.PopGraphicsState() }, "Q"},
		{"Transform", func(s *Stream) { s.Transform(matrix.Matrix{1, 0, 0, 1, 10, 20}) }, "1 0 0 1 10 20 cm"},
		{"SetExtGState", func(s *Stream) { s.SetExtGState("GS1") }, "/GS1 gs"},
		{"SetLineWidth", func(s *Stream) { s.SetLineWidth(0.5) }, "0.5 w"},
		{"SetLineCap", func(s *Stream) { s.SetLineCap(1) }, "1 J"},
		{"SetLineJoin", func(s *Stream) { s.SetLineJoin(2) }, "2 j"},
		{"SetMiterLimit", func(s *Stream) { s.SetMiterLimit(4) }, "4 M"},
		{"SetDashPattern", func(s *Stream) { s.SetDashPattern([]float64{2, 1}, 0) }, "[ 2 1 ] 0 d"},
		{"SetDashPatternEmpty", func(s *Stream) { s.SetDashPattern(nil, 0) }, "[ ] 0 d"},
		{"SetColorSpace", func(s *Stream) { s.SetColorSpace("DeviceRGB", false) }, "/DeviceRGB cs"},
		{"SetColorSpaceStroke", func(s *Stream) { s.SetColorSpace("DeviceRGB", true) }, "/DeviceRGB CS"},
		{"SetColorRGB", func(s *Stream) { s.SetColorRGB(1, 0.5, 0, false) }, "1 0.5 0 rg"},
		{"SetColorRGBStroke", func(s *Stream) { s.SetColorRGB(0, 0, 0, true) }, "0 0 0 RG"},
		{"SetColorSpecial", func(s *Stream) { s.SetColorSpecial("P1", false) }, "/P1 scn"},
		{"SetColorSpecialStroke", func(s *Stream) { s.SetColorSpecial("P1", true) }, "/P1 SCN"},
		{"DrawXObject", func(s *Stream) { s.DrawXObject("Im1") }, "/Im1 Do"},
		{"Shading", func(s *Stream) { s.Shading("Sh1") }, "/Sh1 sh"},
		{"TextBegin", func(s *Stream) { s.TextBegin() }, "BT"},
		{"TextEnd", func(s *Stream) { s.TextEnd() }, "ET"},
		{"TextMatrix", func(s *Stream) { s.TextMatrix(matrix.Matrix{1, 0, 0, 1, 72, 720}) }, "1 0 0 1 72 720 Tm"},
		{"SetFont", func(s *Stream) { s.SetFont("F1", 12) }, "/F1 12 Tf"},
		{"SetTextRenderMode", func(s *Stream) { s.SetTextRenderMode(3) }, "3 Tr"},
		{"TextShow", func(s *Stream) { s.TextShow(NewString("hi")) }, "[(hi)] TJ"},
		{"TextShowHex", func(s *Stream) { s.TextShow(NewString("Bär")) }, "[<feff004200e40072>] TJ"},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			s := NewStream()
			test.build(s)
			if len(s.ops) != 1 {
				t.Fatalf("expected one operator but got %d", len(s.ops))
			}
			out := format(t, s.ops[0])
			if out != test.out {
				t.Errorf("expected %q but got %q", test.out, out)
			}
		})
	}
}

func TestStreamData(t *testing.T) {
	s := NewStream()
	s.MoveTo(10, 20)
	s.LineTo(30, 40)
	s.Stroke()

	want := "<<\n/Length 17\n>>\nstream\n10 20 m\n30 40 l\nS\nendstream"
	if diff := cmp.Diff(want, format(t, s)); diff != "" {
		t.Errorf("unexpected encoding (-want +got):\n%s", diff)
	}
}

var lengthRegexp = regexp.MustCompile(`/Length (\d+)\n`)

// bodyOf extracts the bytes between the stream and endstream keywords,
// together with the value of the Length entry.
func bodyOf(t *testing.T, encoded string) (string, int) {
	t.Helper()
	start := strings.Index(encoded, "\nstream\n")
	if start < 0 {
		t.Fatalf("no stream keyword in %q", encoded)
	}
	if !strings.HasSuffix(encoded, "\nendstream") {
		t.Fatalf("no endstream keyword in %q", encoded)
	}
	body := encoded[start+len("\nstream\n") : len(encoded)-len("\nendstream")]

	m := lengthRegexp.FindStringSubmatch(encoded[:start])
	if m == nil {
		t.Fatalf("no Length entry in %q", encoded[:start])
	}
	length, err := strconv.Atoi(m[1])
	if err != nil {
		t.Fatal(err)
	}
	return body, length
}

func TestStreamLength(t *testing.T) {
	s := NewStream()
	s.Rectangle(0, 0, 10, 10)
	s.Fill()

	body, length := bodyOf(t, format(t, s))
	if length != len(body) {
		t.Errorf("Length is %d but the body has %d bytes", length, len(body))
	}
}

func TestStreamCompressed(t *testing.T) {
	s := NewStream()
	s.Compress = true
	s.MoveTo(10, 20)
	s.LineTo(30, 40)
	s.Stroke()

	encoded := format(t, s)
	if !strings.Contains(encoded, "/Filter /FlateDecode\n") {
		t.Error("missing Filter entry")
	}

	body, length := bodyOf(t, encoded)
	if length != len(body) {
		t.Errorf("Length is %d but the body has %d bytes", length, len(body))
	}

	zr, err := zlib.NewReader(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("10 20 m\n30 40 l\nS", string(raw)); diff != "" {
		t.Errorf("wrong stream contents (-want +got):\n%s", diff)
	}
}

func TestStreamExtra(t *testing.T) {
	s := NewStream()
	s.Extra.Set("Type", Name("XObject"))
	s.Append(Raw("BI"))

	encoded := format(t, s)
	if !strings.HasPrefix(encoded, "<<\n/Type /XObject\n/Length ") {
		t.Errorf("caller entries not passed through: %q", encoded)
	}

	// encoding must not leak computed entries into the caller's dictionary
	if s.Extra.Len() != 1 {
		t.Errorf("extra dictionary modified, now has %d entries", s.Extra.Len())
	}
	if s.Extra.Get("Length") != nil || s.Extra.Get("Filter") != nil {
		t.Error("computed entries stored in the extra dictionary")
	}
}

func TestStreamEncodeTwice(t *testing.T) {
	s := NewStream()
	s.Compress = true
	s.TextBegin()
	s.SetFont("F1", 12)
	s.TextShow(NewString("hello"))
	s.TextEnd()

	buf1 := &bytes.Buffer{}
	buf2 := &bytes.Buffer{}
	if err := s.PDF(buf1); err != nil {
		t.Fatal(err)
	}
	if err := s.PDF(buf2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Error("encoding the same stream twice gave different results")
	}
}
