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
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/pdfgen/internal/float"
)

// Object represents a value which can appear in a PDF file: a scalar, a
// container, or a reference to an indirect object.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the Object interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := io.WriteString(w, s)
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the Object interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Real represents a real number in a PDF file.  Values which are
// mathematically integral are written without a decimal point; all other
// values are written in fixed-point notation, since PDF syntax has no
// exponent form.
type Real float64

// PDF implements the Object interface.
func (x Real) PDF(w io.Writer) error {
	_, err := io.WriteString(w, float.Format(float64(x), 6))
	return err
}

// Name represents a name object, written with a leading slash.  The
// characters of the name are copied to the output unchanged; callers must
// supply names which are valid in PDF syntax.
type Name string

// PDF implements the Object interface.
func (x Name) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "/"+string(x))
	return err
}

// Raw is a pre-encoded byte sequence which is copied to the output
// unchanged.
type Raw []byte

// PDF implements the Object interface.
func (x Raw) PDF(w io.Writer) error {
	_, err := w.Write(x)
	return err
}

// Reference represents a reference to an indirect object.
type Reference struct {
	Number     int
	Generation uint16
}

// PDF implements the Object interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d R", x.Number, x.Generation)
	return err
}

var errNoEncoding = errors.New("pdfgen: base object has no encoding")

// Indirect holds the file-level identity of an indirect object.  Each of
// the container types embeds an Indirect, so that registration with a
// Document and the reference form come for free.
//
// A bare *Indirect is also a valid, if empty, object: the Document uses
// one for the conventional free entry at the head of the cross-reference
// table.
type Indirect struct {
	// Number is the object number.  It is assigned when the object is
	// registered with a Document and equals the object's index in the
	// document's object list.
	Number int

	// Generation is the generation number of the object.  Newly created
	// objects have generation 0; the free head entry uses 65535.
	Generation uint16

	// Offset is the byte position of the object's definition in the
	// written file.  It is filled in by Document.Write.
	Offset int64

	// Free marks the object as unused.  Free objects are listed in the
	// cross-reference table but not written to the file body.
	Free bool

	registered bool
}

// PDF implements the Object interface.  The base type carries no data of
// its own, so asking for its encoding is always an error; the container
// types override this method.
func (x *Indirect) PDF(w io.Writer) error {
	return errNoEncoding
}

// Ref returns the reference form of the object.  The result is only
// meaningful once the object has been registered with a Document.
func (x *Indirect) Ref() Reference {
	return Reference{Number: x.Number, Generation: x.Generation}
}

func (x *Indirect) ind() *Indirect { return x }

// IndirectObject is an Object which carries file-level identity and can
// be registered with a Document.
type IndirectObject interface {
	Object
	ind() *Indirect
}

// Dictionary is an insertion-ordered mapping from names to objects.
type Dictionary struct {
	Indirect

	keys   []Name
	values map[Name]Object
}

// NewDictionary allocates a new, empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{values: make(map[Name]Object)}
}

// Set stores value under the given key.  Setting a key which is already
// present replaces the value but keeps the key's original position.
func (d *Dictionary) Set(key Name, value Object) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under the given key, or nil if the key is
// not present.
func (d *Dictionary) Get(key Name) Object {
	return d.values[key]
}

// Len returns the number of entries in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.keys)
}

// PDF implements the Object interface.  Entries are written one per
// line, in the order the keys were first set.
func (d *Dictionary) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "<<")
	if err != nil {
		return err
	}
	for _, key := range d.keys {
		_, err = io.WriteString(w, "\n")
		if err != nil {
			return err
		}
		err = key.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = d.values[key].PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "\n>>")
	return err
}

func (d *Dictionary) clone() *Dictionary {
	c := NewDictionary()
	for _, key := range d.keys {
		c.Set(key, d.values[key])
	}
	return c
}

// Array is an ordered sequence of objects.
type Array struct {
	Indirect

	elements []Object
}

// NewArray allocates a new array holding the given elements.
func NewArray(elements ...Object) *Array {
	return &Array{elements: elements}
}

// Append adds elements at the end of the array.
func (a *Array) Append(elements ...Object) {
	a.elements = append(a.elements, elements...)
}

// Len returns the number of elements in the array.
func (a *Array) Len() int {
	return len(a.elements)
}

// PDF implements the Object interface.
func (a *Array) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "[")
	if err != nil {
		return err
	}
	for _, elem := range a.elements {
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		if elem == nil {
			_, err = io.WriteString(w, "null")
		} else {
			err = elem.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, " ]")
	return err
}

// String is a text string object.
//
// Strings which contain only ASCII characters are written in the literal,
// parenthesised form.  All other strings are written in hexadecimal form,
// encoded as UTF-16BE with a leading byte order mark.  The representation
// is chosen from the content alone, so every Go string has a valid
// encoding.
type String struct {
	Indirect

	Value string
}

// NewString allocates a new string object holding the given text.
func NewString(s string) *String {
	return &String{Value: s}
}

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// PDF implements the Object interface.
func (s *String) PDF(w io.Writer) error {
	ascii := true
	for i := 0; i < len(s.Value); i++ {
		if s.Value[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		_, err := io.WriteString(w, "("+s.Value+")")
		return err
	}

	enc, err := utf16be.NewEncoder().Bytes([]byte(s.Value))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "<%x>", enc)
	return err
}
