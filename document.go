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

// Document assembles indirect objects into a PDF file.
//
// A Document must only be used from a single goroutine at a time.
type Document struct {
	// Objects is the document's object list.  The position of an object
	// in this list is its object number.  Objects are added via Add and
	// are never removed.
	Objects []IndirectObject

	// Pages is the root of the page tree (object 1).  AddPage maintains
	// the Kids and Count entries.
	Pages *Dictionary

	// Info is the document information dictionary (object 2).  No
	// entries are filled in automatically.
	Info *Dictionary

	// Catalog is the document catalog (object 3).
	Catalog *Dictionary
}

// NewDocument creates an empty document.  The returned document already
// contains the conventional free entry at the head of the cross-reference
// table, the page tree, the info dictionary and the catalog, as objects
// 0 to 3.  All objects added later get numbers from 4 onwards.
func NewDocument() *Document {
	d := &Document{}

	head := &Indirect{Generation: 65535, Free: true}
	d.Add(head)

	d.Pages = NewDictionary()
	d.Pages.Set("Type", Name("Pages"))
	d.Pages.Set("Kids", NewArray())
	d.Pages.Set("Count", Integer(0))
	d.Add(d.Pages)

	d.Info = NewDictionary()
	d.Add(d.Info)

	d.Catalog = NewDictionary()
	d.Catalog.Set("Type", Name("Catalog"))
	d.Catalog.Set("Pages", d.Pages.Ref())
	d.Add(d.Catalog)

	return d
}

// Add registers an object with the document, assigning the next object
// number.  Every object must be registered exactly once: renumbering an
// object would silently invalidate references already handed out, so Add
// panics if the object is already registered.
func (d *Document) Add(obj IndirectObject) {
	x := obj.ind()
	if x.registered {
		panic("pdfgen: object registered twice")
	}
	x.registered = true
	x.Number = len(d.Objects)
	d.Objects = append(d.Objects, obj)
}

// AddPage registers the given page dictionary and links it into the page
// tree, incrementing the page count.  The page's Parent entry is not set
// automatically.
func (d *Document) AddPage(page *Dictionary) {
	count, _ := d.Pages.Get("Count").(Integer)
	d.Pages.Set("Count", count+1)
	d.Add(page)
	kids := d.Pages.Get("Kids").(*Array)
	kids.Append(page.Ref())
}
