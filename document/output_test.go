// seehuhn.de/go/pdfdraw - drawing primitives and barcodes for PDF pages
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

package document

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfdraw/graphics"
)

func buildLabel(t *testing.T) *Document {
	t.Helper()
	doc, err := New(&Options{Unit: Millimetre, Margin: 10, Uncompressed: true})
	if err != nil {
		t.Fatal(err)
	}
	doc.CreationDate = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	doc.SetTitle("Shipping label")
	doc.SetAuthor("Jörg Müller")
	doc.SetSubject("Parcel 100")
	doc.SetKeywords("label, barcode")
	doc.SetCreator("document test")

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 14)
	doc.Text(15, 20, "Parcel "+doc.PaginationStr("/"))
	doc.RoundedRect(10, 10, 90, 50, 3, "1234", graphics.Stroke)
	doc.Code128(15, 30, "100", 0.5, 15)
	return doc
}

func TestOutput(t *testing.T) {
	doc := buildLabel(t)
	data, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "%PDF-1.7\n") {
		t.Errorf("wrong header %q", out[:9])
	}
	mustContain := []string{
		"(Parcel 1/1) Tj",
		"/BaseFont /Helvetica-Bold",
		"/Encoding /WinAnsiEncoding",
		"/Type /Catalog",
		"/Type /Metadata",
		"/Count 1",
		"/CreationDate (D:20240506070809+00'00)",
		"/Title (Shipping label)",
	}
	for _, s := range mustContain {
		if !strings.Contains(out, s) {
			t.Errorf("output does not contain %q", s)
		}
	}
	if strings.Contains(out, DefaultAlias) {
		t.Error("page count alias was not replaced")
	}
	if n := strings.Count(out, " re f\n"); n != 19 {
		t.Errorf("found %d barcode bars, want 19", n)
	}
}

func TestOutputCompressed(t *testing.T) {
	doc, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	doc.AddPage()
	doc.Code128(10, 10, "PDF-1", 0.3, 10)
	data, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("/Filter /FlateDecode")) {
		t.Error("content stream not compressed")
	}
	if bytes.Contains(data, []byte(" re f")) {
		t.Error("uncompressed content found")
	}
}

func TestEmptyDocument(t *testing.T) {
	doc, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	data, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("/Count 1")) {
		t.Error("empty document should have one page")
	}
}

func TestHooks(t *testing.T) {
	doc, err := New(&Options{Unit: Point, Margin: 10, Uncompressed: true})
	if err != nil {
		t.Fatal(err)
	}
	doc.CreationDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pageEnds := 0
	doc.PageEnd = func(doc *Document) {
		pageEnds++
		doc.SetFont("Helvetica", "", 8)
		doc.Text(10, 830, doc.PaginationStr("/"))
	}
	beforeOutput := 0
	doc.BeforeOutput = func(doc *Document) {
		beforeOutput++
		doc.Line(0, 0, 100, 100)
	}

	doc.AddPage()
	doc.AddPage()
	if pageEnds != 1 {
		t.Errorf("PageEnd called %d times after two pages", pageEnds)
	}

	first, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	second, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if beforeOutput != 1 || pageEnds != 2 {
		t.Errorf("hooks called %d/%d times", beforeOutput, pageEnds)
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated output differs")
	}
	if !bytes.Contains(first, []byte("(2/2) Tj")) {
		t.Error("footer of the last page is missing")
	}

	doc.Rect(0, 0, 1, 1, graphics.Fill)
	if !errors.Is(doc.Err, ErrClosed) {
		t.Errorf("drawing after output: got %v", doc.Err)
	}
}

func TestSave(t *testing.T) {
	name := filepath.Join(t.TempDir(), "label.pdf")
	err := buildLabel(t).Save(name)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("incomplete file")
	}
}

func TestXMP(t *testing.T) {
	doc := buildLabel(t)
	buf := &bytes.Buffer{}
	err := doc.writeXMP(buf, true)
	if err != nil {
		t.Fatal(err)
	}

	_, err = xmp.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"Shipping label", "Jörg Müller", Producer, "label, barcode"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("XMP packet does not contain %q", s)
		}
	}
}

func BenchmarkLabel(b *testing.B) {
	for i := 0; i < b.N; i++ {
		doc, err := New(nil)
		if err != nil {
			b.Fatal(err)
		}
		doc.AddPage()
		doc.SetFont("Helvetica", "", 10)
		for j := 0; j < 10; j++ {
			y := 20 + 25*float64(j)
			doc.RoundedRect(20, y, 170, 20, 2, "1234", graphics.Stroke)
			doc.Text(25, y+8, "Label")
			doc.Code128(80, y+3, "LABEL-0001", 0.3, 14)
		}
		_, err = doc.Bytes()
		if err != nil {
			b.Fatal(err)
		}
	}
}
