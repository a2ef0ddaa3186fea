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
	"io"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/pdfdraw/pdf"
)

// finish prepares the document for output.  The BeforeOutput hook is run
// once, and the current page is closed.  After this, the document can no
// longer be modified.
func (doc *Document) finish() {
	if doc.outputStarted {
		return
	}
	if doc.BeforeOutput != nil && doc.Err == nil {
		doc.BeforeOutput(doc)
	}
	if len(doc.pages) == 0 && doc.Err == nil {
		doc.AddPage()
	}
	doc.endPage()
	doc.outputStarted = true
}

// WriteTo writes the document in PDF format to w.  After the first call,
// the document can no longer be modified, but it can be written again.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	doc.finish()
	if doc.Err != nil {
		return 0, doc.Err
	}

	cw := &countingWriter{w: w}
	err := doc.write(cw)
	return cw.n, err
}

// Bytes returns the document in PDF format.
func (doc *Document) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	_, err := doc.WriteTo(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the document to the named file.  An existing file is
// overwritten.
func (doc *Document) Save(name string) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func (doc *Document) write(w io.Writer) error {
	opt := &pdf.WriterOptions{
		Compress:      !doc.opt.Uncompressed,
		HumanReadable: doc.opt.HumanReadable,
	}
	out, err := pdf.NewWriter(w, doc.opt.Version, opt)
	if err != nil {
		return err
	}

	catalogRef := out.Alloc()
	pagesRef := out.Alloc()
	resourcesRef := out.Alloc()
	infoRef := out.Alloc()
	metaRef := out.Alloc()

	var replace *strings.Replacer
	if doc.alias != "" {
		replace = strings.NewReplacer(doc.alias, strconv.Itoa(len(doc.pages)))
	}

	kids := make(pdf.Array, len(doc.pages))
	for i, p := range doc.pages {
		pageRef := out.Alloc()
		contentRef := out.Alloc()
		kids[i] = pageRef

		err = out.Comment("page " + strconv.Itoa(p.Number))
		if err != nil {
			return err
		}
		buf := &bytes.Buffer{}
		err = p.content.WriteContent(buf, replace)
		if err != nil {
			return err
		}
		err = out.PutStream(contentRef, nil, buf.Bytes(), true)
		if err != nil {
			return err
		}
		err = out.Put(pageRef, pdf.Dict{
			"Type":      pdf.Name("Page"),
			"Parent":    pagesRef,
			"MediaBox":  pdf.Rectangle(p.MediaBox),
			"Resources": resourcesRef,
			"Contents":  contentRef,
		})
		if err != nil {
			return err
		}
	}

	err = out.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(doc.pages)),
	})
	if err != nil {
		return err
	}

	fontDict := pdf.Dict{}
	for _, f := range doc.fonts.used() {
		ref := out.Alloc()
		err = out.Put(ref, f.dict())
		if err != nil {
			return err
		}
		fontDict[f.resName] = ref
	}
	xobjDict := pdf.Dict{}
	for _, img := range doc.images.order {
		ref := out.Alloc()
		// DCT data is already compressed
		err = out.PutStream(ref, img.dict(), img.data, img.filter == "")
		if err != nil {
			return err
		}
		xobjDict[img.resName] = ref
	}
	resources := pdf.Dict{
		"ProcSet": pdf.Array{pdf.Name("PDF"), pdf.Name("Text"), pdf.Name("ImageB"), pdf.Name("ImageC"), pdf.Name("ImageI")},
	}
	if len(fontDict) > 0 {
		resources["Font"] = fontDict
	}
	if len(xobjDict) > 0 {
		resources["XObject"] = xobjDict
	}
	err = out.Put(resourcesRef, resources)
	if err != nil {
		return err
	}

	err = out.Put(infoRef, doc.infoDict())
	if err != nil {
		return err
	}

	xmpBuf := &bytes.Buffer{}
	err = doc.writeXMP(xmpBuf, doc.opt.HumanReadable)
	if err != nil {
		return err
	}
	metaDict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	err = out.PutStream(metaRef, metaDict, xmpBuf.Bytes(), false)
	if err != nil {
		return err
	}

	err = out.Put(catalogRef, pdf.Dict{
		"Type":     pdf.Name("Catalog"),
		"Pages":    pagesRef,
		"Metadata": metaRef,
	})
	if err != nil {
		return err
	}

	return out.Close(catalogRef, infoRef)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
