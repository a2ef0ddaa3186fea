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
	"io"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfdraw/pdf"
)

// Producer is stored as the producer in the document information
// dictionary.
const Producer = "seehuhn.de/go/pdfdraw"

type info struct {
	title    string
	subject  string
	author   string
	keywords string
	creator  string
}

// SetTitle sets the document title.
func (doc *Document) SetTitle(title string) {
	doc.info.title = title
}

// SetSubject sets the subject of the document.
func (doc *Document) SetSubject(subject string) {
	doc.info.subject = subject
}

// SetAuthor sets the name of the person who created the document.
func (doc *Document) SetAuthor(author string) {
	doc.info.author = author
}

// SetKeywords sets the keywords associated with the document, separated
// by spaces or commas.
func (doc *Document) SetKeywords(keywords string) {
	doc.info.keywords = keywords
}

// SetCreator sets the name of the application which created the document
// content.
func (doc *Document) SetCreator(creator string) {
	doc.info.creator = creator
}

// infoDict returns the document information dictionary.
func (doc *Document) infoDict() pdf.Dict {
	d := pdf.Dict{
		"Producer":     pdf.TextString(Producer),
		"CreationDate": pdf.Date(nowOr(doc.CreationDate)),
	}
	set := func(key pdf.Name, val string) {
		if val != "" {
			d[key] = pdf.TextString(val)
		}
	}
	set("Title", doc.info.title)
	set("Subject", doc.info.subject)
	set("Author", doc.info.author)
	set("Keywords", doc.info.keywords)
	set("Creator", doc.info.creator)
	return d
}

// xmpPDF is the XMP namespace for PDF properties.
type xmpPDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// xmpBasic is the XMP basic namespace.
type xmpBasic struct {
	_           xmp.Namespace `xmp:"http://ns.adobe.com/xap/1.0/"`
	_           xmp.Prefix    `xmp:"xmp"`
	CreateDate  xmp.Date
	ModifyDate  xmp.Date
	CreatorTool xmp.AgentName
}

// writeXMP writes the XMP metadata packet for the document.
func (doc *Document) writeXMP(w io.Writer, pretty bool) error {
	defaultLang := language.MustParse("x-default")

	dc := &xmp.DublinCore{}
	if doc.info.title != "" {
		dc.Title.Set(defaultLang, doc.info.title)
	}
	if doc.info.subject != "" {
		dc.Description.Set(defaultLang, doc.info.subject)
	}
	if doc.info.author != "" {
		dc.Creator.Append(xmp.NewProperName(doc.info.author))
	}

	date := nowOr(doc.CreationDate)
	basic := &xmpBasic{}
	basic.CreateDate = xmp.NewDate(date)
	basic.ModifyDate = xmp.NewDate(date)
	if doc.info.creator != "" {
		basic.CreatorTool = xmp.NewAgentName(doc.info.creator)
	}

	pdfInfo := &xmpPDF{}
	pdfInfo.Producer = xmp.NewAgentName(Producer)
	if doc.info.keywords != "" {
		pdfInfo.Keywords = xmp.NewText(doc.info.keywords)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfInfo)
	if err != nil {
		return err
	}
	return packet.Write(w, &xmp.PacketOptions{Pretty: pretty})
}

func nowOr(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
