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

// Pdflabel writes a sheet of barcode labels as a PDF file.
//
// Usage:
//
//	pdflabel [options] value...
//
// Each value is printed as a Code 128 barcode together with the value in
// plain text.  Labels are arranged in two columns; new pages are added as
// needed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/pdfdraw/document"
	"seehuhn.de/go/pdfdraw/graphics"
)

var (
	outFile   = flag.String("o", "-", "output file name, \"-\" for stdout")
	force     = flag.Bool("f", false, "overwrite existing files and allow output to a terminal")
	title     = flag.String("title", "", "document title")
	paper     = flag.String("paper", "A4", "paper size (A3, A4, A5, Letter, Legal)")
	landscape = flag.Bool("landscape", false, "use landscape orientation")
	count     = flag.Int("count", 1, "number of copies of each label")
	style     = flag.String("style", "D", "frame style (D, F or FD)")
	rotate    = flag.Float64("rotate", 0, "rotation of the label text in degrees")
	compress  = flag.Bool("z", true, "compress content streams")
)

// Label geometry, in millimetres.
const (
	labelWidth  = 85
	labelHeight = 40
	labelGap    = 5
	barWidth    = 0.3
	barHeight   = 15
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pdflabel: ")
	flag.Parse()

	values := flag.Args()
	if len(values) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] value...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	doc, err := makeSheet(values)
	if err != nil {
		log.Fatal(err)
	}

	err = writeOutput(doc)
	if err != nil {
		log.Fatal(err)
	}
}

func makeSheet(values []string) (*document.Document, error) {
	size, err := document.PaperSize(*paper)
	if err != nil {
		return nil, err
	}
	opt := &document.Options{
		Unit:         document.Millimetre,
		PageSize:     size,
		Margin:       10,
		Uncompressed: !*compress,
	}
	if *landscape {
		opt.Orientation = document.Landscape
	}
	doc, err := document.New(opt)
	if err != nil {
		return nil, err
	}
	doc.SetCreator("pdflabel")
	if *title != "" {
		doc.SetTitle(*title)
	}

	doc.PageEnd = func(doc *document.Document) {
		doc.SetFont("Helvetica", "", 8)
		doc.SetY(-doc.Margin() / 2)
		doc.Cell(0, 4, "page "+doc.PaginationStr(" of "), "T", document.MoveRight, "C", false)
	}

	frameStyle := graphics.ParseStyle(*style)
	if frameStyle != graphics.Stroke {
		doc.SetFillColor(230, 230, 230)
	}

	cols := int((doc.PageWidth() - 2*doc.Margin() + labelGap) / (labelWidth + labelGap))
	rows := int((doc.PageHeight() - 2*doc.Margin() + labelGap) / (labelHeight + labelGap))
	if cols < 1 || rows < 1 {
		return nil, errors.New("paper too small for a label")
	}

	pos := 0
	for _, value := range values {
		for i := 0; i < *count; i++ {
			if pos%(cols*rows) == 0 {
				doc.AddPage()
			}
			col := pos % cols
			row := (pos / cols) % rows
			x := doc.Margin() + float64(col)*(labelWidth+labelGap)
			y := doc.Margin() + float64(row)*(labelHeight+labelGap)
			drawLabel(doc, x, y, value, frameStyle)
			pos++
		}
	}
	return doc, doc.Err
}

func drawLabel(doc *document.Document, x, y float64, value string, frameStyle graphics.Style) {
	doc.RoundedRect(x, y, labelWidth, labelHeight, 3, "1234", frameStyle)

	doc.SetFont("Helvetica", "B", 11)
	if *rotate != 0 {
		doc.RotatedText(x+5, y+10, value, *rotate)
	} else {
		doc.Text(x+5, y+10, value)
	}

	doc.Code128(x+5, y+18, value, barWidth, barHeight)
}

func writeOutput(doc *document.Document) error {
	if *outFile == "-" {
		if !*force && term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PDF data to a terminal, use -o or -f")
		}
		_, err := doc.WriteTo(os.Stdout)
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !*force {
		flags |= os.O_EXCL
	}
	fd, err := os.OpenFile(*outFile, flags, 0o644)
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
