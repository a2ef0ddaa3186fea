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

package pdf

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// WriterOptions allows to influence the way a PDF file is generated.
type WriterOptions struct {
	// Compress selects whether streams are Flate compressed.
	Compress bool

	// HumanReadable adds comments to the file and disables compression,
	// to make the output easier to inspect.
	HumanReadable bool
}

var (
	errClosed       = errors.New("pdf: writer is closed")
	errDuplicate    = errors.New("pdf: object already written")
	errMissingRoot  = errors.New("pdf: missing document catalog")
	errUnknownObjNo = errors.New("pdf: reference was not allocated")
)

// Writer represents a PDF file open for writing.
type Writer struct {
	Version Version

	w       *posWriter
	opt     WriterOptions
	xref    map[uint32]int64
	nextRef uint32
}

// NewWriter prepares a PDF file for writing.  The file header is written
// immediately.
func NewWriter(w io.Writer, ver Version, opt *WriterOptions) (*Writer, error) {
	verString, err := ver.ToString()
	if err != nil {
		return nil, err
	}
	if opt == nil {
		opt = &WriterOptions{}
	}

	pdf := &Writer{
		Version: ver,
		w:       &posWriter{w: w},
		opt:     *opt,
		xref:    make(map[uint32]int64),
		nextRef: 1,
	}
	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", verString)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	ref := NewReference(pdf.nextRef, 0)
	pdf.nextRef++
	return ref
}

// Put writes obj to the file, as the indirect object ref.
// The reference must have been allocated using [Writer.Alloc].
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if pdf.w == nil {
		return errClosed
	}
	num := ref.Number()
	if num == 0 || num >= pdf.nextRef {
		return fmt.Errorf("%w: %d", errUnknownObjNo, num)
	}
	if _, seen := pdf.xref[num]; seen {
		return fmt.Errorf("%w: %d", errDuplicate, num)
	}

	pdf.xref[num] = pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", num, ref.Generation())
	if err != nil {
		return err
	}
	err = writeObject(pdf.w, obj)
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nendobj\n")
	return err
}

// PutStream writes a stream object with the given dictionary and data.
// The /Length entry is set automatically.  If compression is enabled in
// the writer options and compress is true, the data is Flate compressed.
func (pdf *Writer) PutStream(ref Reference, dict Dict, data []byte, compress bool) error {
	d := make(Dict, len(dict)+2)
	for key, val := range dict {
		d[key] = val
	}

	if compress && pdf.opt.Compress && !pdf.opt.HumanReadable {
		buf := &bytes.Buffer{}
		zw := zlib.NewWriter(buf)
		if _, err := zw.Write(data); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		data = buf.Bytes()
		d["Filter"] = Name("FlateDecode")
	}
	d["Length"] = Integer(len(data))

	return pdf.Put(ref, &Stream{Dict: d, R: bytes.NewReader(data)})
}

// Comment writes a comment line, if the writer produces human readable
// output.
func (pdf *Writer) Comment(s string) error {
	if pdf.w == nil {
		return errClosed
	}
	if !pdf.opt.HumanReadable {
		return nil
	}
	_, err := fmt.Fprintf(pdf.w, "%% %s\n", s)
	return err
}

// Close writes the cross-reference table and the file trailer.  The
// underlying io.Writer is not closed.  If info is zero, the trailer has no
// /Info entry.
func (pdf *Writer) Close(catalog, info Reference) error {
	if pdf.w == nil {
		return errClosed
	}
	if catalog == 0 {
		return errMissingRoot
	}

	xrefPos := pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n0000000000 65535 f\r\n", pdf.nextRef)
	if err != nil {
		return err
	}
	for num := uint32(1); num < pdf.nextRef; num++ {
		pos, ok := pdf.xref[num]
		if !ok {
			// allocated but never written: a free entry
			_, err = io.WriteString(pdf.w, "0000000000 00001 f\r\n")
		} else {
			_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pos)
		}
		if err != nil {
			return err
		}
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": catalog,
	}
	if info != 0 {
		trailer["Info"] = info
	}
	_, err = io.WriteString(pdf.w, "trailer\n")
	if err != nil {
		return err
	}
	err = trailer.PDF(pdf.w)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xrefPos)
	if err != nil {
		return err
	}

	pdf.w = nil
	return nil
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
