// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package codectest builds small PDF fixtures for tests. Every generated
// page is identifiable after transformation by its MediaBox width.
package codectest

import (
	"bytes"
	"fmt"
)

// BaseWidth is the MediaBox width of page 0; page n (1-based) is
// BaseWidth+n points wide.
const BaseWidth = 100

// PageHeight is the MediaBox height of every generated page.
const PageHeight = 200

// WidthOf returns the MediaBox width of original page n.
func WidthOf(n int) float64 {
	return float64(BaseWidth + n)
}

// PageOf maps a MediaBox width back to the original page number.
func PageOf(width float64) int {
	return int(width+0.5) - BaseWidth
}

// Pages returns a valid PDF document with n pages. Page i carries the
// text "Page i" and a MediaBox of WidthOf(i) x PageHeight.
func Pages(n int) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	// 1: catalog, 2: pages, 3: font, then a page and a content stream per page.
	kids := new(bytes.Buffer)
	for i := 0; i < n; i++ {
		if i > 0 {
			kids.WriteString(" ")
		}
		fmt.Fprintf(kids, "%d 0 R", 4+2*i)
	}
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, n))
	obj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i := 1; i <= n; i++ {
		pageObj := 4 + 2*(i-1)
		obj(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			BaseWidth+i, PageHeight, pageObj+1))
		stream := fmt.Sprintf("BT /F1 12 Tf 10 100 Td (Page %d) Tj ET", i)
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}
