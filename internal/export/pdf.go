// ABOUTME: Minimal PDF writer rendering layout placements as single-font text.
// ABOUTME: Hand-assembles catalog, page tree, content streams, and the xref table.
package export

import (
	"bytes"
	"fmt"
	"strings"
)

// pdf object layout: 1 catalog, 2 page tree, 3 body font, 4 bold font,
// then an interleaved (page, content) object pair per page.

// escapePDFText makes a string safe inside a PDF literal string. The bullet
// glyph maps to its WinAnsi code; other text passes through byte-wise.
func escapePDFText(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, `(`, `\(`)
	text = strings.ReplaceAll(text, `)`, `\)`)
	text = strings.ReplaceAll(text, bulletGlyph, `\225`)
	return text
}

// renderPDF renders a LayoutResult into a complete PDF document.
func renderPDF(layout LayoutResult, geo Geometry) []byte {
	pageCount := layout.PageCount
	if pageCount < 1 {
		pageCount = 1
	}

	// Per-page content streams. Placements store Y from the top edge; PDF
	// coordinates grow upward from the bottom-left corner.
	contents := make([]*bytes.Buffer, pageCount)
	for i := range contents {
		contents[i] = &bytes.Buffer{}
	}
	for _, p := range layout.Placements {
		font := "/F1"
		if p.Bold {
			font = "/F2"
		}
		fmt.Fprintf(contents[p.Page], "BT %s %g Tf %.2f %.2f Td (%s) Tj ET\n",
			font, p.Size, p.X, geo.PageHeight-p.Y, escapePDFText(p.Text))
	}

	var buf bytes.Buffer
	offsets := make([]int, 0, 4+2*pageCount)

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	pageRefs := make([]string, pageCount)
	for i := 0; i < pageCount; i++ {
		pageRefs[i] = fmt.Sprintf("%d 0 R", 5+2*i)
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(pageRefs, " "), pageCount))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding >>")

	for i := 0; i < pageCount; i++ {
		writeObj(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>",
			geo.PageWidth, geo.PageHeight, 6+2*i))
		stream := contents[i].String()
		writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(stream), stream))
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefStart)

	return buf.Bytes()
}
