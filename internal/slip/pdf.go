package slip

import (
	"bytes"
	"fmt"
	"strings"
)

// Page geometry for the single-page slip layout (A4 in PDF points).
const (
	pdfPageWidth   = 595
	pdfPageHeight  = 842
	pdfLeftMargin  = 50
	pdfTopBaseline = 780
	pdfRowHeight   = 18
	pdfFontSize    = 11
)

// RenderPDF assembles a minimal single-page PDF by hand. The byte offset
// of each object is captured as the buffer grows, and the cross-reference
// table is written from those captured offsets - never re-derived - so
// strict parsers can seek directly to every object.
func RenderPDF(lines []string) []byte {
	contentLines := make([]string, len(lines))
	for i, line := range lines {
		contentLines[i] = fmt.Sprintf("BT /F1 %d Tf %d %d Td (%s) Tj ET",
			pdfFontSize, pdfLeftMargin, pdfTopBaseline-i*pdfRowHeight, escapeText(line))
	}
	contentStream := strings.Join(contentLines, "\n")

	// Objects in fixed order: catalog, page tree, page, font, content.
	objects := []string{
		"1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj\n",
		"2 0 obj << /Type /Pages /Kids [3 0 R] /Count 1 >> endobj\n",
		fmt.Sprintf("3 0 obj << /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Contents 5 0 R /Resources << /Font << /F1 4 0 R >> >> >> endobj\n",
			pdfPageWidth, pdfPageHeight),
		"4 0 obj << /Type /Font /Subtype /Type1 /BaseFont /Helvetica >> endobj\n",
		fmt.Sprintf("5 0 obj << /Length %d >> stream\n%s\nendstream endobj\n",
			len(contentStream), contentStream),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, 0, len(objects))
	for _, obj := range objects {
		offsets = append(offsets, buf.Len())
		buf.WriteString(obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer << /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF",
		len(objects)+1, xrefOffset)

	return buf.Bytes()
}

// escapeText escapes the characters PDF reserves inside string literals.
// Backslash goes first so it does not re-escape the others.
func escapeText(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, "(", `\(`)
	text = strings.ReplaceAll(text, ")", `\)`)
	return text
}
