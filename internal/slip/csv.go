package slip

import (
	"strings"

	"github.com/cmlabs-hris/wagedesk/internal/domain/wage"
)

// RenderCSV renders the two-row delimited form of a slip: the template's
// header row, then one data row. Every cell is quote-wrapped with internal
// quotes doubled, and the output carries a UTF-8 byte-order mark so
// spreadsheet tools pick the right encoding.
func RenderCSV(t Template, v wage.SlipView) []byte {
	rows := [][]string{t.CSVHeaders, t.CSVRow(v)}

	var b strings.Builder
	b.WriteString("\uFEFF")
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = quoteCell(cell)
		}
		b.WriteString(strings.Join(cells, ","))
	}

	return []byte(b.String())
}

func quoteCell(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
