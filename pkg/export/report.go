package export

import (
	"fmt"
	"strings"

	"github.com/coolbeans/gazeta/pkg/gazette"
)

// FormatTable formats one table for terminal output with fixed-width
// columns sized to the widest cell.
func FormatTable(table gazette.Table) string {
	widths := columnWidths(table)

	var builder strings.Builder
	builder.WriteString(table.Name + "\n")
	builder.WriteString(strings.Repeat("═", totalWidth(widths)) + "\n")
	builder.WriteString(formatRow(table.Columns, widths))
	builder.WriteString(strings.Repeat("─", totalWidth(widths)) + "\n")
	for _, row := range table.Rows {
		builder.WriteString(formatRow(row, widths))
	}
	builder.WriteString(fmt.Sprintf("\nTotal: %d registros\n", len(table.Rows)))
	return builder.String()
}

// FormatSummary formats a one-line-per-category count summary.
func FormatSummary(tables gazette.Tables) string {
	var builder strings.Builder
	builder.WriteString("Extração concluída\n")
	builder.WriteString(strings.Repeat("─", 40) + "\n")
	for _, name := range tableOrder(tables) {
		builder.WriteString(fmt.Sprintf("  %-24s %d\n", name, len(tables[name].Rows)))
	}
	return builder.String()
}

func columnWidths(table gazette.Table) []int {
	widths := make([]int, len(table.Columns))
	for i, column := range table.Columns {
		widths[i] = runeLen(column)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && runeLen(cell) > widths[i] {
				widths[i] = runeLen(cell)
			}
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		width := runeLen(cell)
		if i < len(widths) && widths[i] > width {
			width = widths[i]
		}
		padded[i] = cell + strings.Repeat(" ", width-runeLen(cell))
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ") + "\n"
}

func totalWidth(widths []int) int {
	total := 0
	for _, width := range widths {
		total += width
	}
	return total + 2*(len(widths)-1)
}

// runeLen counts characters, not bytes; table text is accented Portuguese.
func runeLen(s string) int {
	return len([]rune(s))
}
