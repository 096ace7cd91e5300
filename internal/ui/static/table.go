// Package static renders non-interactive listings such as the theme and
// spinner overview.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// Table renders rows as borderless columns sized to their content. Headers
// are bold unless plain is set. No rows yields "".
func Table(headers []string, rows [][]string, plain bool) string {
	if len(rows) == 0 {
		return ""
	}

	cell := lipgloss.NewStyle().PaddingRight(2)
	header := cell
	if !plain {
		header = cell.Bold(true)
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}
