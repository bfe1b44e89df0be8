// Package ui renders tables and panels for terminal output.
package ui

import (
	"strings"
	"unicode/utf8"
)

const tableCellMaxWidth = 60
const tableCellEllipsis = "..."

// FormatTable renders headers and rows as an aligned text table.
func FormatTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = utf8.RuneCountInString(header)
	}

	normalized := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = truncateCell(strings.ReplaceAll(cell, "\n", " "))
			if i < len(widths) {
				if width := utf8.RuneCountInString(cells[i]); width > widths[i] {
					widths[i] = width
				}
			}
		}
		normalized = append(normalized, cells)
	}

	var builder strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				builder.WriteString("  ")
			}
			builder.WriteString(cell)
			if i < len(cells)-1 {
				builder.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
			}
		}
		builder.WriteString("\n")
	}

	writeRow(headers)
	for _, row := range normalized {
		writeRow(row)
	}
	return builder.String()
}

// FormatKeyValues renders aligned "key  value" lines, with blank keys
// producing separator lines.
func FormatKeyValues(pairs [][2]string) string {
	keyWidth := 0
	for _, pair := range pairs {
		if width := utf8.RuneCountInString(pair[0]); width > keyWidth {
			keyWidth = width
		}
	}

	var builder strings.Builder
	for _, pair := range pairs {
		if pair[0] == "" && pair[1] == "" {
			builder.WriteString("\n")
			continue
		}
		builder.WriteString(pair[0])
		builder.WriteString(strings.Repeat(" ", keyWidth-utf8.RuneCountInString(pair[0])))
		builder.WriteString("  ")
		builder.WriteString(pair[1])
		builder.WriteString("\n")
	}
	return builder.String()
}

func truncateCell(cell string) string {
	if utf8.RuneCountInString(cell) <= tableCellMaxWidth {
		return cell
	}
	runes := []rune(cell)
	return string(runes[:tableCellMaxWidth-len(tableCellEllipsis)]) + tableCellEllipsis
}
