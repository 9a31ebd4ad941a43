package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HeaderStyle      = lipgloss.NewStyle().Bold(true)
	SortedStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("180")) // Header of sort column
	FocusStyle       = lipgloss.NewStyle().Underline(true)                              // Header with column focus
	HlRowStyle       = lipgloss.NewStyle().Background(lipgloss.Color("235"))            // Very subtle warm grey row
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))            // Warm muted grey text
	LoadingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	UnStyle          = lipgloss.NewStyle()
)

// RowStyler returns a StyleFunc that highlights the selected row and header cells
func RowStyler(selectedRow, sortedCol, focusCol int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			style := HeaderStyle
			if col == sortedCol {
				style = SortedStyle
			}
			if col == focusCol {
				style = style.Inherit(FocusStyle)
			}
			return style
		}
		if row == selectedRow {
			return HlRowStyle
		}
		return UnStyle
	}
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).    // Disable top border
		BorderBottom(false). // Disable bottom border
		BorderLeft(false).   // Disable left border
		BorderRight(false).  // Disable right border
		BorderColumn(false). // Disable column separators
		BorderStyle(TableBorderStyle)
}
