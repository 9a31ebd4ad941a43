package table

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	nt "tablo/entity"
	"tablo/style"
)

// Footer renders a status line with position, sort and load state.
func Footer(view nt.View, current int, name string, width int) string {

	left := fmt.Sprintf("%d/%d", current, len(view.Rows))
	if view.Sort.Column != "" {
		left += fmt.Sprintf("  %s %s", view.Sort.Column, view.Sort.Direction.Arrow())
	}

	switch {
	case view.Loading:
		left += "  " + style.LoadingStyle.Render("loading…")
	case view.Empty:
		left += "  " + style.MutedStyle.Render("No rows match")
	case view.Err != nil:
		left += "  " + style.ErrorStyle.Render("load failed, r to retry")
	}

	right := name

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}
