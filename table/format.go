package table

import (
	"fmt"

	nt "tablo/entity"
	"tablo/style"
)

// makeFormatter returns a cell formatter for a column's named renderer
func makeFormatter(renderer string) func(nt.Value) string {

	switch renderer {
	case "money":
		return numeric("$%.2f")
	case "fixed2":
		return numeric("%.2f")
	case "image":
		return func(val nt.Value) string {
			if val.String() == "" {
				return ""
			}
			return "▣"
		}
	case "datetime":
		return func(val nt.Value) string {
			t, err := val.Time()
			if err == nil {
				return t.Format("2006-01-02 15:04")
			}
			return val.String()
		}
	}

	return func(val nt.Value) string {
		return val.String()
	}
}

func numeric(format string) func(nt.Value) string {
	return func(val nt.Value) string {
		f, err := val.Float()
		if err != nil {
			return val.String()
		}
		return fmt.Sprintf(format, f)
	}
}

func truncate(in string, width int) string {

	runes := []rune(in)
	if width <= 0 || len(runes) <= width {
		return in
	}

	truncated := string(runes[:width-1])
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
