// Package detail shows every field of a single row.
package detail

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/goccy/go-json"

	nt "tablo/entity"
)

// Panel handles the full record view of the selected row
type Panel struct {
	row          nt.Row
	loaded       bool
	contentLines []string // Rendered content split into lines (cached)

	width   int
	height  int
	offset  int // Line offset for scrolling content
	Focused bool
}

func New() Panel {
	return Panel{}
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {

	case RowMsg:
		pnl.row = msg.Row
		pnl.loaded = true
		pnl.contentLines = render(msg.Row)
		pnl.offset = 0

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.offset = min(pnl.offset, pnl.maxOffset())

	case tea.KeyPressMsg:
		if !pnl.Focused {
			return pnl, nil
		}
		pnl = pnl.key(msg.String())
	}

	return pnl, nil
}

// Render draws the visible portion of the record
func (pnl Panel) Render() string {
	if !pnl.loaded {
		return "No row selected"
	}

	visible := pnl.contentLines[pnl.offset:]
	if pnl.height > 0 && len(visible) > pnl.height {
		visible = visible[:pnl.height]
	}

	return strings.Join(visible, "\n")
}

// Id returns the id of the row on display
func (pnl Panel) Id() string {
	return pnl.row.Id
}

// unexported

func (pnl Panel) key(key string) Panel {

	switch key {
	case "up", "k":
		pnl.offset = max(0, pnl.offset-1)
	case "down", "j":
		pnl.offset = min(pnl.offset+1, pnl.maxOffset())
	case "pgup", "ctrl+u":
		pnl.offset = max(0, pnl.offset-pnl.height)
	case "pgdown", "ctrl+d":
		pnl.offset = min(pnl.offset+pnl.height, pnl.maxOffset())
	}
	return pnl
}

func (pnl Panel) maxOffset() int {
	if pnl.height <= 0 {
		return 0
	}
	return max(0, len(pnl.contentLines)-pnl.height)
}

// render pretty-prints a row's raw values as json, keys sorted
func render(row nt.Row) []string {

	data := make(map[string]any, len(row.Values))
	for key, val := range row.Values {
		data[key] = val.Raw
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return []string{"Error pretty-printing row: " + err.Error()}
	}

	return strings.Split(string(out), "\n")
}
