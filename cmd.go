package tablo

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"tablo/detail"
)

// fetchCmd runs a controller fetch off the event loop, bounded by the model's timeout
func (m Model) fetchCmd(fetch Fetch) tea.Cmd {

	if fetch == nil {
		return nil
	}

	ctx := m.ctx
	timeout := m.timeout

	return func() tea.Msg {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return pageMsg{page: fetch(ctx)}
	}
}

// detailCmd shows the selected row on the detail screen
func (m Model) detailCmd() tea.Cmd {

	row, ok := m.TablePanel.SelectedRow()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		return detail.RowMsg{Row: row}
	}
}
