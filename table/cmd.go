package table

import (
	tea "charm.land/bubbletea/v2"

	"tablo/message"
)

func (pnl Panel) selectedCmd() tea.Cmd {

	if pnl.selected >= len(pnl.view.Rows) {
		return nil
	}

	row := pnl.selected + 1
	id := pnl.view.Rows[pnl.selected].Id

	return func() tea.Msg {
		return message.SelectedMsg{
			Row: row,
			Id:  id,
		}
	}
}

func (pnl Panel) sortCmd() tea.Cmd {

	if pnl.focus < 0 || pnl.focus >= len(pnl.columns) {
		return nil
	}

	col := pnl.columns[pnl.focus]
	if !col.Sortable {
		return nil
	}

	return message.SortCmd(col.Id)
}

// nearBottomCmd signals when the selection is within reach of the last loaded row
func (pnl Panel) nearBottomCmd() tea.Cmd {

	total := len(pnl.view.Rows)
	if total == 0 || pnl.view.Loading {
		return nil
	}

	if pnl.selected >= total-1-pnl.threshold() {
		return message.NearBottomCmd()
	}
	return nil
}
