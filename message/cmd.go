package message

import tea "charm.land/bubbletea/v2"

// ErrorCmd returns a command reporting err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// SortCmd returns a command to sort by column
func SortCmd(column string) tea.Cmd {
	return func() tea.Msg {
		return SortMsg{Column: column}
	}
}

// NearBottomCmd returns a command signalling scroll proximity to the end of the rows
func NearBottomCmd() tea.Cmd {
	return func() tea.Msg {
		return NearBottomMsg{}
	}
}
