// Package message holds messages passed between table components.
package message

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// SortMsg asks for the table to be sorted by a column, as a header click would.
type SortMsg struct {
	Column string
}

// NearBottomMsg signals the selection has scrolled close to the last loaded row.
type NearBottomMsg struct{}

// SelectedMsg reports the selected row, 1-indexed for display
type SelectedMsg struct {
	Row int
	Id  string
}

// RetryMsg asks for a failed load to be cleared and tried again.
type RetryMsg struct{}
