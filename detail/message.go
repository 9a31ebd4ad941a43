package detail

import nt "tablo/entity"

type DetailMsg interface {
	isDetailMsg()
}

func (SizeMsg) isDetailMsg() {}
func (RowMsg) isDetailMsg()  {}

type SizeMsg struct {
	Width  int
	Height int
}

// RowMsg sets the row on display
type RowMsg struct {
	Row nt.Row
}
