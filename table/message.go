package table

import nt "tablo/entity"

type TableMsg interface {
	isTableMsg()
}

func (SizeMsg) isTableMsg() {}
func (ViewMsg) isTableMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

// ViewMsg delivers the controller's latest view model
type ViewMsg struct {
	View nt.View
}
