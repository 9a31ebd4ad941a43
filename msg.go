package tablo

// pageMsg carries the outcome of a fetch back to the event loop
type pageMsg struct {
	page Page
}
