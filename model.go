package tablo

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"tablo/detail"
	nt "tablo/entity"
	"tablo/message"
	"tablo/style"
	"tablo/table"
)

const (
	footerHeight = 1
)

// Model is the bubbletea model for the table TUI.
// It drives a Controller and relays its views to the table panel.
type Model struct {
	Controller  *Controller
	relay       *relay
	timeout     time.Duration
	logger      nt.Logger
	ctx         context.Context
	errorString string
	selected    message.SelectedMsg

	CurrentScreen Screen

	TablePanel  table.Panel
	DetailPanel detail.Panel

	Width  int
	Height int
}

// NewModel creates a new bt model over data as described by layout.
// Fetches are bounded by timeout when it is positive.
func NewModel(ctx context.Context, layout *Layout, data Data, name string, timeout time.Duration, lgr nt.Logger) (model Model, err error) {

	if lgr == nil {
		lgr = nt.NopLogger{}
	}
	rly := &relay{}

	ctl, err := layout.Config.New(ctx, layout.Columns, data, rly, lgr)
	if err != nil {
		return
	}

	model = Model{
		Controller:    ctl,
		relay:         rly,
		timeout:       timeout,
		logger:        lgr,
		ctx:           ctx,
		CurrentScreen: TableScreen,
		TablePanel:    table.New(ctx, ctl.Columns(), name, lgr),
		DetailPanel:   detail.New(),
	}

	return
}

func (m Model) Init() tea.Cmd {
	return m.fetchCmd(m.Controller.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case pageMsg:
		m.Controller.Receive(msg.page)
		return m.sync()

	case message.SortMsg:
		fetch, err := m.Controller.ToggleSort(msg.Column)
		if err != nil {
			return m, message.ErrorCmd(err)
		}
		return m.syncFetch(fetch)

	case message.NearBottomMsg:
		return m.syncFetch(m.Controller.NotifyNearScrollBottom())

	case message.RetryMsg:
		m.Controller.ClearError()
		return m.syncFetch(m.Controller.NotifyNearScrollBottom())

	case message.SelectedMsg:
		m.selected = msg
		return m, nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case tea.KeyPressMsg:
		m.errorString = ""

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.CurrentScreen != TableScreen {
				return m.switchTo(TableScreen)
			}
			return m, tea.Quit

		case "r":
			if m.Controller.State() == nt.Errored {
				return m, func() tea.Msg { return message.RetryMsg{} }
			}

		case "tab":
			if m.CurrentScreen == TableScreen {
				return m.switchTo(DetailScreen)
			}
			return m.switchTo(TableScreen)
		}

		// Keys go to the current screen only
		var cmd tea.Cmd
		switch m.CurrentScreen {
		case TableScreen:
			var mdl tea.Model
			mdl, cmd = m.TablePanel.Update(msg)
			m.TablePanel = mdl.(table.Panel)
		case DetailScreen:
			m.DetailPanel, cmd = m.DetailPanel.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		height := msg.Height - footerHeight

		mdl, cmd1 := m.TablePanel.Update(table.SizeMsg{Width: msg.Width, Height: height})
		m.TablePanel = mdl.(table.Panel)

		var cmd2 tea.Cmd
		m.DetailPanel, cmd2 = m.DetailPanel.Update(detail.SizeMsg{Width: msg.Width, Height: height})

		var cmd3 tea.Cmd
		m, cmd3 = m.sync()
		return m, tea.Batch(cmd1, cmd2, cmd3)
	}

	// Broadcast to child components
	mdl, cmd1 := m.TablePanel.Update(msg)
	m.TablePanel = mdl.(table.Panel)

	var cmd2 tea.Cmd
	m.DetailPanel, cmd2 = m.DetailPanel.Update(msg)
	return m, tea.Batch(cmd1, cmd2)
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	var screenContent string
	switch m.CurrentScreen {
	case DetailScreen:
		screenContent = m.DetailPanel.Render()
	default:
		screenContent = m.TablePanel.Render()
	}

	screenLayer := lipgloss.NewLayer("screen", screenContent)

	footerLayer := lipgloss.NewLayer("footer", m.footer()).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

// footer shows the error line, or the selected row and key hints
func (m Model) footer() string {

	switch {
	case m.errorString != "":
		return style.ErrorStyle.Render(m.errorString)
	case m.CurrentScreen == DetailScreen:
		return style.MutedStyle.Render("row " + m.DetailPanel.Id() + "  esc: back")
	case m.selected.Id != "":
		return style.MutedStyle.Render(fmt.Sprintf("row %d: %s  tab: detail  s: sort  q: quit", m.selected.Row, m.selected.Id))
	}
	return style.MutedStyle.Render("tab: detail  s: sort  q: quit")
}

// relay is the controller's surface, holding the latest view until the model hands it on
type relay struct {
	view  nt.View
	dirty bool
}

func (rly *relay) Render(view nt.View) {
	rly.view = view
	rly.dirty = true
}

// sync passes a fresh controller view to the table panel
func (m Model) sync() (Model, tea.Cmd) {

	if !m.relay.dirty {
		return m, nil
	}
	m.relay.dirty = false

	mdl, cmd := m.TablePanel.Update(table.ViewMsg{View: m.relay.view})
	m.TablePanel = mdl.(table.Panel)
	return m, cmd
}

func (m Model) syncFetch(fetch Fetch) (tea.Model, tea.Cmd) {

	m, cmd := m.sync()
	return m, tea.Batch(cmd, m.fetchCmd(fetch))
}

func (m Model) switchTo(screen Screen) (tea.Model, tea.Cmd) {

	m.CurrentScreen = screen
	m.DetailPanel.Focused = screen == DetailScreen

	if screen == DetailScreen {
		return m, m.detailCmd()
	}
	return m, nil
}
