package table

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	nt "tablo/entity"
	"tablo/style"
)

const (
	headerHeight = 2 // Header row + separator line
	footerHeight = 1
	defaultWidth = 12
)

// Panel renders a table view model and turns key presses into
// sort requests and scroll proximity signals.
type Panel struct {
	selected int // Absolute index of selected row
	offset   int // Index of first row shown
	focus    int // Column with header focus

	width  int
	height int
	name   string

	columns []nt.Column
	colFmts []colFmt
	view    nt.View
	table   *table.Table

	ctx    context.Context
	logger nt.Logger
}

type colFmt struct {
	width     int
	formatter func(nt.Value) string
}

func New(ctx context.Context, columns []nt.Column, name string, lgr nt.Logger) Panel {

	lgt := table.New()
	style.StyleTable(lgt)

	pnl := Panel{
		name:   name,
		table:  lgt,
		ctx:    ctx,
		logger: lgr,
	}

	return pnl.setColumns(columns)
}

func (pnl Panel) Init() tea.Cmd {
	return nil
}

func (pnl Panel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl = pnl.scroll()
		return pnl, pnl.nearBottomCmd()

	case ViewMsg:
		pnl.view = msg.View
		if pnl.selected >= len(pnl.view.Rows) {
			pnl.selected = max(0, len(pnl.view.Rows)-1)
		}
		pnl = pnl.scroll()
		return pnl, nil

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		pnl, cmd = pnl.key(msg.String())
		return pnl, cmd
	}

	return pnl, nil
}

// key handles a key by name
func (pnl Panel) key(key string) (Panel, tea.Cmd) {

	pageSize := pnl.PageSize()
	last := len(pnl.view.Rows) - 1

	switch key {
	case "left", "h":
		if pnl.focus > 0 {
			pnl.focus--
		}
		return pnl, nil

	case "right", "l":
		if pnl.focus < len(pnl.columns)-1 {
			pnl.focus++
		}
		return pnl, nil

	case "enter", "s":
		pnl.selected = 0
		pnl.offset = 0
		return pnl, pnl.sortCmd()

	case "up", "k":
		if pnl.selected > 0 {
			pnl.selected--
		}

	case "down", "j":
		if pnl.selected < last {
			pnl.selected++
		}

	case "pgup", "ctrl+u":
		pnl.selected = max(0, pnl.selected-pageSize)

	case "pgdown", "ctrl+d":
		pnl.selected = max(0, min(last, pnl.selected+pageSize))

	case "g":
		pnl.selected = 0

	case "G":
		pnl.selected = max(0, last)

	default:
		return pnl, nil
	}

	pnl = pnl.scroll()
	return pnl, tea.Batch(pnl.selectedCmd(), pnl.nearBottomCmd())
}

func (pnl Panel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Render draws visible rows with a header and status footer
func (pnl Panel) Render() string {

	sortedCol := -1
	headers := make([]string, len(pnl.columns))
	for i, col := range pnl.columns {
		title := col.Title
		if title == "" {
			title = col.Id
		}
		if col.Id == pnl.view.Sort.Column {
			title += " " + pnl.view.Sort.Direction.Arrow()
			sortedCol = i
		}
		headers[i] = fmt.Sprintf("%-*s", pnl.colFmts[i].width+1, title)
	}
	pnl.table.Headers(headers...)

	pnl.table.StyleFunc(style.RowStyler(pnl.selected-pnl.offset, sortedCol, pnl.focus))

	pnl.table.ClearRows()
	for _, row := range pnl.visible() {
		pnl.table.Row(pnl.row(row)...)
	}

	footer := Footer(pnl.view, pnl.selected+1, pnl.name, pnl.width)
	return lipgloss.JoinVertical(lipgloss.Left, pnl.table.Render(), footer)
}

// PageSize returns the number of rows that fit on panel
func (pnl Panel) PageSize() int {
	return max(1, pnl.height-headerHeight-footerHeight)
}

// Selected returns the index of the selected row
func (pnl Panel) Selected() int {
	return pnl.selected
}

// SelectedRow returns the selected row, if any
func (pnl Panel) SelectedRow() (row nt.Row, ok bool) {
	if pnl.selected >= len(pnl.view.Rows) {
		return
	}
	return pnl.view.Rows[pnl.selected], true
}

// Focus returns the id of the column with header focus
func (pnl Panel) Focus() string {
	if pnl.focus >= len(pnl.columns) {
		return ""
	}
	return pnl.columns[pnl.focus].Id
}

// unexported

// threshold is how many rows from the end count as near the bottom
func (pnl Panel) threshold() int {
	return max(1, pnl.PageSize()/4)
}

// scroll adjusts offset to keep the selected row visible
func (pnl Panel) scroll() Panel {

	pageSize := pnl.PageSize()
	if pnl.selected < pnl.offset {
		pnl.offset = pnl.selected
	} else if pnl.selected >= pnl.offset+pageSize {
		pnl.offset = pnl.selected - pageSize + 1
	}
	return pnl
}

func (pnl Panel) visible() []nt.Row {

	rows := pnl.view.Rows
	if pnl.offset >= len(rows) {
		return nil
	}
	end := min(len(rows), pnl.offset+pnl.PageSize())
	return rows[pnl.offset:end]
}

func (pnl Panel) row(row nt.Row) []string {
	cells := make([]string, len(pnl.columns))
	for i, col := range pnl.columns {
		colFmt := pnl.colFmts[i]
		cells[i] = truncate(colFmt.formatter(row.Get(col.Id)), colFmt.width)
	}
	return cells
}

func (pnl Panel) setColumns(columns []nt.Column) Panel {

	colFmts := make([]colFmt, len(columns))
	for i, col := range columns {
		width := col.Width
		if width <= 0 {
			width = defaultWidth
		}
		colFmts[i] = colFmt{
			width:     width,
			formatter: makeFormatter(col.Renderer),
		}
	}

	pnl.columns = columns
	pnl.colFmts = colFmts
	pnl.focus = 0
	return pnl
}
