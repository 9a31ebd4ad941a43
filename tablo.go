package tablo

import (
	"context"

	"github.com/pkg/errors"

	"tablo/compare"
	"tablo/cursor"
	nt "tablo/entity"
	"tablo/source"
)

// Surface renders a table's view model.
// Render is called after every transition that changes rows, loading or error state.
type Surface interface {
	Render(view nt.View)
}

// Mode selects where sorting happens.
type Mode string

const (
	Local  Mode = "local"
	Remote Mode = "remote"
)

// Config holds the recognized table options.
type Config struct {
	SortDefault *nt.Sort `yaml:"sort_default,omitempty"`
	Mode        Mode     `yaml:"mode,omitempty"`
	PageSize    int      `yaml:"page_size,omitempty"`
	Locales     []string `yaml:"locales,omitempty"`
}

// Data supplies rows for local mode or a backend for remote mode.
type Data struct {
	Rows    []nt.Row
	Backend source.Backend
}

// New creates a controller over columns and data.
// Sorting defaults to the first sortable column ascending.
// A nil lgr discards logging.
func (cfg *Config) New(ctx context.Context, columns nt.Columns, data Data, sfc Surface, lgr nt.Logger) (ctl *Controller, err error) {

	if lgr == nil {
		lgr = nt.NopLogger{}
	}

	err = columns.Validate()
	if err != nil {
		return
	}

	mode := cfg.Mode
	if mode == "" {
		mode = Local
	}

	initial := cfg.SortDefault
	if initial == nil {
		col, ok := columns.FirstSortable()
		if !ok {
			err = errors.Wrapf(ErrInvalidArgument, "no sortable columns")
			return
		}
		initial = &nt.Sort{Column: col.Id, Direction: nt.Asc}
	}

	sortState, err := NewSortState(columns, initial.Column, initial.Direction)
	if err != nil {
		return
	}

	ctl = &Controller{
		columns:   columns,
		mode:      mode,
		sortState: sortState,
		cursor:    cursor.New(cfg.PageSize),
		state:     nt.Idle,
		surface:   sfc,
		ctx:       ctx,
		logger:    lgr,
	}

	switch mode {
	case Local:
		ctl.local = source.NewLocal(data.Rows, columns, compare.New(cfg.Locales...))
	case Remote:
		if data.Backend == nil {
			ctl, err = nil, errors.New("remote mode requires a backend")
			return
		}
		ctl.remote = source.NewRemote(data.Backend, ctl.cursor.PageSize())
	default:
		ctl, err = nil, errors.Errorf("unknown mode %q", mode)
	}

	return
}
