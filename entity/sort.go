package entity

import (
	"github.com/pkg/errors"
)

// Direction is a sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts exactly "asc" or "desc".
func ParseDirection(in string) (dir Direction, err error) {
	switch Direction(in) {
	case Asc, Desc:
		dir = Direction(in)
	default:
		err = errors.Errorf("unknown sort direction %q", in)
	}
	return
}

// Reverse flips asc and desc.
func (dir Direction) Reverse() Direction {
	if dir == Desc {
		return Asc
	}
	return Desc
}

// Arrow returns a header indicator for the direction.
func (dir Direction) Arrow() string {
	if dir == Desc {
		return "▼"
	}
	return "▲"
}

// Sort is a column and direction to order rows by.
type Sort struct {
	Column    string    `yaml:"column"`
	Direction Direction `yaml:"direction"`
}

// Query parameterizes a backend page fetch.
// Offsets are a half-open window: [OffsetStart, OffsetEnd).
type Query struct {
	SortField   string
	SortOrder   Direction
	OffsetStart int
	OffsetEnd   int
}

// Limit is the number of rows the query asks for.
func (qry Query) Limit() int {
	return qry.OffsetEnd - qry.OffsetStart
}
