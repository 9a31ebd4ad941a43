package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Value wraps a field value and provides type conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string.
// Floats are written in full, never with an exponent.
func (v Value) String() string {
	switch raw := v.Raw.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(raw, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(raw), 'f', -1, 32)
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Float returns the value as a float64, converting from any numeric type
// or a numeric string.
func (v Value) Float() (float64, error) {
	switch raw := v.Raw.(type) {
	case float64:
		return raw, nil
	case float32:
		return float64(raw), nil
	case int:
		return float64(raw), nil
	case int32:
		return float64(raw), nil
	case int64:
		return float64(raw), nil
	case uint32:
		return float64(raw), nil
	case uint64:
		return float64(raw), nil
	case json.Number:
		return raw.Float64()
	case string:
		f, err := strconv.ParseFloat(raw, 64)
		return f, errors.Wrapf(err, "value is not numeric: %q", raw)
	}
	return math.NaN(), errors.Errorf("value is not numeric: %T", v.Raw)
}

// Number returns the value as a float64, or NaN when it is not numeric.
func (v Value) Number() float64 {
	f, err := v.Float()
	if err != nil {
		return math.NaN()
	}
	return f
}

// Time returns the value as a time.Time.
func (v Value) Time() (time.Time, error) {
	t, ok := v.Raw.(time.Time)
	if !ok {
		return time.Time{}, errors.Errorf("value is not a time.Time: %T", v.Raw)
	}
	return t, nil
}

// Row is one data record keyed by column id.
// Rows are not modified once added to a collection.
type Row struct {
	Id     string
	Values map[string]Value
}

// NewRow builds a row from a decoded record, taking identity from idField.
func NewRow(record map[string]any, idField string) Row {

	values := make(map[string]Value, len(record))
	for key, raw := range record {
		values[key] = Value{Raw: raw}
	}

	return Row{
		Id:     values[idField].String(),
		Values: values,
	}
}

// Get returns the value for a column id, or a nil value.
func (row Row) Get(id string) Value {
	return row.Values[id]
}
