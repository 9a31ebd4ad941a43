package tablo

import (
	"os"

	"github.com/pkg/errors"

	nt "tablo/entity"
	"tablo/util"
)

// Layout describes a table: its columns and options.
type Layout struct {
	Columns nt.Columns `yaml:"columns"`
	Config  `yaml:",inline"`
}

// LoadLayout reads and validates a yaml layout file.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = util.LoadConfig(layout, path)
	if err != nil {
		layout = nil
		return
	}

	err = layout.Columns.Validate()
	if err != nil {
		layout = nil
		err = errors.Wrapf(err, "invalid layout in %s", path)
	}
	return
}

// WriteSampleLayout writes SampleLayout to path unless a file is already there.
func WriteSampleLayout(path string) (err error) {
	return util.SampleConfig(SampleLayout, path, os.FileMode(0644))
}

// SampleLayout suits the rows written by the sample command.
var SampleLayout = []byte(`columns:
  - id: image
    title: Image
    renderer: image
    width: 5
  - id: title
    title: Name
    sortable: true
    kind: string
    width: 30
  - id: sku
    title: SKU
    sortable: true
    kind: natural
    width: 10
  - id: price
    title: Price
    sortable: true
    kind: number
    renderer: money
    width: 10
  - id: rating
    title: Rating
    sortable: true
    kind: number
    renderer: fixed2
    width: 6
sort_default:
  column: title
  direction: asc
mode: local
page_size: 30
locales: [ru, en]
`)
