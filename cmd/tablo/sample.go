package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

var (
	adjectives = []string{"red", "Blue", "зелёный", "Tiny", "большой", "ёмкий", "Ёлочный", "apple", "Apple"}
	nouns      = []string{"widget", "Gadget", "вертолёт", "Лампа", "chair", "стол", "Ёж", "kettle"}
)

// writeSampleRows writes count generated products as ndjson
func writeSampleRows(path string, count int) (err error) {

	file, err := os.Create(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to create %s", path)
		return
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	enc := json.NewEncoder(buf)
	rnd := rand.New(rand.NewPCG(1, 2))

	for i := range count {
		product := map[string]any{
			"id":     fmt.Sprintf("p%04d", i+1),
			"title":  fmt.Sprintf("%s %s", adjectives[rnd.IntN(len(adjectives))], nouns[rnd.IntN(len(nouns))]),
			"sku":    fmt.Sprintf("SKU-%d", rnd.IntN(2000)),
			"price":  float64(rnd.IntN(100000)) / 100,
			"rating": float64(rnd.IntN(500)) / 100,
			"image":  fmt.Sprintf("img/p%04d.png", i+1),
		}

		err = enc.Encode(product)
		if err != nil {
			err = errors.Wrapf(err, "failed to encode product")
			return
		}
	}

	err = buf.Flush()
	err = errors.Wrapf(err, "failed to write %s", path)
	return
}
