package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	nt "tablo/entity"
)

func rowsOf(field string, vals ...any) []nt.Row {
	rows := make([]nt.Row, len(vals))
	for i, val := range vals {
		rows[i] = nt.NewRow(map[string]any{"id": i, field: val}, "id")
	}
	return rows
}

func column(rows []nt.Row, field string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Get(field).String()
	}
	return out
}

func TestStrings(t *testing.T) {
	cpr := New()

	t.Run("orders letters", func(t *testing.T) {
		assert.Negative(t, cpr.Strings("a", "b"))
		assert.Positive(t, cpr.Strings("c", "b"))
		assert.Zero(t, cpr.Strings("same", "same"))
	})

	t.Run("upper case first for equal letters", func(t *testing.T) {
		assert.Negative(t, cpr.Strings("Abc", "abc"))
		assert.Positive(t, cpr.Strings("abc", "Abc"))
		assert.Negative(t, cpr.Strings("aBc", "abc"))
	})

	t.Run("case does not outrank letters", func(t *testing.T) {
		assert.Negative(t, cpr.Strings("apple", "Banana"))
		assert.Negative(t, cpr.Strings("Apple", "banana"))
	})

	t.Run("cyrillic letters collate", func(t *testing.T) {
		assert.Negative(t, cpr.Strings("абрикос", "яблоко"))
		assert.Negative(t, cpr.Strings("Ёж", "ёж"))
	})
}

func TestCompareKinds(t *testing.T) {
	cpr := New()

	t.Run("numbers compare numerically", func(t *testing.T) {
		assert.Negative(t, cpr.Compare(nt.Value{Raw: 2.0}, nt.Value{Raw: 10.0}, nt.KindNumber))
		assert.Positive(t, cpr.Compare(nt.Value{Raw: int64(11)}, nt.Value{Raw: 10.5}, nt.KindNumber))
		assert.Zero(t, cpr.Compare(nt.Value{Raw: "3"}, nt.Value{Raw: 3}, nt.KindNumber))
	})

	t.Run("non numbers sort first", func(t *testing.T) {
		assert.Negative(t, cpr.Compare(nt.Value{Raw: nil}, nt.Value{Raw: -100.0}, nt.KindNumber))
	})

	t.Run("strings compare lexically", func(t *testing.T) {
		assert.Positive(t, cpr.Compare(nt.Value{Raw: "10"}, nt.Value{Raw: "2"}, nt.KindString))
	})

	t.Run("natural compares digit runs as numbers", func(t *testing.T) {
		assert.Negative(t, cpr.Compare(nt.Value{Raw: "item2"}, nt.Value{Raw: "item10"}, nt.KindNatural))
		assert.Zero(t, cpr.Compare(nt.Value{Raw: "item2"}, nt.Value{Raw: "item2"}, nt.KindNatural))
	})
}

func TestSort(t *testing.T) {
	cpr := New()

	t.Run("asc and desc", func(t *testing.T) {
		rows := rowsOf("title", "b", "a", "c")

		cpr.Sort(rows, nt.Sort{Column: "title", Direction: nt.Asc}, nt.KindString)
		assert.Equal(t, []string{"a", "b", "c"}, column(rows, "title"))

		cpr.Sort(rows, nt.Sort{Column: "title", Direction: nt.Desc}, nt.KindString)
		assert.Equal(t, []string{"c", "b", "a"}, column(rows, "title"))
	})

	t.Run("stable under both directions", func(t *testing.T) {
		for _, dir := range []nt.Direction{nt.Asc, nt.Desc} {
			rows := []nt.Row{
				nt.NewRow(map[string]any{"k": "x", "n": 1}, "k"),
				nt.NewRow(map[string]any{"k": "y", "n": 1}, "k"),
			}

			cpr.Sort(rows, nt.Sort{Column: "n", Direction: dir}, nt.KindNumber)
			assert.Equal(t, []string{"x", "y"}, column(rows, "k"), string(dir))
		}
	})

	t.Run("desc swaps operands", func(t *testing.T) {
		a, b := nt.Value{Raw: "a"}, nt.Value{Raw: "b"}
		assert.Equal(t, cpr.Compare(b, a, nt.KindString), cpr.Directed(a, b, nt.KindString, nt.Desc))
	})
}

func TestMixedScripts(t *testing.T) {

	t.Run("cyrillic ahead of latin for ru", func(t *testing.T) {
		rows := rowsOf("title", "b", "A", "ёж", "Ёж", "еж", "Еж", "яблоко", "Apple", "a", "zebra", "9", "10")

		New().Sort(rows, nt.Sort{Column: "title", Direction: nt.Asc}, nt.KindString)

		assert.Equal(t, []string{"10", "9", "Еж", "еж", "Ёж", "ёж", "яблоко", "A", "a", "Apple", "b", "zebra"},
			column(rows, "title"))
	})

	t.Run("script decided at first differing letter", func(t *testing.T) {
		cpr := New()
		assert.Negative(t, cpr.Strings("Item я", "item b"))
		assert.Negative(t, cpr.Strings("яблоко", "apple"))
		assert.Positive(t, cpr.Strings("Zebra", "азбука"))
		assert.Negative(t, cpr.Strings("1 zebra", "азбука"))
	})

	t.Run("latin first for en", func(t *testing.T) {
		cpr := New("en")
		assert.Negative(t, cpr.Strings("apple", "яблоко"))
	})
}

func TestNewLocales(t *testing.T) {
	cpr := New("not a locale", "en")
	assert.Negative(t, cpr.Strings("a", "b"))
}
