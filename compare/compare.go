// Package compare orders row values by a column's declared kind.
package compare

import (
	"cmp"
	"slices"
	"unicode"

	"github.com/fvbommel/sortorder"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	nt "tablo/entity"
)

// DefaultLocales are tried in order when choosing a collation.
var DefaultLocales = []string{"ru", "en"}

// Comparator compares values of a given kind.
// It is not safe for concurrent use.
type Comparator struct {
	folded *collate.Collator
	exact  *collate.Collator
	// native is the locale's own script, ordered ahead of other letters
	native *unicode.RangeTable
}

// New creates a comparator collating strings for the first supported locale
// from locales, falling back to DefaultLocales when none are given.
func New(locales ...string) *Comparator {

	if len(locales) == 0 {
		locales = DefaultLocales
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	tag, _, _ := language.NewMatcher(collate.Supported()).Match(tags...)

	return &Comparator{
		folded: collate.New(tag, collate.IgnoreCase),
		exact:  collate.New(tag),
		native: nativeScript(tag),
	}
}

// Compare returns negative, zero or positive as a orders before, with or after b.
func (cpr *Comparator) Compare(a, b nt.Value, kind nt.Kind) int {

	switch kind {
	case nt.KindNumber:
		return cmp.Compare(a.Number(), b.Number())
	case nt.KindNatural:
		return natural(a.String(), b.String())
	default:
		return cpr.Strings(a.String(), b.String())
	}
}

// Strings collates ignoring case first, then puts upper case ahead of lower
// case for otherwise equal letters.
// Letters of the locale's own script order before letters of other scripts.
func (cpr *Comparator) Strings(a, b string) int {

	if res := cpr.scriptFirst(a, b); res != 0 {
		return res
	}
	if res := cpr.folded.CompareString(a, b); res != 0 {
		return res
	}
	if res := upperFirst(a, b); res != 0 {
		return res
	}
	return cpr.exact.CompareString(a, b)
}

// Directed compares for the given direction.
// Desc swaps operands rather than negating so ties stay ties.
func (cpr *Comparator) Directed(a, b nt.Value, kind nt.Kind, dir nt.Direction) int {
	if dir == nt.Desc {
		a, b = b, a
	}
	return cpr.Compare(a, b, kind)
}

// Sort orders rows in place by sort, keeping equal rows in their prior order.
func (cpr *Comparator) Sort(rows []nt.Row, sort nt.Sort, kind nt.Kind) {

	slices.SortStableFunc(rows, func(a, b nt.Row) int {
		return cpr.Directed(a.Get(sort.Column), b.Get(sort.Column), kind, sort.Direction)
	})
}

// unexported

// nativeScript is the script a locale reorders ahead of the others, if any
func nativeScript(tag language.Tag) *unicode.RangeTable {

	script, _ := tag.Script()
	switch script.String() {
	case "Cyrl":
		return unicode.Cyrillic
	case "Grek":
		return unicode.Greek
	}
	return nil
}

// scriptFirst ranks at the first letter that differs ignoring case,
// when exactly one of the two is in the native script
func (cpr *Comparator) scriptFirst(a, b string) int {

	if cpr.native == nil {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	for i := 0; i < len(ra) && i < len(rb); i++ {
		if unicode.ToLower(ra[i]) == unicode.ToLower(rb[i]) {
			continue
		}
		if !unicode.IsLetter(ra[i]) || !unicode.IsLetter(rb[i]) {
			return 0
		}

		na, nb := unicode.Is(cpr.native, ra[i]), unicode.Is(cpr.native, rb[i])
		switch {
		case na && !nb:
			return -1
		case nb && !na:
			return 1
		}
		return 0
	}
	return 0
}

func upperFirst(a, b string) int {

	ra, rb := []rune(a), []rune(b)
	for i := 0; i < len(ra) && i < len(rb); i++ {
		if ra[i] == rb[i] {
			continue
		}
		if unicode.ToLower(ra[i]) != unicode.ToLower(rb[i]) {
			return 0
		}
		if unicode.IsUpper(ra[i]) {
			return -1
		}
		return 1
	}
	return 0
}

func natural(a, b string) int {

	switch {
	case a == b:
		return 0
	case sortorder.NaturalLess(a, b):
		return -1
	case sortorder.NaturalLess(b, a):
		return 1
	}
	return 0
}
