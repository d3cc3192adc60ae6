package argview

import (
	"fmt"
	"sort"
	"strings"
)

// A Pair maps an opening quote string to its closing counterpart.
//
// End may be left empty, in which case the opening string closes the pair
// as well.
type Pair struct {
	Start string
	End   string
}

// A Quotation is a set of quote pairs recognised during word extraction.
// Pairs may be asymmetric and longer than one character; matching always
// prefers the longest candidate.
//
// A Quotation is immutable once constructed and may be shared between any
// number of views.
type Quotation struct {
	pairs   map[string]string
	starts  []string // opening strings, longest first
	keys    []string // opening and closing strings, longest first
	initial Pair
}

// NewQuotation returns a Quotation recognising the given pairs. At least
// one pair must be provided and no pair string may be empty. Registering
// the same opening twice keeps the last closing.
func NewQuotation(pairs ...Pair) (*Quotation, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("at least one quote pair must be provided")
	}
	q := &Quotation{pairs: make(map[string]string, len(pairs))}
	for i, pair := range pairs {
		end := pair.End
		if end == "" {
			end = pair.Start
		}
		if pair.Start == "" {
			return nil, fmt.Errorf("quote pair strings must not be empty")
		}
		q.pairs[pair.Start] = end
		if i == 0 {
			q.initial = Pair{Start: pair.Start, End: end}
		}
	}

	seen := map[string]bool{}
	for start, end := range q.pairs {
		q.starts = append(q.starts, start)
		for _, key := range []string{start, end} {
			if !seen[key] {
				seen[key] = true
				q.keys = append(q.keys, key)
			}
		}
	}
	sortLongestFirst(q.starts)
	sortLongestFirst(q.keys)
	return q, nil
}

// MustQuotation takes the result of NewQuotation and panics if it errored.
//
// eg.
//
//	var braces = argview.MustQuotation(argview.NewQuotation(
//		argview.Pair{Start: "(", End: ")"},
//		argview.Pair{Start: "[", End: "]"},
//	))
func MustQuotation(q *Quotation, err error) *Quotation {
	if err != nil {
		panic(err)
	}
	return q
}

// DefaultQuotation is the quote table used by views without an explicit
// Quotation: ASCII double quotes plus sixteen typographic, guillemet and
// CJK quotation styles.
var DefaultQuotation = MustQuotation(NewQuotation(
	Pair{Start: "\""},
	Pair{Start: "‘", End: "’"},
	Pair{Start: "‚", End: "‛"},
	Pair{Start: "“", End: "”"},
	Pair{Start: "„", End: "‟"},
	Pair{Start: "⹂"},
	Pair{Start: "「", End: "」"},
	Pair{Start: "『", End: "』"},
	Pair{Start: "〝", End: "〞"},
	Pair{Start: "﹁", End: "﹂"},
	Pair{Start: "﹃", End: "﹄"},
	Pair{Start: "＂"},
	Pair{Start: "｢", End: "｣"},
	Pair{Start: "«", End: "»"},
	Pair{Start: "‹", End: "›"},
	Pair{Start: "《", End: "》"},
	Pair{Start: "〈", End: "〉"},
))

// Get returns the closing string registered for the opening string start.
func (q *Quotation) Get(start string) (end string, ok bool) {
	end, ok = q.pairs[start]
	return
}

// Contains reports whether s is one of the quotation's opening or closing
// strings.
func (q *Quotation) Contains(s string) bool {
	for _, key := range q.keys {
		if key == s {
			return true
		}
	}
	return false
}

// Initial returns the first pair the quotation was constructed with.
func (q *Quotation) Initial() Pair { return q.initial }

// Len returns the number of registered pairs.
func (q *Quotation) Len() int { return len(q.pairs) }

// Pairs returns the registered pairs, ordered by opening string.
func (q *Quotation) Pairs() []Pair {
	pairs := make([]Pair, 0, len(q.pairs))
	for start, end := range q.pairs {
		pairs = append(pairs, Pair{Start: start, End: end})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Start < pairs[j].Start })
	return pairs
}

func (q *Quotation) String() string {
	parts := make([]string, 0, len(q.pairs))
	for _, pair := range q.Pairs() {
		parts = append(parts, fmt.Sprintf("%q => %q", pair.Start, pair.End))
	}
	return "Quotation{" + strings.Join(parts, ", ") + "}"
}

// matchStart matches the longest opening string prefixing buf[at:].
func (q *Quotation) matchStart(buf []rune, at int) (start, end string, ok bool) {
	for _, s := range q.starts {
		if runesHavePrefix(buf, at, s) {
			return s, q.pairs[s], true
		}
	}
	return "", "", false
}

// matchKey matches the longest opening or closing string prefixing
// buf[at:].
func (q *Quotation) matchKey(buf []rune, at int) (key string, ok bool) {
	for _, k := range q.keys {
		if runesHavePrefix(buf, at, k) {
			return k, true
		}
	}
	return "", false
}

// sortLongestFirst orders candidate strings for matching: longest first so
// multi-character quotes win over their prefixes, ties broken
// lexicographically.
func sortLongestFirst(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
}

// runesHavePrefix reports whether the runes of s prefix buf[at:].
func runesHavePrefix(buf []rune, at int, s string) bool {
	for _, r := range s {
		if at < 0 || at >= len(buf) || buf[at] != r {
			return false
		}
		at++
	}
	return true
}
