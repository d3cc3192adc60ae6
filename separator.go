package argview

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// A Separator defines what delimits words during extraction.
//
// The zero value splits on any Unicode whitespace and keeps surrounding
// whitespace on each word. DefaultSeparator also splits on whitespace but
// strips each word, which is what command parsers almost always want.
type Separator struct {
	key     string
	stripWS bool
}

// DefaultSeparator splits words on any Unicode whitespace and strips
// surrounding whitespace from each unquoted word.
var DefaultSeparator = Separator{stripWS: true}

// NewSeparator returns a Separator that splits words on key instead of
// whitespace. key must be a single rune.
//
// When strip is true, surrounding whitespace is stripped from each
// unquoted word and runs of whitespace are skipped along with the key
// between words.
func NewSeparator(key string, strip bool) (Separator, error) {
	if key == "" {
		return Separator{}, fmt.Errorf("separator key must not be empty")
	}
	if utf8.RuneCountInString(key) != 1 {
		return Separator{}, fmt.Errorf("separator key %q must be a single character", key)
	}
	return Separator{key: key, stripWS: strip}, nil
}

// MustSeparator takes the result of NewSeparator and panics if it
// errored.
func MustSeparator(sep Separator, err error) Separator {
	if err != nil {
		panic(err)
	}
	return sep
}

// Key returns the custom separator key. ok is false when the separator
// splits on whitespace.
func (s Separator) Key() (key string, ok bool) {
	return s.key, s.key != ""
}

// StripsWhitespace reports whether whitespace around each extracted word
// is stripped.
func (s Separator) StripsWhitespace() bool { return s.stripWS }

func (s Separator) String() string {
	if s.key == "" {
		return fmt.Sprintf("Separator{whitespace, strip: %v}", s.stripWS)
	}
	return fmt.Sprintf("Separator{key: %q, strip: %v}", s.key, s.stripWS)
}

// isSeparator reports whether r ends an unquoted word.
func (s Separator) isSeparator(r rune) bool {
	if s.key == "" {
		return unicode.IsSpace(r)
	}
	return s.isKey(r)
}

// isSpace reports whether r is skippable spacing between words. A custom
// key counts as spacing, plus whitespace when the separator strips it.
func (s Separator) isSpace(r rune) bool {
	if s.key == "" {
		return unicode.IsSpace(r)
	}
	if s.stripWS {
		return unicode.IsSpace(r) || s.isKey(r)
	}
	return s.isKey(r)
}

func (s Separator) isKey(r rune) bool {
	if s.key == "" {
		return false
	}
	k, size := utf8.DecodeRuneInString(s.key)
	return size == len(s.key) && r == k
}
