package argview

import (
	"strings"
	"unicode/utf8"
)

// GetQuotedWord extracts the next word starting at the cursor, honouring
// quoting and escaping.
//
// ok is false only when the cursor is already at the end of the buffer:
// no word remains, which is distinct from an empty word. Lexical failures
// are reported as *UnexpectedQuoteError, *InvalidEndOfQuotedStringError
// or *ExpectedClosingQuoteError.
//
// An unquoted word runs to the first unescaped separator, which is not
// part of the word; the cursor is left on it. A word opening with a
// registered quote runs to that pair's closing string, which must be
// followed by a separator or the end of the buffer, and its body is
// returned verbatim, never stripped. Inside a quoted word a backslash
// escapes the pair's own delimiters; inside an unquoted word it escapes
// any quote string of the active table, or a separator.
func (v *View) GetQuotedWord() (word string, ok bool, err error) {
	current := v.Current()
	if current == EOF {
		return "", false, nil
	}

	quot := v.Quotation()
	start, end, isQuoted := quot.matchStart(v.buf, v.index)

	var result []rune
	if isQuoted {
		// The first Get below steps over one rune of the opening; the
		// rest of a longer opening is consumed here.
		v.index += utf8.RuneCountInString(start) - 1
	} else {
		result = append(result, current)
	}

	for !v.EOF() {
		current = v.Get()
		if current == EOF {
			if isQuoted {
				return "", false, &ExpectedClosingQuoteError{Close: end}
			}
			return v.finishWord(result), true, nil
		}

		if current == '\\' {
			next := v.Get()
			if next == EOF {
				if isQuoted {
					return "", false, &ExpectedClosingQuoteError{Close: end}
				}
				// The trailing lone backslash is dropped and the word is
				// returned as accumulated, without stripping.
				return string(result), true, nil
			}
			if esc, matched := v.matchEscape(quot, isQuoted, start, end, next); matched {
				v.index += utf8.RuneCountInString(esc) - 1
				result = append(result, []rune(esc)...)
			} else {
				// Not an escapable string: keep the backslash literally
				// and re-process the following rune.
				v.Undo()
				result = append(result, current)
			}
			continue
		}

		if !isQuoted {
			if key, found := quot.matchKey(v.buf, v.index); found {
				return "", false, &UnexpectedQuoteError{Quote: key}
			}
		}

		if isQuoted && runesHavePrefix(v.buf, v.index, end) {
			v.index += utf8.RuneCountInString(end) - 1
			next := v.Get()
			if next != EOF && !v.IsSeparator(next) {
				return "", false, &InvalidEndOfQuotedStringError{Char: next}
			}
			return string(result), true, nil
		}

		if !isQuoted && v.IsSeparator(current) {
			return v.finishWord(result), true, nil
		}

		result = append(result, current)
	}
	return "", false, nil
}

// matchEscape matches the longest escapable string at the cursor, which
// sits on the rune following a backslash. Quoted words may escape their
// own opening and closing strings only; unquoted words may escape any
// string of the active quote table, or a separator rune.
func (v *View) matchEscape(quot *Quotation, isQuoted bool, start, end string, next rune) (string, bool) {
	if isQuoted {
		esc := ""
		for _, candidate := range []string{start, end} {
			if len(candidate) > len(esc) && runesHavePrefix(v.buf, v.index, candidate) {
				esc = candidate
			}
		}
		return esc, esc != ""
	}
	if key, ok := quot.matchKey(v.buf, v.index); ok {
		return key, true
	}
	if v.IsSeparator(next) {
		return string(next), true
	}
	return "", false
}

// finishWord joins an unquoted word, stripping surrounding whitespace
// when the separator asks for it.
func (v *View) finishWord(result []rune) string {
	word := string(result)
	if v.sep.stripWS {
		word = strings.TrimSpace(word)
	}
	return word
}
