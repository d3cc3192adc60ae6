package argview

import "fmt"

// UnexpectedQuoteError is returned when an unquoted word runs into an
// unescaped quote string.
type UnexpectedQuoteError struct {
	// Quote is the offending opening or closing quote string.
	Quote string
}

func (e *UnexpectedQuoteError) Error() string {
	return fmt.Sprintf("unexpected quote mark %q in non-quoted string", e.Quote)
}

// InvalidEndOfQuotedStringError is returned when the closing quote of a
// quoted word is followed by something other than a separator or the end
// of the buffer.
type InvalidEndOfQuotedStringError struct {
	// Char is the rune found after the closing quote.
	Char rune
}

func (e *InvalidEndOfQuotedStringError) Error() string {
	return fmt.Sprintf("expected a separator after closing quotation, not %q", e.Char)
}

// ExpectedClosingQuoteError is returned when the buffer ends before a
// quoted word's closing quote.
type ExpectedClosingQuoteError struct {
	// Close is the closing string that was expected.
	Close string
}

func (e *ExpectedClosingQuoteError) Error() string {
	return fmt.Sprintf("expected closing %s", e.Close)
}
