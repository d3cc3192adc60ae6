package argview

import "fmt"

// EOF is returned by rune-level primitives once the buffer is exhausted.
const EOF rune = -1

// A View is a cursor over a raw argument string.
//
// A View is constructed once per input, consumed by repeated primitive or
// word-extraction calls, and discarded. It is not safe for concurrent
// use. The Separator and Quotation values it is configured with are
// immutable and may be shared between any number of views.
type View struct {
	buf   []rune
	index int
	end   int
	prev  int
	sep   Separator
	quot  *Quotation
}

// New returns a View over buffer.
//
// Words are split on whitespace and stripped unless WithSeparator says
// otherwise, and quoting uses DefaultQuotation unless WithQuotation
// installs a custom table.
func New(buffer string, options ...Option) *View {
	v := &View{
		buf: []rune(buffer),
		sep: DefaultSeparator,
	}
	v.end = len(v.buf)
	for _, option := range options {
		option(v)
	}
	return v
}

// Separator returns the separator rules the view splits words on.
func (v *View) Separator() Separator { return v.sep }

// Quotation returns the active quote table: the installed custom
// Quotation, or DefaultQuotation.
func (v *View) Quotation() *Quotation {
	if v.quot != nil {
		return v.quot
	}
	return DefaultQuotation
}

// Index returns the cursor position as a rune offset into the buffer. It
// may exceed Len after primitives advance past the end of the buffer.
func (v *View) Index() int { return v.index }

// Previous returns the single-level undo checkpoint: the cursor position
// recorded by the last mutating call.
func (v *View) Previous() int { return v.prev }

// Len returns the length of the buffer in runes.
func (v *View) Len() int { return v.end }

// EOF reports whether the buffer is exhausted.
func (v *View) EOF() bool { return v.index >= v.end }

// Current returns the rune under the cursor without consuming it, or EOF
// at the end of the buffer.
func (v *View) Current() rune {
	if v.EOF() {
		return EOF
	}
	return v.buf[v.index]
}

// IsSeparator reports whether r delimits words under the view's
// separator.
func (v *View) IsSeparator(r rune) bool { return v.sep.isSeparator(r) }

// IsSpace reports whether r is skippable spacing between words: any
// whitespace for the default separator, or a custom key, plus whitespace
// when the separator strips it.
func (v *View) IsSpace(r rune) bool { return v.sep.isSpace(r) }

// Undo rewinds the cursor to the checkpoint recorded by the last mutating
// call. The checkpoint is kept, so a second consecutive Undo is a no-op.
func (v *View) Undo() {
	v.index = v.prev
}

// SkipSpace advances past the run of spacing runes under the cursor and
// reports whether the cursor moved. The checkpoint is recorded even when
// nothing is skipped.
func (v *View) SkipSpace() bool {
	pos := 0
	for v.index+pos < v.end && v.IsSpace(v.buf[v.index+pos]) {
		pos++
	}
	v.prev = v.index
	v.index += pos
	return v.prev != v.index
}

// SkipString consumes the literal string s if the buffer at the cursor
// starts with it, and reports whether it did. The cursor and checkpoint
// are untouched on a failed match.
func (v *View) SkipString(s string) bool {
	n := 0
	for _, r := range s {
		if v.index+n >= v.end || v.buf[v.index+n] != r {
			return false
		}
		n++
	}
	v.prev = v.index
	v.index += n
	return true
}

// Read consumes and returns up to n runes.
func (v *View) Read(n int) string {
	if n < 0 {
		n = 0
	}
	result := v.slice(v.index, v.index+n)
	v.prev = v.index
	v.index += n
	return result
}

// ReadRest consumes and returns the remainder of the buffer.
func (v *View) ReadRest() string {
	result := v.slice(v.index, v.end)
	v.prev = v.index
	v.index = v.end
	return result
}

// Get advances the cursor by one and returns the rune one position ahead
// of where the cursor was before the call, or EOF when that position is
// past the end of the buffer. The cursor advances unconditionally, even
// at the end of the buffer.
func (v *View) Get() rune {
	r := EOF
	if v.index+1 < v.end {
		r = v.buf[v.index+1]
	}
	v.prev = v.index
	v.index++
	return r
}

// GetWord consumes and returns the run of runes from the cursor up to the
// next separator or the end of the buffer.
func (v *View) GetWord() string {
	pos := 0
	for v.index+pos < v.end && !v.IsSeparator(v.buf[v.index+pos]) {
		pos++
	}
	v.prev = v.index
	result := v.slice(v.index, v.index+pos)
	v.index += pos
	return result
}

func (v *View) String() string {
	return fmt.Sprintf("View{index: %d, prev: %d, end: %d}", v.index, v.prev, v.end)
}

// slice returns buf[lo:hi) clamped to the buffer, as a string.
func (v *View) slice(lo, hi int) string {
	if lo < 0 {
		lo = 0
	}
	if lo > v.end {
		lo = v.end
	}
	if hi > v.end {
		hi = v.end
	}
	if hi < lo {
		hi = lo
	}
	return string(v.buf[lo:hi])
}
