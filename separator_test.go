package argview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSeparatorValidation(t *testing.T) {
	_, err := NewSeparator("", true)
	require.Error(t, err)

	_, err = NewSeparator("ab", true)
	require.Error(t, err)
}

func TestSeparatorKey(t *testing.T) {
	sep, err := NewSeparator("|", false)
	require.NoError(t, err)
	key, ok := sep.Key()
	require.True(t, ok)
	require.Equal(t, "|", key)
	require.False(t, sep.StripsWhitespace())

	key, ok = DefaultSeparator.Key()
	require.False(t, ok)
	require.Equal(t, "", key)
	require.True(t, DefaultSeparator.StripsWhitespace())
}

func TestSeparatorPredicates(t *testing.T) {
	require.True(t, DefaultSeparator.isSeparator(' '))
	require.True(t, DefaultSeparator.isSpace('\t'))
	require.False(t, DefaultSeparator.isSeparator('|'))

	strip := MustSeparator(NewSeparator("|", true))
	require.True(t, strip.isSeparator('|'))
	require.False(t, strip.isSeparator(' '))
	require.True(t, strip.isSpace(' '))
	require.True(t, strip.isSpace('|'))

	keep := MustSeparator(NewSeparator("|", false))
	require.False(t, keep.isSpace(' '))
	require.True(t, keep.isSpace('|'))
}

func TestSeparatorMultiByteKey(t *testing.T) {
	sep, err := NewSeparator("«", true)
	require.NoError(t, err)
	require.True(t, sep.isSeparator('«'))
	require.False(t, sep.isSeparator('»'))
}

// The zero value splits on whitespace without stripping it from words.
func TestSeparatorZeroValue(t *testing.T) {
	var sep Separator
	require.True(t, sep.isSeparator(' '))
	require.False(t, sep.StripsWhitespace())
}

func TestSeparatorString(t *testing.T) {
	require.Equal(t, "Separator{whitespace, strip: true}", DefaultSeparator.String())
	sep := MustSeparator(NewSeparator(",", false))
	require.Equal(t, `Separator{key: ",", strip: false}`, sep.String())
}
