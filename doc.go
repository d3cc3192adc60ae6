// Package argview splits command-line-style text into argument words. It
// is the lexical half of a command parser: it produces raw word strings
// and leaves their interpretation to the caller.
//
// A View is a cursor over a raw input string. Words are split on a
// configurable Separator (any whitespace by default) and may be quoted or
// backslash-escaped:
//
//	view := argview.New(`add "hello world" last`)
//	words, err := argview.ReadAll(view)
//	// words == []string{"add", "hello world", "last"}
//
// Quoting recognises seventeen quotation styles out of the box, from
// plain double quotes through guillemets to CJK corner brackets, and the
// table can be replaced wholesale with custom pairs, including asymmetric
// and multi-character ones:
//
//	braces := argview.MustQuotation(argview.NewQuotation(
//		argview.Pair{Start: "(", End: ")"},
//		argview.Pair{Start: "[", End: "]"},
//	))
//	view := argview.New("(a b) [c d]", argview.WithQuotation(braces))
//
// Callers needing finer control, such as matching a command-name prefix
// or grabbing the untokenized remainder of the input, use the cursor
// primitives directly and may interleave them freely with word
// extraction:
//
//	view := argview.New("say hello world")
//	name := view.GetWord() // "say"
//	rest, _ := argview.ReadAll(view)
//
// Every mutating primitive records a single-level checkpoint that Undo
// restores, which is how command parsers retry an argument with a
// different interpretation.
package argview
