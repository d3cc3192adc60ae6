package argview

// ReadAll extracts every remaining word from the view, skipping spacing
// between words. On a lexical error the words extracted so far are
// returned along with it, and the cursor is left where extraction failed.
func ReadAll(v *View) ([]string, error) {
	var words []string
	for {
		v.SkipSpace()
		word, ok, err := v.GetQuotedWord()
		if err != nil {
			return words, err
		}
		if !ok {
			return words, nil
		}
		words = append(words, word)
	}
}

// Split splits input into words under the given options.
//
// eg.
//
//	words, err := argview.Split(`rename "old name" "new name"`)
func Split(input string, options ...Option) ([]string, error) {
	return ReadAll(New(input, options...))
}
