package argview

// An Option to modify the behaviour of a View.
type Option func(v *View)

// WithSeparator is an Option that sets the separator words are split on.
//
// eg.
//
//	sep := argview.MustSeparator(argview.NewSeparator("|", false))
//	view := argview.New("a | b", argview.WithSeparator(sep))
func WithSeparator(sep Separator) Option {
	return func(v *View) { v.sep = sep }
}

// WithQuotation is an Option that installs a custom quote table, replacing
// DefaultQuotation entirely. Quote characters outside the table lose their
// meaning.
func WithQuotation(q *Quotation) Option {
	return func(v *View) { v.quot = q }
}
