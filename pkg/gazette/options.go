package gazette

// Options holds the tunable parameters of a document processing pass.
// Zero values are replaced by the defaults at construction time.
type Options struct {
	// BeforeWindow is the context window size, in characters, inspected
	// before a match during disambiguation.
	BeforeWindow int

	// AfterWindow is the context window size inspected after a match.
	AfterWindow int

	// CategoryWindow is the larger after-window used for the independent
	// category designation scan; category phrases trail the citation by
	// more than a status phrase does.
	CategoryWindow int
}

// DefaultOptions returns the options used when the caller supplies none.
func DefaultOptions() Options {
	return Options{
		BeforeWindow:   200,
		AfterWindow:    200,
		CategoryWindow: 400,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.BeforeWindow <= 0 {
		o.BeforeWindow = defaults.BeforeWindow
	}
	if o.AfterWindow <= 0 {
		o.AfterWindow = defaults.AfterWindow
	}
	if o.CategoryWindow <= 0 {
		o.CategoryWindow = defaults.CategoryWindow
	}
	return o
}
