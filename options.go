package nerdfont

// DecorateOptions holds options for a decoration pass.
type DecorateOptions struct {
	Markdown bool
	Coverage Coverage
	Config   *Config

	// combineSurrogates overrides Config.CombineSurrogates when set.
	combineSurrogates *bool
}

// Option is a function that configures DecorateOptions.
type Option func(*DecorateOptions)

// WithMarkdown restricts scanning to code spans and code blocks of a Markdown document.
func WithMarkdown(enable bool) Option {
	return func(opts *DecorateOptions) {
		opts.Markdown = enable
	}
}

// WithCoverage requires every accepted glyph to be present in c.
func WithCoverage(c Coverage) Option {
	return func(opts *DecorateOptions) {
		opts.Coverage = c
	}
}

// WithCombineSurrogates sets whether surrogate pairs are tested as one code point.
func WithCombineSurrogates(enable bool) Option {
	return func(opts *DecorateOptions) {
		opts.combineSurrogates = &enable
	}
}

// WithConfig sets a custom Config.
func WithConfig(config *Config) Option {
	return func(opts *DecorateOptions) {
		opts.Config = config
	}
}

// defaultDecorateOptions returns the default decoration options.
func defaultDecorateOptions() *DecorateOptions {
	return &DecorateOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *DecorateOptions {
	options := defaultDecorateOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	return options
}

// CombineSurrogates reports the effective surrogate handling.
func (o *DecorateOptions) CombineSurrogates() bool {
	if o.combineSurrogates != nil {
		return *o.combineSurrogates
	}
	return o.Config.CombineSurrogates
}
