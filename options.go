package importmap

// Option configures validation.
type Option func(*Options)

// Options holds configuration for a validation pass.
type Options struct {
	// Source is the original JSON document the input was decoded from.
	// When set, issues are enriched with line and column positions.
	Source []byte

	// MaxErrors limits how many issues are retained (0 = unlimited).
	// The validity flag is unaffected; it reflects every violation found.
	MaxErrors int
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		MaxErrors: 0,
	}
}

// WithSource attaches the original JSON source so issues gain line and
// column information.
func WithSource(data []byte) Option {
	return func(o *Options) {
		o.Source = data
	}
}

// WithMaxErrors sets the maximum number of issues to retain.
// Use 0 for unlimited.
func WithMaxErrors(max int) Option {
	return func(o *Options) {
		if max >= 0 {
			o.MaxErrors = max
		}
	}
}
