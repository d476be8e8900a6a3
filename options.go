package switchboard

// Request defaults.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
)

// Options contains configuration for a completion request.
type Options struct {
	// Provider is "auto" (or empty) to use the active provider, or an explicit identifier.
	Provider    string
	Model       string
	MaxTokens   int
	Temperature *float64
}

// Option is a functional option for configuring completion requests.
type Option func(*Options)

// WithProvider selects a provider by identifier, or "auto".
func WithProvider(provider string) Option {
	return func(o *Options) {
		o.Provider = provider
	}
}

// WithModel sets the model to use for the request.
// The name is passed to the provider verbatim.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithTemperature sets the sampling temperature (0.0 to 1.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithDefaults returns a copy of o with the request defaults filled in:
// provider "auto", temperature 0.7 and 2000 max tokens.
func (o Options) WithDefaults() Options {
	if o.Provider == "" {
		o.Provider = ProviderAuto
	}
	if o.Temperature == nil {
		t := DefaultTemperature
		o.Temperature = &t
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	return o
}
