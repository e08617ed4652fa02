package naru

import "sync/atomic"

var (
	defaultRaiseError atomic.Bool
	defaultRecursive  atomic.Bool
)

func init() {
	defaultRaiseError.Store(true)
}

// SetRaiseError sets the package default for WithRaiseError. It starts true.
func SetRaiseError(b bool) {
	defaultRaiseError.Store(b)
}

// SetRecursive sets the package default for WithRecursive. It starts false.
func SetRecursive(b bool) {
	defaultRecursive.Store(b)
}

// Config is the resolved per-call behavior of an operation.
type Config struct {
	// Recursive descends into container elements before transforming the
	// outer container.
	Recursive bool `json:"recursive" yaml:"recursive"`

	// RaiseError reports unsupported elements and failed splits as errors.
	// When false they are kept unchanged or fall back to the item itself.
	RaiseError bool `json:"raise_error" yaml:"raise_error"`

	// ReturnLast makes text cleave split on the last divider instead of the first.
	ReturnLast bool `json:"return_last" yaml:"return_last"`

	// AllowEmpty lets cleave return an empty part.
	AllowEmpty bool `json:"allow_empty" yaml:"allow_empty"`
}

// Defaults returns the Config every call starts from.
func Defaults() Config {
	return Config{
		Recursive:  defaultRecursive.Load(),
		RaiseError: defaultRaiseError.Load(),
		ReturnLast: true,
	}
}

// Options returns c as a list of Options, so a Config loaded from a file can
// be passed to any operation.
func (c Config) Options() []Option {
	return []Option{
		WithRecursive(c.Recursive),
		WithRaiseError(c.RaiseError),
		WithReturnLast(c.ReturnLast),
		WithAllowEmpty(c.AllowEmpty),
	}
}

// Option adjusts a Config for a single call.
type Option func(*Config)

// WithRecursive overrides the recursion default.
func WithRecursive(b bool) Option {
	return func(c *Config) { c.Recursive = b }
}

// WithRaiseError overrides the raise-error default.
func WithRaiseError(b bool) Option {
	return func(c *Config) { c.RaiseError = b }
}

// WithReturnLast chooses the last (true) or first (false) divider for text cleave.
func WithReturnLast(b bool) Option {
	return func(c *Config) { c.ReturnLast = b }
}

// WithAllowEmpty lets cleave produce an empty part instead of failing.
func WithAllowEmpty(b bool) Option {
	return func(c *Config) { c.AllowEmpty = b }
}

func newConfig(opts []Option) Config {
	c := Defaults()
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	return c
}
