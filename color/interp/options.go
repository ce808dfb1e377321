package interp

// Method selects the interpolation kernel.
type Method int

const (
	// Linear interpolates piecewise linearly.
	Linear Method = iota
	// Hermite interpolates with a cubic Hermite spline.
	Hermite
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Hermite:
		return "hermite"
	default:
		return "unknown"
	}
}

// Extrapolation selects the behaviour outside the tabulated domain.
type Extrapolation int

const (
	// Zero returns 0 outside the domain.
	Zero Extrapolation = iota
	// Clamp returns the nearest end value.
	Clamp
	// Extend continues the first or last segment linearly.
	Extend
)

// String returns the extrapolation name.
func (e Extrapolation) String() string {
	switch e {
	case Zero:
		return "zero"
	case Clamp:
		return "clamp"
	case Extend:
		return "extend"
	default:
		return "unknown"
	}
}

// Config holds the evaluation settings of a [Table].
type Config struct {
	Method        Method
	Extrapolation Extrapolation
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns linear interpolation with zero fill.
func DefaultConfig() Config {
	return Config{
		Method:        Linear,
		Extrapolation: Zero,
	}
}

// WithMethod sets the interpolation method.
func WithMethod(m Method) Option {
	return func(cfg *Config) {
		if m == Linear || m == Hermite {
			cfg.Method = m
		}
	}
}

// WithExtrapolation sets the out-of-domain behaviour.
func WithExtrapolation(e Extrapolation) Option {
	return func(cfg *Config) {
		if e >= Zero && e <= Extend {
			cfg.Extrapolation = e
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
