package spectrum

import (
	"fmt"

	"github.com/tahe0203/machinevision-toolbox/color/interp"
)

// Config controls how tabulated data is brought onto a target axis.
type Config struct {
	Method        interp.Method
	Extrapolation interp.Extrapolation
	SearchPath    []string

	searchPathSet bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns linear interpolation with zero fill outside the
// tabulated range, searching [DefaultSearchPath].
func DefaultConfig() Config {
	return Config{
		Method:        interp.Linear,
		Extrapolation: interp.Zero,
	}
}

// WithMethod sets the interpolation method.
func WithMethod(m interp.Method) Option {
	return func(cfg *Config) {
		cfg.Method = m
	}
}

// WithExtrapolation sets the fill used outside the tabulated range.
func WithExtrapolation(e interp.Extrapolation) Option {
	return func(cfg *Config) {
		cfg.Extrapolation = e
	}
}

// WithSearchPath replaces the directories searched for tables. Calling it
// with no arguments restricts lookup to paths and the embedded set.
func WithSearchPath(dirs ...string) Option {
	return func(cfg *Config) {
		cfg.SearchPath = append([]string(nil), dirs...)
		cfg.searchPathSet = true
	}
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.searchPathSet {
		cfg.SearchPath = DefaultSearchPath()
	}
	return cfg
}

// Load reads the table called name and interpolates it onto lambda
// (metres). The result has one row per element of lambda, whose values it
// reproduces exactly, and one column per tabulated channel.
func Load(lambda []float64, name string, opts ...Option) (*Spectrum, error) {
	if len(lambda) == 0 {
		return nil, ErrEmptyAxis
	}

	cfg := applyOptions(opts...)
	src, err := Read(name, cfg.SearchPath)
	if err != nil {
		return nil, err
	}
	return resample(src, lambda, cfg)
}

// Resample interpolates s onto lambda. Only the interpolation options are
// consulted.
func Resample(s *Spectrum, lambda []float64, opts ...Option) (*Spectrum, error) {
	if len(lambda) == 0 {
		return nil, ErrEmptyAxis
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return resample(s, lambda, cfg)
}

func resample(s *Spectrum, lambda []float64, cfg Config) (*Spectrum, error) {
	tab, err := interp.NewTable(s.Lambda, s.Columns(),
		interp.WithMethod(cfg.Method),
		interp.WithExtrapolation(cfg.Extrapolation),
	)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %s: %w", s.Name, err)
	}

	return &Spectrum{
		Name:   s.Name,
		Lambda: append([]float64(nil), lambda...),
		S:      tab.Resample(lambda),
	}, nil
}
