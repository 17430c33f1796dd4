package config

import (
	"errors"
	"fmt"
)

// Sentinel errors Validate can return.
var (
	ErrBadDimension  = errors.New("config: Dim must be 2 or 3")
	ErrBadTimeStep   = errors.New("config: TimeStep must be > 0")
	ErrBadNbhdRadius = errors.New("config: NbhdRadius must be > 0")
	ErrBadThreads    = errors.New("config: ThreadCount must be >= 1")
	ErrBadCutoff     = errors.New("config: CutoffPrecision must be > 0")
)

// Config holds every tunable of spec.md §6's configuration table. Values
// read directly off Default(), then overridden by Option, then validated
// once by Validate before the driver starts.
type Config struct {
	Dim int

	ThreadCount     int
	MaxIterations   int
	TimeStep        float64
	CutoffPrecision float64

	NbhdRadius float64
	EqDistance float64
	NodeRadius float64
	Mass       float64
	OuterRadius float64 // 0 means "unset, use n^(1/D) at run time"

	PlacementDistance float64 // < 0 means "use the dimension-aware formula"
	PlacementRadius   float64

	CasualSpringConstant  float64
	SpecialSpringConstant float64
	EllipseFactors        []float64

	WriteInterval int

	PlaceLeafsClose        bool
	LayoutTreeOnly         bool
	UseOriginalWeights     bool
	DisregardDisconnected  bool
	Silent                 bool

	Root string // empty means "compute the 1-median"
}

// Option mutates a Config during construction.
type Option func(*Config)

// Default returns the Config spec.md §6 documents as default, for the
// given spatial dimension (2 or 3).
func Default(dim int) Config {
	return Config{
		Dim: dim,

		ThreadCount:     1,
		MaxIterations:   250000,
		TimeStep:        0.001,
		CutoffPrecision: 1e-5,

		NbhdRadius: 1.0,
		EqDistance: 0.5,
		NodeRadius: 0.01,
		Mass:       1.0,
		OuterRadius: 0,

		PlacementDistance: -1,
		PlacementRadius:   0.1,

		CasualSpringConstant:  10.0,
		SpecialSpringConstant: 10.0,
		EllipseFactors:        nil,

		WriteInterval: 0,

		PlaceLeafsClose:       false,
		LayoutTreeOnly:        false,
		UseOriginalWeights:    false,
		DisregardDisconnected: false,
		Silent:                false,
	}
}

// New returns Default(dim) with opts applied in order.
func New(dim int, opts ...Option) Config {
	cfg := Default(dim)
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Validate reports the Configuration-class fatal errors spec.md §7 names:
// bad dimension, non-positive time step/radius/cutoff, or zero threads.
func (c Config) Validate() error {
	if c.Dim != 2 && c.Dim != 3 {
		return fmt.Errorf("%w: got %d", ErrBadDimension, c.Dim)
	}
	if c.TimeStep <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadTimeStep, c.TimeStep)
	}
	if c.NbhdRadius <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadNbhdRadius, c.NbhdRadius)
	}
	if c.ThreadCount < 1 {
		return fmt.Errorf("%w: got %d", ErrBadThreads, c.ThreadCount)
	}
	if c.CutoffPrecision <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadCutoff, c.CutoffPrecision)
	}

	return nil
}

// ForceLimit returns F_max = 0.1 * NbhdRadius / TimeStep (spec.md §4.3).
func (c Config) ForceLimit() float64 {
	return 0.1 * c.NbhdRadius / c.TimeStep
}

func WithThreadCount(n int) Option {
	return func(c *Config) { c.ThreadCount = n }
}

func WithMaxIterations(n int) Option {
	return func(c *Config) { c.MaxIterations = n }
}

func WithTimeStep(dt float64) Option {
	return func(c *Config) { c.TimeStep = dt }
}

func WithCutoffPrecision(p float64) Option {
	return func(c *Config) { c.CutoffPrecision = p }
}

func WithNbhdRadius(r float64) Option {
	return func(c *Config) { c.NbhdRadius = r }
}

func WithEqDistance(d float64) Option {
	return func(c *Config) { c.EqDistance = d }
}

func WithNodeRadius(r float64) Option {
	return func(c *Config) { c.NodeRadius = r }
}

func WithMass(m float64) Option {
	return func(c *Config) { c.Mass = m }
}

func WithOuterRadius(r float64) Option {
	return func(c *Config) { c.OuterRadius = r }
}

func WithPlacementDistance(d float64) Option {
	return func(c *Config) { c.PlacementDistance = d }
}

func WithPlacementRadius(r float64) Option {
	return func(c *Config) { c.PlacementRadius = r }
}

func WithCasualSpringConstant(k float64) Option {
	return func(c *Config) { c.CasualSpringConstant = k }
}

func WithSpecialSpringConstant(k float64) Option {
	return func(c *Config) { c.SpecialSpringConstant = k }
}

func WithEllipseFactors(f []float64) Option {
	return func(c *Config) { c.EllipseFactors = f }
}

func WithWriteInterval(n int) Option {
	return func(c *Config) { c.WriteInterval = n }
}

func WithPlaceLeafsClose(v bool) Option {
	return func(c *Config) { c.PlaceLeafsClose = v }
}

func WithLayoutTreeOnly(v bool) Option {
	return func(c *Config) { c.LayoutTreeOnly = v }
}

func WithUseOriginalWeights(v bool) Option {
	return func(c *Config) { c.UseOriginalWeights = v }
}

func WithDisregardDisconnected(v bool) Option {
	return func(c *Config) { c.DisregardDisconnected = v }
}

func WithSilent(v bool) Option {
	return func(c *Config) { c.Silent = v }
}

func WithRoot(id string) Option {
	return func(c *Config) { c.Root = id }
}
