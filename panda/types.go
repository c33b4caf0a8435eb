package panda

import (
	"github.com/hashicorp/go-hclog"
)

// defaultMaxSteps bounds the number of subproblems the driver expands in
// one invocation. The rewriting tree of a well-posed proof is far
// smaller; the ceiling exists so an ill-posed input diverges loudly
// instead of looping.
const defaultMaxSteps = 1 << 20

// Options configures one engine invocation.
//
// MaxSteps      – driver step ceiling; exceeding it returns ErrDiverged.
// MaxResetDepth – reset-lemma recursion ceiling; 0 derives it from the
//
//	initial subproblem (|D| + |M| + |S| plus headroom).
//
// Logger        – structured tracing; hclog.NewNullLogger() by default.
type Options struct {
	MaxSteps      uint64
	MaxResetDepth int
	Logger        hclog.Logger
}

// Option is a functional option for configuring Run.
type Option func(*Options)

// WithMaxSteps sets the driver step ceiling. Must be positive; zero
// panics with ErrBadMaxSteps.
func WithMaxSteps(n uint64) Option {
	if n == 0 {
		panic(ErrBadMaxSteps.Error())
	}
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithMaxResetDepth sets the reset-lemma recursion ceiling. Zero keeps
// the derived default; negative values panic with ErrBadResetDepth.
func WithMaxResetDepth(n int) Option {
	if n < 0 {
		panic(ErrBadResetDepth.Error())
	}
	return func(o *Options) {
		o.MaxResetDepth = n
	}
}

// WithLogger routes driver tracing to l. Nil keeps the null logger.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the baseline configuration Run starts from
// before applying functional options.
func DefaultOptions() Options {
	return Options{
		MaxSteps:      defaultMaxSteps,
		MaxResetDepth: 0,
		Logger:        hclog.NewNullLogger(),
	}
}
