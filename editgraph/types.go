package editgraph

import (
	"errors"
)

// Sentinel errors of the editgraph engine.
var (
	// ErrInvalidBeam describes a negative EditBeam supplied to WithEditBeam.
	// It is not returned: WithEditBeam panics with this error's message.
	// Negative bands are not meaningful.
	ErrInvalidBeam = errors.New("editgraph: edit beam must be non-negative")

	// ErrBeamExhausted indicates that the search frontier emptied before the
	// goal node (len(A), len(B)) was reached. This can only happen when an
	// EditBeam is configured and every path to the goal leaves the beam
	// while both sequences are still interior, for example when the length
	// difference exceeds the beam, or when no equal elements or allowed
	// substitutions keep a path on the diagonal band.
	ErrBeamExhausted = errors.New("editgraph: no alignment within beam")

	// ErrNegativeCost indicates that InsCost or DelCost returned a negative
	// value for a pair the policy did not report as equal. Per the cost
	// policy contract, only SubCost may report non-positive values (and
	// only to signal equality); a negative insertion or deletion cost makes
	// the search's non-negative-edge assumption unsound.
	ErrNegativeCost = errors.New("editgraph: cost policy returned a negative ins/del cost")
)

// Cost is the set of numeric types usable as the accumulated cost of an
// edit script. Any signed integer or floating-point type works; unsigned
// types are excluded because intermediate Δcost computation during path
// reconstruction can require representing zero cleanly against a type with
// a natural zero and ordering.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// CostPolicy supplies the per-element costs that define the edit graph's
// edges. A is the element type of the source sequence, B the element type
// of the target sequence, C the cost type.
//
// SubCost doubles as the equality predicate: a return value ≤ 0 means "a and
// b are equal" (no substitution needed, the diagonal edge is free and
// eligible for equal-run compression); a return value > 0 means "a and b
// differ by this substitution cost" (the diagonal edge is only generated
// when Config.AllowSub is true).
//
// Implementations must not return a negative value from InsCost or DelCost;
// doing so makes results undefined (ErrNegativeCost is returned when this
// implementation is able to detect it, but it cannot prove the absence of
// ill-formed policies in general).
type CostPolicy[A, B any, C Cost] interface {
	InsCost(b B) C
	DelCost(a A) C
	SubCost(a A, b B) C
}

// Sink receives the edit script emitted by Align, one call per edit, in
// forward order along the optimal path. Implementations must tolerate any
// interleaving consistent with a valid edit script; no return value is
// consulted.
type Sink[A, B any, C Cost] interface {
	// Eql records a matched pair; a equals b by the cost policy's definition.
	Eql(a A, b B)
	// Ins records inserting b from B with incremental cost c.
	Ins(b B, c C)
	// Del records deleting a from A with incremental cost c.
	Del(a A, c C)
	// Sub records substituting a for b with incremental cost c.
	Sub(a A, b B, c C)
}

// Config controls the behavior of Distance and Align.
type Config struct {
	// AllowSub permits substitution edges. If false (the default), the only
	// way the diagonal is taken is when SubCost reports equality; a
	// non-equal diagonal pair is never turned into a sub edit, and the
	// engine falls back to an insert+delete pair instead.
	AllowSub bool

	// EditBeam, if non-nil, discards positions (i, j) with |i-j| > *EditBeam
	// from the frontier, except at sequence boundaries (see search.go). Nil
	// means unbounded search.
	EditBeam *int

	// CostBeam is reserved for future cost-based pruning and is
	// intentionally unused here — see DESIGN.md for the decision record.
	CostBeam *int
}

// Option configures a Config via functional options.
type Option func(*Config)

// WithSub enables substitution edges (Config.AllowSub = true).
func WithSub() Option {
	return func(c *Config) {
		c.AllowSub = true
	}
}

// WithEditBeam bounds the search to positions within beam of the main
// diagonal. Panics if beam is negative.
func WithEditBeam(beam int) Option {
	if beam < 0 {
		panic(ErrInvalidBeam.Error())
	}
	return func(c *Config) {
		c.EditBeam = &beam
	}
}

// DefaultConfig returns a Config with substitution disabled and no beam.
func DefaultConfig() Config {
	return Config{
		AllowSub: false,
		EditBeam: nil,
		CostBeam: nil,
	}
}

// NewConfig builds a Config from DefaultConfig, applying opts in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
