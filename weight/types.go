package weight

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Weight is satisfied by every numeric type this module's algorithms may be
// instantiated over. It deliberately excludes complex numbers: edge weights
// must be totally ordered.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Cost is a Finite(value) / Infinite sum type over a Weight, used wherever an
// algorithm needs to represent "unreachable" without relying on a sentinel
// numeric value (MaxInt64 overflows on addition; NaN breaks ordering).
//
// The zero value of Cost[W] is Infinite.
type Cost[W Weight] struct {
	value    W
	finite   bool
}

// Finite wraps a concrete weight as a reachable cost.
func Finite[W Weight](v W) Cost[W] {
	return Cost[W]{value: v, finite: true}
}

// Infinite returns the unreachable cost.
func Infinite[W Weight]() Cost[W] {
	return Cost[W]{}
}

// IsFinite reports whether c holds a concrete value.
func (c Cost[W]) IsFinite() bool { return c.finite }

// IsInfinite reports whether c represents unreachability.
func (c Cost[W]) IsInfinite() bool { return !c.finite }

// Value returns the wrapped weight and true if c is finite, or the zero
// value and false otherwise. Prefer this over Unwrap in non-panicking code.
func (c Cost[W]) Value() (W, bool) {
	return c.value, c.finite
}

// Unwrap returns the wrapped weight, panicking if c is Infinite. Mirrors the
// original algorithm's "this must be finite here or the invariant is broken"
// call sites (e.g. reading a completed vertex's distance out of the engine).
func (c Cost[W]) Unwrap() W {
	if !c.finite {
		panic("weight: Unwrap called on an Infinite Cost")
	}

	return c.value
}

// Add combines two costs: Infinite absorbs any operand.
func (c Cost[W]) Add(other Cost[W]) Cost[W] {
	if !c.finite || !other.finite {
		return Infinite[W]()
	}

	return Finite(c.value + other.value)
}

// Sub subtracts other from c: Infinite absorbs any operand.
func (c Cost[W]) Sub(other Cost[W]) Cost[W] {
	if !c.finite || !other.finite {
		return Infinite[W]()
	}

	return Finite(c.value - other.value)
}

// Less reports whether c orders strictly before other, with Infinite
// ordering strictly after every Finite value and equal to itself.
func (c Cost[W]) Less(other Cost[W]) bool {
	if c.finite && other.finite {
		return c.value < other.value
	}
	if c.finite && !other.finite {
		return true
	}

	return false
}

// String renders the cost for diagnostics, using "∞" for Infinite to match
// the original implementation's Debug format.
func (c Cost[W]) String() string {
	if !c.finite {
		return "∞"
	}

	return fmt.Sprintf("%v", c.value)
}
