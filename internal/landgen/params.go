package landgen

import "errors"

// ErrInvalidParameters is returned when zero and basic codes coincide.
var ErrInvalidParameters = errors.New("landgen: invalid generation parameters")

// Parameters tune a generation run. Zero is the code written for empty
// space and Basic the code for land; both are typed by the target bitmap,
// so a code range cannot be paired with the wrong element width.
type Parameters[T Code] struct {
	Zero  T
	Basic T

	// DistanceDivisor bounds outline roughness: larger values give
	// smaller displacements. Values below 1 are treated as 1.
	DistanceDivisor int

	SkipDistort bool
	SkipBezier  bool
}

// NewParameters mirrors the positional constructor used at call sites.
func NewParameters[T Code](zero, basic T, distanceDivisor int, skipDistort, skipBezier bool) Parameters[T] {
	return Parameters[T]{
		Zero:            zero,
		Basic:           basic,
		DistanceDivisor: distanceDivisor,
		SkipDistort:     skipDistort,
		SkipBezier:      skipBezier,
	}
}

func (p Parameters[T]) divisor() int {
	if p.DistanceDivisor < 1 {
		return 1
	}
	return p.DistanceDivisor
}
