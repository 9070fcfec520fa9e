package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Exact powers of two used to bring a vector's norm back into range before
// normalising; scaling by them loses no precision.
const (
	liftTiny = 0x1p1000  // applied when 1/norm overflows
	dropHuge = 0x1p-1000 // applied when the norm itself overflows
)

// unit returns v/‖v‖ in fresh storage. v must have a non-zero norm.
//
// Each operand is normalised on its own, so the cosine never forms the
// product ‖a‖·‖b‖, which overflows or underflows for large or tiny components.
// A NaN or ±Inf component yields NaN entries.
func unit(v Vector) []float64 {
	c, n := v.c, v.Norm()
	switch {
	case math.IsInf(n, 1):
		c = floats.ScaleTo(make([]float64, len(c)), dropHuge, c)
		n = floats.Norm(c, 2)
	case math.IsInf(1/n, 0):
		c = floats.ScaleTo(make([]float64, len(c)), liftTiny, c)
		n = floats.Norm(c, 2)
	}

	return floats.ScaleTo(make([]float64, len(c)), 1/n, c)
}

// Cosine returns the cosine of the angle between a and b,
// Dot(a,b) / (Norm(a)·Norm(b)), clamped to [-1, 1].
//
// It is computed as the dot product of the two unit vectors, which stays
// finite for any non-zero, finite operands. Rounding can push it slightly
// outside [-1, 1] for near-parallel vectors; clamping keeps acos defined.
//
// Errors (in priority order):
//   - wrapped ErrDimensionMismatch if a.Dim() != b.Dim();
//   - wrapped ErrDegenerateAngle if either operand has zero norm;
//   - wrapped ErrNonFinite if a component is NaN or ±Inf.
func Cosine(a, b Vector) (float64, error) {
	if err := ValidateSameDim(a, b); err != nil {
		return 0, validatorErrorf("Cosine", err)
	}
	if err := ValidateNonDegenerate(a); err != nil {
		return 0, validatorErrorf("Cosine: a", err)
	}
	if err := ValidateNonDegenerate(b); err != nil {
		return 0, validatorErrorf("Cosine: b", err)
	}

	cos := floats.Dot(unit(a), unit(b))
	if math.IsNaN(cos) {
		return 0, validatorErrorf("Cosine", ErrNonFinite)
	}

	return math.Max(-1, math.Min(1, cos)), nil
}

// Angle returns the angle between a and b: arccos(Cosine(a, b)).
//
// The result is in degrees ([0, 180]) unless WithRadians is given,
// in which case it is in radians ([0, π]).
//
// Options read: WithDegrees, WithRadians. WithEpsilon has no effect here.
//
// Errors: same as Cosine; Angle never returns NaN or ±Inf with a nil error.
//
// Example:
//
//	deg, err := vector.Angle(vector.New(1, 0), vector.New(0, 1)) // 90
//	rad, err := vector.Angle(a, b, vector.WithRadians())         // π/2
func Angle(a, b Vector, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)

	cos, err := Cosine(a, b)
	if err != nil {
		return 0, validatorErrorf("Angle", err)
	}
	rad := math.Acos(cos)
	if o.unit == Radians {
		return rad, nil
	}

	return rad * 180 / math.Pi, nil
}
