// SPDX-License-Identifier: MIT

package vector

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is an ordered, fixed-length sequence of float64 components.
//
// The backing slice is never exposed: constructors copy their input and
// Components returns a copy, so a Vector cannot change after construction
// and is safe to share between goroutines.
//
// The zero value is the zero-length vector (Dim()==0, Norm()==0).
type Vector struct {
	c []float64 // components, len == dimensionality
}

// New builds a Vector from the given components, in order.
// The components are copied, so New(s...) does not alias s.
// Zero components is legal and yields the zero-length vector.
func New(components ...float64) Vector {
	return FromSlice(components)
}

// FromSlice builds a Vector holding a copy of s.
func FromSlice(s []float64) Vector {
	if len(s) == 0 {
		return Vector{}
	}
	c := make([]float64, len(s))
	copy(c, s)

	return Vector{c: c}
}

// Zero returns the n-dimensional zero vector. n ≤ 0 yields the zero-length vector.
func Zero(n int) Vector {
	if n <= 0 {
		return Vector{}
	}

	return Vector{c: make([]float64, n)}
}

// Dim returns the dimensionality (number of components).
// Complexity: O(1).
func (v Vector) Dim() int {
	return len(v.c)
}

// At returns the i-th component.
// Errors: wrapped ErrOutOfRange when i ∉ [0, Dim()).
func (v Vector) At(i int) (float64, error) {
	if err := ValidateIndex(v, i); err != nil {
		return 0, validatorErrorf("Vector.At", err)
	}

	return v.c[i], nil
}

// Components returns a copy of the components; mutating it does not affect v.
func (v Vector) Components() []float64 {
	out := make([]float64, len(v.c))
	copy(out, v.c)

	return out
}

// Norm returns the Euclidean (L2) norm sqrt(Σ c_i²).
// Never negative; zero iff every component is zero (including Dim()==0).
// Complexity: O(n).
func (v Vector) Norm() float64 {
	if len(v.c) == 0 {
		return 0
	}

	return floats.Norm(v.c, 2)
}

// IsZero reports whether v has zero norm.
func (v Vector) IsZero() bool {
	return v.Norm() == 0
}

// Bool is the truthiness of v: true iff Norm() != 0.
func (v Vector) Bool() bool {
	return !v.IsZero()
}

// Equal reports whether v and w have identical components.
// Vectors of differing dimensionality are never equal.
func (v Vector) Equal(w Vector) bool {
	return Equal(v, w)
}

// Equal reports whether a and b have the same length and equal components.
func Equal(a, b Vector) bool {
	if a.Dim() != b.Dim() {
		return false
	}

	return floats.Equal(a.c, b.c)
}

// ApproxEqual reports whether a and b have the same length and every pair of
// components agrees within the configured tolerance (WithEpsilon, absolute
// or relative). Defaults to DefaultEpsilon. Angle-unit options are ignored.
func ApproxEqual(a, b Vector, opts ...Option) bool {
	if a.Dim() != b.Dim() {
		return false
	}
	o := gatherOptions(opts...)

	return floats.EqualApprox(a.c, b.c, o.eps)
}

// String implements fmt.Stringer, e.g. "Vector(1, 2.5, -3)".
// Complexity: O(n).
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector(")
	for i, x := range v.c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}
