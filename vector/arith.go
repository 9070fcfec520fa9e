package vector

import "gonum.org/v1/gonum/floats"

// Add returns the component-wise sum a + b.
//
// Stage 1 (Validate): a.Dim() == b.Dim().
// Stage 2 (Execute): write a_i + b_i into fresh storage.
//
// Errors: wrapped ErrDimensionMismatch.
// Complexity: O(n) time and memory.
func Add(a, b Vector) (Vector, error) {
	if err := ValidateSameDim(a, b); err != nil {
		return Vector{}, validatorErrorf("Add", err)
	}
	if a.Dim() == 0 {
		return Vector{}, nil
	}

	return Vector{c: floats.AddTo(make([]float64, a.Dim()), a.c, b.c)}, nil
}

// Sub returns the component-wise difference a - b, i.e. Add(a, Neg(b)).
//
// Errors: wrapped ErrDimensionMismatch.
// Complexity: O(n) time and memory.
func Sub(a, b Vector) (Vector, error) {
	if err := ValidateSameDim(a, b); err != nil {
		return Vector{}, validatorErrorf("Sub", err)
	}
	if a.Dim() == 0 {
		return Vector{}, nil
	}

	// a_i - b_i is bitwise identical to a_i + (-b_i) in IEEE-754.
	return Vector{c: floats.SubTo(make([]float64, a.Dim()), a.c, b.c)}, nil
}

// Neg returns the component-wise negation -v over all n components.
func Neg(v Vector) Vector {
	if v.Dim() == 0 {
		return Vector{}
	}

	return Vector{c: floats.ScaleTo(make([]float64, v.Dim()), -1, v.c)}
}

// Scale returns s·v, scaling every component by s.
//
// The scalar always comes first; there is deliberately no vector×scalar
// form, and vector×vector is Dot.
// Complexity: O(n) time and memory.
func Scale(s float64, v Vector) Vector {
	if v.Dim() == 0 {
		return Vector{}
	}

	return Vector{c: floats.ScaleTo(make([]float64, v.Dim()), s, v.c)}
}

// Dot returns the scalar product Σ a_i·b_i.
//
// Errors: wrapped ErrDimensionMismatch.
// Complexity: O(n), no allocation.
func Dot(a, b Vector) (float64, error) {
	if err := ValidateSameDim(a, b); err != nil {
		return 0, validatorErrorf("Dot", err)
	}
	if a.Dim() == 0 {
		return 0, nil
	}

	return floats.Dot(a.c, b.c), nil
}
