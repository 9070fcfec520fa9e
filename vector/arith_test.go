package vector_test

import (
	"testing"

	"github.com/katalvlaran/vecmath/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     vector.Vector
		expected vector.Vector
	}{
		{"Simple", vector.New(1, 2), vector.New(3, 4), vector.New(4, 6)},
		{"Mixed", vector.New(1, -1, 2), vector.New(-1, 1, 0.5), vector.New(0, 0, 2.5)},
		{"Single", vector.New(2), vector.New(3), vector.New(5)},
		{"Empty", vector.New(), vector.New(), vector.New()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vector.Add(tt.a, tt.b)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v want %v", got, tt.expected)
		})
	}
}

// TestAdd_DoesNotMutateOperands ensures results live in fresh storage.
func TestAdd_DoesNotMutateOperands(t *testing.T) {
	a := vector.New(1, 2)
	b := vector.New(3, 4)
	_, err := vector.Add(a, b)
	require.NoError(t, err)
	_, err = vector.Sub(a, b)
	require.NoError(t, err)
	_ = vector.Scale(10, a)
	_ = vector.Neg(b)

	assert.Equal(t, []float64{1, 2}, a.Components())
	assert.Equal(t, []float64{3, 4}, b.Components())
}

func TestSub(t *testing.T) {
	got, err := vector.Sub(vector.New(5, 7, 9), vector.New(4, 5, 6))
	require.NoError(t, err)
	assert.True(t, vector.New(1, 2, 3).Equal(got), "got %v", got)

	// Sub(a, b) must agree with Add(a, Neg(b)).
	a := vector.New(0.1, -2.75, 1e9)
	b := vector.New(0.3, 4.5, -1e-9)
	viaSub, err := vector.Sub(a, b)
	require.NoError(t, err)
	viaAdd, err := vector.Add(a, vector.Neg(b))
	require.NoError(t, err)
	assert.True(t, viaSub.Equal(viaAdd), "sub=%v add(neg)=%v", viaSub, viaAdd)
}

func TestNeg(t *testing.T) {
	assert.True(t, vector.New(-1, 2, -3, 0).Equal(vector.Neg(vector.New(1, -2, 3, 0))))
	assert.Equal(t, 0, vector.Neg(vector.New()).Dim())
}

// TestNeg_AllComponents checks negation beyond two dimensions and its
// agreement with Scale(-1, v).
func TestNeg_AllComponents(t *testing.T) {
	v := vector.New(1.5, -2, 3e100, -4e-100, 0, 6, -7)
	got := vector.Neg(v)
	require.Equal(t, v.Dim(), got.Dim())

	for i, c := range v.Components() {
		x, err := got.At(i)
		require.NoError(t, err)
		assert.Equal(t, -c, x, "component %d", i)
	}
	assert.True(t, got.Equal(vector.Scale(-1, v)))

	sum, err := vector.Add(v, got)
	require.NoError(t, err)
	assert.True(t, sum.Equal(vector.Zero(v.Dim())))
}

// TestScale covers all n components, not just the first two.
func TestScale(t *testing.T) {
	tests := []struct {
		name     string
		s        float64
		v        vector.Vector
		expected vector.Vector
	}{
		{"Double", 2, vector.New(1, 2, 3, 4), vector.New(2, 4, 6, 8)},
		{"Negative", -1, vector.New(1, -2, 3), vector.New(-1, 2, -3)},
		{"Zero", 0, vector.New(1, 2, 3), vector.New(0, 0, 0)},
		{"Half", 0.5, vector.New(1, 3), vector.New(0.5, 1.5)},
		{"Empty", 3, vector.New(), vector.New()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vector.Scale(tt.s, tt.v)
			assert.True(t, tt.expected.Equal(got), "got %v want %v", got, tt.expected)
		})
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     vector.Vector
		expected float64
	}{
		{"Simple", vector.New(1, 2, 3), vector.New(4, 5, 6), 32},
		{"Orthogonal", vector.New(1, 0), vector.New(0, 1), 0},
		{"Mixed", vector.New(1, -1, 2), vector.New(1, 1, -2), -4},
		{"Empty", vector.New(), vector.New(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vector.Dot(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

// TestBinaryOps_DimMismatch verifies no binary op truncates or pads.
func TestBinaryOps_DimMismatch(t *testing.T) {
	pairs := [][2]vector.Vector{
		{vector.New(1, 2), vector.New(1, 2, 3)},
		{vector.New(1, 2, 3), vector.New(1)},
		{vector.New(), vector.New(0)},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]

		sum, err := vector.Add(a, b)
		assert.ErrorIs(t, err, vector.ErrDimensionMismatch, "Add(%v,%v)", a, b)
		assert.Equal(t, 0, sum.Dim())

		_, err = vector.Sub(a, b)
		assert.ErrorIs(t, err, vector.ErrDimensionMismatch, "Sub(%v,%v)", a, b)

		_, err = vector.Dot(a, b)
		assert.ErrorIs(t, err, vector.ErrDimensionMismatch, "Dot(%v,%v)", a, b)

		_, err = vector.Angle(a, b)
		assert.ErrorIs(t, err, vector.ErrDimensionMismatch, "Angle(%v,%v)", a, b)
	}
}

// TestDimMismatch_ErrorNamesOperation checks the wrapping context.
func TestDimMismatch_ErrorNamesOperation(t *testing.T) {
	_, err := vector.Add(vector.New(1), vector.New(1, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Add")
	assert.Contains(t, err.Error(), "(1,2)")
}
