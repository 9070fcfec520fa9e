// Package vecmath is a small, pure-Go toolkit for n-dimensional vector
// arithmetic.
//
// 🚀 What is vecmath?
//
//	A zero-surprise value type for real-valued vectors:
//		• Construction: New, FromSlice, Zero
//		• Arithmetic: Add, Sub, Neg, Scale, Dot
//		• Geometry: Norm, Cosine, Angle
//		• Comparison: Equal, ApproxEqual, Bool/IsZero truthiness
//
// ✨ Why choose vecmath?
//
//   - Immutable values – safe to share across goroutines without locks
//   - Explicit errors – dimension mismatches and degenerate angles are
//     sentinel errors, never NaN or silently truncated results
//   - One meaning per operation – Dot is Dot, Scale is Scale
//
// Under the hood, everything lives in one subpackage:
//
//	vector/ — the Vector type, arithmetic, angle and options
//
// Quick example:
//
//	a := vector.New(1, 0)
//	b := vector.New(0, 1)
//	deg, _ := vector.Angle(a, b) // 90
//
//	go get github.com/katalvlaran/vecmath/vector
package vecmath
