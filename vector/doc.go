// Package vector provides an immutable n-dimensional Vector value type with
// the usual arithmetic and the angle between two vectors.
//
// 🚀 What is a Vector?
//
//	An ordered, fixed-length sequence of float64 components. Every
//	operation returns a new Vector (or a scalar); nothing mutates in place.
//
// ✨ Key features:
//   - Add, Sub, Neg, Scale (scalar first), Dot
//   - Norm (L2), Bool / IsZero truthiness, Equal, ApproxEqual
//   - Cosine and Angle (degrees by default, radians via WithRadians)
//   - explicit ErrDimensionMismatch on every binary operation, never
//     silent truncation or padding
//   - explicit ErrDegenerateAngle instead of NaN for zero operands
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vecmath/vector"
//
//	a := vector.New(1, 2, 3)
//	b := vector.New(4, 5, 6)
//
//	sum, err := vector.Add(a, b)     // Vector(5, 7, 9)
//	dot, err := vector.Dot(a, b)     // 32
//	deg, err := vector.Angle(a, b)   // ≈ 12.93
//	half := vector.Scale(0.5, a)     // Vector(0.5, 1, 1.5)
//
// Errors are wrapped with the failing operation's name; match them with
// errors.Is(err, vector.ErrDimensionMismatch) and friends.
//
// Performance:
//
//   - Time:   O(n) for every operation
//   - Memory: O(n) for operations returning a Vector, O(1) otherwise
package vector
