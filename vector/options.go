// SPDX-License-Identifier: MIT

// Package vector: functional configuration for numeric policy and angle units.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults then user setters.
//
// Which entry point reads which option:
//   - WithEpsilon: ApproxEqual only.
//   - WithDegrees / WithRadians: Angle only.
//
// Every public entry point accepts the full ...Option set; options an entry
// point does not read are ignored, so one option slice can be shared.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Each flag changes the result of the entry point that reads it and is
//     covered by tests.
package vector

import "math"

// AngleUnit selects the unit Angle reports its result in.
type AngleUnit int

const (
	// Degrees reports angles in [0, 180].
	Degrees AngleUnit = iota

	// Radians reports angles in [0, π].
	Radians
)

// String returns the unit name.
func (u AngleUnit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute/relative tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultAngleUnit is the unit Angle reports in when no unit option is given.
	DefaultAngleUnit = Degrees
)

const panicEpsilonInvalid = "vector: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps  float64   // >= 0; DefaultEpsilon
	unit AngleUnit // DefaultAngleUnit
}

// WithEpsilon sets the numeric tolerance used by ApproxEqual. Angle ignores it.
//
// Panics with a stable message when eps is negative, NaN or ±Inf;
// that is a programmer error, not a data condition.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithDegrees makes Angle report degrees (the default). ApproxEqual ignores it.
func WithDegrees() Option {
	return func(o *Options) { o.unit = Degrees }
}

// WithRadians makes Angle report radians. ApproxEqual ignores it.
func WithRadians() Option {
	return func(o *Options) { o.unit = Radians }
}

// gatherOptions resolves defaults and applies user setters in order;
// the last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:  DefaultEpsilon,
		unit: DefaultAngleUnit,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
