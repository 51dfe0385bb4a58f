// Package surface implements normal-incidence radar surface analysis: a
// forward predictor for the coherent and incoherent backscatter power over a
// circular antenna footprint, and an inverse grid solver that recovers the
// surface statistics (permittivity, rms height, correlation length) which
// reproduce an observed power pair.
//
// Power values may legitimately be NaN or ±Inf when the underlying physics
// is degenerate (zero cross section, negative log arguments); these are
// propagated as data, never as errors.
package surface

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Gain maps an observation angle (radians) to a linear antenna amplitude.
// A nil Gain means constant unit gain.
type Gain func(th float64) float64

// Integrator evaluates the definite integral of f over [a, b] and returns
// the estimate plus an error estimate. The error estimate is carried for
// callers that want it; this package ignores it.
type Integrator func(f func(float64) float64, a, b float64) (float64, float64)

// GaussLegendre returns an Integrator backed by gonum's fixed-location
// Gauss-Legendre rule with n nodes. The error estimate is the difference
// against a 2n-node evaluation.
func GaussLegendre(n int) Integrator {
	return func(f func(float64) float64, a, b float64) (float64, float64) {
		coarse := quad.Fixed(f, a, b, n, nil, 0)
		fine := quad.Fixed(f, a, b, 2*n, nil, 0)
		return fine, math.Abs(fine - coarse)
	}
}

var defaultIntegrator = GaussLegendre(64)

// PowerResult holds the power components over the antenna footprint, linear
// or in decibels according to the call that produced it.
type PowerResult struct {
	Pc    float64 // coherent (specular) power
	Pn    float64 // incoherent (diffuse) power
	Ratio float64 // Pc / Pn
}

// SurfaceEstimate is the output of Invert: one row per candidate
// permittivity. Sh is 0 where no real-valued roughness reproduces the
// coherent target; Cl is NaN where the correlation-length search found no
// crossing. All three slices always share the grid length.
type SurfaceEstimate struct {
	Ep []float64 // candidate permittivities (linear grid)
	Sh []float64 // derived rms height (m) per candidate
	Cl []float64 // selected correlation length (m) per candidate
}

// ToDB converts linear power to decibels. Zero maps to -Inf and negative
// values to NaN; both pass through as data.
func ToDB(x float64) float64 { return 10 * math.Log10(x) }

// FromDB converts decibel power to linear.
func FromDB(x float64) float64 { return math.Pow(10, x/10) }
