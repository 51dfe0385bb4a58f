package scattering

import (
	"fmt"
	"math"
)

// Backscatter kind labels understood by the built-in model.
const KindIsotropicGaussian = "isotropic gaussian"

// Names the built-in reference model registers under.
const (
	ModelFresnel = "fresnel"
	ApproxGO     = "GO"
)

func init() {
	Register(ModelFresnel, ApproxGO, NewGeomOptics)
}

// GeomOptics is the geometric-optics (stationary phase) approximation for a
// randomly rough dielectric interface with a Gaussian correlation function.
// Incoherent power under this model grows with correlation length at fixed
// roughness, which is the behaviour the inverse grid solver relies on.
type GeomOptics struct {
	q  Query
	s  Signal
	r  float64 // Fresnel magnitude at the query angle
	r0 float64 // Fresnel magnitude at normal incidence
}

// NewGeomOptics evaluates the geometric-optics model at one query point.
func NewGeomOptics(q Query) (Capability, error) {
	if q.Wf <= 0 || math.IsNaN(q.Wf) {
		return nil, fmt.Errorf("geomoptics: wave frequency must be positive, got %g", q.Wf)
	}
	return &GeomOptics{
		q:  q,
		s:  NewSignal(q.Wf, math.NaN(), q.Th),
		r:  R(1, q.Ep2, 1, 1, q.Th),
		r0: R(1, q.Ep2, 1, 1, 0),
	}, nil
}

func (g *GeomOptics) R() map[string]float64 {
	return map[string]float64{"nn": g.r}
}

func (g *GeomOptics) Wk() float64 { return g.s.Wk }

func (g *GeomOptics) Sh() float64 { return g.q.Sh }

// NRCS returns the normalised radar cross section. For the isotropic
// Gaussian surface the mean-square slope is m² = 2·sh²/cl² and
//
//	σ0 = R(0)² / (2 m² cos⁴θ) · exp(−tan²θ / (2 m²))
//
// Degenerate surfaces (zero roughness or correlation length) yield NaN or
// Inf cross sections, which propagate as data.
func (g *GeomOptics) NRCS(kind string) (map[string]float64, error) {
	switch kind {
	case KindIsotropicGaussian:
		m2 := 2 * g.q.Sh * g.q.Sh / (g.q.Cl * g.q.Cl)
		cos := math.Cos(g.q.Th)
		tan := math.Tan(g.q.Th)
		hh := g.r0 * g.r0 / (2 * m2 * cos * cos * cos * cos) * math.Exp(-tan*tan/(2*m2))
		return map[string]float64{"hh": hh}, nil
	default:
		return nil, fmt.Errorf("geomoptics: unknown backscatter kind %q", kind)
	}
}
