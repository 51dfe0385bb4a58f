package surface

import (
	"math"

	"github.com/whigg/subradar/scattering"
)

// PredictConfig configures the forward predictor. The zero value selects the
// defaults: unit gain, "isotropic gaussian" backscatter, decibel output and
// the package Gauss-Legendre rule.
type PredictConfig struct {
	Gain   Gain       // antenna gain; nil means constant 1
	ThMax  float64    // footprint edge angle (radians)
	Kind   string     // backscatter kind; empty means "isotropic gaussian"
	Linear bool       // report linear power instead of decibels
	Quad   Integrator // nil means the default Gauss-Legendre rule
}

// Predict computes the coherent and incoherent power components over a
// circular footprint at normal incidence for the named scattering model and
// approximation, evaluated at the surface parameters in q. The query's
// observation angle is set by the predictor; callers leave q.Th zero.
//
// Predict is pure: identical inputs produce bit-identical outputs.
func Predict(model, approx string, q scattering.Query, cfg PredictConfig) (PowerResult, error) {
	ctor, err := scattering.Resolve(model, approx)
	if err != nil {
		return PowerResult{}, err
	}
	gain := cfg.Gain
	if gain == nil {
		gain = func(float64) float64 { return 1 }
	}
	kind := cfg.Kind
	if kind == "" {
		kind = scattering.KindIsotropicGaussian
	}
	integ := cfg.Quad
	if integ == nil {
		integ = defaultIntegrator
	}

	// Coherent component: the specular echo attenuated by roughness,
	// pc = Rnn² · exp(−(2·wk·sh)²), evaluated at normal incidence.
	q.Th = 0
	sc, err := ctor(q)
	if err != nil {
		return PowerResult{}, err
	}
	rnn := sc.R()["nn"]
	x := 2 * sc.Wk() * sc.Sh()
	pc := rnn * rnn * math.Exp(-x*x)

	// Incoherent component: the cross section is sampled once at normal
	// incidence and pulled out of the footprint integral, trading exact
	// per-angle evaluation for speed. Valid while the cross section
	// varies slowly over the footprint.
	nrcs, err := sc.NRCS(kind)
	if err != nil {
		return PowerResult{}, err
	}
	integrand := func(th float64) float64 {
		g := gain(th)
		return 2 * g * g * math.Atan(th) / (th*th + 1)
	}
	integral, _ := integ(integrand, 0, cfg.ThMax)
	pn := integral * nrcs["hh"]

	res := PowerResult{Pc: pc, Pn: pn, Ratio: pc / pn}
	if !cfg.Linear {
		res = PowerResult{Pc: ToDB(pc), Pn: ToDB(pn), Ratio: ToDB(pc / pn)}
	}
	return res, nil
}
