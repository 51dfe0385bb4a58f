// Command srfpower predicts the coherent and incoherent backscatter power
// over a circular footprint at normal incidence from assumed surface
// parameters.
//
// Example:
//
//	srfpower -model fresnel -approx GO -wf 13.78e9 -thmax 0.008 \
//	         -ep2 1.5 -sh 1.5e-3 -cl 100e-3
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/whigg/subradar/scattering"
	"github.com/whigg/subradar/surface"
)

func main() {
	var (
		model  = flag.String("model", scattering.ModelFresnel, "scattering model name")
		approx = flag.String("approx", scattering.ApproxGO, "scattering approximation name")
		wf     = flag.Float64("wf", 0, "wave frequency in Hz (required)")
		thMax  = flag.Float64("thmax", 0, "footprint edge angle in radians (required)")
		ep2    = flag.Float64("ep2", 0, "relative permittivity of the subsurface")
		sh     = flag.Float64("sh", 0, "rms surface height in metres")
		cl     = flag.Float64("cl", 0, "surface correlation length in metres")
		kind   = flag.String("kind", scattering.KindIsotropicGaussian, "backscatter kind")
		linear = flag.Bool("linear", false, "print linear power instead of decibels")
	)
	flag.Parse()

	if *wf <= 0 {
		log.Fatal("srfpower: -wf must be a positive frequency in Hz")
	}
	if *thMax < 0 {
		log.Fatal("srfpower: -thmax must be non-negative")
	}

	q := scattering.Query{Ep2: *ep2, Sh: *sh, Cl: *cl, Wf: *wf}
	res, err := surface.Predict(*model, *approx, q, surface.PredictConfig{
		ThMax:  *thMax,
		Kind:   *kind,
		Linear: *linear,
	})
	if err != nil {
		log.Fatalf("srfpower: %v", err)
	}

	unit := "dB"
	if *linear {
		unit = "linear"
	}
	fmt.Printf("pc    = %g %s\n", res.Pc, unit)
	fmt.Printf("pn    = %g %s\n", res.Pn, unit)
	fmt.Printf("ratio = %g %s\n", res.Ratio, unit)
}
