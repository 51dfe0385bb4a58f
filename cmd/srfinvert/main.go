// Command srfinvert recovers surface statistics (permittivity, rms height,
// correlation length) from an observed coherent/incoherent power pair by
// grid search over the forward model. Results print as a table and can
// optionally be recorded to sqlite, plotted to PNG, or rendered to an
// interactive HTML chart.
//
// Example:
//
//	srfinvert -model fresnel -approx GO -wf 13.78e9 -thmax 0.008 \
//	          -pc -23.2 -pn -36.4 -n 50 -plot estimate.png
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/whigg/subradar/internal/resultdb"
	"github.com/whigg/subradar/scattering"
	"github.com/whigg/subradar/surface"
)

func main() {
	var (
		model    = flag.String("model", scattering.ModelFresnel, "scattering model name")
		approx   = flag.String("approx", scattering.ApproxGO, "scattering approximation name")
		pc       = flag.Float64("pc", math.NaN(), "observed coherent power in dB (required)")
		pn       = flag.Float64("pn", math.NaN(), "observed incoherent power in dB (required)")
		wf       = flag.Float64("wf", 0, "wave frequency in Hz (required)")
		thMax    = flag.Float64("thmax", 0, "footprint edge angle in radians (required)")
		kind     = flag.String("kind", scattering.KindIsotropicGaussian, "backscatter kind")
		epMin    = flag.Float64("ep-min", 1.4, "lower permittivity bound")
		epMax    = flag.Float64("ep-max", 2.5, "upper permittivity bound")
		clLogMin = flag.Float64("cl-log-min", -1, "lower log10 correlation-length bound")
		clLogMax = flag.Float64("cl-log-max", 2, "upper log10 correlation-length bound")
		n        = flag.Int("n", 50, "samples per grid axis")
		verbose  = flag.Bool("verbose", false, "narrate every forward-model trial")
		dbPath   = flag.String("db", "", "record the run to this sqlite database")
		plotPath = flag.String("plot", "", "write a PNG chart of the estimate to this file")
		htmlPath = flag.String("html", "", "write an interactive HTML chart to this file")
	)
	flag.Parse()

	if math.IsNaN(*pc) || math.IsNaN(*pn) {
		log.Fatal("srfinvert: -pc and -pn are required")
	}
	if *wf <= 0 {
		log.Fatal("srfinvert: -wf must be a positive frequency in Hz")
	}

	est, err := surface.Invert(*model, *approx, *pc, *pn, surface.InvertConfig{
		Wf:         *wf,
		ThMax:      *thMax,
		Kind:       *kind,
		EpRange:    [2]float64{*epMin, *epMax},
		ClLogRange: [2]float64{*clLogMin, *clLogMax},
		N:          *n,
		Verbose:    *verbose,
	})
	if err != nil {
		log.Fatalf("srfinvert: %v", err)
	}

	printEstimate(est)

	if *dbPath != "" {
		db, err := resultdb.NewDB(*dbPath)
		if err != nil {
			log.Fatalf("srfinvert: open %s: %v", *dbPath, err)
		}
		defer db.Close()
		id, err := db.RecordRun(resultdb.Run{
			Model:  *model,
			Approx: *approx,
			PcDB:   *pc,
			PnDB:   *pn,
			Wf:     *wf,
			ThMax:  *thMax,
		}, est)
		if err != nil {
			log.Fatalf("srfinvert: record run: %v", err)
		}
		log.Printf("recorded run %s in %s", id, *dbPath)
	}

	if *plotPath != "" {
		if err := writePlot(*plotPath, est); err != nil {
			log.Fatalf("srfinvert: plot: %v", err)
		}
		log.Printf("wrote %s", *plotPath)
	}

	if *htmlPath != "" {
		if err := writeHTML(*htmlPath, *model, *approx, *pc, *pn, est); err != nil {
			log.Fatalf("srfinvert: html: %v", err)
		}
		log.Printf("wrote %s", *htmlPath)
	}
}

func printEstimate(est surface.SurfaceEstimate) {
	fmt.Printf("%4s  %8s  %12s  %12s\n", "idx", "ep", "sh (m)", "cl (m)")
	for i := range est.Ep {
		cl := "-"
		if !math.IsNaN(est.Cl[i]) {
			cl = fmt.Sprintf("%12.4g", est.Cl[i])
		}
		fmt.Printf("%4d  %8.3f  %12.4g  %12s\n", i, est.Ep[i], est.Sh[i], cl)
	}
}
