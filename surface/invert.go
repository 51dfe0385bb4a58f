package surface

import (
	"log"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/whigg/subradar/scattering"
)

// Default search grids for Invert.
var (
	defaultEpRange    = [2]float64{1.4, 2.5}
	defaultClLogRange = [2]float64{-1, 2}
)

const defaultGridSize = 50

// InvertConfig configures the inverse grid solver. Zero-valued fields take
// the defaults noted per field.
type InvertConfig struct {
	Gain       Gain       // antenna gain; nil means constant 1
	Wf         float64    // wave frequency (Hz)
	ThMax      float64    // footprint edge angle (radians)
	Linear     bool       // targets are linear power rather than decibels
	Kind       string     // backscatter kind; empty means "isotropic gaussian"
	EpRange    [2]float64 // permittivity search range; zero means [1.4, 2.5]
	ClLogRange [2]float64 // log10 correlation-length range; zero means [-1, 2]
	N          int        // samples per grid axis; zero means 50
	Verbose    bool       // narrate every trial via the standard logger
	Quad       Integrator // nil means the default Gauss-Legendre rule
}

// Invert recovers surface statistics from an observed coherent/incoherent
// power pair (pc, pn) for the named scattering model and approximation.
//
// For each candidate permittivity the rms height follows in closed form from
// the coherent-power law; the correlation length is then found by scanning
// the log-spaced candidate grid downward for the first predicted incoherent
// power below the target. Rows with no real rms-height solution keep Sh 0
// and Cl NaN; rows whose scan exhausts the grid keep Cl NaN. Neither is an
// error.
//
// Failures of the forward predictor (unknown model pair, unknown kind)
// abort the whole inversion.
func Invert(model, approx string, pc, pn float64, cfg InvertConfig) (SurfaceEstimate, error) {
	n := cfg.N
	if n <= 0 {
		n = defaultGridSize
	}
	epRange := cfg.EpRange
	if epRange == ([2]float64{}) {
		epRange = defaultEpRange
	}
	clLogRange := cfg.ClLogRange
	if clLogRange == ([2]float64{}) {
		clLogRange = defaultClLogRange
	}

	// Work with a linear coherent target and a decibel incoherent target;
	// the scan below compares predicted incoherent power in decibels.
	pcLin, pnDB := pc, pn
	if cfg.Linear {
		pnDB = ToDB(pn)
	} else {
		pcLin = FromDB(pc)
	}

	s := scattering.NewSignal(cfg.Wf, math.NaN(), cfg.ThMax)

	ep := floats.Span(make([]float64, n), epRange[0], epRange[1])
	cl := floats.Span(make([]float64, n), clLogRange[0], clLogRange[1])
	for j := range cl {
		cl[j] = math.Pow(10, cl[j])
	}

	// Closed-form rms height per candidate permittivity, from inverting
	// pc = r²·exp(−(2·wk·sh)²). A NaN means no real-valued roughness
	// reproduces the coherent target at that permittivity; the row keeps
	// sh = 0 and is skipped by the search.
	r := scattering.RSlice(1, ep, 1, 1, s.Th)
	sh := make([]float64, n)
	for i := range sh {
		v := math.Sqrt(math.Log(r[i]*r[i]/pcLin)) / (2 * s.Wk * math.Cos(s.Th))
		if math.IsNaN(v) {
			v = 0
		}
		sh[i] = v
	}

	clOut := make([]float64, n)
	for i := range clOut {
		clOut[i] = math.NaN()
	}

	// jn bounds the scan window and only ever shrinks across permittivity
	// rows: incoherent power grows with correlation length at fixed
	// roughness, so the crossing index cannot move up as the previous row's
	// crossing moves down. Dropping the shared bound and scanning every row
	// from n gives identical results at O(n²) cost.
	pcfg := PredictConfig{Gain: cfg.Gain, ThMax: cfg.ThMax, Kind: cfg.Kind, Quad: cfg.Quad}
	jn := n
	for i := range ep {
		if sh[i] == 0 {
			continue
		}
		for j := jn - 1; j >= 0; j-- {
			q := scattering.Query{Ep2: ep[i], Sh: sh[i], Cl: cl[j], Wf: cfg.Wf}
			res, err := Predict(model, approx, q, pcfg)
			if err != nil {
				return SurfaceEstimate{}, err
			}
			if cfg.Verbose {
				log.Printf("[%04d-%04d] ep=%05.2f sh=%09.6f cl=%08.3f pn=%05.1f",
					i, j, ep[i], sh[i], cl[j], res.Pn)
			}
			if res.Pn < pnDB && !math.IsInf(res.Pn, 0) {
				jn = j + 1
				if jn > n {
					jn = n
				}
				clOut[i] = cl[j]
				break
			}
		}
	}

	return SurfaceEstimate{Ep: ep, Sh: sh, Cl: clOut}, nil
}
