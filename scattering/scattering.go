// Package scattering defines the contract between the surface-inversion core
// and electromagnetic scattering models. Models register themselves under a
// (model, approximation) name pair; the core resolves the pair at call time
// and only ever talks to the Capability interface. The package also carries
// the signal-geometry and Fresnel helpers the inversion needs, plus a
// built-in geometric-optics reference model.
package scattering

import (
	"fmt"
	"sync"
)

// Query carries the surface parameters and observation angle for a single
// model evaluation. A Query is built fresh per evaluation and never mutated
// after construction.
type Query struct {
	Th  float64 // observation angle from surface normal (radians)
	Ep2 float64 // relative permittivity of the subsurface medium
	Sh  float64 // rms surface height (m)
	Cl  float64 // surface correlation length (m)
	Wf  float64 // wave frequency (Hz)

	// Extra holds model-specific parameters keyed by name. Models ignore
	// keys they do not understand.
	Extra map[string]float64
}

// Capability is the view the power predictor has of a resolved scattering
// model, evaluated at one Query.
type Capability interface {
	// R returns the reflection coefficients keyed by polarisation pair;
	// "nn" (co-polarised, normal) is always present.
	R() map[string]float64

	// Wk returns the effective wavenumber (rad/m).
	Wk() float64

	// Sh echoes the rms height the capability was evaluated with.
	Sh() float64

	// NRCS returns the normalised radar cross section for the requested
	// backscatter kind, keyed by polarisation pair; "hh" is always
	// present. Unknown kinds are a resolution error.
	NRCS(kind string) (map[string]float64, error)
}

// Constructor builds a Capability for one evaluation point.
type Constructor func(q Query) (Capability, error)

type modelKey struct {
	model  string
	approx string
}

var (
	registryMu sync.RWMutex
	registry   = make(map[modelKey]Constructor)
)

// Register makes a scattering model available under a (model, approximation)
// name pair, replacing any previous registration for the pair. Callers
// extend the registry with their own models without touching the core.
func Register(model, approx string, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[modelKey{model, approx}] = ctor
}

// Resolve looks up the constructor for a (model, approximation) pair. An
// unknown pair is a fatal resolution error, never retried.
func Resolve(model, approx string) (Constructor, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ctor, ok := registry[modelKey{model, approx}]
	if !ok {
		return nil, fmt.Errorf("scattering: unknown model/approximation pair %q/%q", model, approx)
	}
	return ctor, nil
}
