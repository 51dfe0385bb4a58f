package scattering

import "math"

// speedOfLight in vacuum (m/s)
const speedOfLight = 299792458.0

// Signal describes the radar signal geometry at the surface: wave frequency,
// bandwidth (may be NaN when unused) and the observation angle.
type Signal struct {
	Wf float64 // wave frequency (Hz)
	Bw float64 // bandwidth (Hz); NaN when not set
	Th float64 // observation angle (radians)
	Wk float64 // wavenumber (rad/m)
}

// NewSignal derives the wavenumber for a wave of frequency wf observed at
// angle th.
func NewSignal(wf, bw, th float64) Signal {
	return Signal{
		Wf: wf,
		Bw: bw,
		Th: th,
		Wk: 2 * math.Pi * wf / speedOfLight,
	}
}

// R returns the magnitude of the Fresnel reflection coefficient at normal
// polarisation for a wave crossing from medium 1 (relative permittivity ep1,
// permeability mu1) into medium 2 at incidence angle th. The transmitted
// angle follows Snell's law; beyond total internal reflection the magnitude
// is 1.
func R(ep1, ep2, mu1, mu2, th float64) float64 {
	n1 := math.Sqrt(ep1 * mu1)
	n2 := math.Sqrt(ep2 * mu2)

	sinT := n1 * math.Sin(th) / n2
	if sinT > 1 || sinT < -1 {
		return 1
	}
	cosT := math.Sqrt(1 - sinT*sinT)

	r := (n1*math.Cos(th) - n2*cosT) / (n1*math.Cos(th) + n2*cosT)
	return math.Abs(r)
}

// RSlice broadcasts R elementwise over a slice of subsurface permittivities.
func RSlice(ep1 float64, ep2 []float64, mu1, mu2, th float64) []float64 {
	out := make([]float64, len(ep2))
	for i, ep := range ep2 {
		out[i] = R(ep1, ep, mu1, mu2, th)
	}
	return out
}
