package scattering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCapability struct{ wk float64 }

func (s stubCapability) R() map[string]float64 { return map[string]float64{"nn": 1} }
func (s stubCapability) Wk() float64           { return s.wk }
func (s stubCapability) Sh() float64           { return 0 }
func (s stubCapability) NRCS(kind string) (map[string]float64, error) {
	return map[string]float64{"hh": 0}, nil
}

func TestResolveUnknownPair(t *testing.T) {
	_, err := Resolve("no-such-model", "no-such-approx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-model")
}

func TestRegisterResolveRoundTrip(t *testing.T) {
	Register("stub", "test", func(q Query) (Capability, error) {
		return stubCapability{wk: q.Wf}, nil
	})

	ctor, err := Resolve("stub", "test")
	require.NoError(t, err)

	sc, err := ctor(Query{Wf: 42})
	require.NoError(t, err)
	assert.Equal(t, 42.0, sc.Wk())
}

func TestRegisterReplacesExisting(t *testing.T) {
	Register("stub", "replace", func(q Query) (Capability, error) {
		return stubCapability{wk: 1}, nil
	})
	Register("stub", "replace", func(q Query) (Capability, error) {
		return stubCapability{wk: 2}, nil
	})

	ctor, err := Resolve("stub", "replace")
	require.NoError(t, err)
	sc, err := ctor(Query{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, sc.Wk())
}

func TestBuiltinModelRegistered(t *testing.T) {
	_, err := Resolve(ModelFresnel, ApproxGO)
	require.NoError(t, err)
}
