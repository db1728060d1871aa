package charge

import (
	"context"
	"errors"
	"testing"

	simm "github.com/rmera/gosimm"
	"github.com/rmera/gosimm/internal/molecules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGasteigerNeutral(Te *testing.T) {
	for _, S := range []*simm.System{molecules.Methanol(), molecules.NMethylAcetamide(), molecules.Benzene(false), molecules.Halomethane("Cl")} {
		require.NoError(Te, Assign(context.Background(), S, "gasteiger"), S.Name)
		assert.InDelta(Te, 0, Net(S), 1e-6, S.Name)
	}
}

func TestGasteigerSigns(Te *testing.T) {
	S := molecules.Methanol()
	require.NoError(Te, Assign(context.Background(), S, "gasteiger"))
	assert.Less(Te, S.Particles[1].Charge, 0.0, "oxygen")
	assert.Greater(Te, S.Particles[5].Charge, 0.0, "hydroxyl hydrogen")
	assert.Greater(Te, S.Particles[5].Charge, S.Particles[2].Charge, "hydroxyl H is more positive than methyl H")

	//symmetric particles get the same charge
	B := molecules.Benzene(true)
	require.NoError(Te, Assign(context.Background(), B, "gasteiger"))
	for i := 1; i < 6; i++ {
		assert.InDelta(Te, B.Particles[0].Charge, B.Particles[i].Charge, 1e-9)
	}
}

func TestGasteigerIterations(Te *testing.T) {
	S1 := molecules.Methanol()
	S2 := molecules.Methanol()
	require.NoError(Te, Assign(context.Background(), S1, "gasteiger", WithMaxIter(1)))
	require.NoError(Te, Assign(context.Background(), S2, "gasteiger", WithMaxIter(12)))
	assert.NotEqual(Te, S1.Particles[1].Charge, S2.Particles[1].Charge)
	assert.Less(Te, S1.Particles[1].Charge, 0.0)
}

func TestFormalCharge(Te *testing.T) {
	for _, m := range []string{"gasteiger", "qeq", "none"} {
		S := molecules.Ammonium()
		require.NoError(Te, Assign(context.Background(), S, m), m)
		if m == "none" {
			assert.Zero(Te, Net(S))
			continue
		}
		assert.InDelta(Te, 1, Net(S), 1e-6, m)
	}
}

func TestFragments(Te *testing.T) {
	//water and a chloride in one system
	S := molecules.Water()
	cl := S.AddParticle("Cl", [3]float64{10, 0, 0})
	cl.FormalCharge = -1
	require.NoError(Te, Assign(context.Background(), S, "qeq"))
	assert.InDelta(Te, -1, cl.Charge, 1e-9)
	assert.InDelta(Te, 0, S.Particles[0].Charge+S.Particles[1].Charge+S.Particles[2].Charge, 1e-6)
}

func TestCounterions(Te *testing.T) {
	for _, m := range []string{"gasteiger", "qeq"} {
		S := molecules.Water()
		na := S.AddParticle("Na", [3]float64{5, 0, 0})
		na.FormalCharge = 1
		cl := S.AddParticle("Cl", [3]float64{-5, 0, 0})
		cl.FormalCharge = -1
		require.NoError(Te, Assign(context.Background(), S, m), m)
		assert.InDelta(Te, 1, na.Charge, 1e-12, m)
		assert.InDelta(Te, -1, cl.Charge, 1e-12, m)
		assert.InDelta(Te, 0, Net(S), 1e-6, m)
		assert.Less(Te, S.Particles[0].Charge, 0.0, m)
	}

	//a lone particle needs no parameters
	S := simm.NewSystem("xx")
	S.AddParticle("Xx", [3]float64{}).FormalCharge = 2
	require.NoError(Te, Assign(context.Background(), S, "gasteiger"))
	assert.InDelta(Te, 2, S.Particles[0].Charge, 1e-12)
}

func TestQEqBondedIon(Te *testing.T) {
	//sodium hydroxide, as a bonded pair
	S := simm.NewSystem("NaOH")
	S.AddParticle("Na", [3]float64{})
	S.AddParticle("O", [3]float64{1.95, 0, 0})
	S.AddParticle("H", [3]float64{2.9, 0, 0})
	S.AddBond(0, 1, simm.Single)
	S.AddBond(1, 2, simm.Single)
	require.NoError(Te, Assign(context.Background(), S, "qeq"))
	assert.InDelta(Te, 0, Net(S), 1e-6)
	assert.Greater(Te, S.Particles[0].Charge, 0.0)
	assert.Less(Te, S.Particles[1].Charge, 0.0)
}

func TestQEq(Te *testing.T) {
	for _, S := range []*simm.System{molecules.Water(), molecules.Methanol()} {
		require.NoError(Te, Assign(context.Background(), S, "qeq"), S.Name)
		assert.InDelta(Te, 0, Net(S), 1e-6, S.Name)
	}
	W := molecules.Water()
	require.NoError(Te, Assign(context.Background(), W, "qeq"))
	assert.Less(Te, W.Particles[0].Charge, 0.0)
	assert.Greater(Te, W.Particles[1].Charge, 0.0)
}

func TestUnsupported(Te *testing.T) {
	S := molecules.Methanol()
	err := Assign(context.Background(), S, "am1bcc")
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, simm.ErrUnsupportedChargeMethod))
	assert.Contains(Te, err.Error(), "am1bcc")

	//an element without parameters
	X := simm.NewSystem("xx")
	X.AddParticle("C", [3]float64{})
	X.AddParticle("Xx", [3]float64{1, 0, 0})
	X.AddBond(0, 1, simm.Single)
	X.Particles[0].Charge = 0.25
	err = Assign(context.Background(), X, "gasteiger")
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, simm.ErrMissingChargeParameters))
	assert.False(Te, errors.Is(err, simm.ErrUnsupportedChargeMethod), "gasteiger itself is supported")
	var te *simm.TypingError
	require.True(Te, errors.As(err, &te))
	assert.Equal(Te, 1, te.Particle)
	assert.Equal(Te, "gasteiger", te.Key)
	assert.InDelta(Te, 0.25, X.Particles[0].Charge, 1e-12, "charges are untouched on failure")
}

func TestRegister(Te *testing.T) {
	Register("half", func(ctx context.Context, S *simm.System, frag []int, o *Options) ([]float64, error) {
		ret := make([]float64, len(frag))
		for i := range ret {
			ret[i] = 0.5
		}
		return ret, nil
	})
	assert.Contains(Te, Methods(), "half")
	assert.Contains(Te, Methods(), "gasteiger")
	S := molecules.Water()
	require.NoError(Te, Assign(context.Background(), S, "half"))
	assert.InDelta(Te, 1.5, Net(S), 1e-12)
}

func TestCancelled(Te *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	S := molecules.Methanol()
	assert.ErrorIs(Te, Assign(ctx, S, "gasteiger"), context.Canceled)
}

func TestLogged(Te *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	S := molecules.Water()
	require.NoError(Te, Assign(context.Background(), S, "gasteiger", WithLogger(zap.New(core))))
	entries := logs.FilterMessage("charges assigned").All()
	require.Len(Te, entries, 1)
	assert.Equal(Te, "gasteiger", entries[0].ContextMap()["method"])
	assert.Equal(Te, int64(1), entries[0].ContextMap()["fragments"])
}
