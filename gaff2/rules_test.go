package gaff2

import (
	"testing"

	simm "github.com/rmera/gosimm"
	"github.com/rmera/gosimm/chemgraph"
	"github.com/rmera/gosimm/internal/molecules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classifyAll returns the type name of every particle, "" where no rule applies.
func classifyAll(S *simm.System) []string {
	chemgraph.Perceive(S)
	R := New()
	ret := make([]string, S.Len())
	for i, p := range S.Particles {
		ret[i], _ = R.Classify(p)
	}
	return ret
}

func TestClassify(Te *testing.T) {
	cases := []struct {
		name string
		S    *simm.System
		want map[int]string
	}{
		{"water", molecules.Water(), map[int]string{0: "ow", 1: "hw", 2: "hw"}},
		{"methane", molecules.Methane(), map[int]string{0: "c3", 1: "hc", 4: "hc"}},
		{"methanol", molecules.Methanol(), map[int]string{0: "c3", 1: "oh", 2: "h1", 5: "ho"}},
		{"dimethyl ether", molecules.DimethylEther(), map[int]string{0: "c3", 1: "os", 2: "c3", 3: "h1"}},
		{"methylamine", molecules.Methylamine(), map[int]string{0: "c3", 1: "n3", 2: "h1", 5: "hn"}},
		{"formaldehyde", molecules.Formaldehyde(), map[int]string{0: "c", 1: "o", 2: "h4"}},
		{"N-methylacetamide", molecules.NMethylAcetamide(), map[int]string{0: "c3", 1: "c", 2: "o", 3: "n", 4: "c3", 5: "hc", 8: "hn", 9: "h1"}},
		{"ethene", molecules.Ethene(), map[int]string{0: "c2", 1: "c2", 2: "ha"}},
		{"acetonitrile", molecules.Acetonitrile(), map[int]string{0: "c3", 1: "c1", 2: "n1", 3: "hc"}},
		{"benzene", molecules.Benzene(false), map[int]string{0: "ca", 5: "ca", 6: "ha"}},
		{"aromatic benzene", molecules.Benzene(true), map[int]string{0: "ca", 6: "ha"}},
		{"naphthalene", molecules.Naphthalene(), map[int]string{0: "ca", 4: "cb", 9: "cb", 5: "ca", 10: "ha"}},
		{"biphenyl", molecules.Biphenyl(), map[int]string{0: "cp", 6: "cp", 1: "ca", 7: "ca"}},
		{"pyridine", molecules.Pyridine(), map[int]string{0: "nb", 1: "ca", 6: "h4", 7: "ha"}},
		{"pyrrole", molecules.Pyrrole(), map[int]string{0: "na", 1: "ca", 5: "hn"}},
		{"aniline", molecules.Aniline(), map[int]string{0: "ca", 6: "nh", 12: "hn"}},
		{"nitromethane", molecules.Nitromethane(), map[int]string{0: "c3", 1: "no", 2: "o", 3: "o", 4: "h1"}},
		{"cyclobutane", molecules.Cyclobutane(), map[int]string{0: "cy", 4: "hc"}},
		{"cyclopropane", molecules.Cyclopropane(), map[int]string{0: "cx"}},
		{"methanethiol", molecules.Methanethiol(), map[int]string{0: "c3", 1: "sh", 2: "h1", 5: "hs"}},
		{"phosphine", molecules.Phosphine(), map[int]string{0: "p3", 1: "hp"}},
		{"ammonium", molecules.Ammonium(), map[int]string{0: "n4", 1: "hn"}},
		{"fluoromethane", molecules.Halomethane("F"), map[int]string{0: "c3f", 1: "f", 2: "h1"}},
		{"chloromethane", molecules.Halomethane("Cl"), map[int]string{0: "c3cl", 1: "cl", 2: "h1"}},
		{"bromomethane", molecules.Halomethane("Br"), map[int]string{0: "c3br", 1: "br"}},
		{"iodomethane", molecules.Halomethane("I"), map[int]string{0: "c3i", 1: "i"}},
	}
	for _, c := range cases {
		Te.Run(c.name, func(Te *testing.T) {
			got := classifyAll(c.S)
			for i, want := range c.want {
				assert.Equal(Te, want, got[i], "particle %d (%s)", i, c.S.Particles[i].Element)
			}
			for i, name := range got {
				assert.NotEmpty(Te, name, "particle %d (%s) not classified", i, c.S.Particles[i].Element)
			}
		})
	}
}

func TestHeaviestHalogen(Te *testing.T) {
	S2 := simm.NewSystem("CH2FCl")
	S2.AddParticle("C", [3]float64{})
	S2.AddParticle("F", [3]float64{1, 0, 0})
	S2.AddParticle("Cl", [3]float64{0, 1, 0})
	S2.AddParticle("H", [3]float64{0, 0, 1})
	S2.AddParticle("H", [3]float64{-1, 0, 0})
	for i := 1; i < 5; i++ {
		S2.AddBond(0, i, simm.Single)
	}
	got := classifyAll(S2)
	assert.Equal(Te, "c3cl", got[0])
	assert.Equal(Te, "h2", got[3])
}

func TestLinkerValence(Te *testing.T) {
	//a CH3 with a pending bond is sp3, not sp2
	S := simm.NewSystem("methyl")
	S.AddParticle("C", [3]float64{})
	for i := 0; i < 3; i++ {
		h := S.AddParticle("H", [3]float64{float64(i + 1), 0, 0})
		S.AddBond(0, h.Index, simm.Single)
	}
	got := classifyAll(S)
	assert.Equal(Te, "c2", got[0])
	S.Particles[0].Linker = simm.HeadLinker
	got = classifyAll(S)
	assert.Equal(Te, "c3", got[0])
	assert.Equal(Te, "hc", got[1])
}

func TestUnclassifiable(Te *testing.T) {
	S := simm.NewSystem("xx")
	S.AddParticle("Xx", [3]float64{})
	S.AddParticle("H", [3]float64{1, 0, 0})
	S.AddBond(0, 1, simm.Single)
	chemgraph.Perceive(S)
	R := New()
	_, ok := R.Classify(S.Particles[0])
	assert.False(Te, ok)
	_, ok = R.Classify(S.Particles[1])
	assert.False(Te, ok, "H on an unknown element")

	//a lone oxygen has no rule
	S = simm.NewSystem("o")
	S.AddParticle("O", [3]float64{})
	_, ok = R.Classify(S.Particles[0])
	assert.False(Te, ok)
}

func TestSetFamily(Te *testing.T) {
	R := New()
	R.SetFamily("Xx", []Rule{{"anything", func(e *Env) (string, bool) { return "xx", true }}})
	S := simm.NewSystem("xx")
	S.AddParticle("Xx", [3]float64{})
	name, ok := R.Classify(S.Particles[0])
	require.True(Te, ok)
	assert.Equal(Te, "xx", name)
	assert.Len(Te, R.Family("Xx"), 1)
	assert.NotEmpty(Te, R.Family("C"))
}

func TestEmbeddedCatalog(Te *testing.T) {
	C, err := Catalog()
	require.NoError(Te, err)
	assert.Equal(Te, "gaff2", C.Name)
	C2, err := Catalog()
	require.NoError(Te, err)
	assert.Same(Te, C, C2)
	//every name the rules can give is in the catalog
	for _, n := range []string{"c", "c1", "c2", "c3", "ca", "cb", "cp", "cu", "cv", "cx", "cy",
		"h1", "h2", "h3", "h4", "h5", "ha", "hc", "hn", "ho", "hp", "hs", "hw",
		"o", "oh", "os", "ow", "n", "n1", "n2", "n3", "n4", "na", "nb", "nh", "no",
		"p2", "p3", "p5", "s", "sh", "ss", "s4", "s6", "f", "cl", "br", "i"} {
		_, ok := C.ParticleType(n)
		assert.True(Te, ok, n)
	}
	d, ok := C.DihedralType("c3", "c3", "c3", "c3")
	require.True(Te, ok)
	assert.Equal(Te, 1, d.Multiplicity)
}
