// Package molecules builds small test systems with explicit hydrogens and
// bond orders.
package molecules

import (
	"math"

	simm "github.com/rmera/gosimm"
)

const (
	s  = simm.Single
	d  = simm.Double
	t  = simm.Triple
	ar = simm.Aromatic
)

type bond struct {
	i, j  int
	order simm.BondOrder
}

// build creates a system with the given heavy atoms and bonds, and then
// adds hydrogens: hs[i] hydrogens are bonded to heavy atom i. Positions lie
// on a helix, so no two particles overlap.
func build(name string, heavy []string, bonds []bond, hs []int) *simm.System {
	S := simm.NewSystem(name)
	for _, e := range heavy {
		S.AddParticle(e, helix(S.Len()))
	}
	for _, b := range bonds {
		S.AddBond(b.i, b.j, b.order)
	}
	for i, n := range hs {
		for k := 0; k < n; k++ {
			h := S.AddParticle("H", helix(S.Len()))
			S.AddBond(i, h.Index, s)
		}
	}
	return S
}

func helix(i int) [3]float64 {
	a := float64(i)
	return [3]float64{1.4 * math.Cos(a), 1.4 * math.Sin(a), 0.9 * a}
}

// Water returns H2O with a real geometry. The oxygen is particle 0.
func Water() *simm.System {
	S := simm.NewSystem("water")
	S.AddParticle("O", [3]float64{0, 0, 0})
	S.AddParticle("H", [3]float64{0.9572, 0, 0})
	S.AddParticle("H", [3]float64{-0.2400, 0.9266, 0})
	S.AddBond(0, 1, s)
	S.AddBond(0, 2, s)
	return S
}

// Methane returns CH4.
func Methane() *simm.System {
	return build("methane", []string{"C"}, nil, []int{4})
}

// Alkane returns the linear alkane with n carbons. Carbons come first.
func Alkane(n int) *simm.System {
	heavy := make([]string, n)
	var bonds []bond
	hs := make([]int, n)
	for i := range heavy {
		heavy[i] = "C"
		hs[i] = 2
		if i > 0 {
			bonds = append(bonds, bond{i - 1, i, s})
		}
	}
	hs[0]++
	hs[n-1]++
	if n == 1 {
		hs[0] = 4
	}
	return build("alkane", heavy, bonds, hs)
}

// Butane returns C4H10, carbons 0 to 3.
func Butane() *simm.System {
	S := Alkane(4)
	S.Name = "butane"
	return S
}

// Methanol returns CH3OH: C 0, O 1, H 2-4 on C, H 5 on O.
func Methanol() *simm.System {
	return build("methanol", []string{"C", "O"}, []bond{{0, 1, s}}, []int{3, 1})
}

// Ethanol returns CH3CH2OH: C 0, C 1, O 2, then hydrogens.
func Ethanol() *simm.System {
	return build("ethanol", []string{"C", "C", "O"}, []bond{{0, 1, s}, {1, 2, s}}, []int{3, 2, 1})
}

// DimethylEther returns CH3OCH3: C 0, O 1, C 2.
func DimethylEther() *simm.System {
	return build("dimethyl ether", []string{"C", "O", "C"}, []bond{{0, 1, s}, {1, 2, s}}, []int{3, 0, 3})
}

// Methylamine returns CH3NH2: C 0, N 1.
func Methylamine() *simm.System {
	return build("methylamine", []string{"C", "N"}, []bond{{0, 1, s}}, []int{3, 2})
}

// Formaldehyde returns H2C=O: C 0, O 1.
func Formaldehyde() *simm.System {
	return build("formaldehyde", []string{"C", "O"}, []bond{{0, 1, d}}, []int{2, 0})
}

// NMethylAcetamide returns CH3-C(=O)-NH-CH3: methyl C 0, carbonyl C 1,
// O 2, N 3, N-methyl C 4.
func NMethylAcetamide() *simm.System {
	return build("N-methylacetamide",
		[]string{"C", "C", "O", "N", "C"},
		[]bond{{0, 1, s}, {1, 2, d}, {1, 3, s}, {3, 4, s}},
		[]int{3, 0, 0, 1, 3})
}

// Ethene returns H2C=CH2.
func Ethene() *simm.System {
	return build("ethene", []string{"C", "C"}, []bond{{0, 1, d}}, []int{2, 2})
}

// Acetonitrile returns CH3-C#N: C 0, C 1, N 2.
func Acetonitrile() *simm.System {
	return build("acetonitrile", []string{"C", "C", "N"}, []bond{{0, 1, s}, {1, 2, t}}, []int{3, 0, 0})
}

// Halomethane returns CH3X with X the given halogen at index 1.
func Halomethane(x string) *simm.System {
	return build("CH3"+x, []string{"C", x}, []bond{{0, 1, s}}, []int{3, 0})
}

// Benzene returns C6H6 with Kekule bonds, carbons 0 to 5. If aromatic is
// true, ring bonds have the aromatic order instead.
func Benzene(aromatic bool) *simm.System {
	o1, o2 := d, s
	if aromatic {
		o1, o2 = ar, ar
	}
	var bonds []bond
	for i := 0; i < 6; i++ {
		o := o1
		if i%2 == 1 {
			o = o2
		}
		bonds = append(bonds, bond{i, (i + 1) % 6, o})
	}
	return build("benzene", []string{"C", "C", "C", "C", "C", "C"}, bonds, []int{1, 1, 1, 1, 1, 1})
}

// Naphthalene returns C10H8. The fusion carbons are 4 and 9.
func Naphthalene() *simm.System {
	heavy := make([]string, 10)
	for i := range heavy {
		heavy[i] = "C"
	}
	bonds := []bond{
		{0, 1, d}, {1, 2, s}, {2, 3, d}, {3, 4, s}, {4, 9, d}, {9, 0, s},
		{4, 5, s}, {5, 6, d}, {6, 7, s}, {7, 8, d}, {8, 9, s},
	}
	return build("naphthalene", heavy, bonds, []int{1, 1, 1, 1, 0, 1, 1, 1, 1, 0})
}

// Biphenyl returns C12H10. Carbons 0 and 6 are the bridge.
func Biphenyl() *simm.System {
	heavy := make([]string, 12)
	for i := range heavy {
		heavy[i] = "C"
	}
	var bonds []bond
	for r := 0; r < 2; r++ {
		o := 6 * r
		for i := 0; i < 6; i++ {
			ord := s
			if i%2 == 0 {
				ord = d
			}
			bonds = append(bonds, bond{o + i, o + (i+1)%6, ord})
		}
	}
	bonds = append(bonds, bond{0, 6, s})
	return build("biphenyl", heavy, bonds, []int{0, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1})
}

// Pyridine returns C5H5N, N at index 0.
func Pyridine() *simm.System {
	bonds := []bond{{0, 1, d}, {1, 2, s}, {2, 3, d}, {3, 4, s}, {4, 5, d}, {5, 0, s}}
	return build("pyridine", []string{"N", "C", "C", "C", "C", "C"}, bonds, []int{0, 1, 1, 1, 1, 1})
}

// Pyrrole returns C4H5N, N at index 0.
func Pyrrole() *simm.System {
	bonds := []bond{{0, 1, s}, {1, 2, d}, {2, 3, s}, {3, 4, d}, {4, 0, s}}
	return build("pyrrole", []string{"N", "C", "C", "C", "C"}, bonds, []int{1, 1, 1, 1, 1})
}

// Cyclobutane returns C4H8.
func Cyclobutane() *simm.System {
	bonds := []bond{{0, 1, s}, {1, 2, s}, {2, 3, s}, {3, 0, s}}
	return build("cyclobutane", []string{"C", "C", "C", "C"}, bonds, []int{2, 2, 2, 2})
}

// Cyclopropane returns C3H6.
func Cyclopropane() *simm.System {
	bonds := []bond{{0, 1, s}, {1, 2, s}, {2, 0, s}}
	return build("cyclopropane", []string{"C", "C", "C"}, bonds, []int{2, 2, 2})
}

// Aniline returns C6H5NH2, N at index 6.
func Aniline() *simm.System {
	bonds := []bond{{0, 1, d}, {1, 2, s}, {2, 3, d}, {3, 4, s}, {4, 5, d}, {5, 0, s}, {0, 6, s}}
	return build("aniline", []string{"C", "C", "C", "C", "C", "C", "N"}, bonds, []int{0, 1, 1, 1, 1, 1, 2})
}

// Nitromethane returns CH3NO2: C 0, N 1, O 2, O 3.
func Nitromethane() *simm.System {
	return build("nitromethane", []string{"C", "N", "O", "O"}, []bond{{0, 1, s}, {1, 2, d}, {1, 3, s}}, []int{3, 0, 0, 0})
}

// Methanethiol returns CH3SH: C 0, S 1.
func Methanethiol() *simm.System {
	return build("methanethiol", []string{"C", "S"}, []bond{{0, 1, s}}, []int{3, 1})
}

// Phosphine returns PH3.
func Phosphine() *simm.System {
	return build("phosphine", []string{"P"}, nil, []int{3})
}

// Ammonium returns NH4+, with a formal charge of +1 on N.
func Ammonium() *simm.System {
	S := build("ammonium", []string{"N"}, nil, []int{4})
	S.Particles[0].FormalCharge = 1
	return S
}
