/*
 * qeq.go, part of gosimm.
 *
 *
 * Copyright 2024 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package charge

import (
	"context"
	"fmt"
	"math"

	simm "github.com/rmera/gosimm"
	"gonum.org/v1/gonum/mat"
)

// coulomb is e^2/(4 pi eps0) in eV*A.
const coulomb = 14.4

// QEq assigns charges by charge equilibration. For a fragment of n
// particles it solves
//
//	| J  1 | |q |   |-chi|
//	| 1t 0 | |mu| = | Q  |
//
// where J has the idempotentials on the diagonal and a shielded Coulomb
// interaction, 14.4/sqrt(r^2 + (14.4/sqrt(Ji*Jj))^2), off the diagonal.
// Q is the sum of the formal charges of the fragment, and mu the
// equalized electronegativity. Positions must be in A.
func QEq(ctx context.Context, S *simm.System, frag []int, o *Options) ([]float64, error) {
	if q, ok := single(S, frag); ok {
		return q, nil
	}
	n := len(frag)
	par := make([]qeqParams, n)
	for i, idx := range frag {
		p := S.Particles[idx]
		q, ok := qeqTable[p.Element]
		if !ok {
			return nil, missingParams("qeq", p)
		}
		par[i] = q
	}
	total := float64(FragmentCharge(S, frag))
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	A := mat.NewDense(n+1, n+1, nil)
	b := mat.NewVecDense(n+1, nil)
	for i := 0; i < n; i++ {
		A.Set(i, i, par[i].J)
		for j := i + 1; j < n; j++ {
			v := shielded(S.Particles[frag[i]].Pos, S.Particles[frag[j]].Pos, par[i].J, par[j].J)
			A.Set(i, j, v)
			A.Set(j, i, v)
		}
		A.Set(i, n, 1)
		A.Set(n, i, 1)
		b.SetVec(i, -par[i].Chi)
	}
	b.SetVec(n, total)
	var x mat.VecDense
	if err := x.SolveVec(A, b); err != nil {
		return nil, fmt.Errorf("charge: equilibration failed for fragment starting at particle %d: %w", frag[0], err)
	}
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = x.AtVec(i)
	}
	return ret, nil
}

func shielded(a, b [3]float64, ji, jj float64) float64 {
	var r2 float64
	for k := 0; k < 3; k++ {
		d := a[k] - b[k]
		r2 += d * d
	}
	s := coulomb / math.Sqrt(ji*jj)
	return coulomb / math.Sqrt(r2+s*s)
}
