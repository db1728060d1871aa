/*
 * gasteiger.go, part of gosimm.
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
	"math"

	simm "github.com/rmera/gosimm"
)

// Gasteiger assigns Gasteiger-Marsili charges. Charges start at the formal
// charges. In every iteration k each bond moves
// (chi_high - chi_low)/chi+_donor * Damping^k electrons from the particle
// with the lower electronegativity (the donor) to the other one. The
// transfer is antisymmetric, so the charge of the fragment never changes.
func Gasteiger(ctx context.Context, S *simm.System, frag []int, o *Options) ([]float64, error) {
	if q, ok := single(S, frag); ok {
		return q, nil
	}
	n := len(frag)
	pos := make(map[int]int, n)
	par := make([]gasteigerParams, n)
	q := make([]float64, n)
	for i, idx := range frag {
		p := S.Particles[idx]
		g, ok := gasteigerFor(p)
		if !ok {
			return nil, missingParams("gasteiger", p)
		}
		pos[idx] = i
		par[i] = g
		q[i] = float64(p.FormalCharge)
	}
	pairs := fragmentPairs(S, frag, pos)
	chi := make([]float64, n)
	dq := make([]float64, n)
	damp := 1.0
	for k := 1; k <= o.MaxIter; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		damp *= o.Damping
		for i := range q {
			chi[i] = par[i].chi(q[i])
			dq[i] = 0
		}
		for _, pr := range pairs {
			i, j := pr[0], pr[1]
			donor := i
			if chi[j] < chi[i] {
				donor = j
			}
			t := (chi[j] - chi[i]) / par[donor].denominator() * damp
			dq[i] += t
			dq[j] -= t
		}
		var largest float64
		for i := range q {
			q[i] += dq[i]
			largest = math.Max(largest, math.Abs(dq[i]))
		}
		if largest < o.Tolerance {
			break
		}
	}
	return q, nil
}

// fragmentPairs returns each bonded pair in frag once, as positions in
// frag, in bond order.
func fragmentPairs(S *simm.System, frag []int, pos map[int]int) [][2]int {
	var ret [][2]int
	seen := make(map[[2]int]bool)
	for _, b := range S.Bonds {
		i, ok1 := pos[b.P1.Index]
		j, ok2 := pos[b.P2.Index]
		if !ok1 || !ok2 {
			continue
		}
		k := [2]int{min(i, j), max(i, j)}
		if seen[k] {
			continue
		}
		seen[k] = true
		ret = append(ret, [2]int{i, j})
	}
	return ret
}
