/*
 * graph.go, part of gosimm.
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

package chemgraph

import (
	"sort"

	simm "github.com/rmera/gosimm"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Node wraps a particle so it implements gonum's graph.Node.
// The node ID is the particle index.
type Node struct {
	*simm.Particle
}

func (N Node) ID() int64 {
	return int64(N.Index)
}

// Edge wraps a bond so it implements gonum's graph.Edge.
type Edge struct {
	*simm.Bond
	F, T Node
}

func (E Edge) From() graph.Node {
	return E.F
}

func (E Edge) To() graph.Node {
	return E.T
}

// ReversedEdge returns a copy of the edge going the other way. The bond is shared.
func (E Edge) ReversedEdge() graph.Edge {
	return Edge{Bond: E.Bond, F: E.T, T: E.F}
}

// Graph returns the bond graph of the system as an undirected gonum graph.
// A pair of particles declared bonded more than once gets a single edge.
func Graph(S *simm.System) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, p := range S.Particles {
		g.AddNode(Node{p})
	}
	for _, b := range S.Bonds {
		if g.HasEdgeBetween(int64(b.P1.Index), int64(b.P2.Index)) {
			continue
		}
		g.SetEdge(Edge{Bond: b, F: Node{b.P1}, T: Node{b.P2}})
	}
	return g
}

// Fragments returns the indexes of the particles in each connected component of
// the bond graph. Each fragment is sorted, and fragments are sorted by their
// first index.
func Fragments(S *simm.System) [][]int {
	return fragments(Graph(S))
}

func fragments(g graph.Undirected) [][]int {
	cc := topo.ConnectedComponents(g)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		f := make([]int, 0, len(c))
		for _, n := range c {
			f = append(f, int(n.ID()))
		}
		sort.Ints(f)
		ret = append(ret, f)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}
