/*
 * rings.go, part of dreid-typer.
 *
 * Copyright 2024 The dreid-typer Authors.
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

package typer

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// perceiveRings is Pass 1: computes the Smallest Set of Smallest Rings and
// annotates ring membership on every participating atom.
func perceiveRings(m *AnnotatedMolecule) error {
	n := len(m.Atoms)
	if n == 0 {
		return nil
	}

	components := countComponents(m)
	cyclomatic := len(m.Bonds) - n + components
	if cyclomatic <= 0 {
		return nil
	}

	candidates := enumerateCycleCandidates(m)
	rings := selectMinimalCycleBasis(candidates, cyclomatic)

	m.Rings = rings
	for _, ring := range rings {
		for _, aid := range ring.AtomIDs {
			m.Atoms[aid].IsInRing = true
			if m.Atoms[aid].SmallestRingSize == 0 || len(ring.AtomIDs) < m.Atoms[aid].SmallestRingSize {
				m.Atoms[aid].SmallestRingSize = len(ring.AtomIDs)
			}
		}
	}
	return nil
}

// countComponents mirrors the adjacency into a gonum undirected graph and
// delegates connected-component counting to graph/topo, matching the
// teacher's own reliance on gonum for graph-theoretic primitives.
func countComponents(m *AnnotatedMolecule) int {
	g := simple.NewUndirectedGraph()
	for i := range m.Atoms {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, b := range m.Bonds {
		g.SetEdge(simple.Edge{F: simple.Node(int64(b.AID)), T: simple.Node(int64(b.BID))})
	}
	return len(topo.ConnectedComponents(g))
}

// cycleCandidate is one candidate ring found by suppressing a single bond
// and reconnecting its endpoints via a shortest alternative path.
type cycleCandidate struct {
	atomIDs []int
	bondIDs []int
}

// enumerateCycleCandidates implements spec step 2: for each bond (u, v),
// temporarily suppress it and BFS from u to v over the remaining graph to
// find a shortest alternative path; the path plus the suppressed bond is
// a candidate cycle.
func enumerateCycleCandidates(m *AnnotatedMolecule) []cycleCandidate {
	var candidates []cycleCandidate
	for _, b := range m.Bonds {
		path, pathBonds, ok := shortestPathExcluding(m, b.AID, b.BID, b.ID)
		if !ok {
			continue
		}
		atomIDs := append([]int(nil), path...)
		bondIDs := append([]int(nil), pathBonds...)
		bondIDs = append(bondIDs, b.ID)
		candidates = append(candidates, cycleCandidate{
			atomIDs: sortedCopy(atomIDs),
			bondIDs: sortedCopy(bondIDs),
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i].atomIDs) != len(candidates[j].atomIDs) {
			return len(candidates[i].atomIDs) < len(candidates[j].atomIDs)
		}
		return lexLess(candidates[i].atomIDs, candidates[j].atomIDs)
	})
	return candidates
}

// shortestPathExcluding performs a BFS from start to goal over the
// molecule's adjacency, ignoring the bond identified by excludeBond. It
// returns the atom ids and bond ids of the path found, ordered from goal
// back to start (exclusive of the excluded bond itself).
func shortestPathExcluding(m *AnnotatedMolecule, start, goal, excludeBond int) ([]int, []int, bool) {
	type parent struct {
		atom int
		bond int
	}
	visited := make(map[int]bool, len(m.Atoms))
	parents := make(map[int]parent, len(m.Atoms))
	queue := []int{start}
	visited[start] = true
	found := false
	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range m.adjacency[cur] {
			if nb.BondID == excludeBond || visited[nb.NeighborID] {
				continue
			}
			visited[nb.NeighborID] = true
			parents[nb.NeighborID] = parent{atom: cur, bond: nb.BondID}
			if nb.NeighborID == goal {
				found = true
				break
			}
			queue = append(queue, nb.NeighborID)
		}
	}
	if !visited[goal] {
		return nil, nil, false
	}
	var atoms, bonds []int
	cur := goal
	for cur != start {
		p := parents[cur]
		atoms = append(atoms, cur)
		bonds = append(bonds, p.bond)
		cur = p.atom
	}
	atoms = append(atoms, start)
	return atoms, bonds, true
}

// selectMinimalCycleBasis reduces candidate cycles to a minimal cycle
// basis of the requested rank via Gaussian elimination over GF(2) on
// bond-incidence bit vectors, preferring shorter cycles as pivots (the
// candidates arrive pre-sorted by length then lexicographic atom order).
func selectMinimalCycleBasis(candidates []cycleCandidate, rank int) []Ring {
	var basis []bitVector
	var rings []Ring
	for _, cand := range candidates {
		if len(rings) >= rank {
			break
		}
		vec := bitVectorFromBondIDs(cand.bondIDs)
		reduced := vec.copy()
		for _, b := range basis {
			if lead := reduced.leadingOne(); lead >= 0 && b.leadingOne() == lead {
				reduced.xor(b)
			}
		}
		if reduced.isZero() {
			continue
		}
		basis = append(basis, reduced)
		sort.Slice(basis, func(i, j int) bool { return basis[i].leadingOne() > basis[j].leadingOne() })
		rings = append(rings, Ring{AtomIDs: cand.atomIDs, BondIDs: cand.bondIDs})
	}
	return rings
}

// lexLess reports whether a is lexicographically less than b, used to
// break ties between equal-length ring candidates deterministically.
func lexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// bitVector is a GF(2) vector over bond ids, represented as an unordered
// set of set bit positions for simplicity; molecule sizes in scope here make
// a dense word-packed representation unnecessary.
type bitVector map[int]bool

func bitVectorFromBondIDs(ids []int) bitVector {
	v := make(bitVector, len(ids))
	for _, id := range ids {
		v[id] = true
	}
	return v
}

func (v bitVector) copy() bitVector {
	out := make(bitVector, len(v))
	for k := range v {
		out[k] = true
	}
	return out
}

func (v bitVector) xor(other bitVector) {
	for k := range other {
		if v[k] {
			delete(v, k)
		} else {
			v[k] = true
		}
	}
}

func (v bitVector) isZero() bool { return len(v) == 0 }

// leadingOne returns the largest set bit position, or -1 if the vector is
// zero. Used as the pivot index during Gaussian elimination.
func (v bitVector) leadingOne() int {
	max := -1
	for k := range v {
		if k > max {
			max = k
		}
	}
	return max
}
