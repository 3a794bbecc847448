/*
 * kekulize.go, part of dreid-typer.
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

import "sort"

// perceiveKekulize is Pass 2: rewrites every Aromatic bond into Single or
// Double, consistent with elemental valence.
func perceiveKekulize(m *AnnotatedMolecule) error {
	var aromaticBonds []int
	for _, b := range m.Bonds {
		if b.Order == Aromatic {
			aromaticBonds = append(aromaticBonds, b.ID)
		}
	}
	if len(aromaticBonds) == 0 {
		return nil
	}

	for _, bid := range aromaticBonds {
		b := m.Bonds[bid]
		if !m.Atoms[b.AID].IsInRing || !m.Atoms[b.BID].IsInRing {
			return newPerceptionError("kekulize", "aromatic bond does not lie entirely within a detected ring")
		}
	}

	sort.Ints(aromaticBonds)
	systems := partitionAromaticSystems(m, aromaticBonds)

	for _, system := range systems {
		assignment, ok := solveKekule(m, system)
		if !ok {
			return newPerceptionError("kekulize", "no valid Kekule structure satisfies elemental valence for an aromatic system")
		}
		for bondID, order := range assignment {
			m.rewriteBondOrder(bondID, order)
		}
	}
	return nil
}

// partitionAromaticSystems groups the aromatic bond-id set into connected
// components via BFS over the aromatic-only adjacency, so each component
// can be Kekule-solved independently.
func partitionAromaticSystems(m *AnnotatedMolecule, aromaticBonds []int) [][]int {
	aromaticSet := make(map[int]bool, len(aromaticBonds))
	for _, bid := range aromaticBonds {
		aromaticSet[bid] = true
	}
	visitedBond := make(map[int]bool, len(aromaticBonds))
	var systems [][]int
	for _, start := range aromaticBonds {
		if visitedBond[start] {
			continue
		}
		var system []int
		queue := []int{start}
		visitedBond[start] = true
		for len(queue) > 0 {
			bid := queue[0]
			queue = queue[1:]
			system = append(system, bid)
			b := m.Bonds[bid]
			for _, atom := range [2]int{b.AID, b.BID} {
				for _, nb := range m.adjacency[atom] {
					if aromaticSet[nb.BondID] && !visitedBond[nb.BondID] {
						visitedBond[nb.BondID] = true
						queue = append(queue, nb.BondID)
					}
				}
			}
		}
		sort.Ints(system)
		systems = append(systems, system)
	}
	return systems
}

// kekuleSolver backtracks over Single/Double assignments for one aromatic
// system in stable (ascending) bond-id order, enumerated once via
// partitionAromaticSystems, and stops at the first valid assignment found.
type kekuleSolver struct {
	m          *AnnotatedMolecule
	bonds      []int
	assignment map[int]BondOrder
	doubleUsed map[int]int // atom id -> count of double bonds assigned so far within this system
}

// solveKekule returns a bond-id -> BondOrder assignment satisfying
// per-element double-bond allowances, or ok=false if none exists.
func solveKekule(m *AnnotatedMolecule, system []int) (map[int]BondOrder, bool) {
	s := &kekuleSolver{
		m:          m,
		bonds:      system,
		assignment: make(map[int]BondOrder, len(system)),
		doubleUsed: make(map[int]int),
	}
	if s.backtrack(0) {
		return s.assignment, true
	}
	return nil, false
}

func (s *kekuleSolver) backtrack(idx int) bool {
	if idx == len(s.bonds) {
		// Accept only assignments in which every atom that is still short of
		// its tabulated maximum valence (aromatic bonds counted as Single)
		// received a double bond.
		for _, sbid := range s.bonds {
			for _, id := range [2]int{s.m.Bonds[sbid].AID, s.m.Bonds[sbid].BID} {
				maxV, known := maxValenceTable[s.m.Atoms[id].Element]
				sum := 0
				for _, nb := range s.m.adjacency[id] {
					sum += max(nb.Order.contribution(), 1)
				}
				if known && sum < maxV && s.doubleUsed[id] == 0 {
					return false
				}
			}
		}
		return true
	}
	bid := s.bonds[idx]
	b := s.m.Bonds[bid]
	for _, order := range [2]BondOrder{Single, Double} {
		if order == Double {
			if !s.elementAllowsDouble(b.AID) || !s.elementAllowsDouble(b.BID) {
				continue
			}
			s.doubleUsed[b.AID]++
			s.doubleUsed[b.BID]++
		}
		s.assignment[bid] = order
		if s.backtrack(idx + 1) {
			return true
		}
		delete(s.assignment, bid)
		if order == Double {
			s.doubleUsed[b.AID]--
			s.doubleUsed[b.BID]--
		}
	}
	return false
}

// elementAllowsDouble reports whether atom id can still accept one more
// double bond within the aromatic system being solved. Neutral C, N, P,
// O, and S all allow at most one double bond to an aromatic-system
// neighbor, which is sufficient for both isolated 6-membered rings and
// fused aromatic systems.
func (s *kekuleSolver) elementAllowsDouble(atomID int) bool {
	const allowance = 1
	return s.doubleUsed[atomID] < allowance
}
