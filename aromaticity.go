/*
 * aromaticity.go, part of dreid-typer.
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

// perceiveAromaticity is Pass 4: applies the Huckel rule to fused ring
// systems (and, on failure, to their constituent rings individually).
func perceiveAromaticity(m *AnnotatedMolecule) error {
	if len(m.Rings) == 0 {
		return nil
	}
	systems := groupFusedRingSystems(m.Rings)
	for _, system := range systems {
		if !evaluateSystem(m, system) {
			for _, ringIdx := range system {
				evaluateSystem(m, []int{ringIdx})
			}
		}
	}
	return nil
}

// groupFusedRingSystems partitions ring indices into fused systems via
// transitive closure on shared atoms.
func groupFusedRingSystems(rings []Ring) [][]int {
	n := len(rings)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for i := 0; i < n; i++ {
		atomsI := make(map[int]bool, len(rings[i].AtomIDs))
		for _, a := range rings[i].AtomIDs {
			atomsI[a] = true
		}
		for j := i + 1; j < n; j++ {
			for _, a := range rings[j].AtomIDs {
				if atomsI[a] {
					union(i, j)
					break
				}
			}
		}
	}
	groups := make(map[int][]int)
	for i := 0; i < n; i++ {
		r := find(i)
		groups[r] = append(groups[r], i)
	}
	var out [][]int
	for _, g := range groups {
		out = append(out, g)
	}
	return out
}

// evaluateSystem applies the planarity check and Huckel pi-electron count
// to the union of rings named by ringIndices. On success it marks every
// participating atom is_aromatic or is_anti_aromatic and returns true.
func evaluateSystem(m *AnnotatedMolecule, ringIndices []int) bool {
	atomSet := make(map[int]bool)
	for _, idx := range ringIndices {
		for _, a := range m.Rings[idx].AtomIDs {
			atomSet[a] = true
		}
	}
	for atomID := range atomSet {
		if !isPotentiallyPlanar(m, atomID) {
			return false
		}
	}

	piTotal := 0
	for atomID := range atomSet {
		piTotal += piContribution(m, atomID, atomSet)
	}

	switch {
	case piTotal >= 2 && (piTotal-2)%4 == 0:
		for atomID := range atomSet {
			m.Atoms[atomID].IsAromatic = true
		}
		return true
	case piTotal > 0 && piTotal%4 == 0:
		for atomID := range atomSet {
			m.Atoms[atomID].IsAntiAromatic = true
		}
		return true
	}
	return false
}

// isPotentiallyPlanar allows steric numbers (degree+lone_pairs) of 0-3
// unconditionally, and 4 only when the atom has at least one lone pair to
// donate into the system (a pyramidal bridgehead with no lone pair blocks
// planarity).
func isPotentiallyPlanar(m *AnnotatedMolecule, atomID int) bool {
	a := m.Atoms[atomID]
	sn := a.Degree + a.LonePairs
	if sn <= 3 {
		return true
	}
	if sn == 4 && a.LonePairs > 0 {
		return true
	}
	return false
}

// piContribution computes one atom's pi-electron contribution to the
// system named by atomSet, per spec: a bonding atom contributes one
// electron through its own endocyclic double bond (each atom is evaluated
// independently, so a 6-membered Kekule-alternating ring sums to 6, not 3 —
// the per-bond "counted once" wording guards against a single atom with
// more than one endocyclic double bond being counted twice, not against
// both of a bond's endpoints each contributing their own electron). A
// donated lone pair or a formal -1 charge instead contributes +2, but only
// when the atom has no endocyclic pi bond of its own; a formal +1 charge
// contributes nothing.
func piContribution(m *AnnotatedMolecule, atomID int, atomSet map[int]bool) int {
	a := m.Atoms[atomID]
	contribution := 0
	hasEndocyclicPi := false
	hasExocyclicDouble := false
	for _, nb := range m.adjacency[atomID] {
		inSystem := atomSet[nb.NeighborID]
		if nb.Order == Double {
			if inSystem {
				hasEndocyclicPi = true
			} else {
				hasExocyclicDouble = true
			}
		}
	}
	if hasEndocyclicPi {
		contribution++
	}
	if a.FormalCharge == -1 {
		if !hasEndocyclicPi {
			contribution += 2
		}
		return contribution
	}
	if a.FormalCharge == 1 {
		return contribution
	}
	if a.LonePairs >= 1 && !hasExocyclicDouble && !hasEndocyclicPi {
		contribution += 2
	}
	return contribution
}
