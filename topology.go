/*
 * topology.go, part of dreid-typer.
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

// TopologyAtom is one atom in a MolecularTopology's atom table.
type TopologyAtom struct {
	ID            int
	Element       Element
	Hybridization Hybridization
	AtomType      string
}

// TopologyBond is one deduplicated bond: i < j by construction.
type TopologyBond struct {
	I, J  int
	Order BondOrder
}

// TopologyAngle is one deduplicated angle: center j, outer atoms i < k.
type TopologyAngle struct {
	I, Center, K int
}

// ProperDihedral is one deduplicated proper torsion (i, j, k, l): the
// lexicographic minimum of itself and its reverse.
type ProperDihedral struct {
	I, J, K, L int
}

// ImproperDihedral is one deduplicated improper torsion: a trigonal
// center, the neighbor currently serving as the out-of-plane axis, and
// the remaining two neighbors forming the plane in canonical (sorted)
// order. A degree-3 center contributes up to three ImproperDihedral
// values, one per choice of axis, per the "three per center,
// axis-rotated" DREIDING convention.
type ImproperDihedral struct {
	Center   int
	Axis     int
	P2, P3   int
}

// MolecularTopology is the complete, canonical, deduplicated set of
// bonded interaction terms for a molecule: atoms, bonds, angles, proper
// and improper torsions.
type MolecularTopology struct {
	Atoms             []TopologyAtom
	Bonds             []TopologyBond
	Angles            []TopologyAngle
	ProperDihedrals   []ProperDihedral
	ImproperDihedrals []ImproperDihedral
}

// buildTopology is infallible by contract: all preconditions (valid
// adjacency, assigned types, assigned hybridizations) are established by
// perception and typing before this runs.
func buildTopology(m *AnnotatedMolecule, atomTypes []string) *MolecularTopology {
	t := &MolecularTopology{}

	t.Atoms = make([]TopologyAtom, len(m.Atoms))
	for i, a := range m.Atoms {
		t.Atoms[i] = TopologyAtom{ID: a.ID, Element: a.Element, Hybridization: a.Hybridization, AtomType: atomTypes[i]}
	}

	t.Bonds = buildBonds(m)
	t.Angles = buildAngles(m)
	t.ProperDihedrals = buildProperDihedrals(m)
	t.ImproperDihedrals = buildImproperDihedrals(m)
	return t
}

func buildBonds(m *AnnotatedMolecule) []TopologyBond {
	seen := make(map[[2]int]bool, len(m.Bonds))
	var bonds []TopologyBond
	for _, b := range m.Bonds {
		key := canonPair(b.AID, b.BID)
		if seen[key] {
			continue
		}
		seen[key] = true
		bonds = append(bonds, TopologyBond{I: key[0], J: key[1], Order: b.Order})
	}
	sort.Slice(bonds, func(i, j int) bool {
		if bonds[i].I != bonds[j].I {
			return bonds[i].I < bonds[j].I
		}
		return bonds[i].J < bonds[j].J
	})
	return bonds
}

func buildAngles(m *AnnotatedMolecule) []TopologyAngle {
	seen := make(map[[3]int]bool)
	var angles []TopologyAngle
	for center := range m.Atoms {
		neighbors := m.adjacency[center]
		if len(neighbors) < 2 {
			continue
		}
		for a := 0; a < len(neighbors); a++ {
			for b := a + 1; b < len(neighbors); b++ {
				pair := canonPair(neighbors[a].NeighborID, neighbors[b].NeighborID)
				key := [3]int{pair[0], center, pair[1]}
				if seen[key] {
					continue
				}
				seen[key] = true
				angles = append(angles, TopologyAngle{I: pair[0], Center: center, K: pair[1]})
			}
		}
	}
	sort.Slice(angles, func(i, j int) bool {
		if angles[i].Center != angles[j].Center {
			return angles[i].Center < angles[j].Center
		}
		if angles[i].I != angles[j].I {
			return angles[i].I < angles[j].I
		}
		return angles[i].K < angles[j].K
	})
	return angles
}

func buildProperDihedrals(m *AnnotatedMolecule) []ProperDihedral {
	seen := make(map[[4]int]bool)
	var propers []ProperDihedral
	for _, bond := range m.Bonds {
		j, k := bond.AID, bond.BID
		for _, ni := range m.adjacency[j] {
			i := ni.NeighborID
			if i == k {
				continue
			}
			for _, nl := range m.adjacency[k] {
				l := nl.NeighborID
				if l == j || l == i {
					continue
				}
				tuple := canonicalProperTuple(i, j, k, l)
				if seen[tuple] {
					continue
				}
				seen[tuple] = true
				propers = append(propers, ProperDihedral{I: tuple[0], J: tuple[1], K: tuple[2], L: tuple[3]})
			}
		}
	}
	sort.Slice(propers, func(x, y int) bool {
		a, b := propers[x], propers[y]
		if a.I != b.I {
			return a.I < b.I
		}
		if a.J != b.J {
			return a.J < b.J
		}
		if a.K != b.K {
			return a.K < b.K
		}
		return a.L < b.L
	})
	return propers
}

// canonicalProperTuple compares (i,j,k,l) to its full reverse (l,k,j,i)
// lexicographically and keeps the smaller, per spec's canonical form.
func canonicalProperTuple(i, j, k, l int) [4]int {
	forward := [4]int{i, j, k, l}
	reverse := [4]int{l, k, j, i}
	if lexLess4(reverse, forward) {
		return reverse
	}
	return forward
}

func lexLess4(a, b [4]int) bool {
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// buildImproperDihedrals emits, for every degree-3 SP2/Resonant trigonal
// center, three terms per center: each of the three neighbors takes one
// turn as the "axis" while the other two form the canonicalized plane,
// per the "three per center, axis-rotated" DREIDING convention.
func buildImproperDihedrals(m *AnnotatedMolecule) []ImproperDihedral {
	seen := make(map[[4]int]bool)
	var impropers []ImproperDihedral
	for center, a := range m.Atoms {
		if a.Degree != 3 {
			continue
		}
		if a.Hybridization != SP2 && a.Hybridization != Resonant {
			continue
		}
		neighbors := m.adjacency[center]
		if len(neighbors) != 3 {
			continue
		}
		ids := [3]int{neighbors[0].NeighborID, neighbors[1].NeighborID, neighbors[2].NeighborID}
		for axis := 0; axis < 3; axis++ {
			plane := [2]int{}
			idx := 0
			for j := 0; j < 3; j++ {
				if j == axis {
					continue
				}
				plane[idx] = ids[j]
				idx++
			}
			planePair := canonPair(plane[0], plane[1])
			key := [4]int{center, ids[axis], planePair[0], planePair[1]}
			if seen[key] {
				continue
			}
			seen[key] = true
			impropers = append(impropers, ImproperDihedral{Center: center, Axis: ids[axis], P2: planePair[0], P3: planePair[1]})
		}
	}
	sort.Slice(impropers, func(i, j int) bool {
		a, b := impropers[i], impropers[j]
		if a.Center != b.Center {
			return a.Center < b.Center
		}
		if a.Axis != b.Axis {
			return a.Axis < b.Axis
		}
		if a.P2 != b.P2 {
			return a.P2 < b.P2
		}
		return a.P3 < b.P3
	})
	return impropers
}
