/*
 * model.go, part of dreid-typer.
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

// AnnotatedAtom is one atom inside the perception workspace, carrying
// every piece of chemistry inferred about it as the six passes run.
type AnnotatedAtom struct {
	ID      int
	Element Element
	Degree  int

	FormalCharge int
	LonePairs    int

	IsInRing         bool
	SmallestRingSize int

	IsAromatic           bool
	IsAntiAromatic       bool
	IsResonant           bool
	IsInConjugatedSystem bool

	StericNumber  int
	Hybridization Hybridization
}

// adjacentBond is one entry in an AnnotatedAtom's adjacency list: which
// atom it connects to, via which bond id, at what order.
type adjacentBond struct {
	NeighborID int
	BondID     int
	Order      BondOrder
}

// Ring is one member of the SSSR: a sorted list of atom ids plus the bond
// ids that close the cycle, kept alongside for the aromaticity and
// Kekule passes.
type Ring struct {
	AtomIDs []int
	BondIDs []int
}

// ResonanceSystem records one functional-group delocalized system found
// during Pass 5: the participating atom ids and bond ids, both kept sorted
// for deterministic inspection. Aromatic ring systems are not recorded
// here.
type ResonanceSystem struct {
	AtomIDs []int
	BondIDs []int
}

// AnnotatedMolecule is the perception workspace: a mutable, internal
// representation that starts as a faithful copy of the input
// MolecularGraph and accumulates chemistry as each pass runs. It is
// created and exclusively mutated by the perception pipeline, then handed
// by read-only reference to the typing engine and the topology builder.
type AnnotatedMolecule struct {
	Atoms []AnnotatedAtom
	Bonds []BondEdge

	adjacency [][]adjacentBond

	Rings            []Ring
	ResonanceSystems []ResonanceSystem
}

// newAnnotatedMolecule builds the initial workspace from a validated
// MolecularGraph: atoms and bonds are copied verbatim, degree and
// adjacency are derived, and every other field starts at its zero value
// for the perception passes to fill in.
func newAnnotatedMolecule(g *MolecularGraph) *AnnotatedMolecule {
	m := &AnnotatedMolecule{
		Atoms:     make([]AnnotatedAtom, len(g.Atoms)),
		Bonds:     append([]BondEdge(nil), g.Bonds...),
		adjacency: make([][]adjacentBond, len(g.Atoms)),
	}
	for _, a := range g.Atoms {
		m.Atoms[a.ID] = AnnotatedAtom{ID: a.ID, Element: a.Element}
	}
	for _, b := range m.Bonds {
		m.adjacency[b.AID] = append(m.adjacency[b.AID], adjacentBond{NeighborID: b.BID, BondID: b.ID, Order: b.Order})
		m.adjacency[b.BID] = append(m.adjacency[b.BID], adjacentBond{NeighborID: b.AID, BondID: b.ID, Order: b.Order})
	}
	for i := range m.Atoms {
		m.Atoms[i].Degree = len(m.adjacency[i])
	}
	return m
}

// neighbors returns the adjacency list for atom id, in the order the
// bonds were added (ascending bond id), which is deterministic.
func (m *AnnotatedMolecule) neighbors(id int) []adjacentBond {
	return m.adjacency[id]
}

// bondBetween returns the bond connecting a and b, if any.
func (m *AnnotatedMolecule) bondBetween(a, b int) (BondEdge, bool) {
	for _, nb := range m.adjacency[a] {
		if nb.NeighborID == b {
			return m.Bonds[nb.BondID], true
		}
	}
	return BondEdge{}, false
}

// rewriteBondOrder updates a bond's order in both the bond table and the
// adjacency lists, preserving the invariant that the two stay consistent
// (required after Kekule expansion rewrites Aromatic bonds).
func (m *AnnotatedMolecule) rewriteBondOrder(bondID int, order BondOrder) {
	m.Bonds[bondID].Order = order
	b := m.Bonds[bondID]
	for i := range m.adjacency[b.AID] {
		if m.adjacency[b.AID][i].BondID == bondID {
			m.adjacency[b.AID][i].Order = order
		}
	}
	for i := range m.adjacency[b.BID] {
		if m.adjacency[b.BID][i].BondID == bondID {
			m.adjacency[b.BID][i].Order = order
		}
	}
}

// sortedCopy returns a sorted copy of ids, used whenever a ring, bond set,
// or resonance system must be stored/compared in canonical form.
func sortedCopy(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	return out
}
