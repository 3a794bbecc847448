/*
 * testdata_test.go, part of dreid-typer.
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

import "testing"

// mustBond adds a bond and fails the test immediately if the graph
// rejects it, so test bodies that build a known-good molecule stay
// free of repeated error checks.
func mustBond(t *testing.T, g *MolecularGraph, a, b int, order BondOrder) {
	t.Helper()
	if _, err := g.AddBond(a, b, order); err != nil {
		t.Fatalf("AddBond(%d, %d, %v): %v", a, b, order, err)
	}
}

// ethanolGraph builds CH3-CH2-OH: atoms [C0, C1, O2, H3, H4, H5, H6, H7, H8],
// matching spec's worked example numbering exactly.
func ethanolGraph(t *testing.T) *MolecularGraph {
	t.Helper()
	g := NewMolecularGraph()
	for _, el := range []Element{C, C, O, H, H, H, H, H, H} {
		g.AddAtom(el)
	}
	mustBond(t, g, 0, 1, Single)
	mustBond(t, g, 1, 2, Single)
	mustBond(t, g, 0, 3, Single)
	mustBond(t, g, 0, 4, Single)
	mustBond(t, g, 0, 5, Single)
	mustBond(t, g, 1, 6, Single)
	mustBond(t, g, 1, 7, Single)
	mustBond(t, g, 2, 8, Single)
	return g
}

// methaneGraph builds CH4: atom 0 is carbon, 1-4 are hydrogens.
func methaneGraph(t *testing.T) *MolecularGraph {
	t.Helper()
	g := NewMolecularGraph()
	g.AddAtom(C)
	for i := 0; i < 4; i++ {
		g.AddAtom(H)
	}
	for i := 1; i <= 4; i++ {
		mustBond(t, g, 0, i, Single)
	}
	return g
}

// benzeneGraph builds C6H6: atoms 0-5 are the ring carbons (aromatic ring
// bonds), atoms 6-11 are their respective hydrogens.
func benzeneGraph(t *testing.T) *MolecularGraph {
	t.Helper()
	g := NewMolecularGraph()
	for i := 0; i < 6; i++ {
		g.AddAtom(C)
	}
	for i := 0; i < 6; i++ {
		g.AddAtom(H)
	}
	for i := 0; i < 6; i++ {
		mustBond(t, g, i, (i+1)%6, Aromatic)
	}
	for i := 0; i < 6; i++ {
		mustBond(t, g, i, 6+i, Single)
	}
	return g
}

// pyridineGraph builds C5H5N: atom 0 is the ring nitrogen, atoms 1-5 are
// ring carbons, atoms 6-10 are the carbons' hydrogens (the nitrogen bears
// no hydrogen).
func pyridineGraph(t *testing.T) *MolecularGraph {
	t.Helper()
	g := NewMolecularGraph()
	g.AddAtom(N)
	for i := 0; i < 5; i++ {
		g.AddAtom(C)
	}
	for i := 0; i < 5; i++ {
		g.AddAtom(H)
	}
	for i := 0; i < 6; i++ {
		mustBond(t, g, i, (i+1)%6, Aromatic)
	}
	for i := 0; i < 5; i++ {
		mustBond(t, g, 1+i, 6+i, Single)
	}
	return g
}

// acetateGraph builds CH3-COO-: atom 0 is the methyl carbon, atom 1 the
// carboxylate carbon, atom 2 the double-bonded oxygen, atom 3 the anionic
// single-bonded oxygen, atoms 4-6 the methyl hydrogens.
func acetateGraph(t *testing.T) *MolecularGraph {
	t.Helper()
	g := NewMolecularGraph()
	g.AddAtom(C)
	g.AddAtom(C)
	g.AddAtom(O)
	g.AddAtom(O)
	for i := 0; i < 3; i++ {
		g.AddAtom(H)
	}
	mustBond(t, g, 0, 1, Single)
	mustBond(t, g, 1, 2, Double)
	mustBond(t, g, 1, 3, Single)
	mustBond(t, g, 0, 4, Single)
	mustBond(t, g, 0, 5, Single)
	mustBond(t, g, 0, 6, Single)
	return g
}

// diboraneGraph builds B2H6: atoms 0-1 are boron, atoms 2-3 are the
// bridging hydrogens (bonded to both borons), atoms 4-5 are terminal
// hydrogens on boron 0, atoms 6-7 are terminal hydrogens on boron 1.
func diboraneGraph(t *testing.T) *MolecularGraph {
	t.Helper()
	g := NewMolecularGraph()
	g.AddAtom(B)
	g.AddAtom(B)
	for i := 0; i < 6; i++ {
		g.AddAtom(H)
	}
	mustBond(t, g, 0, 2, Single)
	mustBond(t, g, 1, 2, Single)
	mustBond(t, g, 0, 3, Single)
	mustBond(t, g, 1, 3, Single)
	mustBond(t, g, 0, 4, Single)
	mustBond(t, g, 0, 5, Single)
	mustBond(t, g, 1, 6, Single)
	mustBond(t, g, 1, 7, Single)
	return g
}
