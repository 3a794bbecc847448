/*
 * perception_test.go, part of dreid-typer.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAromaticBondOutsideRingFails covers the boundary case where an
// Aromatic bond order is used between two atoms that do not close any
// ring: perception must fail at the kekulize stage.
func TestAromaticBondOutsideRingFails(t *testing.T) {
	g := NewMolecularGraph()
	g.AddAtom(C)
	g.AddAtom(C)
	mustBond(t, g, 0, 1, Aromatic)

	_, err := perceive(g)
	require.Error(t, err)
	var perceptionErr *PerceptionError
	require.ErrorAs(t, err, &perceptionErr)
	assert.Equal(t, "kekulize", perceptionErr.Stage)
}

// TestNoAromaticBondsSurviveSuccessfulPerception covers the universal
// invariant that a successfully perceived molecule never retains an
// Aromatic bond order: Pass 2 must have rewritten every one into Single
// or Double.
func TestNoAromaticBondsSurviveSuccessfulPerception(t *testing.T) {
	for name, build := range map[string]func(*testing.T) *MolecularGraph{
		"benzene":  benzeneGraph,
		"pyridine": pyridineGraph,
	} {
		t.Run(name, func(t *testing.T) {
			m, err := perceive(build(t))
			require.NoError(t, err)
			for _, b := range m.Bonds {
				assert.NotEqual(t, Aromatic, b.Order, "bond %d", b.ID)
			}
		})
	}
}

// TestAromaticImpliesInRing covers the universal invariant is_aromatic
// implies is_in_ring.
func TestAromaticImpliesInRing(t *testing.T) {
	m, err := perceive(benzeneGraph(t))
	require.NoError(t, err)
	for _, a := range m.Atoms {
		if a.IsAromatic {
			assert.True(t, a.IsInRing, "atom %d", a.ID)
		}
	}
}

// TestResonantStericNumberIsThree covers the universal invariant that
// every Resonant atom has steric_number = 3 after Pass 6.
func TestResonantStericNumberIsThree(t *testing.T) {
	m, err := perceive(benzeneGraph(t))
	require.NoError(t, err)
	for _, a := range m.Atoms {
		if a.Hybridization == Resonant {
			assert.Equal(t, 3, a.StericNumber, "atom %d", a.ID)
		}
	}
}

// TestHybridizationNoneIffNonHybridizing covers the universal invariant
// tying Hybridization::None exactly to the non-hybridizing element set.
func TestHybridizationNoneIffNonHybridizing(t *testing.T) {
	for name, build := range map[string]func(*testing.T) *MolecularGraph{
		"ethanol":  ethanolGraph,
		"benzene":  benzeneGraph,
		"pyridine": pyridineGraph,
		"acetate":  acetateGraph,
		"diborane": diboraneGraph,
	} {
		t.Run(name, func(t *testing.T) {
			m, err := perceive(build(t))
			require.NoError(t, err)
			for _, a := range m.Atoms {
				none := a.Hybridization == HybridizationNone
				nonHybridizing := !a.Element.IsHybridizing()
				assert.Equal(t, nonHybridizing, none, "atom %d (%s)", a.ID, a.Element)
			}
		})
	}
}

// TestPerceiveIsDeterministic covers assign_topology's determinism
// property: re-running on the same graph yields a structurally identical
// topology.
func TestPerceiveIsDeterministic(t *testing.T) {
	g := ethanolGraph(t)
	first, err := AssignTopology(g)
	require.NoError(t, err)
	second, err := AssignTopology(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
