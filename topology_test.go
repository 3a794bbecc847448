/*
 * topology_test.go, part of dreid-typer.
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

// TestAnglesSatisfyICenterKInvariant covers the universal invariant that
// every emitted angle (i, j, k) has i < k.
func TestAnglesSatisfyICenterKInvariant(t *testing.T) {
	topo, err := AssignTopology(ethanolGraph(t))
	require.NoError(t, err)
	for _, a := range topo.Angles {
		assert.Less(t, a.I, a.K)
	}
}

// TestProperDihedralsAreLexMinOfSelfAndReverse covers the universal
// invariant that every proper dihedral is the lexicographic minimum of
// itself and its reverse.
func TestProperDihedralsAreLexMinOfSelfAndReverse(t *testing.T) {
	topo, err := AssignTopology(ethanolGraph(t))
	require.NoError(t, err)
	for _, p := range topo.ProperDihedrals {
		forward := [4]int{p.I, p.J, p.K, p.L}
		reverse := [4]int{p.L, p.K, p.J, p.I}
		assert.False(t, lexLess4(reverse, forward), "dihedral %+v is not its own lex-min", p)
	}
}

// TestImproperAxisRotationYieldsThreePerCenter covers the "three per
// center, axis-rotated" convention: each trigonal center in the topology
// contributes exactly three improper records, each taking a different
// neighbor as its axis.
func TestImproperAxisRotationYieldsThreePerCenter(t *testing.T) {
	topo, err := AssignTopology(benzeneGraph(t))
	require.NoError(t, err)

	perCenter := make(map[int][]ImproperDihedral)
	for _, imp := range topo.ImproperDihedrals {
		perCenter[imp.Center] = append(perCenter[imp.Center], imp)
	}
	for center, imps := range perCenter {
		require.Len(t, imps, 3, "center %d", center)
		seen := make(map[int]bool)
		for _, imp := range imps {
			seen[imp.Axis] = true
		}
		assert.Len(t, seen, 3, "center %d should rotate through 3 distinct axes", center)
	}
}

// TestNoDuplicateTopologyEntries covers the universal invariant that no
// duplicate bond, angle, proper, or improper appears in a
// MolecularTopology, across every worked scenario.
func TestNoDuplicateTopologyEntries(t *testing.T) {
	for name, build := range map[string]func(*testing.T) *MolecularGraph{
		"ethanol":  ethanolGraph,
		"benzene":  benzeneGraph,
		"pyridine": pyridineGraph,
		"acetate":  acetateGraph,
		"diborane": diboraneGraph,
	} {
		t.Run(name, func(t *testing.T) {
			topo, err := AssignTopology(build(t))
			require.NoError(t, err)

			bondSeen := make(map[[2]int]bool)
			for _, b := range topo.Bonds {
				key := [2]int{b.I, b.J}
				assert.False(t, bondSeen[key], "duplicate bond %v", key)
				bondSeen[key] = true
			}
			angleSeen := make(map[[3]int]bool)
			for _, a := range topo.Angles {
				key := [3]int{a.I, a.Center, a.K}
				assert.False(t, angleSeen[key], "duplicate angle %v", key)
				angleSeen[key] = true
			}
			properSeen := make(map[[4]int]bool)
			for _, p := range topo.ProperDihedrals {
				key := [4]int{p.I, p.J, p.K, p.L}
				assert.False(t, properSeen[key], "duplicate proper %v", key)
				properSeen[key] = true
			}
			improperSeen := make(map[[4]int]bool)
			for _, imp := range topo.ImproperDihedrals {
				key := [4]int{imp.Center, imp.Axis, imp.P2, imp.P3}
				assert.False(t, improperSeen[key], "duplicate improper %v", key)
				improperSeen[key] = true
			}
		})
	}
}
