/*
 * resonance.go, part of dreid-typer.
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

// perceiveResonance is Pass 5: recognizes resonance-delocalized functional
// groups, propagates conjugation to adjacent lone-pair-bearing
// heteroatoms, folds in aromatic atoms, and demotes halogen-oxyanion
// oxygens that peripheral propagation would otherwise mis-flag.
func perceiveResonance(m *AnnotatedMolecule) error {
	for i := range m.Atoms {
		if m.Atoms[i].IsAromatic {
			m.Atoms[i].IsInConjugatedSystem = true
		}
	}

	detectCarboxylate(m)
	detectNitro(m)
	detectGuanidinium(m)
	detectThioureaThioamide(m)
	detectAmide(m)
	detectPhosphate(m)

	propagatePeripheral(m)
	demoteHalogenOxyanions(m)
	return nil
}

// registerCoreSystem flags every listed atom resonant and conjugated and
// records the (atom set, bond set) into molecule.ResonanceSystems.
func registerCoreSystem(m *AnnotatedMolecule, atomIDs, bondIDs []int) {
	for _, id := range atomIDs {
		m.Atoms[id].IsResonant = true
		m.Atoms[id].IsInConjugatedSystem = true
	}
	m.ResonanceSystems = append(m.ResonanceSystems, ResonanceSystem{
		AtomIDs: sortedCopy(atomIDs),
		BondIDs: sortedCopy(bondIDs),
	})
}

// detectCarboxylate finds C(=O)O- centers (degree-3 carbon, one double-
// bonded O, one single-bonded terminal O) and registers the whole group.
func detectCarboxylate(m *AnnotatedMolecule) {
	for i := range m.Atoms {
		a := m.Atoms[i]
		if a.Element != C || a.Degree != 3 {
			continue
		}
		var doubleO, singleO *adjacentBond
		for j, nb := range m.adjacency[i] {
			if m.Atoms[nb.NeighborID].Element != O {
				continue
			}
			switch nb.Order {
			case Double:
				n := m.adjacency[i][j]
				doubleO = &n
			case Single:
				if m.Atoms[nb.NeighborID].Degree == 1 {
					n := m.adjacency[i][j]
					singleO = &n
				}
			}
		}
		if doubleO != nil && singleO != nil {
			registerCoreSystem(m, []int{i, doubleO.NeighborID, singleO.NeighborID}, []int{doubleO.BondID, singleO.BondID})
		}
	}
}

// detectNitro finds degree-3 nitrogens bonded to exactly two oxygens.
func detectNitro(m *AnnotatedMolecule) {
	for i := range m.Atoms {
		a := m.Atoms[i]
		if a.Element != N || a.Degree != 3 {
			continue
		}
		oxygens := neighborsOfElement(m, i, O)
		if len(oxygens) != 2 {
			continue
		}
		atomIDs := []int{i, oxygens[0].NeighborID, oxygens[1].NeighborID}
		bondIDs := []int{oxygens[0].BondID, oxygens[1].BondID}
		registerCoreSystem(m, atomIDs, bondIDs)
	}
}

// detectGuanidinium finds carbons bonded to exactly three nitrogens
// (guanidinium-style delocalized centers).
func detectGuanidinium(m *AnnotatedMolecule) {
	for i := range m.Atoms {
		a := m.Atoms[i]
		if a.Element != C || a.Degree != 3 {
			continue
		}
		nitrogens := neighborsOfElement(m, i, N)
		if len(nitrogens) != 3 {
			continue
		}
		atomIDs := []int{i}
		bondIDs := []int{}
		for _, n := range nitrogens {
			atomIDs = append(atomIDs, n.NeighborID)
			bondIDs = append(bondIDs, n.BondID)
		}
		registerCoreSystem(m, atomIDs, bondIDs)
	}
}

// detectThioureaThioamide finds carbons double-bonded to sulfur and
// singly-bonded to at least one nitrogen: thiourea/thioamide centers.
func detectThioureaThioamide(m *AnnotatedMolecule) {
	for i := range m.Atoms {
		a := m.Atoms[i]
		if a.Element != C {
			continue
		}
		var doubleS *adjacentBond
		var nitrogens []adjacentBond
		for j, nb := range m.adjacency[i] {
			switch {
			case nb.Order == Double && m.Atoms[nb.NeighborID].Element == S:
				n := m.adjacency[i][j]
				doubleS = &n
			case nb.Order == Single && m.Atoms[nb.NeighborID].Element == N:
				nitrogens = append(nitrogens, nb)
			}
		}
		if doubleS == nil || len(nitrogens) == 0 {
			continue
		}
		atomIDs := []int{i, doubleS.NeighborID}
		bondIDs := []int{doubleS.BondID}
		for _, n := range nitrogens {
			atomIDs = append(atomIDs, n.NeighborID)
			bondIDs = append(bondIDs, n.BondID)
		}
		registerCoreSystem(m, atomIDs, bondIDs)
	}
}

// detectAmide finds carbons double-bonded to oxygen and singly-bonded to
// at least one nitrogen: the amide resonance group.
func detectAmide(m *AnnotatedMolecule) {
	for i := range m.Atoms {
		a := m.Atoms[i]
		if a.Element != C {
			continue
		}
		var doubleO *adjacentBond
		var nitrogens []adjacentBond
		for j, nb := range m.adjacency[i] {
			switch {
			case nb.Order == Double && m.Atoms[nb.NeighborID].Element == O:
				n := m.adjacency[i][j]
				doubleO = &n
			case nb.Order == Single && m.Atoms[nb.NeighborID].Element == N:
				nitrogens = append(nitrogens, nb)
			}
		}
		if doubleO == nil || len(nitrogens) == 0 {
			continue
		}
		atomIDs := []int{i, doubleO.NeighborID}
		bondIDs := []int{doubleO.BondID}
		for _, n := range nitrogens {
			atomIDs = append(atomIDs, n.NeighborID)
			bondIDs = append(bondIDs, n.BondID)
		}
		registerCoreSystem(m, atomIDs, bondIDs)
	}
}

// detectPhosphate finds degree-4 phosphorus atoms bonded to at least
// three oxygens, at least one via a double bond: the phosphate resonance
// group.
func detectPhosphate(m *AnnotatedMolecule) {
	for i := range m.Atoms {
		a := m.Atoms[i]
		if a.Element != P || a.Degree != 4 {
			continue
		}
		oxygens := neighborsOfElement(m, i, O)
		if len(oxygens) < 3 {
			continue
		}
		hasDouble := false
		for _, o := range oxygens {
			if o.Order == Double {
				hasDouble = true
			}
		}
		if !hasDouble {
			continue
		}
		atomIDs := []int{i}
		bondIDs := []int{}
		for _, o := range oxygens {
			atomIDs = append(atomIDs, o.NeighborID)
			bondIDs = append(bondIDs, o.BondID)
		}
		registerCoreSystem(m, atomIDs, bondIDs)
	}
}

// propagatePeripheral promotes any O/N/S with at least one lone pair,
// adjacent to an atom already in a conjugated system, to
// is_in_conjugated_system. Iterates to a fixed point since promotion can
// chain outward from a single core system.
func propagatePeripheral(m *AnnotatedMolecule) {
	for {
		changed := false
		for i := range m.Atoms {
			a := &m.Atoms[i]
			if a.IsInConjugatedSystem || a.LonePairs < 1 {
				continue
			}
			if a.Element != O && a.Element != N && a.Element != S {
				continue
			}
			for _, nb := range m.adjacency[i] {
				if m.Atoms[nb.NeighborID].IsInConjugatedSystem {
					a.IsInConjugatedSystem = true
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}
}

// demoteHalogenOxyanions strips the is_in_conjugated_system flag from
// terminal oxygens bonded to a halogen oxyanion center: peripheral
// propagation would otherwise promote them via their adjacent lone pairs,
// which is not genuine delocalization.
func demoteHalogenOxyanions(m *AnnotatedMolecule) {
	for i := range m.Atoms {
		a := m.Atoms[i]
		if a.Element != Cl && a.Element != Br && a.Element != I {
			continue
		}
		oxygens := neighborsOfElement(m, i, O)
		if len(oxygens) < 3 {
			continue
		}
		for _, o := range oxygens {
			m.Atoms[o.NeighborID].IsInConjugatedSystem = false
			m.Atoms[o.NeighborID].IsResonant = false
		}
	}
}
