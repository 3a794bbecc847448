/*
 * hybridization.go, part of dreid-typer.
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

// perceiveHybridization is Pass 6, the pipeline's final stage: assigns a
// Hybridization and a normalized steric_number to every atom.
func perceiveHybridization(m *AnnotatedMolecule) error {
	for i := range m.Atoms {
		h, err := initialHybridization(&m.Atoms[i])
		if err != nil {
			return err
		}
		m.Atoms[i].Hybridization = h
	}

	for {
		changed := false
		for i := range m.Atoms {
			a := &m.Atoms[i]
			if a.Hybridization != SP3 || a.LonePairs <= 0 {
				continue
			}
			if a.Element != O && a.Element != N {
				continue
			}
			for _, nb := range m.adjacency[i] {
				if supportsDelocalization(m, nb.NeighborID) {
					a.Hybridization = Resonant
					a.IsResonant = true
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}

	for i := range m.Atoms {
		a := &m.Atoms[i]
		switch a.Hybridization {
		case Resonant, SP2:
			a.StericNumber = 3
		case SP3:
			a.StericNumber = 4
		case SP:
			a.StericNumber = 2
		default:
			// HybridizationNone: non-hybridizing elements report a flat
			// steric_number of 0 rather than a computed VSEPR value.
			a.StericNumber = 0
		}
	}
	return nil
}

// initialHybridization determines an atom's hybridization before the
// resonant-promotion convergence loop: non-hybridizing elements go to
// None; atoms already flagged as part of a conjugated system (and not
// anti-aromatic) with a steric number compatible with planarity become
// Resonant; aromatic atoms become SP2; everything else falls back to pure
// VSEPR on degree+lone_pairs.
func initialHybridization(a *AnnotatedAtom) (Hybridization, error) {
	if !a.Element.IsHybridizing() {
		return HybridizationNone, nil
	}

	sn := a.Degree + a.LonePairs
	if sn > 4 {
		return HybridizationNone, newPerceptionError("hybridization", "steric number exceeds 4 for a hybridizing element")
	}

	if a.IsInConjugatedSystem && !a.IsAntiAromatic && (sn <= 3 || (sn == 4 && a.LonePairs >= 1)) {
		return Resonant, nil
	}
	if a.IsAromatic {
		return SP2, nil
	}
	switch sn {
	case 4:
		return SP3, nil
	case 3:
		return SP2, nil
	default:
		// sn <= 2: a hybridizing element with a single electron domain
		// (e.g. a terminal triple-bonded atom) still gets the most linear
		// available class rather than no class at all.
		return SP, nil
	}
}

// supportsDelocalization reports whether neighborID can extend
// conjugation to an adjacent SP3 O/N: the neighbor must itself be SP2, SP
// or Resonant, and if it is carbon it must not be carbonyl-like (C=O or
// C=S), which terminates delocalization rather than extending it.
func supportsDelocalization(m *AnnotatedMolecule, neighborID int) bool {
	neighbor := m.Atoms[neighborID]
	switch neighbor.Hybridization {
	case SP2, SP, Resonant:
	default:
		return false
	}
	if neighbor.Element == C {
		for _, nb := range m.adjacency[neighborID] {
			if nb.Order == Double && (m.Atoms[nb.NeighborID].Element == O || m.Atoms[nb.NeighborID].Element == S) {
				return false
			}
		}
	}
	return true
}
