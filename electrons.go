/*
 * electrons.go, part of dreid-typer.
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

// electronAssignment is what a matched template assigns to one
// participating atom.
type electronAssignment struct {
	charge    int
	lonePairs int
}

// templateFunc attempts to recognize its functional group centered at
// atom id; on match it returns the per-atom assignment and true, marking
// every key as processed so the fallback step skips them.
type templateFunc func(m *AnnotatedMolecule, id int) (map[int]electronAssignment, bool)

// perceiveElectrons is Pass 3: assigns formal_charge and lone_pairs to
// every atom, template-first then falling back to a valence calculation.
func perceiveElectrons(m *AnnotatedMolecule) error {
	processed := make(map[int]bool, len(m.Atoms))
	templates := []templateFunc{
		matchNitro,
		matchNitrone,
		matchCarboxylate,
		matchSulfoxideSulfone,
		matchHalogenOxyanion,
		matchPhosphoryl,
		matchAmmoniumIminium,
		matchOnium,
		matchPhosphonium,
		matchEnolatePhenate,
	}

	for i := range m.Atoms {
		if processed[i] {
			continue
		}
		for _, tmpl := range templates {
			assignment, ok := tmpl(m, i)
			if !ok {
				continue
			}
			for atomID, a := range assignment {
				m.Atoms[atomID].FormalCharge = a.charge
				m.Atoms[atomID].LonePairs = a.lonePairs
				processed[atomID] = true
			}
			break
		}
	}

	for i := range m.Atoms {
		if processed[i] {
			continue
		}
		if err := assignFallback(m, i); err != nil {
			return err
		}
	}
	return nil
}

// countBondOrder returns the number of neighbor bonds of atom id at the
// given order.
func countBondOrder(m *AnnotatedMolecule, id int, order BondOrder) int {
	n := 0
	for _, nb := range m.adjacency[id] {
		if nb.Order == order {
			n++
		}
	}
	return n
}

// neighborsOfElement returns the adjacency entries of atom id whose
// neighbor element is el.
func neighborsOfElement(m *AnnotatedMolecule, id int, el Element) []adjacentBond {
	var out []adjacentBond
	for _, nb := range m.adjacency[id] {
		if m.Atoms[nb.NeighborID].Element == el {
			out = append(out, nb)
		}
	}
	return out
}

// matchNitro recognizes a neutral sp2 nitrogen (degree 3) bonded to
// exactly two terminal (degree-1) oxygens, one via a double bond and one
// via a single bond: the classic nitro/nitrate resonance center.
func matchNitro(m *AnnotatedMolecule, id int) (map[int]electronAssignment, bool) {
	a := m.Atoms[id]
	if a.Element != N || a.Degree != 3 {
		return nil, false
	}
	oxygens := neighborsOfElement(m, id, O)
	if len(oxygens) != 2 {
		return nil, false
	}
	var doubleO, singleO *adjacentBond
	for i := range oxygens {
		nb := oxygens[i]
		if m.Atoms[nb.NeighborID].Degree != 1 {
			return nil, false
		}
		switch nb.Order {
		case Double:
			if doubleO != nil {
				return nil, false
			}
			o := nb
			doubleO = &o
		case Single:
			if singleO != nil {
				return nil, false
			}
			o := nb
			singleO = &o
		default:
			return nil, false
		}
	}
	if doubleO == nil || singleO == nil {
		return nil, false
	}
	return map[int]electronAssignment{
		id:                 {charge: 1, lonePairs: 0},
		doubleO.NeighborID: {charge: 0, lonePairs: 2},
		singleO.NeighborID: {charge: -1, lonePairs: 3},
	}, true
}

// matchNitrone recognizes R2C=N(+)(-O-)R: a degree-3 nitrogen with one
// double bond to carbon and one single bond to a terminal oxygen.
func matchNitrone(m *AnnotatedMolecule, id int) (map[int]electronAssignment, bool) {
	a := m.Atoms[id]
	if a.Element != N || a.Degree != 3 {
		return nil, false
	}
	var doubleC, singleO *adjacentBond
	for i, nb := range m.adjacency[id] {
		switch {
		case nb.Order == Double && m.Atoms[nb.NeighborID].Element == C:
			n := m.adjacency[id][i]
			doubleC = &n
		case nb.Order == Single && m.Atoms[nb.NeighborID].Element == O && m.Atoms[nb.NeighborID].Degree == 1:
			n := m.adjacency[id][i]
			singleO = &n
		}
	}
	if doubleC == nil || singleO == nil {
		return nil, false
	}
	return map[int]electronAssignment{
		id:                 {charge: 1, lonePairs: 0},
		singleO.NeighborID: {charge: -1, lonePairs: 3},
	}, true
}

// matchCarboxylate recognizes a degree-3 carbon bonded to one oxygen via
// a double bond and one terminal (degree-1) oxygen via a single bond: a
// carboxylate/carboxamide-style center. The carbon itself stays neutral.
func matchCarboxylate(m *AnnotatedMolecule, id int) (map[int]electronAssignment, bool) {
	a := m.Atoms[id]
	if a.Element != C || a.Degree != 3 {
		return nil, false
	}
	oxygens := neighborsOfElement(m, id, O)
	var doubleO, singleTerminalO *adjacentBond
	for i := range oxygens {
		nb := oxygens[i]
		switch {
		case nb.Order == Double:
			if doubleO != nil {
				return nil, false
			}
			o := nb
			doubleO = &o
		case nb.Order == Single && m.Atoms[nb.NeighborID].Degree == 1:
			if singleTerminalO != nil {
				return nil, false
			}
			o := nb
			singleTerminalO = &o
		}
	}
	if doubleO == nil || singleTerminalO == nil {
		return nil, false
	}
	return map[int]electronAssignment{
		id:                      {charge: 0, lonePairs: 0},
		doubleO.NeighborID:      {charge: 0, lonePairs: 2},
		singleTerminalO.NeighborID: {charge: -1, lonePairs: 3},
	}, true
}

// matchSulfoxideSulfone recognizes sulfur centers bonded to one (degree 3,
// sulfoxide) or two (degree 4, sulfone) terminal oxygens via double bonds:
// the sulfur carries one lone pair, each such oxygen carries two.
func matchSulfoxideSulfone(m *AnnotatedMolecule, id int) (map[int]electronAssignment, bool) {
	a := m.Atoms[id]
	if a.Element != S || (a.Degree != 3 && a.Degree != 4) {
		return nil, false
	}
	var doubleOxygens []adjacentBond
	for _, nb := range m.adjacency[id] {
		if nb.Order == Double && m.Atoms[nb.NeighborID].Element == O {
			doubleOxygens = append(doubleOxygens, nb)
		}
	}
	wanted := 1
	if a.Degree == 4 {
		wanted = 2
	}
	if len(doubleOxygens) != wanted {
		return nil, false
	}
	out := map[int]electronAssignment{id: {charge: 0, lonePairs: 1}}
	for _, nb := range doubleOxygens {
		out[nb.NeighborID] = electronAssignment{charge: 0, lonePairs: 2}
	}
	return out, true
}

// matchHalogenOxyanion recognizes a halogen (Cl, Br, I) center bonded to
// three or more oxygens (perchlorate/chlorate-style): single-bonded
// terminal oxygens are anionic, double-bonded ones are neutral.
func matchHalogenOxyanion(m *AnnotatedMolecule, id int) (map[int]electronAssignment, bool) {
	a := m.Atoms[id]
	if a.Element != Cl && a.Element != Br && a.Element != I {
		return nil, false
	}
	oxygens := neighborsOfElement(m, id, O)
	if len(oxygens) < 3 {
		return nil, false
	}
	out := make(map[int]electronAssignment, len(oxygens)+1)
	for _, nb := range oxygens {
		if m.Atoms[nb.NeighborID].Degree != 1 {
			return nil, false
		}
		switch nb.Order {
		case Single:
			out[nb.NeighborID] = electronAssignment{charge: -1, lonePairs: 3}
		case Double:
			out[nb.NeighborID] = electronAssignment{charge: 0, lonePairs: 2}
		default:
			return nil, false
		}
	}
	out[id] = electronAssignment{charge: 0, lonePairs: 0}
	return out, true
}

// matchPhosphoryl recognizes a degree-4 phosphorus bonded to exactly one
// oxygen via a double bond (phosphoryl, P=O).
func matchPhosphoryl(m *AnnotatedMolecule, id int) (map[int]electronAssignment, bool) {
	a := m.Atoms[id]
	if a.Element != P || a.Degree != 4 {
		return nil, false
	}
	doubleOxygens := 0
	var theO *adjacentBond
	for i, nb := range m.adjacency[id] {
		if nb.Order == Double && m.Atoms[nb.NeighborID].Element == O {
			doubleOxygens++
			n := m.adjacency[id][i]
			theO = &n
		}
	}
	if doubleOxygens != 1 {
		return nil, false
	}
	return map[int]electronAssignment{
		id:               {charge: 1, lonePairs: 0},
		theO.NeighborID: {charge: -1, lonePairs: 3},
	}, true
}

// matchAmmoniumIminium recognizes a degree-4 nitrogen (ammonium) or a
// degree-3 nitrogen with an acyclic double bond (iminium): both carry a
// +1 formal charge and zero lone pairs.
func matchAmmoniumIminium(m *AnnotatedMolecule, id int) (map[int]electronAssignment, bool) {
	a := m.Atoms[id]
	if a.Element != N {
		return nil, false
	}
	if a.Degree == 4 {
		return map[int]electronAssignment{id: {charge: 1, lonePairs: 0}}, true
	}
	if a.Degree == 3 {
		for _, nb := range m.adjacency[id] {
			if nb.Order == Double && !a.IsInRing {
				return map[int]electronAssignment{id: {charge: 1, lonePairs: 0}}, true
			}
		}
	}
	return nil, false
}

// matchOnium recognizes a degree-3 oxygen or sulfur with no pi bonds
// (oxonium/sulfonium): +1 formal charge, one lone pair.
func matchOnium(m *AnnotatedMolecule, id int) (map[int]electronAssignment, bool) {
	a := m.Atoms[id]
	if (a.Element != O && a.Element != S) || a.Degree != 3 {
		return nil, false
	}
	for _, nb := range m.adjacency[id] {
		if nb.Order != Single {
			return nil, false
		}
	}
	return map[int]electronAssignment{id: {charge: 1, lonePairs: 1}}, true
}

// matchPhosphonium recognizes a degree-4 phosphorus with no P=O bond:
// +1 formal charge, zero lone pairs.
func matchPhosphonium(m *AnnotatedMolecule, id int) (map[int]electronAssignment, bool) {
	a := m.Atoms[id]
	if a.Element != P || a.Degree != 4 {
		return nil, false
	}
	for _, nb := range m.adjacency[id] {
		if nb.Order == Double {
			return nil, false
		}
	}
	return map[int]electronAssignment{id: {charge: 1, lonePairs: 0}}, true
}

// matchEnolatePhenate recognizes a terminal (degree-1) oxygen single
// bonded to a carbon that itself carries an exocyclic or endocyclic
// double bond elsewhere: the anionic oxygen of an enolate or phenate.
func matchEnolatePhenate(m *AnnotatedMolecule, id int) (map[int]electronAssignment, bool) {
	a := m.Atoms[id]
	if a.Element != O || a.Degree != 1 {
		return nil, false
	}
	nb := m.adjacency[id][0]
	if nb.Order != Single || m.Atoms[nb.NeighborID].Element != C {
		return nil, false
	}
	carbon := nb.NeighborID
	hasDouble := false
	for _, cnb := range m.adjacency[carbon] {
		if cnb.Order == Double {
			hasDouble = true
		}
	}
	if !hasDouble {
		return nil, false
	}
	return map[int]electronAssignment{id: {charge: -1, lonePairs: 3}}, true
}

// assignFallback computes formal_charge (kept at its input default of 0)
// and lone_pairs from valence electrons minus the bond-order sum, for any
// atom no template claimed.
func assignFallback(m *AnnotatedMolecule, id int) error {
	a := &m.Atoms[id]
	bondOrderSum := 0
	for _, nb := range m.adjacency[id] {
		bondOrderSum += nb.Order.contribution()
	}
	ve, ok := a.Element.ValenceElectrons()
	if !ok {
		if a.Degree == 0 {
			a.FormalCharge = 0
			a.LonePairs = 0
			return nil
		}
		return newPerceptionError("electrons", "bonded atom of an element with no tabulated valence electrons")
	}
	v := ve - a.FormalCharge - bondOrderSum
	if v < 0 {
		v = 0
	}
	a.LonePairs = v / 2
	return nil
}
