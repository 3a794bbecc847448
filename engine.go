/*
 * engine.go, part of dreid-typer.
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

// maxTypingRounds bounds the fixed-point loop. Termination is guaranteed
// by the monotone priority lattice well before this; the cap is a
// defensive ceiling against a malformed ruleset.
const maxTypingRounds = 100

// atomTypeState is the typing engine's local, stack-scoped working set for
// one atom: its currently recorded type (empty until first assigned) and
// the priority of the rule that assigned it.
type atomTypeState struct {
	assigned bool
	typ      string
	priority int
}

// assignTypes runs the priority-ordered, deterministic fixed-point typing
// engine over an AnnotatedMolecule and returns one type string per atom id
// (in atom-id order), or an *AssignmentError if the engine stalls with
// atoms still untyped.
func assignTypes(m *AnnotatedMolecule, rules []Rule) ([]string, error) {
	sorted := append([]Rule(nil), rules...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].Name < sorted[j].Name
	})

	state := make([]atomTypeState, len(m.Atoms))
	for i := range state {
		state[i].priority = minInt
	}

	round := 0
	for ; round < maxTypingRounds; round++ {
		changed := false
		for i := range m.Atoms {
			rule, ok := firstMatch(m, state, sorted, i)
			if !ok {
				continue
			}
			if rule.Priority > state[i].priority {
				state[i].assigned = true
				state[i].typ = rule.AssignedType
				state[i].priority = rule.Priority
				changed = true
			}
		}
		if !changed {
			round++
			break
		}
	}

	var untyped []int
	types := make([]string, len(m.Atoms))
	for i := range state {
		if !state[i].assigned {
			untyped = append(untyped, i)
		}
		types[i] = state[i].typ
	}
	if len(untyped) > 0 {
		return nil, newAssignmentError(untyped, round)
	}
	return types, nil
}

const minInt = -int(^uint(0)>>1) - 1

// firstMatch walks the priority-sorted rule list and returns the first
// rule whose conditions all match atom id in the engine's current state.
func firstMatch(m *AnnotatedMolecule, state []atomTypeState, rules []Rule, id int) (Rule, bool) {
	for _, rule := range rules {
		if ruleMatches(m, state, rule.Conditions, id) {
			return rule, true
		}
	}
	return Rule{}, false
}

// ruleMatches reports whether every specified condition in c holds for
// atom id: intrinsic scalar fields compare directly against the atom's
// annotation, neighbor_elements/neighbor_types require an exact histogram
// match against current adjacency/current round's assigned types.
func ruleMatches(m *AnnotatedMolecule, state []atomTypeState, c Conditions, id int) bool {
	a := m.Atoms[id]

	if c.Element != nil && *c.Element != a.Element {
		return false
	}
	if c.FormalCharge != nil && *c.FormalCharge != a.FormalCharge {
		return false
	}
	if c.Degree != nil && *c.Degree != a.Degree {
		return false
	}
	if c.LonePairs != nil && *c.LonePairs != a.LonePairs {
		return false
	}
	if c.StericNumber != nil && *c.StericNumber != a.StericNumber {
		return false
	}
	if c.Hybridization != nil && *c.Hybridization != a.Hybridization {
		return false
	}
	if c.IsInRing != nil && *c.IsInRing != a.IsInRing {
		return false
	}
	if c.IsAromatic != nil && *c.IsAromatic != a.IsAromatic {
		return false
	}
	if c.IsAntiAromatic != nil && *c.IsAntiAromatic != a.IsAntiAromatic {
		return false
	}
	if c.IsResonant != nil && *c.IsResonant != a.IsResonant {
		return false
	}
	if c.SmallestRingSize != nil && *c.SmallestRingSize != a.SmallestRingSize {
		return false
	}

	if len(c.NeighborElements) > 0 && !matchNeighborElements(m, c.NeighborElements, id) {
		return false
	}
	if len(c.NeighborTypes) > 0 && !matchNeighborTypes(m, state, c.NeighborTypes, id) {
		return false
	}
	return true
}

// matchNeighborElements requires the atom's neighbor-element histogram to
// equal c exactly: listed elements must have the exact count given, and
// every element not listed must have zero neighbors of that element.
func matchNeighborElements(m *AnnotatedMolecule, c map[string]int, id int) bool {
	counts := make(map[string]int)
	for _, nb := range m.adjacency[id] {
		counts[m.Atoms[nb.NeighborID].Element.String()]++
	}
	for sym, want := range c {
		if counts[sym] != want {
			return false
		}
	}
	for sym, got := range counts {
		if _, listed := c[sym]; !listed && got != 0 {
			return false
		}
	}
	return true
}

// matchNeighborTypes requires the atom's neighbor-type histogram, using
// each neighbor's CURRENT (this-round) type, to equal c exactly. A
// still-untyped neighbor counts as zero toward every entry.
func matchNeighborTypes(m *AnnotatedMolecule, state []atomTypeState, c map[string]int, id int) bool {
	counts := make(map[string]int)
	for _, nb := range m.adjacency[id] {
		if state[nb.NeighborID].assigned {
			counts[state[nb.NeighborID].typ]++
		}
	}
	for typ, want := range c {
		if counts[typ] != want {
			return false
		}
	}
	for typ, got := range counts {
		if _, listed := c[typ]; !listed && got != 0 {
			return false
		}
	}
	return true
}
