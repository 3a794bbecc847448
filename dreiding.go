/*
 * dreiding.go, part of dreid-typer.
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

// AssignTopology runs the default ruleset over graph: perceive, then
// assign_types, then build_topology. It is shorthand for
// AssignTopologyWithRules(graph, GetDefaultRules()).
func AssignTopology(graph *MolecularGraph) (*MolecularTopology, error) {
	rules, err := GetDefaultRules()
	if err != nil {
		return nil, newTyperError(err)
	}
	return AssignTopologyWithRules(graph, rules)
}

// AssignTopologyWithRules runs perception, typing, and topology building
// over graph using the supplied ruleset, wrapping whichever stage fails
// into a single *TyperError.
func AssignTopologyWithRules(graph *MolecularGraph, rules []Rule) (*MolecularTopology, error) {
	annotated, err := perceive(graph)
	if err != nil {
		return nil, newTyperError(err)
	}

	types, err := assignTypes(annotated, rules)
	if err != nil {
		return nil, newTyperError(err)
	}

	return buildTopology(annotated, types), nil
}
