/*
 * perception.go, part of dreid-typer.
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

// perceptionStage names a pass, used to tag errors and to iterate the
// pipeline in strict order.
type perceptionStage struct {
	name string
	run  func(*AnnotatedMolecule) error
}

// perceive runs the six-pass chemical perception pipeline over graph and
// returns the resulting AnnotatedMolecule, or the first stage's error
// wrapped with its stage name.
func perceive(graph *MolecularGraph) (*AnnotatedMolecule, error) {
	if err := graph.validate(); err != nil {
		return nil, err
	}

	m := newAnnotatedMolecule(graph)
	stages := []perceptionStage{
		{"rings", perceiveRings},
		{"kekulize", perceiveKekulize},
		{"electrons", perceiveElectrons},
		{"aromaticity", perceiveAromaticity},
		{"resonance", perceiveResonance},
		{"hybridization", perceiveHybridization},
	}
	for _, stage := range stages {
		if err := stage.run(m); err != nil {
			return nil, decorate(err, stage.name)
		}
	}
	return m, nil
}
