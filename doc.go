/*
 * doc.go, part of dreid-typer.
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

/*
Package typer is the main package of the dreid-typer library. It converts a
minimal chemical connectivity graph into a force-field-ready topology for
the DREIDING molecular mechanics model.

Callers supply only element identities and bond orders through a
MolecularGraph (NewMolecularGraph, AddAtom, AddBond). The library infers
rings, Kekule bond assignments, formal charges, lone pairs, aromaticity,
resonance and hybridization, assigns a canonical DREIDING atom-type label
to every atom, and emits the complete set of bonded interaction terms
(bonds, angles, proper and improper torsions) in canonical, deduplicated
form.

	**Capabilities**

	Builds a MolecularGraph from atoms and bonds.

	Runs the six-pass chemical perception pipeline (rings, Kekule expansion,
	electron bookkeeping, aromaticity, resonance, hybridization) to produce
	an AnnotatedMolecule.

	Parses a TOML rule document into a typing ruleset (ParseRules), or uses
	the bundled default ruleset (GetDefaultRules), lazily parsed once and
	cached process-wide.

	Runs the priority-ordered, deterministic fixed-point typing engine to
	assign a DREIDING atom-type string to every atom.

	Builds a canonical MolecularTopology: deduplicated bonds, angles, and
	proper/improper torsions, ordered for deterministic output.

	The facade functions AssignTopology and AssignTopologyWithRules chain
	all three phases for the common case.

This package is reentrant: any number of goroutines may call its entry
points concurrently on disjoint inputs. The only process-wide state is the
lazily initialized default rule cache (see GetDefaultRules), which is
read-only after its one-time initialization.
*/
package typer
