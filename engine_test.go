/*
 * engine_test.go, part of dreid-typer.
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

func carbonElement() Element { return C }

// TestAssignTypesFailsWithIncompleteRuleSet covers the boundary case
// where the rule union does not cover every atom: the engine must stop
// within its round cap and report every atom left untyped.
func TestAssignTypesFailsWithIncompleteRuleSet(t *testing.T) {
	m, err := perceive(methaneGraph(t))
	require.NoError(t, err)

	el := carbonElement()
	rules := []Rule{
		{Name: "only_carbon", Priority: 10, AssignedType: "C_3", Conditions: Conditions{Element: &el}},
	}

	_, err = assignTypes(m, rules)
	require.Error(t, err)
	var assignErr *AssignmentError
	require.ErrorAs(t, err, &assignErr)
	assert.LessOrEqual(t, assignErr.RoundsComplete, maxTypingRounds)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, assignErr.UntypedAtomIDs)
}

// TestLowerPriorityRuleAdditionIsNoOp covers the round-trip invariant
// that appending a rule whose priority is strictly less than the rule
// that currently wins for an atom never changes that atom's type.
func TestLowerPriorityRuleAdditionIsNoOp(t *testing.T) {
	m, err := perceive(methaneGraph(t))
	require.NoError(t, err)

	rules, err := GetDefaultRules()
	require.NoError(t, err)

	before, err := assignTypes(m, rules)
	require.NoError(t, err)

	el := carbonElement()
	lowPriority := append(append([]Rule(nil), rules...), Rule{
		Name: "zzz_never_wins", Priority: -100, AssignedType: "BOGUS",
		Conditions: Conditions{Element: &el},
	})
	after, err := assignTypes(m, lowPriority)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

// TestRemovingDominatedRuleIsNoOp covers the inverse round-trip
// invariant: removing a rule whose priority is strictly less than the
// winning rule for every atom leaves all types unchanged.
func TestRemovingDominatedRuleIsNoOp(t *testing.T) {
	m, err := perceive(methaneGraph(t))
	require.NoError(t, err)

	rules, err := GetDefaultRules()
	require.NoError(t, err)
	el := carbonElement()
	rules = append(append([]Rule(nil), rules...), Rule{
		Name: "zzz_dominated", Priority: -100, AssignedType: "BOGUS",
		Conditions: Conditions{Element: &el},
	})
	before, err := assignTypes(m, rules)
	require.NoError(t, err)

	var trimmed []Rule
	for _, r := range rules {
		if r.Name == "zzz_dominated" {
			continue
		}
		trimmed = append(trimmed, r)
	}
	after, err := assignTypes(m, trimmed)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

// TestNeighborTypeConditionUsesCurrentRoundState covers the
// neighbor_types matching rule: a still-untyped neighbor counts as zero
// toward every requested type, and the match is re-evaluated each round
// against the then-current assignment.
func TestNeighborTypeConditionUsesCurrentRoundState(t *testing.T) {
	m, err := perceive(methaneGraph(t))
	require.NoError(t, err)

	el := carbonElement()
	hEl := H
	rules := []Rule{
		{Name: "carbon", Priority: 10, AssignedType: "C_3", Conditions: Conditions{Element: &el}},
		{
			Name: "h_on_typed_carbon", Priority: 5, AssignedType: "H_ON_C3",
			Conditions: Conditions{Element: &hEl, NeighborTypes: map[string]int{"C_3": 1}},
		},
	}
	types, err := assignTypes(m, rules)
	require.NoError(t, err)
	assert.Equal(t, "C_3", types[0])
	for i := 1; i <= 4; i++ {
		assert.Equal(t, "H_ON_C3", types[i])
	}
}
