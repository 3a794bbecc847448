/*
 * rules.go, part of dreid-typer.
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
	_ "embed"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Conditions is the full set of recognized matching keys for a Rule. Every
// field is optional: a nil pointer (or nil map) means "wildcard, matches
// anything". neighbor_elements and neighbor_types require an EXACT count
// match, with unlisted elements/types implicitly required to have count
// zero.
type Conditions struct {
	Element          *Element       `toml:"element"`
	FormalCharge     *int           `toml:"formal_charge"`
	Degree           *int           `toml:"degree"`
	LonePairs        *int           `toml:"lone_pairs"`
	StericNumber     *int           `toml:"steric_number"`
	Hybridization    *Hybridization `toml:"hybridization"`
	IsInRing         *bool          `toml:"is_in_ring"`
	IsAromatic       *bool          `toml:"is_aromatic"`
	IsAntiAromatic   *bool          `toml:"is_anti_aromatic"`
	IsResonant       *bool          `toml:"is_resonant"`
	SmallestRingSize *int           `toml:"smallest_ring_size"`
	NeighborElements map[string]int `toml:"neighbor_elements"`
	NeighborTypes    map[string]int `toml:"neighbor_types"`
}

// Rule is one row of a DREIDING atom-typing ruleset: a name, a priority
// (larger wins ties and overrides), the atom-type string it assigns, and
// the conditions an atom must satisfy for the rule to match.
type Rule struct {
	Name         string     `toml:"name"`
	Priority     int        `toml:"priority"`
	AssignedType string     `toml:"type"`
	Conditions   Conditions `toml:"conditions"`
}

// ruleDocument is the top-level shape of a rule TOML document: a bare
// sequence of [[rule]] tables.
type ruleDocument struct {
	Rule []Rule `toml:"rule"`
}

// UnmarshalText implements encoding.TextUnmarshaler so Element fields
// decode directly from the TOML string scalars used in rule documents
// ("element = \"C\"").
func (e *Element) UnmarshalText(text []byte) error {
	el, err := ParseElement(string(text))
	if err != nil {
		return err
	}
	*e = el
	return nil
}

// MarshalText is the inverse of UnmarshalText, present for symmetry with
// any future rule-document serialization.
func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Hybridization
// fields in rule documents ("hybridization = \"SP2\"").
func (h *Hybridization) UnmarshalText(text []byte) error {
	parsed, err := ParseHybridization(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (h Hybridization) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// ParseRules parses a TOML-shaped rule document into a sequence of Rule
// values. Unrecognized condition keys or invalid element/hybridization
// strings fail with a *RuleParseError.
func ParseRules(document string) ([]Rule, error) {
	dec := toml.NewDecoder(strings.NewReader(document))
	dec.DisallowUnknownFields()
	var doc ruleDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, newRuleParseError("<document>", err.Error())
	}
	return doc.Rule, nil
}

//go:embed resources/default.rules.toml
var defaultRulesDocument string

var (
	defaultRulesOnce   sync.Once
	defaultRulesCache  []Rule
	defaultRulesErr    error
)

// GetDefaultRules lazily parses the bundled default ruleset exactly once
// per process and returns the cached result thereafter. The cache is
// initialized under an exclusion primitive and is read-only after that,
// so callers never block once it has been populated.
func GetDefaultRules() ([]Rule, error) {
	defaultRulesOnce.Do(func() {
		defaultRulesCache, defaultRulesErr = ParseRules(defaultRulesDocument)
	})
	return defaultRulesCache, defaultRulesErr
}
