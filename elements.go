/*
 * elements.go, part of dreid-typer.
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

import "fmt"

// Element is a closed enumeration of the chemical elements this package
// understands. Values carry the element's atomic number, so Element(6) is
// always carbon.
type Element uint8

// The elements recognized by this package, grouped by periodic trend.
const (
	ElementNone Element = 0

	H  Element = 1
	He Element = 2
	Li Element = 3
	Be Element = 4
	B  Element = 5
	C  Element = 6
	N  Element = 7
	O  Element = 8
	F  Element = 9
	Ne Element = 10
	Na Element = 11
	Mg Element = 12
	Al Element = 13
	Si Element = 14
	P  Element = 15
	S  Element = 16
	Cl Element = 17
	Ar Element = 18
	K  Element = 19
	Ca Element = 20
	Sc Element = 21
	Ti Element = 22
	V  Element = 23
	Cr Element = 24
	Mn Element = 25
	Fe Element = 26
	Co Element = 27
	Ni Element = 28
	Cu Element = 29
	Zn Element = 30
	Ga Element = 31
	Ge Element = 32
	As Element = 33
	Se Element = 34
	Br Element = 35
	Kr Element = 36
	Rb Element = 37
	Sr Element = 38
	Y  Element = 39
	Zr Element = 40
	Nb Element = 41
	Mo Element = 42
	Tc Element = 43
	Ru Element = 44
	Rh Element = 45
	Pd Element = 46
	Ag Element = 47
	Cd Element = 48
	In Element = 49
	Sn Element = 50
	Sb Element = 51
	Te Element = 52
	I  Element = 53
	Xe Element = 54
	Cs Element = 55
	Ba Element = 56
)

// elementSymbols maps every recognized Element to its IUPAC symbol. Kept
// as a table rather than a switch, matching the style of gochem's own
// element-property tables (symbolMass, symbolCovrad, ...).
var elementSymbols = map[Element]string{
	H: "H", He: "He", Li: "Li", Be: "Be", B: "B", C: "C", N: "N", O: "O",
	F: "F", Ne: "Ne", Na: "Na", Mg: "Mg", Al: "Al", Si: "Si", P: "P", S: "S",
	Cl: "Cl", Ar: "Ar", K: "K", Ca: "Ca", Sc: "Sc", Ti: "Ti", V: "V", Cr: "Cr",
	Mn: "Mn", Fe: "Fe", Co: "Co", Ni: "Ni", Cu: "Cu", Zn: "Zn", Ga: "Ga",
	Ge: "Ge", As: "As", Se: "Se", Br: "Br", Kr: "Kr", Rb: "Rb", Sr: "Sr",
	Y: "Y", Zr: "Zr", Nb: "Nb", Mo: "Mo", Tc: "Tc", Ru: "Ru", Rh: "Rh",
	Pd: "Pd", Ag: "Ag", Cd: "Cd", In: "In", Sn: "Sn", Sb: "Sb", Te: "Te",
	I: "I", Xe: "Xe", Cs: "Cs", Ba: "Ba",
}

var symbolElements = func() map[string]Element {
	m := make(map[string]Element, len(elementSymbols))
	for el, sym := range elementSymbols {
		m[sym] = el
	}
	return m
}()

// ParseElement maps an IUPAC atomic symbol to its Element. Symbols are
// case-sensitive, matching standard notation ("Na", not "NA" or "na").
func ParseElement(symbol string) (Element, error) {
	if el, ok := symbolElements[symbol]; ok {
		return el, nil
	}
	return ElementNone, fmt.Errorf("typer: invalid element symbol %q", symbol)
}

// String returns the element's IUPAC symbol.
func (e Element) String() string {
	if sym, ok := elementSymbols[e]; ok {
		return sym
	}
	return fmt.Sprintf("Element(%d)", uint8(e))
}

// AtomicNumber returns the element's atomic number, which is also its
// underlying representation.
func (e Element) AtomicNumber() int { return int(e) }

// valenceElectrons holds the main-group valence electron count, keyed by
// periodic group. Transition metals are intentionally absent: the typer
// only needs valence data for the electron-bookkeeping fallback, and main
// group coverage is sufficient for DREIDING's organic/light-element focus.
var valenceElectronsTable = map[Element]int{
	// Group 1
	H: 1, Li: 1, Na: 1, K: 1, Rb: 1, Cs: 1,
	// Group 2
	Be: 2, Mg: 2, Ca: 2, Sr: 2, Ba: 2,
	// Group 13
	B: 3, Al: 3, Ga: 3, In: 3,
	// Group 14
	C: 4, Si: 4, Ge: 4, Sn: 4,
	// Group 15
	N: 5, P: 5, As: 5, Sb: 5,
	// Group 16
	O: 6, S: 6, Se: 6, Te: 6,
	// Group 17
	F: 7, Cl: 7, Br: 7, I: 7,
	// Group 18
	He: 8, Ne: 8, Ar: 8, Kr: 8, Xe: 8,
}

// ValenceElectrons returns the element's valence electron count and
// whether it is known. Transition metals report ok=false: their electron
// configuration is not captured by a simple group lookup.
func (e Element) ValenceElectrons() (count int, ok bool) {
	v, ok := valenceElectronsTable[e]
	return v, ok
}

// nonHybridizingElements lists hydrogen, alkali/alkaline-earth metals,
// halogens, noble gases, and the first two rows of transition metals:
// elements whose geometry DREIDING does not describe via sp/sp2/sp3
// hybridization. Hydrogen is included because a terminal, singly-bonded
// atom carries no VSEPR electron-domain geometry of its own.
var nonHybridizingElements = map[Element]bool{
	H: true,
	Li: true, Na: true, K: true, Rb: true, Cs: true,
	Be: true, Mg: true, Ca: true, Sr: true, Ba: true,
	F: true, Cl: true, Br: true, I: true,
	He: true, Ne: true, Ar: true, Kr: true, Xe: true,
	Sc: true, Ti: true, V: true, Cr: true, Mn: true, Fe: true, Co: true,
	Ni: true, Cu: true, Zn: true,
	Y: true, Zr: true, Nb: true, Mo: true, Tc: true, Ru: true, Rh: true,
	Pd: true, Ag: true, Cd: true,
}

// IsHybridizing reports whether the element participates in VSEPR-style
// hybridization assignment during Pass 6.
func (e Element) IsHybridizing() bool {
	return !nonHybridizingElements[e]
}

// maxValence is the maximum total bond order (sum of Single=1/Double=2/
// Triple=3 contributions) an atom of this element can carry. The Kekule
// backtracking solver uses it to decide which aromatic-system atoms must
// receive a double bond; elements missing here are never required to.
var maxValenceTable = map[Element]int{
	H: 1, F: 1, Cl: 1, Br: 1, I: 1,
	O: 2, S: 2,
	N: 3, P: 3, B: 3,
	C: 4, Si: 4,
}

// MaxValence returns the element's maximum total bond order, defaulting to
// 8 (a permissive ceiling) for elements not explicitly tabulated.
func (e Element) MaxValence() int {
	if v, ok := maxValenceTable[e]; ok {
		return v
	}
	return 8
}

// BondOrder enumerates the bond multiplicities recognized by the typer.
// Aromatic is only ever valid in the input MolecularGraph; Pass 2 rewrites
// every Aromatic bond into Single or Double.
type BondOrder uint8

const (
	Single BondOrder = iota + 1
	Double
	Triple
	Aromatic
)

func (o BondOrder) String() string {
	switch o {
	case Single:
		return "Single"
	case Double:
		return "Double"
	case Triple:
		return "Triple"
	case Aromatic:
		return "Aromatic"
	default:
		return fmt.Sprintf("BondOrder(%d)", uint8(o))
	}
}

// contribution returns how many valence units this order contributes,
// used by the fallback electron bookkeeping and Kekule valence checks.
func (o BondOrder) contribution() int {
	switch o {
	case Single:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	default:
		return 0
	}
}

// Hybridization enumerates the VSEPR-derived geometric classes an atom may
// be assigned during Pass 6, plus the virtual Resonant class for atoms
// whose planarity comes from delocalization rather than formal sp2
// character.
type Hybridization uint8

const (
	HybridizationNone Hybridization = iota
	SP
	SP2
	SP3
	Resonant
)

func (h Hybridization) String() string {
	switch h {
	case HybridizationNone:
		return "None"
	case SP:
		return "SP"
	case SP2:
		return "SP2"
	case SP3:
		return "SP3"
	case Resonant:
		return "Resonant"
	default:
		return fmt.Sprintf("Hybridization(%d)", uint8(h))
	}
}

// ParseHybridization maps a serialized hybridization label (as used in
// rule documents) to a Hybridization value.
func ParseHybridization(s string) (Hybridization, error) {
	switch s {
	case "None":
		return HybridizationNone, nil
	case "SP":
		return SP, nil
	case "SP2":
		return SP2, nil
	case "SP3":
		return SP3, nil
	case "Resonant":
		return Resonant, nil
	default:
		return HybridizationNone, fmt.Errorf("typer: invalid hybridization string %q", s)
	}
}
