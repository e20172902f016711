/*
 * basedata.go, part of nucpair.
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

package nuc

import "strings"

//The canonical ring-atom names, in fixed order. The order doubles as the
//outline of the (fused) ring when the atoms are taken as a closed
//polygon, which the overlap calculation relies on. Sugar atoms (C1' and
//friends) are not ring atoms and are deliberately absent.
var purineRing = []string{"N9", "C8", "N7", "C5", "C6", "N1", "C2", "N3", "C4"}
var pyrimidineRing = []string{"N1", "C2", "N3", "C4", "C5", "C6"}

//RingAtomNames returns the canonical ordered ring-atom names for the
//base type, or nil for Unknown.
func RingAtomNames(b BaseType) []string {
	if b.IsPurine() {
		return purineRing
	}
	if b.IsPyrimidine() {
		return pyrimidineRing
	}
	return nil
}

//glycosidicNitrogen is the name of the base nitrogen bound to the sugar,
//used as a proxy for the inter-base distance check.
func glycosidicNitrogen(b BaseType) string {
	if b.IsPurine() {
		return "N9"
	}
	return "N1"
}

//The phosphate-group oxygens. Two of these never form a hydrogen bond
//with each other. Both old (O1P, O3*) and current (OP1, O3') PDB
//spellings are included.
var phosphateOxygens = map[string]bool{
	"OP1": true, "OP2": true, "OP3": true,
	"O1P": true, "O2P": true, "O3P": true,
	"O3'": true, "O5'": true, "O3*": true, "O5*": true,
}

//isBackboneName reports whether an atom name belongs to the
//sugar-phosphate backbone rather than to the base.
func isBackboneName(name string) bool {
	if strings.ContainsAny(name, "'*") {
		return true
	}
	if name == "P" || phosphateOxygens[name] {
		return true
	}
	return false
}

//ElementFromName guesses the coarse element class from a (trimmed) PDB
//atom name. Nucleic-acid atom names start with the element letter.
func ElementFromName(name string) Element {
	if name == "" {
		return Other
	}
	switch name[0] {
	case 'N':
		return Nitrogen
	case 'O':
		return Oxygen
	}
	return Other
}

//Role is the part an atom can play in a hydrogen bond.
type Role int

const (
	RoleUnknown Role = iota
	RoleDonor
	RoleAcceptor
	RoleEither
)

func (r Role) String() string {
	switch r {
	case RoleDonor:
		return "donor"
	case RoleAcceptor:
		return "acceptor"
	case RoleEither:
		return "either"
	}
	return "unknown"
}

//Donor/acceptor assignments for the base atoms of the standard bases.
//N1/N3 switch roles between purines and pyrimidines, hence per-base
//tables instead of a flat one.
var baseRoles = map[BaseType]map[string]Role{
	Adenine: {
		"N6": RoleDonor,
		"N1": RoleAcceptor,
		"N3": RoleAcceptor,
		"N7": RoleAcceptor,
	},
	Cytosine: {
		"N4": RoleDonor,
		"N3": RoleAcceptor,
		"O2": RoleAcceptor,
	},
	Guanine: {
		"N1": RoleDonor,
		"N2": RoleDonor,
		"O6": RoleAcceptor,
		"N3": RoleAcceptor,
		"N7": RoleAcceptor,
	},
	Thymine: {
		"N3": RoleDonor,
		"O2": RoleAcceptor,
		"O4": RoleAcceptor,
	},
	Uracil: {
		"N3": RoleDonor,
		"O2": RoleAcceptor,
		"O4": RoleAcceptor,
	},
}

//atomRole returns the hydrogen-bonding role of an atom in a residue of
//the given base type. Atoms or bases missing from the tables fall back
//to an element-based "either" role, so modified nucleotides are not
//silently dropped.
func atomRole(b BaseType, at *Atom) Role {
	if table, ok := baseRoles[b]; ok {
		if r, ok := table[at.Name]; ok {
			return r
		}
	}
	if at.Element == Nitrogen || at.Element == Oxygen {
		return RoleEither
	}
	return RoleUnknown
}

//The canonical Watson-Crick letter pairs.
var canonicalPairs = map[string]bool{
	"AT": true, "TA": true,
	"AU": true, "UA": true,
	"GC": true, "CG": true,
}

//CanonicalPair returns whether two base types form a canonical
//Watson-Crick letter combination.
func CanonicalPair(a, b BaseType) bool {
	return canonicalPairs[string([]byte{a.Letter(), b.Letter()})]
}

//Residue-name to base-type assignments covering PDB conventions old and
//new, DNA and RNA.
var resnameBase = map[string]BaseType{
	"A": Adenine, "DA": Adenine, "RA": Adenine, "ADE": Adenine,
	"C": Cytosine, "DC": Cytosine, "RC": Cytosine, "CYT": Cytosine,
	"G": Guanine, "DG": Guanine, "RG": Guanine, "GUA": Guanine,
	"T": Thymine, "DT": Thymine, "THY": Thymine,
	"U": Uracil, "RU": Uracil, "URA": Uracil, "URI": Uracil,
}

//BaseFromResname maps a (trimmed) PDB residue name to a BaseType,
//returning Unknown for anything unrecognized.
func BaseFromResname(name string) BaseType {
	return resnameBase[strings.TrimSpace(name)]
}
