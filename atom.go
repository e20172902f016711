/*
 * atom.go, part of nucpair.
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

import (
	"fmt"

	v3 "github.com/ebarria/nucpair/v3"
)

//Element is the coarse element class of an atom. Only nitrogen and
//oxygen matter for hydrogen bonding; everything else is Other.
type Element int

const (
	Other Element = iota
	Nitrogen
	Oxygen
)

//BaseType identifies the base of a nucleotide residue.
type BaseType int

const (
	Unknown BaseType = iota
	Adenine
	Cytosine
	Guanine
	Thymine
	Uracil
)

//Letter returns the one-letter code for the base, or 'X' for Unknown.
func (b BaseType) Letter() byte {
	switch b {
	case Adenine:
		return 'A'
	case Cytosine:
		return 'C'
	case Guanine:
		return 'G'
	case Thymine:
		return 'T'
	case Uracil:
		return 'U'
	}
	return 'X'
}

func (b BaseType) String() string {
	return string(b.Letter())
}

//IsPurine returns whether the base is a purine (adenine or guanine).
func (b BaseType) IsPurine() bool {
	return b == Adenine || b == Guanine
}

//IsPyrimidine returns whether the base is a pyrimidine.
func (b BaseType) IsPyrimidine() bool {
	return b == Cytosine || b == Thymine || b == Uracil
}

//Nucleotide returns whether the base type is one of the 5 standard bases.
func (b BaseType) Nucleotide() bool {
	return b != Unknown
}

//Atom contains the atom information except for the coordinates, which
//live in a matrix owned by the residue. Atoms are not modified after
//parsing.
type Atom struct {
	Name    string
	Element Element
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	return &Atom{Name: A.Name, Element: A.Element}
}

//Residue is an ordered set of atoms with a base type and a stable
//pairing index. The coordinates are kept in a matrix apart from the
//atom metadata, one row per atom, in atom order. The reference frame
//is nil until fitted; only FitFrame[s] writes it.
type Residue struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	Base   BaseType

	//PairIndex is the canonical pairing identity of the residue. It is
	//stable under filtering of the residue list, so it is NOT
	//necessarily the position of the residue in its Structure.
	PairIndex int

	//Provenance, filled by the PDB reader. Not used by the pipeline.
	Name  string
	Chain string
	ID    int

	Frame *Frame
}

//Len returns the number of atoms in the residue.
func (R *Residue) Len() int {
	return len(R.Atoms)
}

//Atom returns the atom corresponding to the index i. Panics if out of
//range.
func (R *Residue) Atom(i int) *Atom {
	if i >= R.Len() {
		panic("Residue: Requested Atom out of bounds")
	}
	return R.Atoms[i]
}

//Coord returns a view of the coordinates of the ith atom.
func (R *Residue) Coord(i int) *v3.Matrix {
	if i >= R.Len() {
		panic("Residue: Requested coordinate out of bounds")
	}
	return R.Coords.VecView(i)
}

//AtomIndex returns the index of the first atom with the given name, or
//-1 when the residue has no such atom.
func (R *Residue) AtomIndex(name string) int {
	for i, at := range R.Atoms {
		if at.Name == name {
			return i
		}
	}
	return -1
}

//HasFrame returns whether the residue carries a valid reference frame.
//Residues without one are never pairing candidates.
func (R *Residue) HasFrame() bool {
	return R.Frame != nil && R.Frame.Valid
}

//AppendAtom adds an atom with the given coordinates at the end of the
//residue.
func (R *Residue) AppendAtom(at *Atom, x, y, z float64) {
	n := R.Len()
	coords := v3.Zeros(n + 1)
	if n > 0 {
		coords.View(0, 0, n, 3).Copy(R.Coords)
	}
	coords.Set(n, 0, x)
	coords.Set(n, 1, y)
	coords.Set(n, 2, z)
	R.Atoms = append(R.Atoms, at)
	R.Coords = coords
}

//String returns a short identifier for the residue, for diagnostics.
func (R *Residue) String() string {
	return fmt.Sprintf("%s%d(%c)", R.Chain, R.ID, R.Base.Letter())
}

//Structure is an ordered collection of residues, as delivered by the
//parsing layer.
type Structure struct {
	Residues []*Residue
}

//Len returns the number of residues in the structure.
func (S *Structure) Len() int {
	return len(S.Residues)
}

//Residue returns the ith residue of the structure. Panics if out of
//range.
func (S *Structure) Residue(i int) *Residue {
	if i >= S.Len() {
		panic("Structure: Requested residue out of bounds")
	}
	return S.Residues[i]
}
