/*
 * template.go, part of nucpair.
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
	v3 "github.com/ebarria/nucpair/v3"
)

//templateAtom is one atom of a standard base geometry. All template
//bases are planar, so only x and y are stored; z is 0 by construction.
type templateAtom struct {
	name string
	x, y float64
}

//The standard base geometries, in the base reference frame. Each base
//lies on the z=0 plane with its glycosidic nitrogen near the -x edge,
//so a fitted frame has its z axis normal to the base plane.
var standardBases = map[BaseType][]templateAtom{
	Adenine: {
		{"N9", -1.291, 4.498},
		{"C8", 0.024, 4.897},
		{"N7", 0.877, 3.902},
		{"C5", 0.071, 2.771},
		{"C6", 0.369, 1.398},
		{"N6", 1.611, 0.909},
		{"N1", -0.668, 0.532},
		{"C2", -1.912, 1.023},
		{"N3", -2.320, 2.290},
		{"C4", -1.267, 3.124},
	},
	Guanine: {
		{"N9", -1.289, 4.551},
		{"C8", 0.023, 4.962},
		{"N7", 0.870, 3.969},
		{"C5", 0.071, 2.833},
		{"C6", 0.424, 1.460},
		{"O6", 1.554, 0.955},
		{"N1", -0.700, 0.641},
		{"C2", -1.999, 1.087},
		{"N2", -2.949, 0.139},
		{"N3", -2.342, 2.364},
		{"C4", -1.265, 3.177},
	},
	Cytosine: {
		{"N1", -1.285, 4.542},
		{"C2", -1.472, 3.158},
		{"O2", -2.628, 2.709},
		{"N3", -0.391, 2.344},
		{"C4", 0.837, 2.868},
		{"N4", 1.875, 2.027},
		{"C5", 1.056, 4.275},
		{"C6", -0.023, 5.068},
	},
	Thymine: {
		{"N1", -1.284, 4.500},
		{"C2", -1.462, 3.135},
		{"O2", -2.562, 2.608},
		{"N3", -0.298, 2.407},
		{"C4", 1.005, 2.897},
		{"O4", 1.935, 2.124},
		{"C5", 1.149, 4.331},
		{"C7", 2.521, 4.946},
		{"C6", -0.024, 5.053},
	},
	Uracil: {
		{"N1", -1.284, 4.500},
		{"C2", -1.462, 3.131},
		{"O2", -2.563, 2.608},
		{"N3", -0.302, 2.397},
		{"C4", 0.989, 2.884},
		{"O4", 1.935, 2.094},
		{"C5", 1.089, 4.311},
		{"C6", -0.024, 5.053},
	},
}

//Template is a standard base geometry ready for fitting. The atom name
//slice and the coordinate matrix rows run in parallel.
type Template struct {
	Base   BaseType
	Names  []string
	Coords *v3.Matrix
}

//AtomIndex returns the row of the named template atom, or -1.
func (T *Template) AtomIndex(name string) int {
	for i, n := range T.Names {
		if n == name {
			return i
		}
	}
	return -1
}

//Library holds the standard base templates. A library is built once and
//read concurrently after that.
type Library struct {
	templates map[BaseType]*Template
}

//NewLibrary builds a template library. When rna is true thymine maps to
//uracil, matching structures where DT residues were modelled as U.
func NewLibrary(rna bool) *Library {
	L := &Library{templates: make(map[BaseType]*Template)}
	for b, atoms := range standardBases {
		if rna && b == Thymine {
			continue
		}
		t := &Template{Base: b, Names: make([]string, len(atoms))}
		coords := v3.Zeros(len(atoms))
		for i, at := range atoms {
			t.Names[i] = at.name
			coords.Set(i, 0, at.x)
			coords.Set(i, 1, at.y)
		}
		t.Coords = coords
		L.templates[b] = t
	}
	return L
}

//Load returns the template for the given base type.
func (L *Library) Load(b BaseType) (*Template, error) {
	t, ok := L.templates[b]
	if !ok {
		return nil, CError{ErrNoTemplate, []string{"Library.Load"}}
	}
	return t, nil
}

//ResidueFromTemplate builds a residue with the template geometry. It is
//used for synthetic structures, mostly in tests.
func ResidueFromTemplate(t *Template, chain string, id int) *Residue {
	r := &Residue{
		Base:      t.Base,
		Name:      string(t.Base.Letter()),
		Chain:     chain,
		ID:        id,
		PairIndex: id,
	}
	for i, name := range t.Names {
		at := &Atom{Name: name, Element: ElementFromName(name)}
		r.AppendAtom(at, t.Coords.At(i, 0), t.Coords.At(i, 1), t.Coords.At(i, 2))
	}
	return r
}
