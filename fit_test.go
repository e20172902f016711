/*
 * fit_test.go, part of nucpair.
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
	"math"
	"testing"

	v3 "github.com/ebarria/nucpair/v3"
)

//testResidue builds a residue from the standard geometry of base b.
func testResidue(Te *testing.T, lib *Library, b BaseType, id int) *Residue {
	t, err := lib.Load(b)
	if err != nil {
		Te.Fatal(err)
	}
	return ResidueFromTemplate(t, "A", id)
}

//fitResidues fits frames for the given residues, failing the test if
//any fit is skipped.
func fitResidues(Te *testing.T, lib *Library, res ...*Residue) {
	s := &Structure{Residues: res}
	n, err := FitFrames(s, lib, DefaultConfig().MinRingMatch)
	if err != nil {
		Te.Fatal(err)
	}
	if n != len(res) {
		Te.Fatalf("fitted %d of %d residues", n, len(res))
	}
}

//flipResidue rotates the residue 180 degrees about the x axis, in
//place, which puts a standard base in pairing orientation.
func flipResidue(r *Residue) {
	for i := 0; i < r.Len(); i++ {
		c := r.Coord(i)
		c.Set(0, 1, -c.At(0, 1))
		c.Set(0, 2, -c.At(0, 2))
	}
}

//translateResidue displaces all atoms of the residue, in place.
func translateResidue(r *Residue, x, y, z float64) {
	t, _ := v3.NewMatrix([]float64{x, y, z})
	r.Coords.AddVec(r.Coords, t)
}

func TestFitIdentity(Te *testing.T) {
	lib := NewLibrary(false)
	r := testResidue(Te, lib, Adenine, 1)
	t, err := lib.Load(Adenine)
	if err != nil {
		Te.Fatal(err)
	}
	m, err := MatchRingAtoms(t, r, 3)
	if err != nil {
		Te.Fatal(err)
	}
	if m.Len() != len(purineRing) {
		Te.Errorf("matched %d ring atoms, wanted %d", m.Len(), len(purineRing))
	}
	f, err := FitFrame(t, r, m)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(f.Rot.At(i, j)-want) > 1e-9 {
				Te.Errorf("self-fit rotation not identity at %d,%d: %f", i, j, f.Rot.At(i, j))
			}
		}
		if math.Abs(f.Origin.At(0, i)) > 1e-9 {
			Te.Errorf("self-fit origin not zero: %v", f.Origin)
		}
	}
	if f.RMS > 1e-9 {
		Te.Errorf("self-fit RMS should be 0: %g", f.RMS)
	}
	fmt.Println("self-fit frame", f.Rot, f.Origin, f.RMS)
}

func TestFitOrthonormal(Te *testing.T) {
	lib := NewLibrary(false)
	r := testResidue(Te, lib, Guanine, 1)
	//rotate the residue by an arbitrary angle about an arbitrary axis
	//and displace it; the fit must recover a proper rotation
	axis, _ := v3.NewMatrix([]float64{1, 1, 1})
	for i := 0; i < r.Len(); i++ {
		rot := rotateVec(r.Coord(i), axis, Deg2Rad(37))
		r.Coords.SetMatrix(i, 0, rot)
	}
	translateResidue(r, 5.0, -3.0, 11.0)
	t, _ := lib.Load(Guanine)
	m, err := MatchRingAtoms(t, r, 3)
	if err != nil {
		Te.Fatal(err)
	}
	f, err := FitFrame(t, r, m)
	if err != nil {
		Te.Fatal(err)
	}
	//R^T R = I
	id := v3.Zeros(3)
	id.Mul(f.Rot.T(), f.Rot)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(id.At(i, j)-want) > 1e-9 {
				Te.Errorf("rotation not orthonormal at %d,%d: %f", i, j, id.At(i, j))
			}
		}
	}
	if math.Abs(v3.Det(f.Rot)-1) > 1e-9 {
		Te.Errorf("rotation determinant should be +1: %f", v3.Det(f.Rot))
	}
	if f.RMS > 1e-6 {
		Te.Errorf("rigid transform should fit with zero residual: %g", f.RMS)
	}
}

func TestFitTooFewAtoms(Te *testing.T) {
	lib := NewLibrary(false)
	t, _ := lib.Load(Adenine)
	r := &Residue{Base: Adenine, Chain: "A", ID: 1}
	r.AppendAtom(&Atom{Name: "N9", Element: Nitrogen}, -1.291, 4.498, 0)
	r.AppendAtom(&Atom{Name: "C8", Element: Other}, 0.024, 4.897, 0)
	_, err := MatchRingAtoms(t, r, 3)
	if err == nil {
		Te.Error("expected an error with only 2 ring atoms")
	} else {
		fmt.Println("got the expected error:", err)
	}
}
