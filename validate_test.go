/*
 * validate_test.go, part of nucpair.
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
	"testing"
)

func TestValidateWatsonCrick(Te *testing.T) {
	a, u := wcPair(Te)
	v := NewValidator(DefaultConfig())
	res := v.Validate(a, u)
	fmt.Printf("WC pair: %+v\n", res)
	if !res.Valid {
		Te.Fatalf("a Watson-Crick geometry should validate: %+v", res)
	}
	if res.Kind != WatsonCrick {
		Te.Errorf("expected Watson-Crick classification, got %s", res.Kind)
	}
	if !res.DistOK || !res.VertOK || !res.AngleOK || !res.NNOK || !res.OverlapOK || !res.HBondOK {
		Te.Errorf("all checks should pass: %+v", res)
	}
	if res.OriginDist > 1e-6 || res.VertOffset > 1e-6 || res.PlaneAngle > 1e-6 {
		Te.Errorf("standard geometries share origin and plane: %+v", res)
	}
	if res.Score >= 0 {
		Te.Errorf("a Watson-Crick pair with good bonds scores negative: %f", res.Score)
	}
	if res.Step == nil {
		Te.Fatal("a classified pair should carry step parameters")
	}
}

func TestValidateDistant(Te *testing.T) {
	lib := NewLibrary(true)
	a := testResidue(Te, lib, Adenine, 1)
	u := testResidue(Te, lib, Uracil, 2)
	flipResidue(u)
	translateResidue(u, 20, 0, 0)
	fitResidues(Te, lib, a, u)
	v := NewValidator(DefaultConfig())
	res := v.Validate(a, u)
	if res.Valid {
		Te.Error("residues 20 Angstrom apart should not validate")
	}
	if res.DistOK {
		Te.Errorf("the origin-distance check should fail at %.1f Angstrom", res.OriginDist)
	}
	//the rejection still reports every metric
	if res.OriginDist < 19 || res.OriginDist > 21 {
		Te.Errorf("origin distance should still be reported: %f", res.OriginDist)
	}
}

func TestValidateStacked(Te *testing.T) {
	lib := NewLibrary(false)
	a := testResidue(Te, lib, Adenine, 1)
	b := testResidue(Te, lib, Adenine, 2)
	translateResidue(b, 0, 0, 4.6)
	fitResidues(Te, lib, a, b)
	v := NewValidator(DefaultConfig())
	res := v.Validate(a, b)
	if res.Valid {
		Te.Error("stacked bases should not validate as a pair")
	}
	if res.HBondOK {
		Te.Errorf("stacked bases share no hydrogen bonds: %d", len(res.Bonds))
	}
	if res.OverlapOK {
		Te.Errorf("stacked rings overlap well above the threshold: %f", res.Overlap)
	}
	if res.Overlap < 1.0 {
		Te.Errorf("full ring stacking should overlap several square Angstrom: %f", res.Overlap)
	}
}

func TestValidateSymmetric(Te *testing.T) {
	a, u := wcPair(Te)
	v := NewValidator(DefaultConfig())
	if v.Validate(a, u).Valid != v.Validate(u, a).Valid {
		Te.Error("the accept decision should not depend on argument order")
	}
	lib := NewLibrary(false)
	c := testResidue(Te, lib, Adenine, 3)
	d := testResidue(Te, lib, Adenine, 4)
	translateResidue(d, 0, 0, 4.6)
	fitResidues(Te, lib, c, d)
	if v.Validate(c, d).Valid != v.Validate(d, c).Valid {
		Te.Error("the reject decision should not depend on argument order")
	}
}

func TestValidateNoFrame(Te *testing.T) {
	lib := NewLibrary(false)
	a := testResidue(Te, lib, Adenine, 1)
	b := testResidue(Te, lib, Thymine, 2)
	//no frames fitted
	v := NewValidator(DefaultConfig())
	res := v.Validate(a, b)
	if res.Valid {
		Te.Error("residues without frames can never validate")
	}
}

func TestValidateGC(Te *testing.T) {
	lib := NewLibrary(false)
	g := testResidue(Te, lib, Guanine, 1)
	c := testResidue(Te, lib, Cytosine, 2)
	flipResidue(c)
	fitResidues(Te, lib, g, c)
	v := NewValidator(DefaultConfig())
	res := v.Validate(g, c)
	if !res.Valid || res.Kind != WatsonCrick {
		Te.Fatalf("a G-C geometry should validate as Watson-Crick: %+v", res)
	}
	if GoodBonds(res.Bonds) < 3 {
		Te.Errorf("G-C pairs have three good bonds, got %d", GoodBonds(res.Bonds))
	}
}
