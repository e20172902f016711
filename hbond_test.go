/*
 * hbond_test.go, part of nucpair.
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

//wcPair returns an adenine and a uracil in Watson-Crick geometry, with
//fitted frames.
func wcPair(Te *testing.T) (*Residue, *Residue) {
	lib := NewLibrary(true)
	a := testResidue(Te, lib, Adenine, 1)
	u := testResidue(Te, lib, Uracil, 2)
	flipResidue(u)
	fitResidues(Te, lib, a, u)
	return a, u
}

func TestHBondWatsonCrick(Te *testing.T) {
	a, u := wcPair(Te)
	det := NewHBondDetector(DefaultConfig())
	bonds := det.DetectBase(a, u)
	if len(bonds) == 0 {
		Te.Fatal("no hydrogen bonds found in a Watson-Crick pair")
	}
	found := make(map[string]*HBond)
	for _, h := range bonds {
		found[h.NameA+"-"+h.NameB] = h
		fmt.Printf("%s(%s)-%s(%s) %.2f conflicted:%v\n", h.NameA, h.RoleA, h.NameB, h.RoleB, h.Dist, h.Conflicted)
	}
	n1n3 := found["N1-N3"]
	n6o4 := found["N6-O4"]
	if n1n3 == nil || n6o4 == nil {
		Te.Fatalf("the N1-N3 and N6-O4 bonds should be present: %v", found)
	}
	if n1n3.Conflicted || n6o4.Conflicted {
		Te.Error("the Watson-Crick bonds should win conflict resolution")
	}
	if n1n3.RoleA != RoleAcceptor || n1n3.RoleB != RoleDonor {
		Te.Errorf("N1-N3 roles wrong: %s %s", n1n3.RoleA, n1n3.RoleB)
	}
	if GoodBonds(bonds) < 2 {
		Te.Errorf("a Watson-Crick pair should have at least 2 good bonds, got %d", GoodBonds(bonds))
	}
}

//After resolution, no atom may be claimed by more than one
//non-conflicted bond.
func TestHBondOneClaim(Te *testing.T) {
	a, u := wcPair(Te)
	det := NewHBondDetector(DefaultConfig())
	bonds := det.DetectBase(a, u)
	seenA := make(map[int]bool)
	seenB := make(map[int]bool)
	for _, h := range bonds {
		if h.Conflicted {
			continue
		}
		if seenA[h.IdxA] || seenB[h.IdxB] {
			Te.Errorf("atom claimed twice: %s-%s", h.NameA, h.NameB)
		}
		seenA[h.IdxA] = true
		seenB[h.IdxB] = true
	}
}

//Resolution run on its own output (each atom already claimed once) must
//commit everything again and mark nothing conflicted.
func TestHBondResolveIdempotent(Te *testing.T) {
	a, u := wcPair(Te)
	det := NewHBondDetector(DefaultConfig())
	bonds := det.DetectBase(a, u)
	var accepted []*HBond
	for _, h := range bonds {
		if !h.Conflicted {
			accepted = append(accepted, h)
		}
	}
	again := resolveConflicts(accepted)
	if len(again) != len(accepted) {
		Te.Fatalf("resolution changed an already-resolved set: %d vs %d", len(again), len(accepted))
	}
	for _, h := range again {
		if h.Conflicted {
			Te.Errorf("bond %s-%s became conflicted on re-resolution", h.NameA, h.NameB)
		}
	}
}

func TestHBondDistanceBounds(Te *testing.T) {
	lib := NewLibrary(true)
	a := testResidue(Te, lib, Adenine, 1)
	u := testResidue(Te, lib, Uracil, 2)
	flipResidue(u)
	translateResidue(u, 20, 0, 0)
	det := NewHBondDetector(DefaultConfig())
	if bonds := det.DetectBase(a, u); len(bonds) != 0 {
		Te.Errorf("residues 20 Angstrom apart should have no bonds, got %d", len(bonds))
	}
}
