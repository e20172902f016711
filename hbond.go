/*
 * hbond.go, part of nucpair.
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

import "sort"

//Bounds for the conflict and role filters of the detector. A bond kept
//only through conflict resolution must be shorter than conflictedMax,
//and a bond with a non-standard role combination must in addition fall
//inside the nonStd window.
const (
	maxResolveIter = 100
	conflictedMax  = 3.6
	nonStdMin      = 2.5
	nonStdMax      = 3.5
)

//HBond is one hydrogen bond between atoms of two residues. IdxA/IdxB
//are atom indices into the first and second residue given to Detect.
//Conflicted marks bonds that lost the mutual-shortest selection but
//survived the distance filters. NonStandard marks donor-donor or
//acceptor-acceptor role combinations.
type HBond struct {
	IdxA, IdxB   int
	NameA, NameB string
	RoleA, RoleB Role
	Dist         float64
	Conflicted   bool
	NonStandard  bool
}

//Good returns whether the bond is an accepted bond with a distance in
//the standard window.
func (H *HBond) Good() bool {
	return !H.Conflicted && H.Dist >= nonStdMin && H.Dist <= nonStdMax
}

//HBondDetector finds the hydrogen bonds between two residues. The
//distance bounds come from the configuration it was built with; the
//detector itself carries no per-call state and can be reused.
type HBondDetector struct {
	minDist float64
	maxDist float64
}

//NewHBondDetector returns a detector with the distance bounds of cfg.
func NewHBondDetector(cfg *Config) *HBondDetector {
	return &HBondDetector{minDist: cfg.HBDistMin, maxDist: cfg.HBDistMax}
}

//Detect returns the hydrogen bonds between all atoms of the two
//residues. An empty result is not an error.
func (D *HBondDetector) Detect(a, b *Residue) []*HBond {
	return D.detect(a, b, false)
}

//DetectBase is as Detect but restricted to base atoms, skipping the
//sugar-phosphate backbone of both residues.
func (D *HBondDetector) DetectBase(a, b *Residue) []*HBond {
	return D.detect(a, b, true)
}

func (D *HBondDetector) detect(a, b *Residue, baseOnly bool) []*HBond {
	cands := D.candidates(a, b, baseOnly)
	bonds := resolveConflicts(cands)
	return D.classify(a, b, bonds)
}

//candidates generates every atom pair within the distance bounds where
//at least one atom is a nitrogen or an oxygen. A pair of two phosphate
//oxygens is never a candidate. The result is sorted by distance, which
//makes the conflict resolution deterministic.
func (D *HBondDetector) candidates(a, b *Residue, baseOnly bool) []*HBond {
	var cands []*HBond
	for i := 0; i < a.Len(); i++ {
		ai := a.Atom(i)
		if baseOnly && isBackboneName(ai.Name) {
			continue
		}
		for j := 0; j < b.Len(); j++ {
			bj := b.Atom(j)
			if baseOnly && isBackboneName(bj.Name) {
				continue
			}
			if ai.Element == Other && bj.Element == Other {
				continue
			}
			if phosphateOxygens[ai.Name] && phosphateOxygens[bj.Name] {
				continue
			}
			d := dist(a.Coord(i), b.Coord(j))
			if d < D.minDist || d > D.maxDist {
				continue
			}
			cands = append(cands, &HBond{IdxA: i, IdxB: j, NameA: ai.Name, NameB: bj.Name, Dist: d})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Dist < cands[j].Dist })
	return cands
}

//resolveConflicts commits the bonds that are the shortest choice for
//both of their atoms, discarding competing candidates on the committed
//atoms as conflicted. Each round commits at least one bond (the
//globally shortest active candidate is mutually shortest), so the
//iteration cap is a safety valve, not an expected exit.
func resolveConflicts(cands []*HBond) []*HBond {
	active := make([]*HBond, len(cands))
	copy(active, cands)
	var out []*HBond
	for iter := 0; iter < maxResolveIter && len(active) > 0; iter++ {
		bestA := make(map[int]*HBond)
		bestB := make(map[int]*HBond)
		for _, c := range active {
			if bestA[c.IdxA] == nil {
				bestA[c.IdxA] = c
			}
			if bestB[c.IdxB] == nil {
				bestB[c.IdxB] = c
			}
		}
		claimedA := make(map[int]bool)
		claimedB := make(map[int]bool)
		var committed []*HBond
		for _, c := range active {
			if bestA[c.IdxA] == c && bestB[c.IdxB] == c {
				committed = append(committed, c)
				claimedA[c.IdxA] = true
				claimedB[c.IdxB] = true
			}
		}
		if len(committed) == 0 {
			break
		}
		out = append(out, committed...)
		var rest []*HBond
		for _, c := range active {
			if claimedA[c.IdxA] || claimedB[c.IdxB] {
				if !c.committed(committed) {
					c.Conflicted = true
					out = append(out, c)
				}
				continue
			}
			rest = append(rest, c)
		}
		active = rest
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Dist < out[j].Dist })
	return out
}

func (H *HBond) committed(set []*HBond) bool {
	for _, c := range set {
		if c == H {
			return true
		}
	}
	return false
}

//classify fills the role fields and applies the conflict filters.
func (D *HBondDetector) classify(a, b *Residue, bonds []*HBond) []*HBond {
	var out []*HBond
	for _, h := range bonds {
		h.RoleA = atomRole(a.Base, a.Atom(h.IdxA))
		h.RoleB = atomRole(b.Base, b.Atom(h.IdxB))
		h.NonStandard = (h.RoleA == RoleDonor && h.RoleB == RoleDonor) ||
			(h.RoleA == RoleAcceptor && h.RoleB == RoleAcceptor)
		if h.Conflicted {
			if h.Dist > conflictedMax {
				continue
			}
			if h.NonStandard && (h.Dist < nonStdMin || h.Dist > nonStdMax) {
				continue
			}
		}
		out = append(out, h)
	}
	return out
}

//AcceptedBonds counts the bonds that won conflict resolution outright.
func AcceptedBonds(bonds []*HBond) int {
	n := 0
	for _, h := range bonds {
		if !h.Conflicted {
			n++
		}
	}
	return n
}

//GoodBonds counts the accepted bonds with distances in the standard
//window.
func GoodBonds(bonds []*HBond) int {
	n := 0
	for _, h := range bonds {
		if h.Good() {
			n++
		}
	}
	return n
}
