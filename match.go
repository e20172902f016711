/*
 * match.go, part of nucpair.
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

//Every committing pass matches at least two residues, so the matcher
//terminates on its own; the cap only guards the loop.
const maxMatchPasses = 1000

//BasePair is one committed pair. I and J are residue indices into the
//structure the pair was found in, with I < J.
type BasePair struct {
	I, J   int
	A, B   *Residue
	Result *ValidationResult
}

//FindPairs finds the base pairs of the structure by iterated mutual
//best matching. On every pass each unmatched residue picks the
//lowest-scoring valid partner among the other unmatched residues; a
//pair is committed only when both residues pick each other. Passes
//repeat until one commits nothing. The result depends on residue
//order, which is the point: the same input always gives the same
//pairing, with no global optimization step.
func FindPairs(s *Structure, v *Validator) []*BasePair {
	n := s.Len()
	matched := make([]bool, n)
	var pairs []*BasePair
	for pass := 0; pass < maxMatchPasses; pass++ {
		committed := 0
		for i := 0; i < n; i++ {
			if matched[i] || !pairable(s.Residue(i)) {
				continue
			}
			ji, ri := bestChoice(s, v, i, matched)
			if ji < 0 {
				continue
			}
			ij, _ := bestChoice(s, v, ji, matched)
			if ij != i {
				continue
			}
			matched[i] = true
			matched[ji] = true
			a, b := i, ji
			ra, rb := s.Residue(i), s.Residue(ji)
			if b < a {
				a, b = b, a
				ra, rb = rb, ra
				ri = v.Validate(ra, rb)
			}
			pairs = append(pairs, &BasePair{I: a, J: b, A: ra, B: rb, Result: ri})
			committed++
		}
		if committed == 0 {
			break
		}
	}
	return pairs
}

//bestChoice returns the index of the unmatched residue that gives the
//lowest-scoring valid pair with residue i, and its validation result.
//Returns -1 when no valid partner exists. Ties keep the earliest
//candidate, so the pass order is reproducible.
func bestChoice(s *Structure, v *Validator, i int, matched []bool) (int, *ValidationResult) {
	best := -1
	var bestRes *ValidationResult
	ri := s.Residue(i)
	for j := 0; j < s.Len(); j++ {
		if j == i || matched[j] || !pairable(s.Residue(j)) {
			continue
		}
		res := v.Validate(ri, s.Residue(j))
		if !res.Valid {
			continue
		}
		if best < 0 || res.Score < bestRes.Score {
			best = j
			bestRes = res
		}
	}
	return best, bestRes
}

//pairable returns whether a residue can enter the matching at all.
func pairable(r *Residue) bool {
	return r.Base.Nucleotide() && r.HasFrame()
}
