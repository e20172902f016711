/*
 * overlap_test.go, part of nucpair.
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
	"math"
	"testing"
)

func TestClipOverlapping(Te *testing.T) {
	//unit square against the same square shifted half a unit in x:
	//the intersection is a 0.5x1 rectangle
	a := []point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	b := []point2{{0.5, 0}, {1.5, 0}, {1.5, 1}, {0.5, 1}}
	got := polyArea(clipPolygon(a, b))
	if math.Abs(got-0.5) > 1e-9 {
		Te.Errorf("intersection area should be 0.5: %f", got)
	}
}

func TestClipDisjoint(Te *testing.T) {
	a := []point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	b := []point2{{2, 0}, {3, 0}, {3, 1}, {2, 1}}
	if got := polyArea(clipPolygon(a, b)); got != 0 {
		Te.Errorf("disjoint polygons should not overlap: %f", got)
	}
}

func TestClipClockwiseInput(Te *testing.T) {
	//clockwise winding must give the same area as counter-clockwise
	a := []point2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	b := []point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	got := polyArea(clipPolygon(a, b))
	if math.Abs(got-1) > 1e-9 {
		Te.Errorf("self-intersection area should be 1: %f", got)
	}
}

func TestOverlapPairedVsStacked(Te *testing.T) {
	lib := NewLibrary(true)
	a := testResidue(Te, lib, Adenine, 1)
	u := testResidue(Te, lib, Uracil, 2)
	flipResidue(u)
	fitResidues(Te, lib, a, u)
	zavg := a.Frame.Z() //both planes are z=0 here
	if got := OverlapArea(a, u, zavg); got > 1e-9 {
		Te.Errorf("side-by-side paired bases should not overlap: %f", got)
	}
	b := testResidue(Te, lib, Adenine, 3)
	translateResidue(b, 0, 0, 3.4)
	fitResidues(Te, lib, b)
	if got := OverlapArea(a, b, zavg); got < 1.0 {
		Te.Errorf("stacked bases should overlap their ring area: %f", got)
	}
}
