/*
 * overlap.go, part of nucpair.
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

	v3 "github.com/ebarria/nucpair/v3"
)

type point2 struct {
	x, y float64
}

//OverlapArea returns the area, in Angstrom squared, of the intersection
//of the two base-ring outlines after projecting both onto the plane
//perpendicular to normal. Paired bases lie side by side and overlap
//zero; stacked bases overlap their ring areas.
func OverlapArea(a, b *Residue, normal *v3.Matrix) float64 {
	pa := projectRing(a, normal)
	pb := projectRing(b, normal)
	if len(pa) < 3 || len(pb) < 3 {
		return 0
	}
	inter := clipPolygon(pa, pb)
	return polyArea(inter)
}

//projectRing projects the ring atoms of the residue, in canonical ring
//order, onto the plane perpendicular to normal, expressed in an
//orthonormal 2D basis of that plane.
func projectRing(r *Residue, normal *v3.Matrix) []point2 {
	n := v3.Zeros(1)
	n.Unit(normal)
	//build the in-plane basis from the coordinate axis least aligned
	//with the normal
	seed := v3.Zeros(1)
	small := 0
	for j := 1; j < 3; j++ {
		if math.Abs(n.At(0, j)) < math.Abs(n.At(0, small)) {
			small = j
		}
	}
	seed.Set(0, small, 1)
	u := v3.Zeros(1)
	u.Cross(n, seed)
	u.Unit(u)
	v := v3.Zeros(1)
	v.Cross(n, u)
	var out []point2
	for _, name := range RingAtomNames(r.Base) {
		i := r.AtomIndex(name)
		if i < 0 {
			continue
		}
		c := r.Coord(i)
		out = append(out, point2{c.Dot(u), c.Dot(v)})
	}
	return out
}

//polyArea returns the area of a simple polygon by the shoelace formula.
func polyArea(p []point2) float64 {
	if len(p) < 3 {
		return 0
	}
	var s float64
	for i := range p {
		j := (i + 1) % len(p)
		s += p[i].x*p[j].y - p[j].x*p[i].y
	}
	return math.Abs(s) / 2
}

//signedArea is positive for counter-clockwise polygons.
func signedArea(p []point2) float64 {
	var s float64
	for i := range p {
		j := (i + 1) % len(p)
		s += p[i].x*p[j].y - p[j].x*p[i].y
	}
	return s / 2
}

//ccw returns the polygon in counter-clockwise order.
func ccw(p []point2) []point2 {
	if signedArea(p) >= 0 {
		return p
	}
	r := make([]point2, len(p))
	for i := range p {
		r[i] = p[len(p)-1-i]
	}
	return r
}

//clipPolygon intersects the subject polygon with the (convex) clip
//polygon with the Sutherland-Hodgman algorithm. Base-ring outlines are
//convex to within coordinate noise, which is all the precision the
//overlap threshold needs.
func clipPolygon(subject, clip []point2) []point2 {
	out := ccw(subject)
	clip = ccw(clip)
	for i := range clip {
		if len(out) == 0 {
			return nil
		}
		a := clip[i]
		b := clip[(i+1)%len(clip)]
		in := out
		out = nil
		for j := range in {
			p := in[j]
			q := in[(j+1)%len(in)]
			pin := inside(p, a, b)
			qin := inside(q, a, b)
			if pin {
				out = append(out, p)
				if !qin {
					out = append(out, segIntersect(p, q, a, b))
				}
			} else if qin {
				out = append(out, segIntersect(p, q, a, b))
			}
		}
	}
	return out
}

//inside reports whether p lies on the left of the directed edge a->b.
func inside(p, a, b point2) bool {
	return (b.x-a.x)*(p.y-a.y)-(b.y-a.y)*(p.x-a.x) >= 0
}

//segIntersect returns the intersection of segment pq with the infinite
//line through a and b.
func segIntersect(p, q, a, b point2) point2 {
	a1 := b.y - a.y
	b1 := a.x - b.x
	c1 := a1*a.x + b1*a.y
	a2 := q.y - p.y
	b2 := p.x - q.x
	c2 := a2*p.x + b2*p.y
	det := a1*b2 - a2*b1
	if math.Abs(det) <= appzero {
		return p
	}
	return point2{(b2*c1 - b1*c2) / det, (a1*c2 - a2*c1) / det}
}
