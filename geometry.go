/*
 * geometry.go, part of nucpair.
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

const appzero float64 = 0.0000000001 //used to correct floating point

//Angle takes 2 vectors and calculates the angle in radians between them.
//It does not check for correctness or return errors.
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm(2) * v2.Norm(2)
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//Deg2Rad and Rad2Deg convert angles between degrees and radians.
func Deg2Rad(f float64) float64 { return f * 0.0174533 }

func Rad2Deg(f float64) float64 { return (f / math.Pi) * 180 }

//rotateVec rotates v by ang radians around the (not necessarily unit)
//axis vector, using the Rodrigues formula, and returns a new vector.
func rotateVec(v, axis *v3.Matrix, ang float64) *v3.Matrix {
	u := v3.Zeros(1)
	u.Unit(axis)
	cos := math.Cos(ang)
	sin := math.Sin(ang)
	cross := v3.Zeros(1)
	cross.Cross(u, v)
	dot := u.Dot(v)
	r := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		r.Set(0, j, v.At(0, j)*cos+cross.At(0, j)*sin+u.At(0, j)*dot*(1-cos))
	}
	return r
}

//dist returns the euclidean distance between two coordinate rows.
func dist(a, b *v3.Matrix) float64 {
	dx := a.At(0, 0) - b.At(0, 0)
	dy := a.At(0, 1) - b.At(0, 1)
	dz := a.At(0, 2) - b.At(0, 2)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
