/*
 * step.go, part of nucpair.
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

//StepPar holds the six rigid-body parameters relating two reference
//frames. Distances are in Angstrom, angles in degrees.
type StepPar struct {
	Shift float64
	Slide float64
	Rise  float64
	Tilt  float64
	Roll  float64
	Twist float64
}

//StepParameters computes the rigid-body parameters between two frames
//with the mid-frame construction: both frames are rotated halfway
//towards each other about the hinge axis, the merged axes define the
//mid-frame, and the origin displacement and relative rotation are
//expressed in it. A pure function of its arguments.
func StepParameters(fa, fb *Frame) *StepPar {
	xa, ya := fa.X(), fa.Y()
	xb, yb := fb.X(), fb.Y()
	hinge := v3.Zeros(1)
	hinge.Cross(ya, yb)
	if hinge.Norm(2) <= appzero {
		//parallel y axes leave the hinge undefined; build one from the
		//combined x and y axes instead
		sx := v3.Zeros(1)
		sx.Add(xa, xb)
		sy := v3.Zeros(1)
		sy.Add(ya, yb)
		hinge.Cross(sx, sy)
	}
	ang := Angle(ya, yb)
	xa2, ya2, xb2, yb2 := xa, ya, xb, yb
	if hinge.Norm(2) > appzero {
		xa2 = rotateVec(xa, hinge, ang/2)
		ya2 = rotateVec(ya, hinge, ang/2)
		xb2 = rotateVec(xb, hinge, -ang/2)
		yb2 = rotateVec(yb, hinge, -ang/2)
	}
	ym := v3.Zeros(1)
	ym.Add(ya2, yb2)
	ym.Unit(ym)
	xm := v3.Zeros(1)
	xm.Add(xa2, xb2)
	xm.Unit(xm)
	zm := v3.Zeros(1)
	zm.Cross(xm, ym)
	//twist is the angle from xa2 to xb2 about the merged y axis
	cr := v3.Zeros(1)
	cr.Cross(xa2, xb2)
	twist := Rad2Deg(math.Atan2(cr.Dot(ym), xa2.Dot(xb2)))
	//origin displacement in mid-frame coordinates
	d := v3.Zeros(1)
	d.Sub(fb.Origin, fa.Origin)
	shift := d.Dot(xm)
	slide := d.Dot(ym)
	rise := d.Dot(zm)
	//decompose the hinge angle into the mid-frame x/y components
	var tilt, roll float64
	if ang > appzero {
		phase := math.Atan2(hinge.Dot(zm), hinge.Dot(xm))
		tilt = Rad2Deg(ang) * math.Cos(phase)
		roll = Rad2Deg(ang) * math.Sin(phase)
	}
	return &StepPar{Shift: shift, Slide: slide, Rise: rise, Tilt: tilt, Roll: roll, Twist: twist}
}
