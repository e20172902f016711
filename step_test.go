/*
 * step_test.go, part of nucpair.
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

func identityFrame() *Frame {
	rot := v3.Zeros(3)
	for i := 0; i < 3; i++ {
		rot.Set(i, i, 1)
	}
	return &Frame{Rot: rot, Origin: v3.Zeros(1), Valid: true}
}

func TestStepIdentity(Te *testing.T) {
	p := StepParameters(identityFrame(), identityFrame())
	vals := []float64{p.Shift, p.Slide, p.Rise, p.Tilt, p.Roll, p.Twist}
	for i, v := range vals {
		if math.Abs(v) > 1e-9 {
			Te.Errorf("identical frames should give all-zero parameters, got %v at %d", v, i)
		}
	}
}

func TestStepDisplacement(Te *testing.T) {
	fa := identityFrame()
	fb := identityFrame()
	fb.Origin.Set(0, 0, 1.0)
	fb.Origin.Set(0, 1, 2.0)
	fb.Origin.Set(0, 2, 3.0)
	p := StepParameters(fa, fb)
	if math.Abs(p.Shift-1) > 1e-9 || math.Abs(p.Slide-2) > 1e-9 || math.Abs(p.Rise-3) > 1e-9 {
		Te.Errorf("pure displacement should project onto the frame axes: %+v", p)
	}
	if math.Abs(p.Tilt) > 1e-9 || math.Abs(p.Roll) > 1e-9 || math.Abs(p.Twist) > 1e-9 {
		Te.Errorf("pure displacement should leave the angles at zero: %+v", p)
	}
	fmt.Printf("displacement parameters: %+v\n", p)
}

func TestStepTwist(Te *testing.T) {
	fa := identityFrame()
	fb := identityFrame()
	//rotate the second frame 30 degrees about its y axis
	theta := Deg2Rad(30)
	c, s := math.Cos(theta), math.Sin(theta)
	fb.Rot.Set(0, 0, c)
	fb.Rot.Set(2, 0, -s)
	fb.Rot.Set(0, 2, s)
	fb.Rot.Set(2, 2, c)
	p := StepParameters(fa, fb)
	if math.Abs(p.Twist-30) > 1e-6 {
		Te.Errorf("twist should be 30 degrees: %f", p.Twist)
	}
	if math.Abs(p.Tilt) > 1e-6 || math.Abs(p.Roll) > 1e-6 {
		Te.Errorf("a pure twist has no tilt or roll: %+v", p)
	}
}

func TestStepHinge(Te *testing.T) {
	fa := identityFrame()
	fb := identityFrame()
	//rotate the second frame 20 degrees about its x axis, so the y
	//axes hinge about x and the full angle lands in the tilt/roll plane
	theta := Deg2Rad(20)
	c, s := math.Cos(theta), math.Sin(theta)
	fb.Rot.Set(1, 1, c)
	fb.Rot.Set(2, 1, s)
	fb.Rot.Set(1, 2, -s)
	fb.Rot.Set(2, 2, c)
	p := StepParameters(fa, fb)
	total := math.Sqrt(p.Tilt*p.Tilt + p.Roll*p.Roll)
	if math.Abs(total-20) > 1e-6 {
		Te.Errorf("hinge angle should be 20 degrees: tilt %f roll %f", p.Tilt, p.Roll)
	}
	if math.Abs(p.Twist) > 1e-6 {
		Te.Errorf("a pure hinge rotation has no twist: %f", p.Twist)
	}
}
