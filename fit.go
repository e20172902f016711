/*
 * fit.go, part of nucpair.
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
	"log"
	"math"

	v3 "github.com/ebarria/nucpair/v3"
	"gonum.org/v1/gonum/mat"
)

//Frame is the reference frame of a base, obtained by fitting the
//standard geometry of the base onto the experimental coordinates. Rot
//holds the images of the standard x, y and z axes as its columns, and
//Origin the image of the standard origin, so a standard-frame point p
//maps to p*Rot^T+Origin.
type Frame struct {
	Rot    *v3.Matrix //3x3
	Origin *v3.Matrix //1x3
	RMS    float64
	Valid  bool
}

//Axis returns the ith frame axis (0, 1, 2 for x, y, z) as a row vector.
func (F *Frame) Axis(i int) *v3.Matrix {
	if i < 0 || i > 2 {
		panic("Frame: axis index out of range")
	}
	r := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		r.Set(0, j, F.Rot.At(j, i))
	}
	return r
}

//X, Y and Z return the corresponding frame axis as a row vector.
func (F *Frame) X() *v3.Matrix { return F.Axis(0) }
func (F *Frame) Y() *v3.Matrix { return F.Axis(1) }
func (F *Frame) Z() *v3.Matrix { return F.Axis(2) }

//Copy returns a deep copy of the frame.
func (F *Frame) Copy() *Frame {
	rot := v3.Zeros(3)
	rot.Copy(F.Rot)
	org := v3.Zeros(1)
	org.Copy(F.Origin)
	return &Frame{Rot: rot, Origin: org, RMS: F.RMS, Valid: F.Valid}
}

//reversedYZ returns a copy of the frame with the y and z axes negated.
//The result is still right-handed. It is used to compare frames of
//bases in anti-parallel strands.
func (F *Frame) reversedYZ() *Frame {
	r := F.Copy()
	for j := 0; j < 3; j++ {
		r.Rot.Set(j, 1, -F.Rot.At(j, 1))
		r.Rot.Set(j, 2, -F.Rot.At(j, 2))
	}
	return r
}

//Matched pairs up template and residue atoms by name, as row indices
//into the respective coordinate matrices.
type Matched struct {
	TmplIdx []int
	ResIdx  []int
}

//Len returns the number of matched atoms.
func (M *Matched) Len() int { return len(M.TmplIdx) }

//MatchRingAtoms matches the ring atoms of the template against the
//residue by name, in the canonical ring order. Residue atoms whose name
//is not a ring-atom name of the base are skipped, so sugar and backbone
//atoms never enter the fit. It returns an error if fewer than minMatch
//atoms could be matched.
func MatchRingAtoms(t *Template, r *Residue, minMatch int) (*Matched, error) {
	names := RingAtomNames(t.Base)
	if names == nil {
		return nil, CError{ErrNoTemplate, []string{"MatchRingAtoms"}}
	}
	m := &Matched{}
	for _, name := range names {
		ti := t.AtomIndex(name)
		ri := r.AtomIndex(name)
		if ti < 0 || ri < 0 {
			continue
		}
		m.TmplIdx = append(m.TmplIdx, ti)
		m.ResIdx = append(m.ResIdx, ri)
	}
	if m.Len() < minMatch {
		return nil, CError{fmt.Sprintf("%s: %d matched in %s", ErrTooFewRingAtoms, m.Len(), r.String()), []string{"MatchRingAtoms"}}
	}
	return m, nil
}

//FitFrame fits the template onto the matched residue atoms and returns
//the resulting reference frame. The rotation is obtained from the
//largest eigenvalue of the quaternion key matrix built from the
//cross-covariance of the centered coordinate sets, which guarantees a
//proper rotation (no reflections) regardless of the geometry given.
func FitFrame(t *Template, r *Residue, m *Matched) (*Frame, error) {
	if t == nil || r == nil || m == nil {
		return nil, CError{ErrNilData, []string{"FitFrame"}}
	}
	n := m.Len()
	if n < 3 {
		return nil, CError{ErrTooFewRingAtoms, []string{"FitFrame"}}
	}
	tc := v3.Zeros(n)
	ec := v3.Zeros(n)
	err := tc.SomeVecsSafe(t.Coords, m.TmplIdx)
	if err != nil {
		return nil, errDecorate(err, "FitFrame")
	}
	err = ec.SomeVecsSafe(r.Coords, m.ResIdx)
	if err != nil {
		return nil, errDecorate(err, "FitFrame")
	}
	tmean := centroid(tc)
	emean := centroid(ec)
	tc.SubVec(tc, tmean)
	ec.SubVec(ec, emean)
	//Cross-covariance between the standard and experimental sets.
	var U [3][3]float64
	for i := 0; i < n; i++ {
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				U[a][b] += tc.At(i, a) * ec.At(i, b)
			}
		}
	}
	key := mat.NewSymDense(4, []float64{
		U[0][0] + U[1][1] + U[2][2], U[1][2] - U[2][1], U[2][0] - U[0][2], U[0][1] - U[1][0],
		U[1][2] - U[2][1], U[0][0] - U[1][1] - U[2][2], U[0][1] + U[1][0], U[2][0] + U[0][2],
		U[2][0] - U[0][2], U[0][1] + U[1][0], -U[0][0] + U[1][1] - U[2][2], U[1][2] + U[2][1],
		U[0][1] - U[1][0], U[2][0] + U[0][2], U[1][2] + U[2][1], -U[0][0] - U[1][1] + U[2][2],
	})
	var eig mat.EigenSym
	if ok := eig.Factorize(key, true); !ok {
		return nil, CError{"nuc: Eigendecomposition of the quaternion key matrix failed", []string{"FitFrame"}}
	}
	var evec mat.Dense
	eig.VectorsTo(&evec)
	//Eigenvalues come in ascending order, so the last eigenvector is
	//the quaternion of the optimal rotation.
	q0 := evec.At(0, 3)
	q1 := evec.At(1, 3)
	q2 := evec.At(2, 3)
	q3 := evec.At(3, 3)
	rot := v3.Zeros(3)
	rot.Set(0, 0, q0*q0+q1*q1-q2*q2-q3*q3)
	rot.Set(0, 1, 2*(q1*q2-q0*q3))
	rot.Set(0, 2, 2*(q1*q3+q0*q2))
	rot.Set(1, 0, 2*(q1*q2+q0*q3))
	rot.Set(1, 1, q0*q0-q1*q1+q2*q2-q3*q3)
	rot.Set(1, 2, 2*(q2*q3-q0*q1))
	rot.Set(2, 0, 2*(q1*q3-q0*q2))
	rot.Set(2, 1, 2*(q2*q3+q0*q1))
	rot.Set(2, 2, q0*q0-q1*q1-q2*q2+q3*q3)
	//origin = emean - tmean*rot^T
	org := v3.Zeros(1)
	org.Mul(tmean, rot.T())
	for j := 0; j < 3; j++ {
		org.Set(0, j, emean.At(0, j)-org.At(0, j))
	}
	//RMS of the fit residuals, over the matched atoms.
	fitted := v3.Zeros(n)
	fitted.Mul(tc, rot.T())
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			d := fitted.At(i, j) - ec.At(i, j)
			sum += d * d
		}
	}
	return &Frame{Rot: rot, Origin: org, RMS: math.Sqrt(sum / float64(n)), Valid: true}, nil
}

//FitFrames fits a reference frame for every residue in the structure
//with a recognized base type, writing the frame into the residue.
//Residues that cannot be fitted (unknown base, too few ring atoms) are
//left without a frame and reported in the returned count; they are not
//errors.
func FitFrames(s *Structure, lib *Library, minMatch int) (fitted int, err error) {
	if s == nil || lib == nil {
		return 0, CError{ErrNilData, []string{"FitFrames"}}
	}
	for _, r := range s.Residues {
		if !r.Base.Nucleotide() {
			continue
		}
		t, err := lib.Load(r.Base)
		if err != nil {
			continue //an RNA library has no T template
		}
		m, err := MatchRingAtoms(t, r, minMatch)
		if err != nil {
			log.Printf("nucpair: skipping %s: %v", r.String(), err)
			continue
		}
		f, err := FitFrame(t, r, m)
		if err != nil {
			return fitted, errDecorate(err, "FitFrames")
		}
		r.Frame = f
		fitted++
	}
	return fitted, nil
}

//centroid returns the mean row of the matrix as a 1x3 vector.
func centroid(A *v3.Matrix) *v3.Matrix {
	n := A.NVecs()
	c := v3.Zeros(1)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			c.Set(0, j, c.At(0, j)+A.At(i, j))
		}
	}
	for j := 0; j < 3; j++ {
		c.Set(0, j, c.At(0, j)/float64(n))
	}
	return c
}
