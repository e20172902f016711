/*
 * validate.go, part of nucpair.
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

//Config collects the numeric thresholds of the pairing pipeline. A
//Config is immutable once handed to the constructors; there is no
//global parameter state.
type Config struct {
	OrgDistMax    float64 //max distance between frame origins, Angstrom
	VertMax       float64 //max offset along the mean base normal
	PlaneAngleMax float64 //max angle between base planes, degrees
	NNDistMin     float64 //bounds on the glycosidic-nitrogen distance
	NNDistMax     float64
	OverlapMax    float64 //max projected ring overlap, Angstrom squared
	MinHBonds     int     //min accepted hydrogen bonds per pair
	HBDistMin     float64 //hydrogen-bond distance bounds
	HBDistMax     float64
	MinRingMatch  int //min matched ring atoms for a frame fit
}

//DefaultConfig returns the default thresholds.
func DefaultConfig() *Config {
	return &Config{
		OrgDistMax:    15.0,
		VertMax:       2.5,
		PlaneAngleMax: 65.0,
		NNDistMin:     4.5,
		NNDistMax:     15.0,
		OverlapMax:    0.01,
		MinHBonds:     1,
		HBDistMin:     1.8,
		HBDistMax:     4.0,
		MinRingMatch:  3,
	}
}

//PairKind is the classification of a validated pair.
type PairKind int

const (
	Unclassified PairKind = iota
	Wobble
	WatsonCrick
)

func (k PairKind) String() string {
	switch k {
	case Wobble:
		return "wobble"
	case WatsonCrick:
		return "WC"
	}
	return "-"
}

//Bounds on the step parameters of a pair that can still be called a
//Watson-Crick or wobble geometry.
const (
	pairRiseMax   = 2.0
	pairTwistMax  = 60.0
	wcSlideMax    = 1.8
	wobbleSlideLo = 1.8
	wobbleSlideHi = 2.8
)

//ValidationResult is the full outcome of validating one candidate pair.
//Every metric and flag is filled even when an earlier check already
//failed, so a rejection always says which checks failed, not just the
//first one. Produced fresh per candidate and never mutated afterwards.
type ValidationResult struct {
	OriginDist float64
	VertOffset float64
	PlaneAngle float64 //degrees
	NNDist     float64
	Overlap    float64

	DistOK    bool
	VertOK    bool
	AngleOK   bool
	NNOK      bool
	OverlapOK bool
	HBondOK   bool

	Bonds []*HBond
	Step  *StepPar
	Kind  PairKind
	Score float64
	Valid bool
}

//Validator decides whether two residues form a base pair. Built once
//from a Config and reused for every candidate; it holds no per-call
//state.
type Validator struct {
	cfg *Config
	det *HBondDetector
}

//NewValidator returns a Validator with the thresholds of cfg.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg, det: NewHBondDetector(cfg)}
}

//Validate evaluates the candidate pair (a, b) and returns the full
//result. Residues without a valid frame yield an immediately invalid
//result with no metrics filled.
func (V *Validator) Validate(a, b *Residue) *ValidationResult {
	res := &ValidationResult{}
	if a == nil || b == nil || !a.HasFrame() || !b.HasFrame() {
		return res
	}
	fa, fb := a.Frame, b.Frame
	za, zb := fa.Z(), fb.Z()
	//mean normal; the z axes of paired, anti-parallel bases point in
	//roughly opposite directions, so one is flipped before averaging
	if za.Dot(zb) < 0 {
		zb.Scale(-1, zb)
	}
	zavg := v3.Zeros(1)
	zavg.Add(za, zb)
	zavg.Unit(zavg)
	d := v3.Zeros(1)
	d.Sub(fb.Origin, fa.Origin)
	res.OriginDist = d.Norm(2)
	res.VertOffset = math.Abs(d.Dot(zavg))
	angle := Rad2Deg(Angle(fa.Z(), fb.Z()))
	if angle > 90 {
		angle = 180 - angle
	}
	res.PlaneAngle = angle
	res.NNDist = glycosidicDist(a, b)
	res.Overlap = OverlapArea(a, b, zavg)
	res.Bonds = V.det.DetectBase(a, b)

	cfg := V.cfg
	res.DistOK = res.OriginDist <= cfg.OrgDistMax
	res.VertOK = res.VertOffset <= cfg.VertMax
	res.AngleOK = res.PlaneAngle <= cfg.PlaneAngleMax
	res.NNOK = res.NNDist >= cfg.NNDistMin && res.NNDist <= cfg.NNDistMax
	res.OverlapOK = res.Overlap <= cfg.OverlapMax
	res.HBondOK = AcceptedBonds(res.Bonds) >= cfg.MinHBonds
	res.Valid = res.DistOK && res.VertOK && res.AngleOK && res.NNOK && res.OverlapOK && res.HBondOK

	res.Kind = V.classify(a, b, res)
	res.Score = V.score(res)
	return res
}

//classify decides between unclassified, wobble and Watson-Crick from
//the relative orientation of the frames and the step parameters.
func (V *Validator) classify(a, b *Residue, res *ValidationResult) PairKind {
	fa, fb := a.Frame, b.Frame
	xx := fa.X().Dot(fb.X())
	yy := fa.Y().Dot(fb.Y())
	zz := fa.Z().Dot(fb.Z())
	if !(xx > 0 && yy < 0 && zz < 0) {
		return Unclassified
	}
	fb2 := fb
	if zz <= 0 {
		fb2 = fb.reversedYZ()
	}
	step := StepParameters(fa, fb2)
	res.Step = step
	if math.Abs(step.Rise) > pairRiseMax || math.Abs(step.Twist) > pairTwistMax {
		return Unclassified
	}
	slide := math.Abs(step.Slide)
	kind := Unclassified
	if slide >= wobbleSlideLo && slide <= wobbleSlideHi {
		kind = Wobble
	}
	if slide <= wcSlideMax && CanonicalPair(a.Base, b.Base) {
		kind = WatsonCrick
	}
	return kind
}

//score computes the quality score of the pair. Lower is better.
func (V *Validator) score(res *ValidationResult) float64 {
	s := res.OriginDist + 2*res.VertOffset + res.PlaneAngle/20
	if GoodBonds(res.Bonds) >= 2 {
		s -= 3
	} else {
		s -= float64(AcceptedBonds(res.Bonds))
	}
	if res.Kind == WatsonCrick {
		s -= 2.0
	}
	return s
}

//glycosidicDist returns the distance between the glycosidic nitrogens
//of the residues, or between the frame origins when a residue is
//missing that atom.
func glycosidicDist(a, b *Residue) float64 {
	ia := a.AtomIndex(glycosidicNitrogen(a.Base))
	ib := b.AtomIndex(glycosidicNitrogen(b.Base))
	if ia < 0 || ib < 0 {
		return dist(a.Frame.Origin, b.Frame.Origin)
	}
	return dist(a.Coord(ia), b.Coord(ib))
}
