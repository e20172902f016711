/*
 * main.go, part of nucpair.
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

//nucpair reads a PDB file (optionally gzipped) and prints the base
//pairs it finds, one per line, with their classification and score.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	nuc "github.com/ebarria/nucpair"
	"github.com/ebarria/nucpair/nucplot"
)

func main() {
	rna := flag.Bool("rna", false, "treat the structure as RNA (no thymine template)")
	plotname := flag.String("plot", "", "if given, save score and slide/rise plots with this name prefix")
	orgmax := flag.Float64("orgmax", 0, "override the maximum frame-origin distance, Angstrom")
	minhb := flag.Int("minhb", 0, "override the minimum hydrogen-bond count")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] structure.pdb[.gz]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	s, err := nuc.PDBRead(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	cfg := nuc.DefaultConfig()
	if *orgmax > 0 {
		cfg.OrgDistMax = *orgmax
	}
	if *minhb > 0 {
		cfg.MinHBonds = *minhb
	}
	lib := nuc.NewLibrary(*rna)
	fitted, err := nuc.FitFrames(s, lib, cfg.MinRingMatch)
	if err != nil {
		log.Fatal(err)
	}
	if fitted == 0 {
		log.Fatal("nucpair: no nucleotide residue could be fitted, nothing to pair")
	}
	pairs := nuc.FindPairs(s, nuc.NewValidator(cfg))
	fmt.Printf("%d residues fitted, %d pairs found\n", fitted, len(pairs))
	for _, p := range pairs {
		r := p.Result
		fmt.Printf("%4d %-8s %4d %-8s %-6s score %6.2f hbonds %d dist %5.2f angle %5.1f\n",
			p.I, p.A, p.J, p.B, r.Kind, r.Score, nuc.AcceptedBonds(r.Bonds), r.OriginDist, r.PlaneAngle)
	}
	if *plotname != "" && len(pairs) > 0 {
		if err := nucplot.ScorePlot(pairs, "Pair scores", *plotname+"_score"); err != nil {
			log.Fatal(err)
		}
		if err := nucplot.SlideRisePlot(pairs, "Slide vs rise", *plotname+"_sliderise"); err != nil {
			log.Fatal(err)
		}
	}
}
