/*
 * pdb.go, part of nucpair.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//PDBRead reads a structure from a PDB file. Files ending in .gz are
//decompressed on the fly. Only the first model of a multi-model file is
//read.
func PDBRead(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CError{fmt.Sprintf("nuc: Failed to open PDB file: %v", err), []string{"PDBRead"}}
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, CError{fmt.Sprintf("nuc: Failed to read gzipped PDB file: %v", err), []string{"PDBRead"}}
		}
		defer gz.Close()
		r = gz
	}
	s, err := PDBReadFrom(r)
	if err != nil {
		return nil, errDecorate(err, "PDBRead "+path)
	}
	return s, nil
}

//PDBReadFrom reads a structure in PDB format from an io.Reader. Each
//residue gets a sequential PairIndex, assigned before any filtering, so
//the index identifies the residue no matter what is later skipped.
func PDBReadFrom(rd io.Reader) (*Structure, error) {
	s := &Structure{}
	var cur *Residue
	var curChain string
	var curIns byte
	var curID int = -999999
	scanner := bufio.NewScanner(rd)
	line := 0
	for scanner.Scan() {
		line++
		ln := scanner.Text()
		if strings.HasPrefix(ln, "ENDMDL") || strings.HasPrefix(ln, "END ") || ln == "END" {
			break
		}
		if !strings.HasPrefix(ln, "ATOM") && !strings.HasPrefix(ln, "HETATM") {
			continue
		}
		if len(ln) < 54 {
			return nil, CError{fmt.Sprintf("nuc: Malformed PDB line %d: too short", line), []string{"PDBReadFrom"}}
		}
		altLoc := ln[16]
		if altLoc != ' ' && altLoc != 'A' {
			continue //keep only the first alternate location
		}
		name := strings.TrimSpace(ln[12:16])
		resName := strings.TrimSpace(ln[17:20])
		chain := string(ln[21])
		resID, err := strconv.Atoi(strings.TrimSpace(ln[22:26]))
		if err != nil {
			return nil, CError{fmt.Sprintf("nuc: Malformed residue number in PDB line %d: %v", line, err), []string{"PDBReadFrom"}}
		}
		ins := ln[26]
		x, errx := strconv.ParseFloat(strings.TrimSpace(ln[30:38]), 64)
		y, erry := strconv.ParseFloat(strings.TrimSpace(ln[38:46]), 64)
		z, errz := strconv.ParseFloat(strings.TrimSpace(ln[46:54]), 64)
		if errx != nil || erry != nil || errz != nil {
			return nil, CError{fmt.Sprintf("nuc: Malformed coordinates in PDB line %d", line), []string{"PDBReadFrom"}}
		}
		if cur == nil || chain != curChain || resID != curID || ins != curIns {
			cur = &Residue{
				Name:      resName,
				Chain:     chain,
				ID:        resID,
				Base:      BaseFromResname(resName),
				PairIndex: s.Len(),
			}
			s.Residues = append(s.Residues, cur)
			curChain = chain
			curID = resID
			curIns = ins
		}
		at := &Atom{Name: name, Element: ElementFromName(name)}
		cur.AppendAtom(at, x, y, z)
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{fmt.Sprintf("nuc: Failed reading PDB data: %v", err), []string{"PDBReadFrom"}}
	}
	if s.Len() == 0 {
		return nil, CError{"nuc: No atoms found in PDB data", []string{"PDBReadFrom"}}
	}
	return s, nil
}
