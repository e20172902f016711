/*
 * doc.go, part of nucpair.
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

/*Package nuc identifies the base pairs of a nucleic-acid structure.

Given the atomic coordinates of a DNA or RNA molecule, read from a PDB
file or built in memory, the package fits a reference frame to each
nucleotide by superimposing the standard geometry of its base onto the
experimental coordinates, and then searches for base pairs: pairs of
residues whose frames are close, roughly coplanar and anti-parallel,
which do not stack on top of each other, and which share at least one
hydrogen bond between their base atoms. Accepted pairs are classified
as Watson-Crick, wobble or unclassified from the rigid-body parameters
relating the two frames, and a greedy mutual-best-match pass turns the
candidate pairs into a deterministic, disjoint pairing of the whole
structure.

The usual entry points are PDBRead, FitFrames and FindPairs:

	s, err := nuc.PDBRead("structure.pdb")
	...
	cfg := nuc.DefaultConfig()
	lib := nuc.NewLibrary(false)
	_, err = nuc.FitFrames(s, lib, cfg.MinRingMatch)
	...
	pairs := nuc.FindPairs(s, nuc.NewValidator(cfg))

All thresholds of the search live in a Config value passed to the
constructors. Coordinates are handled as Nx3 matrices from the v3
subpackage.
*/
package nuc
