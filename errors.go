/*
 * errors.go, part of nucpair.
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

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
// The decoration slice should contain a list of the functions in the
// calling stack, plus, for each function, any relevant information, or
// nothing. If information is added to an element of the slice, it should
// be in this format: "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type of the library.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds the dec string to the decoration slice of strings of the
// error and returns the resulting slice. If dec is empty, it only returns
// the current decoration.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that the error implements Error and decorates it
// with the caller's name before returning it. Used with a non-Error
// error it will panic, which is taken to signal a programming mistake.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

const (
	ErrNilData         = "nuc: Nil data given"
	ErrNoTemplate      = "nuc: No template geometry for the given base type"
	ErrTooFewRingAtoms = "nuc: Not enough matched ring atoms for a frame fit"
)
