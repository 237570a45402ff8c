/*
 * errors.go, part of symf.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package symf

import (
	"errors"
	"fmt"
	"strings"
)

// Causes that can be matched with errors.Is on any error returned by this package.
var (
	ErrUnimplementedKind = errors.New("unimplemented symmetry function type")
	ErrParamCount        = errors.New("wrong number of parameters")
	ErrParamType         = errors.New("wrong parameter type")
	ErrPrecalLength      = errors.New("wrong precalculated geometry length")
)

// SymfError is the error type returned by the functions in this package.
type SymfError struct {
	message  string
	deco     []string
	critical bool
	cause    error
}

func newError(cause error, critical bool, format string, a ...interface{}) *SymfError {
	return &SymfError{message: fmt.Sprintf(format, a...), critical: critical, cause: cause}
}

//Error returns a string with an error message, followed by the
//decorations, innermost first.
func (err *SymfError) Error() string {
	if len(err.deco) == 0 {
		return err.message
	}
	return fmt.Sprintf("%s [%s]", err.message, strings.Join(err.deco, " < "))
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *SymfError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err *SymfError) Critical() bool { return err.critical }

//Unwrap gives the cause of the error, so errors.Is works with the Err* values.
func (err *SymfError) Unwrap() error { return err.cause }

//errDecorate decorates err with the caller's name if it implements Error.
//Other errors are returned untouched.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
