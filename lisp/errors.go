/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package lisp

import "fmt"

// SourceInfo pinpoints where in the input a token or AST fragment came from.
// Grounded on memcp's SourceInfo (memcp/scm/parser.go), trimmed to the
// fields this dialect's error reporting actually needs.
type SourceInfo struct {
	Line, Col int
}

func (si SourceInfo) String() string {
	if si.Line == 0 {
		return ""
	}
	return fmt.Sprintf("%d:%d", si.Line, si.Col)
}

// SyntaxError covers malformed token streams and malformed special forms
// (wrong argument shape for if/define/set!/lambda, illegal dot placement).
type SyntaxError struct {
	Message string
	Info    SourceInfo
}

func (e *SyntaxError) Error() string {
	if loc := e.Info.String(); loc != "" {
		return fmt.Sprintf("syntax error at %s: %s", loc, e.Message)
	}
	return "syntax error: " + e.Message
}

// NameError covers references to unbound symbols and set! of unknown names.
type NameError struct {
	Message string
}

func (e *NameError) Error() string {
	return "name error: " + e.Message
}

// RuntimeError covers type mismatches, arity mismatches, division by zero,
// copying a built-in, out-of-range indices, evaluating nil, and calling a
// non-procedure.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return "runtime error: " + e.Message
}
