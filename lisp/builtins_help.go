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

import "io"

// registerHelp installs the supplemented help built-in, grounded on memcp's
// own Declare/Help registry (memcp/scm/declare.go) rather than on
// original_source, which has no equivalent built-in. Since this dialect has
// no string type, help writes directly to out and returns the empty list,
// rather than trying to hand the text back as a Scheme value.
func registerHelp(global *Scope, out io.Writer) {
	Declare(global, &Declaration{
		Name: "help", Description: "(help) lists all built-ins; (help 'name) shows one's description",
		MinArity: 0, MaxArity: 1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := evalAll(rawArgs, scope)
			name := ""
			if len(args) == 1 {
				sym, ok := args[0].(*Symbol)
				if !ok {
					panic(&RuntimeError{Message: "help: argument must be a symbol"})
				}
				name = sym.Name
			}
			io.WriteString(out, Help(scope, name))
			return nil
		},
	})
}
