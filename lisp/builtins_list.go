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

// registerListOps installs cons, car, cdr, list, list-ref, list-tail, and
// length. Grounded on memcp's list built-ins (memcp/scm/list.go); length has
// no equivalent anywhere in the pack and is added here purely because a
// complete list built-in set needs one.
func registerListOps(global *Scope) {
	Declare(global, &Declaration{
		Name: "cons", Description: "(cons a b): allocates a fresh pair",
		MinArity: 2, MaxArity: 2,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := evalAll(rawArgs, scope)
			return scope.allocCell(args[0], args[1])
		},
	})

	Declare(global, &Declaration{
		Name: "car", Description: "(car pair): the first element",
		MinArity: 1, MaxArity: 1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			return requireCell(evalAll(rawArgs, scope)[0], "car").First
		},
	})

	Declare(global, &Declaration{
		Name: "cdr", Description: "(cdr pair): everything after the first element",
		MinArity: 1, MaxArity: 1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			return requireCell(evalAll(rawArgs, scope)[0], "cdr").Second
		},
	})

	Declare(global, &Declaration{
		Name: "list", Description: "(list a...): builds a proper list of the evaluated arguments",
		MinArity: 0, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := evalAll(rawArgs, scope)
			var result Object
			for i := len(args) - 1; i >= 0; i-- {
				result = scope.allocCell(args[i], result)
			}
			return result
		},
	})

	Declare(global, &Declaration{
		Name: "list-ref", Description: "(list-ref lst k): the k-th element (0-based)",
		MinArity: 2, MaxArity: 2,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := evalAll(rawArgs, scope)
			k := requireNumber(args[1], "list-ref").Value
			cur := args[0]
			for ; k > 0; k-- {
				cur = requireCell(cur, "list-ref").Second
			}
			return requireCell(cur, "list-ref").First
		},
	})

	Declare(global, &Declaration{
		Name: "list-tail", Description: "(list-tail lst k): the sublist after dropping k elements",
		MinArity: 2, MaxArity: 2,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := evalAll(rawArgs, scope)
			k := requireNumber(args[1], "list-tail").Value
			cur := args[0]
			for ; k > 0; k-- {
				cur = requireCell(cur, "list-tail").Second
			}
			return cur
		},
	})

	Declare(global, &Declaration{
		Name: "length", Description: "(length lst): the number of elements in a proper list",
		MinArity: 1, MaxArity: 1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			cur := evalAll(rawArgs, scope)[0]
			n := int64(0)
			for cur != nil {
				cell := requireCell(cur, "length")
				n++
				cur = cell.Second
			}
			return scope.allocNumber(n)
		},
	})
}
