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

// registerArithmetic installs +, -, *, /, min, max, abs. Grounded on the
// teacher's arithmetic built-ins (memcp/scm/alu.go), restricted to this
// dialect's single numeric type, a signed 64-bit integer.
func registerArithmetic(global *Scope) {
	Declare(global, &Declaration{
		Name: "+", Description: "(+ n...): sum; 0 for no arguments",
		MinArity: 0, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			var sum int64
			for _, v := range evalAll(rawArgs, scope) {
				sum += requireNumber(v, "+").Value
			}
			return scope.allocNumber(sum)
		},
	})

	Declare(global, &Declaration{
		Name: "-", Description: "(- n): negation; (- n m...): left-to-right subtraction",
		MinArity: 1, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := evalAll(rawArgs, scope)
			if len(args) == 1 {
				return scope.allocNumber(-requireNumber(args[0], "-").Value)
			}
			acc := requireNumber(args[0], "-").Value
			for _, v := range args[1:] {
				acc -= requireNumber(v, "-").Value
			}
			return scope.allocNumber(acc)
		},
	})

	Declare(global, &Declaration{
		Name: "*", Description: "(* n...): product; 1 for no arguments",
		MinArity: 0, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			acc := int64(1)
			for _, v := range evalAll(rawArgs, scope) {
				acc *= requireNumber(v, "*").Value
			}
			return scope.allocNumber(acc)
		},
	})

	Declare(global, &Declaration{
		Name: "/", Description: "(/ n m...): left-to-right integer division",
		MinArity: 1, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := evalAll(rawArgs, scope)
			acc := requireNumber(args[0], "/").Value
			if len(args) == 1 {
				if acc == 0 {
					panic(&RuntimeError{Message: "/: division by zero"})
				}
				return scope.allocNumber(1 / acc)
			}
			for _, v := range args[1:] {
				d := requireNumber(v, "/").Value
				if d == 0 {
					panic(&RuntimeError{Message: "/: division by zero"})
				}
				acc /= d
			}
			return scope.allocNumber(acc)
		},
	})

	Declare(global, &Declaration{
		Name: "min", Description: "(min n...): smallest argument",
		MinArity: 1, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := evalAll(rawArgs, scope)
			best := requireNumber(args[0], "min").Value
			for _, v := range args[1:] {
				if n := requireNumber(v, "min").Value; n < best {
					best = n
				}
			}
			return scope.allocNumber(best)
		},
	})

	Declare(global, &Declaration{
		Name: "max", Description: "(max n...): largest argument",
		MinArity: 1, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := evalAll(rawArgs, scope)
			best := requireNumber(args[0], "max").Value
			for _, v := range args[1:] {
				if n := requireNumber(v, "max").Value; n > best {
					best = n
				}
			}
			return scope.allocNumber(best)
		},
	})

	Declare(global, &Declaration{
		Name: "abs", Description: "(abs n): absolute value",
		MinArity: 1, MaxArity: 1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			v := requireNumber(evalAll(rawArgs, scope)[0], "abs").Value
			if v < 0 {
				v = -v
			}
			return scope.allocNumber(v)
		},
	})
}

func requireNumber(o Object, who string) *Number {
	n, ok := o.(*Number)
	if !ok {
		panic(&RuntimeError{Message: who + ": argument is not a number: " + ReprOf(o)})
	}
	return n
}
