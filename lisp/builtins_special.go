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

// registerSpecialForms installs quote, if, and, or, define, set!,
// set-car!, set-cdr!, and lambda — the built-ins that manage their own
// argument evaluation instead of having every operand evaluated for them.
func registerSpecialForms(global *Scope) {
	Declare(global, &Declaration{
		Name: "quote", Description: "returns its argument unevaluated",
		MinArity: 1, MaxArity: 1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			return argSlice(rawArgs)[0]
		},
	})

	Declare(global, &Declaration{
		Name: "if", Description: "(if test consequent [alternative])\nevaluates test; branches on its boolean value",
		MinArity: 0, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := argSlice(rawArgs)
			if len(args) != 2 && len(args) != 3 {
				panic(&SyntaxError{Message: "if expects 2 or 3 arguments"})
			}
			test := Evaluate(args[0], scope)
			b, ok := test.(*Boolean)
			if !ok {
				panic(&RuntimeError{Message: "if: test did not evaluate to a boolean"})
			}
			if b.Value {
				return Evaluate(args[1], scope)
			}
			if len(args) == 3 {
				return Evaluate(args[2], scope)
			}
			return nil
		},
	})

	Declare(global, &Declaration{
		Name: "and", Description: "left-to-right; returns the first #f, else the last value; empty is #t",
		MinArity: 0, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := argSlice(rawArgs)
			if len(args) == 0 {
				return scope.allocBoolean(true)
			}
			var last Object
			for _, a := range args {
				last = Evaluate(a, scope)
				if isFalse(last) {
					return last
				}
			}
			return last
		},
	})

	Declare(global, &Declaration{
		Name: "or", Description: "left-to-right; returns the first non-#f, else the last value; empty is #f",
		MinArity: 0, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := argSlice(rawArgs)
			if len(args) == 0 {
				return scope.allocBoolean(false)
			}
			var last Object
			for _, a := range args {
				last = Evaluate(a, scope)
				if !isFalse(last) {
					return last
				}
			}
			return last
		},
	})

	Declare(global, &Declaration{
		Name: "define", Description: "(define sym expr) or (define (name params...) body...)",
		MinArity: 0, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := argSlice(rawArgs)
			if len(args) < 2 {
				panic(&SyntaxError{Message: "define expects at least 2 arguments"})
			}
			switch head := args[0].(type) {
			case *Symbol:
				if len(args) != 2 {
					panic(&SyntaxError{Message: "(define sym expr) expects exactly one expression"})
				}
				val := Evaluate(args[1], scope)
				copied := copyObject(val, scope)
				scope.Bind(head.Name, copied)
				return copied
			case *Cell:
				nameSym, ok := head.First.(*Symbol)
				if !ok {
					panic(&SyntaxError{Message: "(define (name params...) body...) expects a name symbol"})
				}
				proc := buildLambda(scope, head.Second, args[1:])
				scope.Bind(nameSym.Name, proc)
				return proc
			default:
				panic(&SyntaxError{Message: "define: malformed first argument"})
			}
		},
	})

	Declare(global, &Declaration{
		Name: "set!", Description: "(set! name expr): mutate an existing binding",
		MinArity: 0, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := argSlice(rawArgs)
			if len(args) != 2 {
				panic(&SyntaxError{Message: "set! expects exactly 2 arguments"})
			}
			sym, ok := args[0].(*Symbol)
			if !ok {
				panic(&SyntaxError{Message: "set!: first argument must be a symbol"})
			}
			if _, found := scope.Lookup(sym.Name); !found {
				panic(&NameError{Message: "set! of unknown name: " + sym.Name})
			}
			val := Evaluate(args[1], scope)
			copied := copyObject(val, scope)
			scope.Bind(sym.Name, copied)
			return copied
		},
	})

	Declare(global, &Declaration{
		Name: "set-car!", Description: "(set-car! pair expr): mutate the head of a cell in place",
		MinArity: 2, MaxArity: 2,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := argSlice(rawArgs)
			cell := requireCell(Evaluate(args[0], scope), "set-car!")
			val := copyObject(Evaluate(args[1], scope), scope)
			cell.First = val
			return val
		},
	})

	Declare(global, &Declaration{
		Name: "set-cdr!", Description: "(set-cdr! pair expr): mutate the tail of a cell in place",
		MinArity: 2, MaxArity: 2,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := argSlice(rawArgs)
			cell := requireCell(Evaluate(args[0], scope), "set-cdr!")
			val := copyObject(Evaluate(args[1], scope), scope)
			cell.Second = val
			return val
		},
	})

	Declare(global, &Declaration{
		Name: "lambda", Description: "(lambda (params...) body...): builds a closure",
		MinArity: 0, MaxArity: -1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := argSlice(rawArgs)
			if len(args) < 2 {
				panic(&SyntaxError{Message: "lambda expects a parameter list and at least one body expression"})
			}
			return buildLambda(scope, args[0], args[1:])
		},
	})
}

func requireCell(o Object, who string) *Cell {
	c, ok := o.(*Cell)
	if !ok {
		panic(&RuntimeError{Message: who + ": argument is not a pair"})
	}
	return c
}

// buildLambda constructs a ScopedProcedure from a raw (unevaluated)
// parameter-list Object and raw body expressions, running the static
// free-variable capture analysis in capture.go.
func buildLambda(scope *Scope, paramsRaw Object, body []Object) *ScopedProcedure {
	params := symbolListToNames(paramsRaw)
	captured := computeCaptures(body, params, scope)
	return scope.arena.NewScopedProcedure(params, body, captured)
}

func symbolListToNames(paramsRaw Object) []string {
	var names []string
	for cur := paramsRaw; cur != nil; {
		cell, ok := cur.(*Cell)
		if !ok {
			panic(&SyntaxError{Message: "malformed parameter list"})
		}
		sym, ok := cell.First.(*Symbol)
		if !ok {
			panic(&SyntaxError{Message: "parameter list must contain only symbols"})
		}
		names = append(names, sym.Name)
		cur = cell.Second
	}
	return names
}
