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

import "strconv"

// Evaluate is the evaluator's single entry point: atomic dispatch for
// self-evaluating values and symbols, combination dispatch for cells.
// Grounded on memcp's Eval (memcp/scm.go), but always a genuine recursive
// call — memcp's "goto restart" trampoline exists only to fake tail-call
// optimization, which this dialect does not attempt.
func Evaluate(expr Object, scope *Scope) Object {
	if expr == nil {
		panic(&RuntimeError{Message: "cannot evaluate nil (empty list)"})
	}
	return expr.Evaluate(scope)
}

// evaluateCombination resolves the operator, normalizes the argument list,
// checks arity, then runs setup/call/teardown on the resolved procedure.
func evaluateCombination(c *Cell, scope *Scope) Object {
	operator := resolveOperator(c.First, scope)
	proc, ok := operator.(Procedure)
	if !ok {
		panic(&RuntimeError{Message: "cannot call a non-procedure: " + ReprOf(operator)})
	}

	argList := normalizeArgList(c.Second, scope)

	if n, variadic := proc.Arity(); !variadic {
		if got := countArgs(argList); got != n {
			panic(&RuntimeError{Message: "wrong number of arguments: expected " + strconv.Itoa(n) + ", got " + strconv.Itoa(got)})
		}
	}

	setupScope := proc.Setup(argList, scope)
	result := proc.Call(argList, setupScope)
	proc.Teardown(setupScope)
	return result
}

// resolveOperator evaluates the combination's head: a Symbol is looked up
// directly (it must already be bound to a Procedure); anything else is
// evaluated in the ordinary way. An unresolved operator position raises a
// RuntimeError ("no such function"), distinct from an ordinary unbound
// symbol evaluated as a value (NameError) — grounded on original_source's
// Cell::Evaluate (object.cpp), which raises the two as separate error
// kinds.
func resolveOperator(head Object, scope *Scope) Object {
	if head == nil {
		panic(&RuntimeError{Message: "cannot evaluate nil (empty list) as an operator"})
	}
	if sym, ok := head.(*Symbol); ok {
		obj, found := scope.Lookup(sym.Name)
		if !found {
			panic(&RuntimeError{Message: "no such function `" + sym.Name + "`"})
		}
		return obj
	}
	return Evaluate(head, scope)
}

// normalizeArgList implements step 2 of the combination protocol: nil tail
// is an empty argument list, a Cell tail is used directly, and any other
// (bare atom) tail is auto-wrapped into a one-element list.
func normalizeArgList(tail Object, scope *Scope) Object {
	if tail == nil {
		return nil
	}
	if _, ok := tail.(*Cell); ok {
		return tail
	}
	return scope.allocCell(tail, nil)
}

// argSlice flattens a normalized (already-Cell-or-nil) argument list into a
// Go slice of the raw (unevaluated) argument expressions.
func argSlice(argList Object) []Object {
	var out []Object
	for cur := argList; cur != nil; {
		cell, ok := cur.(*Cell)
		if !ok {
			break
		}
		out = append(out, cell.First)
		cur = cell.Second
	}
	return out
}

func countArgs(argList Object) int {
	n := 0
	for cur := argList; cur != nil; {
		cell, ok := cur.(*Cell)
		if !ok {
			break
		}
		n++
		cur = cell.Second
	}
	return n
}

// evalAll evaluates every raw argument expression left-to-right in scope,
// the default argument-handling most built-ins want.
func evalAll(rawArgs Object, scope *Scope) []Object {
	raws := argSlice(rawArgs)
	out := make([]Object, len(raws))
	for i, r := range raws {
		out[i] = Evaluate(r, scope)
	}
	return out
}
