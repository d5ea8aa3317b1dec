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

// computeCaptures runs the lambda capture analysis: a static scan of body
// for symbol references not bound by params (or by a nested lambda's own
// params), each resolved once against definingScope and snapshotted into
// the closure's capture map. Quoted data is never scanned.
func computeCaptures(body []Object, params []string, definingScope *Scope) map[string]Object {
	bound := make(map[string]bool, len(params))
	for _, p := range params {
		bound[p] = true
	}
	free := make(map[string]bool)
	for _, expr := range body {
		collectFreeSymbols(expr, bound, free)
	}
	captured := make(map[string]Object, len(free))
	for name := range free {
		val, ok := definingScope.Lookup(name)
		if !ok {
			continue
		}
		// built-ins live in the global scope permanently and are never
		// snapshotted, so redefining one is visible to every existing closure.
		if _, isBuiltin := val.(*BuiltinProcedure); isBuiltin {
			continue
		}
		captured[name] = val
	}
	return captured
}

func collectFreeSymbols(expr Object, bound map[string]bool, free map[string]bool) {
	switch v := expr.(type) {
	case *Symbol:
		if v.Name == "#t" || v.Name == "#f" {
			return
		}
		if !bound[v.Name] {
			free[v.Name] = true
		}
	case *Cell:
		if sym, ok := v.First.(*Symbol); ok {
			switch sym.Name {
			case "quote":
				return
			case "lambda":
				collectFreeSymbolsInNestedLambda(v.Second, bound, free)
				return
			}
		}
		collectFreeSymbols(v.First, bound, free)
		collectFreeSymbols(v.Second, bound, free)
	}
}

// collectFreeSymbolsInNestedLambda extends bound with the nested lambda's
// own parameters before descending into its body, so that e.g. scanning
// (lambda (y) (+ x y)) reports + and x as free but never y.
func collectFreeSymbolsInNestedLambda(rawArgs Object, bound map[string]bool, free map[string]bool) {
	args := argSlice(rawArgs)
	if len(args) < 1 {
		return
	}
	inner := make(map[string]bool, len(bound))
	for k := range bound {
		inner[k] = true
	}
	for _, name := range symbolListToNames(args[0]) {
		inner[name] = true
	}
	for _, b := range args[1:] {
		collectFreeSymbols(b, inner, free)
	}
}
