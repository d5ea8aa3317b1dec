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

// registerComparisons installs =, <, >, <=, >=, and the supplemented
// equal? (grounded on memcp/scm.go's equal?, not original_source — its
// Equal class implements numeric = rather than structural equality). One
// deep-equality predicate covers numbers, booleans, symbols, and list
// structure. Chained comparisons are grounded on memcp/scm/compare.go.
func registerComparisons(global *Scope) {
	chain := func(name string, ok func(a, b int64) bool) {
		Declare(global, &Declaration{
			Name: name, Description: "(" + name + " n...): chained numeric comparison",
			MinArity: 0, MaxArity: -1,
			Fn: func(scope *Scope, rawArgs Object) Object {
				args := evalAll(rawArgs, scope)
				for i := 0; i+1 < len(args); i++ {
					a := requireNumber(args[i], name).Value
					b := requireNumber(args[i+1], name).Value
					if !ok(a, b) {
						return scope.allocBoolean(false)
					}
				}
				return scope.allocBoolean(true)
			},
		})
	}

	chain("=", func(a, b int64) bool { return a == b })
	chain("<", func(a, b int64) bool { return a < b })
	chain(">", func(a, b int64) bool { return a > b })
	chain("<=", func(a, b int64) bool { return a <= b })
	chain(">=", func(a, b int64) bool { return a >= b })

	Declare(global, &Declaration{
		Name: "equal?", Description: "(equal? a b): structural equality across numbers, booleans, symbols, and lists",
		MinArity: 2, MaxArity: 2,
		Fn: func(scope *Scope, rawArgs Object) Object {
			args := evalAll(rawArgs, scope)
			return scope.allocBoolean(deepEqual(args[0], args[1]))
		},
	})
}

func deepEqual(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Symbol:
		bv, ok := b.(*Symbol)
		return ok && av.Name == bv.Name
	case *Cell:
		bv, ok := b.(*Cell)
		return ok && deepEqual(av.First, bv.First) && deepEqual(av.Second, bv.Second)
	default:
		return a == b
	}
}
