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

// registerPredicates installs boolean?, not, number?, symbol?, pair?,
// null?, and list?. Grounded on memcp's type-predicate built-ins
// (memcp/scm/compare.go).
func registerPredicates(global *Scope) {
	typePred := func(name, description string, test func(Object) bool) {
		Declare(global, &Declaration{
			Name: name, Description: description,
			MinArity: 1, MaxArity: 1,
			Fn: func(scope *Scope, rawArgs Object) Object {
				return scope.allocBoolean(test(evalAll(rawArgs, scope)[0]))
			},
		})
	}

	typePred("boolean?", "(boolean? v): #t if v is #t or #f", func(v Object) bool {
		_, ok := v.(*Boolean)
		return ok
	})

	typePred("number?", "(number? v): #t if v is a number", func(v Object) bool {
		_, ok := v.(*Number)
		return ok
	})

	typePred("symbol?", "(symbol? v): #t if v is a symbol", func(v Object) bool {
		_, ok := v.(*Symbol)
		return ok
	})

	typePred("pair?", "(pair? v): #t if v is a non-empty cons cell", func(v Object) bool {
		_, ok := v.(*Cell)
		return ok
	})

	typePred("null?", "(null? v): #t if v is the empty list", func(v Object) bool {
		return v == nil
	})

	typePred("list?", "(list? v): #t if v is the empty list or a proper list", func(v Object) bool {
		cur := v
		for cur != nil {
			cell, ok := cur.(*Cell)
			if !ok {
				return false
			}
			cur = cell.Second
		}
		return true
	})

	Declare(global, &Declaration{
		Name: "not", Description: "(not v): #t if v is #f, else #f",
		MinArity: 1, MaxArity: 1,
		Fn: func(scope *Scope, rawArgs Object) Object {
			return scope.allocBoolean(isFalse(evalAll(rawArgs, scope)[0]))
		},
	})
}
