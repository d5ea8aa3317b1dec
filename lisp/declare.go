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

import (
	"fmt"
	"sort"
	"strings"
)

// Declaration documents and registers one built-in procedure, grounded on
// memcp's Declaration/Declare (memcp/scm/declare.go): a name, a
// description, a min/max arity, and the native function. MinArity==MaxArity
// means fixed arity (enforced generically by the evaluator); anything else
// is variadic and validates its own shape.
type Declaration struct {
	Name        string
	Description string
	MinArity    int
	MaxArity    int // -1 means unbounded
	Fn          func(scope *Scope, rawArgs Object) Object
}

// registry holds one global scope's (help) bookkeeping: the declaration
// behind each registered built-in and the order they were registered in.
// Owned per-Interpreter (via the global Scope) rather than package-level, so
// two Interpreters running concurrently don't race on registration or on
// (help).
type registry struct {
	declarations map[string]*Declaration
	order        []string
}

func newRegistry() *registry {
	return &registry{declarations: map[string]*Declaration{}}
}

// Declare registers def's native function as a built-in in global and
// records it for (help).
func Declare(global *Scope, def *Declaration) {
	reg := global.registry
	if _, ok := reg.declarations[def.Name]; !ok {
		reg.order = append(reg.order, def.Name)
	}
	reg.declarations[def.Name] = def
	variadic := def.MaxArity != def.MinArity
	fn := def.Fn
	if variadic {
		fn = func(scope *Scope, rawArgs Object) Object {
			if n := countArgs(rawArgs); n < def.MinArity || (def.MaxArity >= 0 && n > def.MaxArity) {
				panic(&RuntimeError{Message: fmt.Sprintf("%s: wrong number of arguments: %d", def.Name, n)})
			}
			return def.Fn(scope, rawArgs)
		}
	}
	proc := global.arena.register(&BuiltinProcedure{Name: def.Name, arity: def.MinArity, variadic: variadic, Fn: fn}).(*BuiltinProcedure)
	global.DefineBuiltin(def.Name, proc)
}

// Help renders the (help) / (help 'name) text, reading scope's registry —
// mirrors memcp's Help (memcp/scm/declare.go).
func Help(scope *Scope, name string) string {
	reg := scope.registry
	if name == "" {
		var sb strings.Builder
		sb.WriteString("Available built-ins:\n")
		names := make([]string, len(reg.order))
		copy(names, reg.order)
		sort.Strings(names)
		for _, n := range names {
			first := strings.SplitN(reg.declarations[n].Description, "\n", 2)[0]
			sb.WriteString("  " + n + ": " + first + "\n")
		}
		return sb.String()
	}
	def, ok := reg.declarations[name]
	if !ok {
		panic(&RuntimeError{Message: "no such built-in: " + name})
	}
	return fmt.Sprintf("%s\n===\n%s\n", def.Name, def.Description)
}
