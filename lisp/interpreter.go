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
	"io"
	"os"

	"github.com/google/uuid"
)

// Interpreter is a single-tenant Scheme-dialect session: an arena, a global
// scope populated with built-ins, and a session id for REPL/log
// correlation. Grounded on memcp's top-level EvalAll driver
// (memcp/scm/parser.go), adding a collection pass before the run and again
// before each top-level expression.
type Interpreter struct {
	arena  *Arena
	global *Scope
	Stdout io.Writer
	ID     uuid.UUID
}

// NewInterpreter builds a fresh session with every built-in procedure
// registered in the global scope.
func NewInterpreter() *Interpreter {
	arena := newArena()
	global := newGlobalScope(arena)
	interp := &Interpreter{arena: arena, global: global, Stdout: os.Stdout, ID: uuid.New()}

	registerSpecialForms(global)
	registerArithmetic(global)
	registerComparisons(global)
	registerListOps(global)
	registerPredicates(global)
	registerHelp(global, interp.Stdout)

	return interp
}

// Stats reports the arena's current footprint, for diagnostics.
func (interp *Interpreter) Stats() string {
	return interp.arena.Stats()
}

// Run parses source as a sequence of top-level expressions and evaluates
// them left to right, collecting the arena before the run and again before
// each top-level expression. It returns the printable representation of
// the last expression's value, or "" if source had none. Panics raised by
// the evaluator (SyntaxError, NameError, RuntimeError) are recovered at
// this boundary and returned as err, mirroring the top-level panic/recover
// in memcp/scm/prompt.go's REPL loop.
func (interp *Interpreter) Run(source string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = &RuntimeError{Message: "panic: " + toMessage(r)}
		}
	}()

	interp.collect(nil)

	parser := NewParser(interp.arena, source)
	exprs, perr := parser.ReadAll()
	if perr != nil {
		return "", perr
	}

	var last Object
	haveLast := false
	for _, expr := range exprs {
		live := map[Object]struct{}{}
		interp.global.GatherRoots(live)
		if expr != nil {
			expr.GatherSubobjects(live)
		}
		interp.arena.Collect(live)

		last = Evaluate(expr, interp.global)
		haveLast = true
	}

	if !haveLast {
		return "", nil
	}
	return ReprOf(last), nil
}

// collect runs a bare sweep against the global scope's roots plus whatever
// extra is passed in; its only caller is Run's entry (with nil). It is
// kept as its own method so a future caller (e.g. a REPL wanting to collect
// between statements without a fresh parse) has a named hook.
func (interp *Interpreter) collect(extra Object) {
	live := map[Object]struct{}{}
	interp.global.GatherRoots(live)
	if extra != nil {
		extra.GatherSubobjects(live)
	}
	interp.arena.Collect(live)
}

func toMessage(r interface{}) string {
	return fmt.Sprintf("%v", r)
}
