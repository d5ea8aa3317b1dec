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
	"strconv"

	"github.com/docker/go-units"
)

// Object is the universal value/AST node: every concrete variant (Number,
// Boolean, Symbol, Cell, BuiltinProcedure, ScopedProcedure) implements it.
// A Go nil Object is the "no object" / empty list sentinel — there is
// deliberately no concrete Nil type.
//
// The closed variant set and its per-variant dispatch mirror memcp's Scmer
// tagged value (memcp/scm/scmer.go), reworked from a packed-pointer struct
// into a plain tagged-union-by-interface: a pattern-matched dispatch over
// concrete pointer types. The packed/unsafe representation is a
// performance trick memcp needs for its hot query path; this dialect has
// no such hot path, and the packing would only obscure the arena/GC
// contract below.
type Object interface {
	Evaluate(scope *Scope) Object
	Repr() string
	Copy(scope *Scope) Object
	GatherSubobjects(live map[Object]struct{})
}

// ReprOf renders an Object's printable representation, treating a Go nil
// Object as the empty list.
func ReprOf(o Object) string {
	if o == nil {
		return "()"
	}
	return o.Repr()
}

// Arena is the Interpreter-wide registry owning every live Object. It never
// moves objects — Go pointer identity doubles as a stable handle — and
// grows by simple append.
//
// Grounded on memcp's habit of centralizing construction behind
// constructors (memcp/scm/scmer.go's New*), generalized into an instance
// member of Interpreter instead of a package-level global, so more than
// one Interpreter can exist in a process without sharing state.
type Arena struct {
	objects []Object
}

func newArena() *Arena {
	return &Arena{}
}

func (a *Arena) register(o Object) Object {
	a.objects = append(a.objects, o)
	return o
}

// NewNumber allocates a fresh Number in the arena.
func (a *Arena) NewNumber(v int64) *Number {
	return a.register(&Number{Value: v}).(*Number)
}

// NewBoolean allocates a fresh Boolean in the arena.
func (a *Arena) NewBoolean(v bool) *Boolean {
	return a.register(&Boolean{Value: v}).(*Boolean)
}

// NewSymbol allocates a fresh Symbol in the arena.
func (a *Arena) NewSymbol(name string) *Symbol {
	return a.register(&Symbol{Name: name}).(*Symbol)
}

// NewCell allocates a fresh cons cell in the arena.
func (a *Arena) NewCell(first, second Object) *Cell {
	return a.register(&Cell{First: first, Second: second}).(*Cell)
}

// NewScopedProcedure allocates a fresh user lambda in the arena.
func (a *Arena) NewScopedProcedure(params []string, body []Object, captured map[string]Object) *ScopedProcedure {
	return a.register(&ScopedProcedure{Params: params, Body: body, Captured: captured}).(*ScopedProcedure)
}

// Live returns the number of objects the arena currently tracks: everything
// registered and not yet dropped by Collect, reachable or not.
func (a *Arena) Live() int {
	return len(a.objects)
}

// Collect is the sweep half of a mark-and-sweep pass: given the set of
// live roots (computed by the caller via Scope.GatherRoots plus any extra
// AST root), every tracked object not in that set is dropped from the
// registry.
func (a *Arena) Collect(live map[Object]struct{}) {
	kept := a.objects[:0]
	for _, o := range a.objects {
		if _, ok := live[o]; ok {
			kept = append(kept, o)
		}
	}
	a.objects = kept
}

// Stats renders a human-readable footprint summary, using the same
// human-size formatting memcp/storage uses for partition size budgets.
func (a *Arena) Stats() string {
	const approxPerObject = 48 // rough: interface header + smallest variant struct
	return units.HumanSize(float64(len(a.objects)*approxPerObject)) + " across " + strconv.Itoa(len(a.objects)) + " objects"
}
