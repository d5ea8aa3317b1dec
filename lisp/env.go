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

// Scope is a lexically scoped environment: a name->Object binding map, a
// service list of arena-registered transient objects created while
// evaluating AST fragments under this scope, and a non-owning parent
// pointer chaining toward the global scope. Grounded on memcp's
// Env{Vars, Outer} (memcp/scm.go), generalized with the service list so a
// collection pass can find every object a scope is still holding onto.
type Scope struct {
	arena    *Arena
	bindings map[string]Object
	service  []Object
	parent   *Scope
	registry *registry
}

func newGlobalScope(arena *Arena) *Scope {
	return &Scope{arena: arena, bindings: make(map[string]Object), registry: newRegistry()}
}

func newChildScope(parent *Scope) *Scope {
	return &Scope{arena: parent.arena, bindings: make(map[string]Object), parent: parent, registry: parent.registry}
}

// Lookup returns the binding for name, searching this scope then its
// parent chain.
func (s *Scope) Lookup(name string) (Object, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// LookupLocal returns the binding for name in this scope only.
func (s *Scope) LookupLocal(name string) (Object, bool) {
	v, ok := s.bindings[name]
	return v, ok
}

// Bind unconditionally assigns obj under name in this scope.
func (s *Scope) Bind(name string, obj Object) {
	s.bindings[name] = obj
}

// DefineBuiltin binds a built-in procedure, failing on a duplicate local
// name — built-ins are registered once each when a global scope is set up.
func (s *Scope) DefineBuiltin(name string, proc *BuiltinProcedure) {
	if _, ok := s.bindings[name]; ok {
		panic(&SyntaxError{Message: "duplicate definition of built-in: " + name})
	}
	s.bindings[name] = proc
}

// allocNumber allocates a fresh Number in the arena and retains it in this
// scope's service list for the scope's lifetime.
func (s *Scope) allocNumber(v int64) *Number {
	n := s.arena.NewNumber(v)
	s.service = append(s.service, n)
	return n
}

func (s *Scope) allocBoolean(v bool) *Boolean {
	b := s.arena.NewBoolean(v)
	s.service = append(s.service, b)
	return b
}

func (s *Scope) allocSymbol(name string) *Symbol {
	sym := s.arena.NewSymbol(name)
	s.service = append(s.service, sym)
	return sym
}

func (s *Scope) allocCell(first, second Object) *Cell {
	c := s.arena.NewCell(first, second)
	s.service = append(s.service, c)
	return c
}

// GatherRoots inserts every binding's target and every service object
// (transitively, via GatherSubobjects) into live. Only the global scope is
// ever passed to this directly by the top-level driver — child call-frame
// scopes are dropped at return and never outlive a collection safe point.
func (s *Scope) GatherRoots(live map[Object]struct{}) {
	for _, v := range s.bindings {
		if v != nil {
			v.GatherSubobjects(live)
		}
	}
	for _, v := range s.service {
		if v != nil {
			v.GatherSubobjects(live)
		}
	}
}
