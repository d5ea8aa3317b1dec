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

// Number is a signed 64-bit integer. Self-evaluating.
type Number struct {
	Value int64
}

func (n *Number) Evaluate(scope *Scope) Object { return n }
func (n *Number) Repr() string                 { return strconv.FormatInt(n.Value, 10) }

func (n *Number) Copy(scope *Scope) Object {
	return scope.allocNumber(n.Value)
}

func (n *Number) GatherSubobjects(live map[Object]struct{}) {
	live[n] = struct{}{}
}

// Boolean is true/false. Self-evaluating.
type Boolean struct {
	Value bool
}

func (b *Boolean) Evaluate(scope *Scope) Object { return b }

func (b *Boolean) Repr() string {
	if b.Value {
		return "#t"
	}
	return "#f"
}

func (b *Boolean) Copy(scope *Scope) Object {
	return scope.allocBoolean(b.Value)
}

func (b *Boolean) GatherSubobjects(live map[Object]struct{}) {
	live[b] = struct{}{}
}

// Symbol is an interned-by-value identifier. Evaluating one looks it up in
// the enclosing scope chain, unless its name is the literal #t/#f token, in
// which case a fresh Boolean is materialized.
type Symbol struct {
	Name string
}

func (s *Symbol) Evaluate(scope *Scope) Object {
	switch s.Name {
	case "#t":
		return scope.allocBoolean(true)
	case "#f":
		return scope.allocBoolean(false)
	}
	obj, ok := scope.Lookup(s.Name)
	if !ok {
		panic(&NameError{Message: "unbound symbol: " + s.Name})
	}
	return obj
}

func (s *Symbol) Repr() string { return s.Name }

func (s *Symbol) Copy(scope *Scope) Object {
	return scope.allocSymbol(s.Name)
}

func (s *Symbol) GatherSubobjects(live map[Object]struct{}) {
	live[s] = struct{}{}
}

// Cell is a cons pair. A chain of cells encodes both proper lists
// (terminated by a nil Second) and improper/dotted-pair lists (terminated
// by a non-nil, non-Cell Second).
type Cell struct {
	First, Second Object
}

func (c *Cell) Evaluate(scope *Scope) Object {
	return evaluateCombination(c, scope)
}

func (c *Cell) Repr() string {
	out := make([]byte, 0, 16)
	out = append(out, '(')
	var cur Object = c
	first := true
	for {
		cell, ok := cur.(*Cell)
		if !ok {
			// cur is a non-nil, non-Cell tail: dotted pair.
			out = append(out, " . "...)
			out = append(out, ReprOf(cur)...)
			break
		}
		if !first {
			out = append(out, ' ')
		}
		first = false
		out = append(out, ReprOf(cell.First)...)
		if cell.Second == nil {
			break
		}
		cur = cell.Second
	}
	out = append(out, ')')
	return string(out)
}

func (c *Cell) Copy(scope *Scope) Object {
	first := copyObject(c.First, scope)
	second := copyObject(c.Second, scope)
	return scope.allocCell(first, second)
}

func (c *Cell) GatherSubobjects(live map[Object]struct{}) {
	if _, seen := live[c]; seen {
		return
	}
	live[c] = struct{}{}
	if c.First != nil {
		c.First.GatherSubobjects(live)
	}
	if c.Second != nil {
		c.Second.GatherSubobjects(live)
	}
}

// copyObject applies Copy semantics to a possibly-nil Object; nil (the
// empty-list sentinel) duplicates to itself.
func copyObject(o Object, scope *Scope) Object {
	if o == nil {
		return nil
	}
	return o.Copy(scope)
}

// isFalse reports whether v is the Boolean #f — the only value this
// dialect treats as "false" for and/or/not/if.
func isFalse(v Object) bool {
	b, ok := v.(*Boolean)
	return ok && !b.Value
}
