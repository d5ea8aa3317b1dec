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

// Procedure is the sub-variant hierarchy of Object for anything callable:
// BuiltinProcedure (native) or ScopedProcedure (user lambda). Grounded on
// memcp's Proc struct (memcp/scm.go) plus its Declaration-based native
// registry (memcp/scm/declare.go), split here into two concrete types
// instead of one struct with optional fields.
type Procedure interface {
	Object
	// Arity reports the declared parameter count; variadic procedures skip
	// the evaluator's generic arity check and validate their own shape.
	Arity() (n int, variadic bool)
	// Setup runs before Call and returns the scope the body executes in.
	Setup(rawArgs Object, caller *Scope) *Scope
	// Call invokes the procedure body against the setup scope.
	Call(rawArgs Object, scope *Scope) Object
	// Teardown runs after Call returns, against the setup scope.
	Teardown(scope *Scope)
}

// BuiltinProcedure is a native special-form or function. Setup is the
// identity (it reuses the caller's scope) and teardown is a no-op — the
// procedure itself decides which of its arguments to evaluate and when,
// which is what gives short-circuit and/or, lazy if, and quote.
type BuiltinProcedure struct {
	Name     string
	arity    int
	variadic bool
	Fn       func(scope *Scope, rawArgs Object) Object
}

func (b *BuiltinProcedure) Evaluate(scope *Scope) Object { return b }
func (b *BuiltinProcedure) Repr() string                 { return "function" }

func (b *BuiltinProcedure) Copy(scope *Scope) Object {
	panic(&RuntimeError{Message: "cannot copy a built-in procedure: " + b.Name})
}

func (b *BuiltinProcedure) GatherSubobjects(live map[Object]struct{}) {
	live[b] = struct{}{}
}

func (b *BuiltinProcedure) Arity() (int, bool) { return b.arity, b.variadic }

func (b *BuiltinProcedure) Setup(rawArgs Object, caller *Scope) *Scope { return caller }

func (b *BuiltinProcedure) Call(rawArgs Object, scope *Scope) Object {
	return b.Fn(scope, rawArgs)
}

func (b *BuiltinProcedure) Teardown(scope *Scope) {}

// ScopedProcedure is a user lambda: an ordered parameter list, an ordered
// body, and a captured-bindings map snapshotting the closure's free
// variables at construction time (see computeCaptures in capture.go).
type ScopedProcedure struct {
	Params   []string
	Body     []Object
	Captured map[string]Object
}

func (p *ScopedProcedure) Evaluate(scope *Scope) Object { return p }
func (p *ScopedProcedure) Repr() string                 { return "function" }

func (p *ScopedProcedure) Copy(scope *Scope) Object {
	captured := make(map[string]Object, len(p.Captured))
	for k, v := range p.Captured {
		captured[k] = v
	}
	params := make([]string, len(p.Params))
	copy(params, p.Params)
	body := make([]Object, len(p.Body))
	copy(body, p.Body)
	return scope.arena.NewScopedProcedure(params, body, captured)
}

func (p *ScopedProcedure) GatherSubobjects(live map[Object]struct{}) {
	if _, seen := live[p]; seen {
		return
	}
	live[p] = struct{}{}
	for _, v := range p.Captured {
		if v != nil {
			v.GatherSubobjects(live)
		}
	}
	for _, b := range p.Body {
		if b != nil {
			b.GatherSubobjects(live)
		}
	}
}

func (p *ScopedProcedure) Arity() (int, bool) { return len(p.Params), false }

// Setup allocates a new child scope whose parent is the *caller* scope —
// not this procedure's defining scope. Free variables are resolved either
// via the captured-bindings map (bound in directly below) or, failing
// that, by walking up the caller's dynamic chain until the global scope's
// built-ins are reached. This trades textbook lexical scoping for a
// snapshot+write-back model: a lambda's free variables are fixed at
// construction time and mutations to them round-trip through Teardown,
// rather than aliasing the defining scope's storage directly.
func (p *ScopedProcedure) Setup(rawArgs Object, caller *Scope) *Scope {
	newScope := newChildScope(caller)
	args := argSlice(rawArgs)
	if len(args) != len(p.Params) {
		panic(&RuntimeError{Message: "wrong number of arguments to lambda"})
	}
	for i, name := range p.Params {
		evaluated := Evaluate(args[i], caller)
		newScope.Bind(name, copyObject(evaluated, newScope))
	}
	for name, val := range p.Captured {
		newScope.Bind(name, val)
	}
	return newScope
}

func (p *ScopedProcedure) Call(rawArgs Object, scope *Scope) Object {
	var result Object
	for _, expr := range p.Body {
		result = Evaluate(expr, scope)
	}
	return result
}

// Teardown re-reads each captured name from the call's scope and writes
// the fresh value back into the procedure's capture map, so that set!
// mutations of captured variables survive across calls.
func (p *ScopedProcedure) Teardown(scope *Scope) {
	for name := range p.Captured {
		if v, ok := scope.LookupLocal(name); ok {
			p.Captured[name] = v
		}
	}
}
