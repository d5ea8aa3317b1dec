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

import "testing"

func TestEvaluateSelfEvaluating(t *testing.T) {
	interp := NewInterpreter()
	result, err := interp.Run("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "42" {
		t.Fatalf("got %q, want %q", result, "42")
	}
}

func TestEvaluateUnboundSymbol(t *testing.T) {
	interp := NewInterpreter()
	_, err := interp.Run("undefined-name")
	if err == nil {
		t.Fatal("expected a NameError")
	}
	if _, ok := err.(*NameError); !ok {
		t.Fatalf("got %T, want *NameError", err)
	}
}

func TestEvaluateCallingNonProcedure(t *testing.T) {
	interp := NewInterpreter()
	_, err := interp.Run("(define x 5) (x 1 2)")
	if err == nil {
		t.Fatal("expected a RuntimeError")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("got %T, want *RuntimeError", err)
	}
}

func TestEvaluateArityMismatch(t *testing.T) {
	interp := NewInterpreter()
	_, err := interp.Run("(abs 1 2)")
	if err == nil {
		t.Fatal("expected an arity error")
	}
}

func TestEvaluateCopySemanticsIsolatesArguments(t *testing.T) {
	interp := NewInterpreter()
	result, err := interp.Run(`
		(define (mutate p) (set-car! p 99))
		(define pair (cons 1 2))
		(mutate pair)
		pair
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "(1 . 2)" {
		t.Fatalf("got %q, want the outer pair unmutated: %q", result, "(1 . 2)")
	}
}

func TestClosureCaptureAndSetBangPersists(t *testing.T) {
	interp := NewInterpreter()
	result, err := interp.Run(`
		(define n 0)
		(define (next) (set! n (+ n 1)) n)
		(next)
		(next)
		(next)
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "3" {
		t.Fatalf("got %q, want %q", result, "3")
	}
}

func TestClosureCaptureIsSnapshottedPerLambda(t *testing.T) {
	interp := NewInterpreter()
	result, err := interp.Run(`
		(define (make-adder n) (lambda (x) (+ x n)))
		(define add5 (make-adder 5))
		(define add10 (make-adder 10))
		(+ (add5 1) (add10 1))
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "17" {
		t.Fatalf("got %q, want %q", result, "17")
	}
}

func TestClosureDoesNotCaptureBuiltins(t *testing.T) {
	interp := NewInterpreter()
	result, err := interp.Run(`
		(define (f x) (+ x 1))
		(set! + (lambda (a b) 999))
		(f 5)
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "999" {
		t.Fatalf("got %q, want %q: built-ins must be looked up live, never snapshotted", result, "999")
	}
}

func TestUnboundOperatorRaisesRuntimeError(t *testing.T) {
	interp := NewInterpreter()
	_, err := interp.Run("(undefined-function 1 2)")
	if err == nil {
		t.Fatal("expected an error calling an unbound operator")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("got %T, want *RuntimeError", err)
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	interp := NewInterpreter()
	result, err := interp.Run(`(and #t #f (car '()))`)
	if err != nil {
		t.Fatalf("unexpected error evaluating and: %v", err)
	}
	if result != "#f" {
		t.Fatalf("got %q, want %q", result, "#f")
	}

	interp2 := NewInterpreter()
	result, err = interp2.Run(`(or #f 7 (car '()))`)
	if err != nil {
		t.Fatalf("unexpected error evaluating or: %v", err)
	}
	if result != "7" {
		t.Fatalf("got %q, want %q", result, "7")
	}
}

func TestCollectionSafetyAcrossTopLevelExpressions(t *testing.T) {
	interp := NewInterpreter()
	_, err := interp.Run(`
		(define a 1)
		(define b 2)
		(+ a b)
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if interp.arena.Live() == 0 {
		t.Fatal("collection should still leave the globally reachable bindings alive")
	}
}
