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

func runExpect(t *testing.T, source, want string) {
	t.Helper()
	interp := NewInterpreter()
	got, err := interp.Run(source)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", source, err)
	}
	if got != want {
		t.Errorf("%q: got %q, want %q", source, got, want)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct{ source, want string }{
		{"(+ 1 2 3)", "6"},
		{"(+)", "0"},
		{"(- 5)", "-5"},
		{"(- 10 3 2)", "5"},
		{"(*)", "1"},
		{"(* 2 3 4)", "24"},
		{"(/ 12 2 3)", "2"},
		{"(min 3 1 2)", "1"},
		{"(max 3 1 2)", "3"},
		{"(abs -7)", "7"},
		{"(abs 7)", "7"},
	}
	for _, tt := range tests {
		runExpect(t, tt.source, tt.want)
	}
}

func TestArithmeticDivisionByZero(t *testing.T) {
	interp := NewInterpreter()
	_, err := interp.Run("(/ 1 0)")
	if err == nil {
		t.Fatal("expected a division-by-zero error")
	}
}

func TestComparisons(t *testing.T) {
	tests := []struct{ source, want string }{
		{"(= 1 1 1)", "#t"},
		{"(= 1 1 2)", "#f"},
		{"(< 1 2 3)", "#t"},
		{"(< 1 3 2)", "#f"},
		{"(> 3 2 1)", "#t"},
		{"(<= 1 1 2)", "#t"},
		{"(>= 2 2 1)", "#t"},
		{"(equal? (list 1 2 3) (list 1 2 3))", "#t"},
		{"(equal? (list 1 2) (list 1 3))", "#f"},
		{"(equal? 'a 'a)", "#t"},
	}
	for _, tt := range tests {
		runExpect(t, tt.source, tt.want)
	}
}

func TestListOps(t *testing.T) {
	tests := []struct{ source, want string }{
		{"(cons 1 2)", "(1 . 2)"},
		{"(car (cons 1 2))", "1"},
		{"(cdr (cons 1 2))", "2"},
		{"(list 1 2 3)", "(1 2 3)"},
		{"(list-ref (list 10 20 30) 1)", "20"},
		{"(list-tail (list 10 20 30) 1)", "(20 30)"},
		{"(length (list 1 2 3 4))", "4"},
		{"(length '())", "0"},
	}
	for _, tt := range tests {
		runExpect(t, tt.source, tt.want)
	}
}

func TestConsAcceptsAProcedureArgumentWithoutCopying(t *testing.T) {
	interp := NewInterpreter()
	result, err := interp.Run("(define f +) (car (cons f 5))")
	if err != nil {
		t.Fatalf("cons must alias a built-in procedure rather than copy it: %v", err)
	}
	if result != "function" {
		t.Fatalf("got %q, want %q", result, "function")
	}
}

func TestConsSharesStructureRatherThanDeepCopying(t *testing.T) {
	interp := NewInterpreter()
	result, err := interp.Run(`
		(define inner (cons 1 2))
		(set-car! (car (cons inner inner)) 99)
		inner
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "(99 . 2)" {
		t.Fatalf("got %q, want %q: cons must alias its arguments, not deep-copy them", result, "(99 . 2)")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct{ source, want string }{
		{"(boolean? #t)", "#t"},
		{"(boolean? 1)", "#f"},
		{"(number? 1)", "#t"},
		{"(number? 'a)", "#f"},
		{"(symbol? 'a)", "#t"},
		{"(pair? (cons 1 2))", "#t"},
		{"(pair? '())", "#f"},
		{"(null? '())", "#t"},
		{"(null? (list 1))", "#f"},
		{"(list? (list 1 2))", "#t"},
		{"(list? (cons 1 2))", "#f"},
		{"(not #f)", "#t"},
		{"(not #t)", "#f"},
		{"(not 1)", "#f"},
	}
	for _, tt := range tests {
		runExpect(t, tt.source, tt.want)
	}
}

func TestIfBranching(t *testing.T) {
	runExpect(t, "(if (> 3 2) 'yes 'no)", "yes")
	runExpect(t, "(if (> 2 3) 'yes 'no)", "no")
	runExpect(t, "(if #f 1)", "()")
}

func TestFactorial(t *testing.T) {
	runExpect(t, `
		(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))
		(fact 5)
	`, "120")
}

func TestCarOfEmptyListErrors(t *testing.T) {
	interp := NewInterpreter()
	_, err := interp.Run("(car '())")
	if err == nil {
		t.Fatal("expected an error taking car of the empty list")
	}
}

func TestHelpListsBuiltinsAndDoesNotCrash(t *testing.T) {
	interp := NewInterpreter()
	if _, err := interp.Run("(help)"); err != nil {
		t.Fatalf("(help) failed: %v", err)
	}
	if _, err := interp.Run("(help 'car)"); err != nil {
		t.Fatalf("(help 'car) failed: %v", err)
	}
}
