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
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestInterpreterRunScenarios(t *testing.T) {
	scenarios := []struct {
		name   string
		source string
	}{
		{"arithmetic", "(+ 1 2 3)"},
		{"conditional", "(if (> 3 2) 'yes 'no)"},
		{"factorial", "(define (fact n) (if (= n 0) 1 (* n (fact (- n 1))))) (fact 6)"},
		{"set-car", "(define p (cons 1 2)) (set-car! p 99) p"},
		{"list-ref", "(list-ref (list 'a 'b 'c) 2)"},
		{"closures", `
			(define n 0)
			(define (bump) (set! n (+ n 1)) n)
			(bump) (bump) (bump)
		`},
		{"empty-program", ""},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			interp := NewInterpreter()
			result, err := interp.Run(sc.source)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", sc.name, err)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_result", sc.name), result)
		})
	}
}

func TestInterpreterRunReturnsSyntaxError(t *testing.T) {
	interp := NewInterpreter()
	_, err := interp.Run("(+ 1 2")
	if err == nil {
		t.Fatal("expected a syntax error for an unterminated list")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T, want *SyntaxError", err)
	}
}

func TestInterpreterIndependentSessions(t *testing.T) {
	a := NewInterpreter()
	b := NewInterpreter()

	if _, err := a.Run("(define shared 1)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Run("shared"); err == nil {
		t.Fatal("a fresh interpreter should not see another session's bindings")
	}
}

func TestInterpreterSessionIDsAreDistinct(t *testing.T) {
	a := NewInterpreter()
	b := NewInterpreter()
	if a.ID == b.ID {
		t.Fatal("two interpreters should not share a session id")
	}
}
