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

func parseOne(t *testing.T, source string) Object {
	t.Helper()
	arena := newArena()
	p := NewParser(arena, source)
	obj, err := p.Read()
	if err != nil {
		t.Fatalf("parse %q: unexpected error: %v", source, err)
	}
	return obj
}

func TestParserReprRoundTrip(t *testing.T) {
	tests := []string{
		"42",
		"-7",
		"foo",
		"#t",
		"()",
		"(1 2 3)",
		"(1 . 2)",
		"(1 2 . 3)",
		"(a (b c) d)",
	}
	for _, src := range tests {
		obj := parseOne(t, src)
		if got := ReprOf(obj); got != src {
			t.Errorf("parse %q: Repr() = %q", src, got)
		}
	}
}

func TestParserQuoteSugar(t *testing.T) {
	obj := parseOne(t, "'x")
	if got, want := ReprOf(obj), "(quote x)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParserDottedPairErrors(t *testing.T) {
	tests := []string{
		"(. 1)",
		"(1 . 2 . 3)",
		"(1 .)",
		"(1 2",
	}
	for _, src := range tests {
		arena := newArena()
		p := NewParser(arena, src)
		if _, err := p.Read(); err == nil {
			t.Errorf("parse %q: expected a syntax error", src)
		}
	}
}

func TestParserReadAll(t *testing.T) {
	arena := newArena()
	p := NewParser(arena, "1 2 (+ 1 2)")
	exprs, err := p.ReadAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 3 {
		t.Fatalf("got %d expressions, want 3", len(exprs))
	}
	if ReprOf(exprs[2]) != "(+ 1 2)" {
		t.Errorf("third expression: got %q", ReprOf(exprs[2]))
	}
}
