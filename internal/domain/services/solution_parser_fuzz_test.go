package services

import (
	"errors"
	"testing"

	"github.com/ochairo/solcheck/internal/domain/entities"
)

// FuzzParseSolutionLine checks that arbitrary input never panics and that every
// result is either a complete solution or a typed parse error.
//
// Run with: go test -fuzz=FuzzParseSolutionLine -fuzztime=30s
func FuzzParseSolutionLine(f *testing.F) {
	f.Add("1 2 3", 3)
	f.Add("[1 2] + a[1 0] + b[0 1]", 2)
	f.Add("[1 2 3]+a[1 0 0]+b[0 1 0]+c[0 0 1]", 3)
	f.Add("[1 2] + z[1 0]", 2)
	f.Add("[1 2] + a[1 0] + a[0 1]", 2)
	f.Add("[", 1)
	f.Add("+", 1)
	f.Add("", 4)
	f.Add("[1e308 -1e308] + c[", 2)

	f.Fuzz(func(t *testing.T, line string, n int) {
		if n < 1 || n > entities.DefaultMaxDimension {
			return
		}

		sol, err := ParseSolutionLine(line, n)
		if err != nil {
			if sol != nil {
				t.Fatalf("partial result returned with error %v", err)
			}
			var perr *entities.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not a *entities.ParseError", err)
			}
			return
		}

		if len(sol.Base) != n {
			t.Fatalf("base has %d entries, want %d", len(sol.Base), n)
		}
		if sol.IsParametric() {
			for slot, dir := range sol.Directions {
				if len(dir) != n {
					t.Fatalf("direction %d has %d entries, want %d", slot, len(dir), n)
				}
			}
		}
	})
}

// FuzzParseVector checks the vector parsers never panic and that an
// InvalidNumber offset always points at the offending token
func FuzzParseVector(f *testing.F) {
	f.Add("1 2 3")
	f.Add("[1 2 3")
	f.Add("NaN inf -0")
	f.Add("1e5 e5 e5")
	f.Add("1\u00a02\u3000x")
	f.Add("")

	f.Fuzz(func(t *testing.T, text string) {
		_, plainErr := ParseVector(text, 3)
		_, checkErr := ParseCheckVector(text, 3)

		for _, err := range []error{plainErr, checkErr} {
			var perr *entities.ParseError
			if !errors.As(err, &perr) || perr.Kind != entities.InvalidNumber {
				continue
			}
			end := perr.Pos + len(perr.Token)
			if perr.Pos < 0 || end > len(text) || text[perr.Pos:end] != perr.Token {
				t.Fatalf("offset %d does not point at %q in %q", perr.Pos, perr.Token, text)
			}
		}
	})
}
