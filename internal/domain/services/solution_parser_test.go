package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ochairo/solcheck/internal/domain/entities"
)

func TestParseSolutionLine_Fixed(t *testing.T) {
	got, err := ParseSolutionLine("1 2 3", 3)
	if err != nil {
		t.Fatalf("ParseSolutionLine() error = %v", err)
	}

	if got.Kind != entities.SolutionFixed {
		t.Errorf("Kind = %v, want fixed", got.Kind)
	}
	if !reflect.DeepEqual(got.Base, entities.Vector{1, 2, 3}) {
		t.Errorf("Base = %v, want [1 2 3]", got.Base)
	}
	if got.IsParametric() {
		t.Error("IsParametric() should be false for a plain vector")
	}
}

func TestParseSolutionLine_Parametric(t *testing.T) {
	got, err := ParseSolutionLine("[1 2] + a[1 0] + b[0 1]", 2)
	if err != nil {
		t.Fatalf("ParseSolutionLine() error = %v", err)
	}

	if got.Kind != entities.SolutionParametric {
		t.Fatalf("Kind = %v, want parametric", got.Kind)
	}
	want := map[entities.Label]entities.Vector{
		entities.LabelA: {1, 0},
		entities.LabelB: {0, 1},
		entities.LabelC: {0, 0},
	}
	if !reflect.DeepEqual(got.Base, entities.Vector{1, 2}) {
		t.Errorf("Base = %v, want [1 2]", got.Base)
	}
	for label, vec := range want {
		if !reflect.DeepEqual(got.Direction(label), vec) {
			t.Errorf("Direction(%v) = %v, want %v", label, got.Direction(label), vec)
		}
	}
	if !reflect.DeepEqual(got.Supplied, []entities.Label{entities.LabelA, entities.LabelB}) {
		t.Errorf("Supplied = %v, want [a b]", got.Supplied)
	}
	if got.HasDirection(entities.LabelC) {
		t.Error("HasDirection(c) should be false when c was omitted")
	}
}

func TestParseSolutionLine_ParametricShapes(t *testing.T) {
	tests := []struct {
		name string
		line string
		n    int
		base entities.Vector
		dirs [entities.DirectionCount]entities.Vector
	}{
		{
			name: "base only",
			line: "[4 5 6]",
			n:    3,
			base: entities.Vector{4, 5, 6},
			dirs: [entities.DirectionCount]entities.Vector{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		},
		{
			name: "labels mapped by identity not order",
			line: "[0 0] + c[1 1] + a[2 2]",
			n:    2,
			base: entities.Vector{0, 0},
			dirs: [entities.DirectionCount]entities.Vector{{2, 2}, {0, 0}, {1, 1}},
		},
		{
			name: "generous whitespace",
			line: "  [ 1   -2 ]   +   b [ 0.5 3 ]  ",
			n:    2,
			base: entities.Vector{1, -2},
			dirs: [entities.DirectionCount]entities.Vector{{0, 0}, {0.5, 3}, {0, 0}},
		},
		{
			name: "no whitespace at all",
			line: "[1 2]+a[3 4]+b[5 6]+c[7 8]",
			n:    2,
			base: entities.Vector{1, 2},
			dirs: [entities.DirectionCount]entities.Vector{{3, 4}, {5, 6}, {7, 8}},
		},
		{
			name: "segments beyond the fourth are ignored",
			line: "[1] + a[2] + b[3] + c[4] + d[5] garbage",
			n:    1,
			base: entities.Vector{1},
			dirs: [entities.DirectionCount]entities.Vector{{2}, {3}, {4}},
		},
		{
			name: "signed numbers inside brackets",
			line: "[-1 +1] + a[-0 1e-3]",
			n:    2,
			base: entities.Vector{-1, 1},
			dirs: [entities.DirectionCount]entities.Vector{{0, 0.001}, {0, 0}, {0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSolutionLine(tt.line, tt.n)
			if err != nil {
				t.Fatalf("ParseSolutionLine() error = %v", err)
			}
			if !got.IsParametric() {
				t.Fatalf("Kind = %v, want parametric", got.Kind)
			}
			if !reflect.DeepEqual(got.Base, tt.base) {
				t.Errorf("Base = %v, want %v", got.Base, tt.base)
			}
			if !reflect.DeepEqual(got.Directions, tt.dirs) {
				t.Errorf("Directions = %v, want %v", got.Directions, tt.dirs)
			}
		})
	}
}

func TestParseSolutionLine_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		n       int
		wantErr error
	}{
		{name: "unknown label", line: "[1 2] + z[1 0]", n: 2, wantErr: entities.ErrUnknownLabel},
		{name: "uppercase label", line: "[1 2] + A[1 0]", n: 2, wantErr: entities.ErrUnknownLabel},
		{name: "repeated label", line: "[1 2] + a[1 0] + a[0 1]", n: 2, wantErr: entities.ErrMalformedExpression},
		{name: "label without bracket", line: "[1 2] + a", n: 2, wantErr: entities.ErrMalformedExpression},
		{name: "label followed by number", line: "[1 2] + a 1 0", n: 2, wantErr: entities.ErrMalformedExpression},
		{name: "unlabeled direction", line: "[1 2] + [1 0]", n: 2, wantErr: entities.ErrMalformedExpression},
		{name: "dangling plus", line: "[1 2] +", n: 2, wantErr: entities.ErrMalformedExpression},
		{name: "base too short", line: "[1]", n: 2, wantErr: entities.ErrMalformedExpression},
		{name: "base unclosed and short", line: "[1", n: 2, wantErr: entities.ErrMalformedExpression},
		{name: "base unclosed", line: "[1 2", n: 2, wantErr: entities.ErrMalformedExpression},
		{name: "base too long", line: "[1 2 3]", n: 2, wantErr: entities.ErrMalformedExpression},
		{name: "direction too short", line: "[1 2] + b[1]", n: 2, wantErr: entities.ErrMalformedExpression},
		{name: "junk after base", line: "[1 2] x", n: 2, wantErr: entities.ErrMalformedExpression},
		{name: "minus instead of plus", line: "[1 2] - a[1 0]", n: 2, wantErr: entities.ErrMalformedExpression},
		{name: "bad number in base", line: "[1 q]", n: 2, wantErr: entities.ErrInvalidNumber},
		{name: "bad number in direction", line: "[1 2] + a[1 0x]", n: 2, wantErr: entities.ErrInvalidNumber},
		{name: "plain vector short", line: "1 2", n: 3, wantErr: entities.ErrTokenCountMismatch},
		{name: "plain vector bad number", line: "1 2 x", n: 3, wantErr: entities.ErrInvalidNumber},
		{name: "empty line", line: "", n: 1, wantErr: entities.ErrTokenCountMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSolutionLine(tt.line, tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseSolutionLine(%q) error = %v, want %v", tt.line, err, tt.wantErr)
			}
			if got != nil {
				t.Errorf("ParseSolutionLine(%q) returned a partial result %+v", tt.line, got)
			}
		})
	}
}

func TestParseSolutionLine_ErrorPosition(t *testing.T) {
	_, err := ParseSolutionLine("[1 2] + z[1 0]", 2)

	var perr *entities.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T, want *entities.ParseError", err)
	}
	if perr.Pos != 8 {
		t.Errorf("Pos = %d, want 8", perr.Pos)
	}
	if perr.Token != "z" {
		t.Errorf("Token = %q, want %q", perr.Token, "z")
	}
}

func TestParseSolutionLine_UnicodeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind entities.SolutionKind
	}{
		{name: "plain with no-break space", line: "1\u00a02", kind: entities.SolutionFixed},
		{name: "bracket with no-break space", line: "[1\u00a02]", kind: entities.SolutionParametric},
		{name: "ideographic space around terms", line: "\u3000[1 2]\u3000+\u3000a[0\u20281]", kind: entities.SolutionParametric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSolutionLine(tt.line, 2)
			if err != nil {
				t.Fatalf("ParseSolutionLine(%q) error = %v", tt.line, err)
			}
			if got.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.kind)
			}
			if !reflect.DeepEqual(got.Base, entities.Vector{1, 2}) {
				t.Errorf("Base = %v, want [1 2]", got.Base)
			}
		})
	}
}

func TestParseSolutionLine_Idempotent(t *testing.T) {
	lines := []string{
		"1 2 3",
		"[1 2 3] + a[1 0 0] + c[0 0 1]",
		"[1 2 3] + q[1 0 0]",
	}

	for _, line := range lines {
		first, err1 := ParseSolutionLine(line, 3)
		second, err2 := ParseSolutionLine(line, 3)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("%q: results differ between calls: %+v vs %+v", line, first, second)
		}
		if (err1 == nil) != (err2 == nil) || (err1 != nil && err1.Error() != err2.Error()) {
			t.Errorf("%q: errors differ between calls: %v vs %v", line, err1, err2)
		}
	}
}

func TestParseSolutionLine_DirectionsAreIndependent(t *testing.T) {
	got, err := ParseSolutionLine("[1 1]", 2)
	if err != nil {
		t.Fatalf("ParseSolutionLine() error = %v", err)
	}

	got.Directions[0][0] = 9
	if got.Directions[1][0] != 0 || got.Directions[2][0] != 0 {
		t.Error("zero direction vectors must not share storage")
	}
}
