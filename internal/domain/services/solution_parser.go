package services

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/ochairo/solcheck/internal/domain/entities"
)

// maxSegments is the base plus one segment per direction label
const maxSegments = 1 + entities.DirectionCount

// ParseSolutionLine parses a solution line into a GeneralSolution.
//
// A line whose first non-space character is not '[' is a plain vector of n
// numbers. Otherwise it is "[base] + a[..] + b[..] + c[..]" where every
// direction term is optional and labels map to slots by identity. Text after
// the fourth segment is ignored. On failure nothing but the error is returned.
func ParseSolutionLine(line string, n int) (*entities.GeneralSolution, error) {
	sc := newScanner(line)
	sc.skipSpace()
	if sc.peek() != '[' {
		vec, err := ParseVector(line, n)
		if err != nil {
			return nil, err
		}
		return &entities.GeneralSolution{Kind: entities.SolutionFixed, Base: vec}, nil
	}
	return parseParametric(sc, n)
}

func parseParametric(sc *scanner, n int) (*entities.GeneralSolution, error) {
	base, err := sc.bracket(n)
	if err != nil {
		return nil, err
	}

	var (
		directions [entities.DirectionCount]entities.Vector
		seen       [entities.DirectionCount]bool
		supplied   []entities.Label
	)

	for segment := 1; segment < maxSegments; segment++ {
		sc.skipSpace()
		if sc.eof() {
			break
		}
		if !sc.consume('+') {
			return nil, sc.errorf(entities.MalformedExpression, "expected '+' or end of line")
		}
		sc.skipSpace()

		label, slot, err := sc.label()
		if err != nil {
			return nil, err
		}
		if seen[slot] {
			return nil, entities.NewParseError(entities.MalformedExpression, sc.pos-1, label.String(),
				"direction label repeated")
		}

		dir, err := sc.bracket(n)
		if err != nil {
			return nil, err
		}
		seen[slot] = true
		directions[slot] = dir
		supplied = append(supplied, label)
	}

	for slot := range directions {
		if directions[slot] == nil {
			directions[slot] = make(entities.Vector, n)
		}
	}

	return &entities.GeneralSolution{
		Kind:       entities.SolutionParametric,
		Base:       base,
		Directions: directions,
		Supplied:   supplied,
	}, nil
}

// scanner is a byte cursor over one line
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// peek returns 0 at end of input
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) consume(c byte) bool {
	if s.peek() == c && !s.eof() {
		s.pos++
		return true
	}
	return false
}

// spaceWidth returns the byte width of the whitespace rune at the cursor, 0 if none
func (s *scanner) spaceWidth() int {
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	if unicode.IsSpace(r) {
		return size
	}
	return 0
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		w := s.spaceWidth()
		if w == 0 {
			return
		}
		s.pos += w
	}
}

// skipWord consumes bytes up to whitespace or end of input
func (s *scanner) skipWord() {
	for !s.eof() && s.spaceWidth() == 0 {
		s.pos++
	}
}

// token consumes bytes up to whitespace, ']' or end of input
func (s *scanner) token() string {
	start := s.pos
	for !s.eof() && s.src[s.pos] != ']' && s.spaceWidth() == 0 {
		s.pos++
	}
	return s.src[start:s.pos]
}

// label reads the single-letter label in front of a direction bracket
func (s *scanner) label() (entities.Label, int, error) {
	c := s.peek()
	switch {
	case c == '[':
		return 0, 0, s.errorf(entities.MalformedExpression, "direction term has no label")
	case !isLetter(c):
		return 0, 0, s.errorf(entities.MalformedExpression, "expected a direction label")
	}

	label := entities.Label(c)
	slot, ok := label.Slot()
	if !ok {
		return 0, 0, entities.NewParseError(entities.UnknownLabel, s.pos, label.String(),
			"direction labels are a, b and c")
	}
	s.pos++
	return label, slot, nil
}

// bracket reads "[ v1 ... vn ]"
func (s *scanner) bracket(n int) (entities.Vector, error) {
	s.skipSpace()
	if !s.consume('[') {
		return nil, s.errorf(entities.MalformedExpression, "expected '['")
	}

	vec := make(entities.Vector, n)
	for i := 0; i < n; i++ {
		s.skipSpace()
		if s.eof() || s.peek() == ']' {
			return nil, s.errorf(entities.MalformedExpression,
				fmt.Sprintf("bracket holds %d of %d numbers", i, n))
		}
		start := s.pos
		tok := s.token()
		value, ok := parseNumber(tok)
		if !ok {
			return nil, entities.NewParseError(entities.InvalidNumber, start, tok,
				"not a finite real number")
		}
		vec[i] = value
	}

	s.skipSpace()
	if !s.consume(']') {
		return nil, s.errorf(entities.MalformedExpression, fmt.Sprintf("expected ']' after %d numbers", n))
	}
	return vec, nil
}

func (s *scanner) errorf(kind entities.ParseErrorKind, msg string) *entities.ParseError {
	var tok string
	if !s.eof() {
		tok = string(s.src[s.pos])
	}
	return entities.NewParseError(kind, s.pos, tok, msg)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
