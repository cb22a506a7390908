// Package services implements the solution parsers and the numeric verifier.
//
// Everything here is pure: no I/O, no logging, no package state.
package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/ochairo/solcheck/internal/domain/entities"
)

// ParseVector parses exactly n whitespace-separated finite reals.
// A wrong token count is reported before any token is inspected.
func ParseVector(text string, n int) (entities.Vector, error) {
	return parseVectorAt(text, n, 0)
}

// ParseCheckVector parses the independent check vector line. One leading '['
// is tolerated and need not be closed; when it is present a single trailing
// ']' is dropped as well.
func ParseCheckVector(text string, n int) (entities.Vector, error) {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	if rest, ok := strings.CutPrefix(trimmed, "["); ok {
		offset := len(text) - len(rest)
		rest = strings.TrimRightFunc(rest, unicode.IsSpace)
		rest = strings.TrimSuffix(rest, "]")
		return parseVectorAt(rest, n, offset)
	}
	return ParseVector(text, n)
}

// parseVectorAt parses text that starts at byte offset base of the original line
func parseVectorAt(text string, n, base int) (entities.Vector, error) {
	fields := splitFields(text)
	if len(fields) != n {
		return nil, entities.NewParseError(entities.TokenCountMismatch, -1, "",
			fmt.Sprintf("expected %d numbers, got %d", n, len(fields)))
	}

	vec := make(entities.Vector, n)
	for i, f := range fields {
		value, ok := parseNumber(f.text)
		if !ok {
			return nil, entities.NewParseError(entities.InvalidNumber, base+f.pos, f.text,
				fmt.Sprintf("component %d is not a finite real number", i+1))
		}
		vec[i] = value
	}
	return vec, nil
}

// field is a token and its byte offset
type field struct {
	pos  int
	text string
}

// splitFields splits like strings.Fields and keeps each token's offset
func splitFields(text string) []field {
	var fields []field
	sc := newScanner(text)
	for {
		sc.skipSpace()
		if sc.eof() {
			return fields
		}
		start := sc.pos
		sc.skipWord()
		fields = append(fields, field{pos: start, text: text[start:sc.pos]})
	}
}

// parseNumber accepts any literal strconv understands as long as it is finite
func parseNumber(token string) (float64, bool) {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
