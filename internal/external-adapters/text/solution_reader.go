package text

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ochairo/solcheck/internal/domain/entities"
)

// SolutionReader implements repositories.SolutionSource over a solutions file.
// Each system takes the next two non-blank lines: the general solution and the
// check vector.
type SolutionReader struct {
	lines *bufio.Scanner
	line  int
}

// NewSolutionReader creates a reader over r
func NewSolutionReader(r io.Reader) *SolutionReader {
	return &SolutionReader{lines: bufio.NewScanner(r)}
}

// NextLines returns the next pair of solution lines
func (s *SolutionReader) NextLines(ctx context.Context) (solution, check string, err error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	solution, ok := s.nextNonBlank()
	if !ok {
		return "", "", s.missing("general solution")
	}
	check, ok = s.nextNonBlank()
	if !ok {
		return "", "", s.missing("check vector")
	}
	return solution, check, nil
}

// Line returns the number of lines consumed so far
func (s *SolutionReader) Line() int {
	return s.line
}

func (s *SolutionReader) nextNonBlank() (string, bool) {
	for s.lines.Scan() {
		s.line++
		text := strings.TrimRight(s.lines.Text(), "\r")
		if strings.TrimSpace(text) != "" {
			return text, true
		}
	}
	return "", false
}

func (s *SolutionReader) missing(what string) error {
	if err := s.lines.Err(); err != nil {
		return err
	}
	return entities.NewParseError(entities.MalformedExpression, -1, "",
		fmt.Sprintf("solutions file ended at line %d before the %s line", s.Line(), what))
}
