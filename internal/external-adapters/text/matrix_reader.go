// Package text reads the plain-text input files and renders the console report.
package text

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ochairo/solcheck/internal/domain/entities"
)

// MatrixReader implements repositories.MatrixSource over a systems file.
//
// The file starts with "k n" followed by k augmented matrices written as
// whitespace-separated numbers, row-major, n+1 numbers per row. Line breaks
// carry no meaning.
type MatrixReader struct {
	words      *bufio.Scanner
	headerRead bool
}

// NewMatrixReader creates a reader over r
func NewMatrixReader(r io.Reader) *MatrixReader {
	words := bufio.NewScanner(r)
	words.Split(bufio.ScanWords)
	return &MatrixReader{words: words}
}

// Header reads the system count and dimension
func (m *MatrixReader) Header(_ context.Context) (k, n int, err error) {
	if m.headerRead {
		return 0, 0, fmt.Errorf("header already read")
	}

	k, err = m.nextInt("system count")
	if err != nil {
		return 0, 0, err
	}
	n, err = m.nextInt("dimension")
	if err != nil {
		return 0, 0, err
	}
	m.headerRead = true

	if k < 1 || n < 1 {
		return 0, 0, fmt.Errorf("%w: k=%d n=%d must both be positive", entities.ErrDimensionExceeded, k, n)
	}
	return k, n, nil
}

// NextMatrix reads n rows of n+1 numbers
func (m *MatrixReader) NextMatrix(ctx context.Context, n int) (entities.AugmentedMatrix, error) {
	if !m.headerRead {
		return nil, fmt.Errorf("matrix requested before header")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matrix := make(entities.AugmentedMatrix, n)
	for i := range matrix {
		row := make([]float64, n+1)
		for j := range row {
			word, err := m.next()
			if err != nil {
				return nil, fmt.Errorf("error reading matrix row %d column %d: %w", i+1, j+1, err)
			}
			value, err := strconv.ParseFloat(word, 64)
			if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
				return nil, fmt.Errorf("error reading matrix row %d column %d: %w: %q",
					i+1, j+1, entities.ErrInvalidNumber, word)
			}
			row[j] = value
		}
		matrix[i] = row
	}
	return matrix, nil
}

func (m *MatrixReader) nextInt(what string) (int, error) {
	word, err := m.next()
	if err != nil {
		return 0, fmt.Errorf("error reading %s: %w", what, err)
	}
	value, err := strconv.Atoi(word)
	if err != nil {
		return 0, fmt.Errorf("error reading %s: %w: %q", what, entities.ErrInvalidNumber, word)
	}
	return value, nil
}

func (m *MatrixReader) next() (string, error) {
	if m.words.Scan() {
		return m.words.Text(), nil
	}
	if err := m.words.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}
