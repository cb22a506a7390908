// Package entities holds the plain data types shared by every layer.
package entities

// Vector is an ordered sequence of n reals
type Vector []float64

// Clone returns an independent copy of the vector
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// AugmentedMatrix is n rows of n+1 reals; the last column is the right-hand side
type AugmentedMatrix [][]float64

// Dimension returns the number of unknowns (rows)
func (m AugmentedMatrix) Dimension() int {
	return len(m)
}

// Label names a direction vector of a parametric solution
type Label byte

// Supported direction labels. Slot order is fixed by label identity.
const (
	LabelA Label = 'a'
	LabelB Label = 'b'
	LabelC Label = 'c'
)

// DirectionCount is the number of direction slots (a, b, c)
const DirectionCount = 3

// Labels lists direction labels in slot order
var Labels = [DirectionCount]Label{LabelA, LabelB, LabelC}

var labelSlots = map[Label]int{
	LabelA: 0,
	LabelB: 1,
	LabelC: 2,
}

// Slot returns the direction slot for a label and whether the label is known
func (l Label) Slot() (int, bool) {
	slot, ok := labelSlots[l]
	return slot, ok
}

func (l Label) String() string {
	return string(rune(l))
}

// SolutionKind tags the shape of a GeneralSolution
type SolutionKind int

const (
	// SolutionFixed is a single concrete vector
	SolutionFixed SolutionKind = iota
	// SolutionParametric is a base vector plus up to three scaled directions
	SolutionParametric
)

func (k SolutionKind) String() string {
	switch k {
	case SolutionFixed:
		return "fixed"
	case SolutionParametric:
		return "parametric"
	default:
		return "unknown"
	}
}

// GeneralSolution is either a fixed vector or an affine family
//
// For a fixed solution only Base is meaningful. For a parametric solution every
// entry of Directions has length n; slots whose label was not supplied hold the
// zero vector and are absent from Supplied.
type GeneralSolution struct {
	Kind       SolutionKind
	Base       Vector
	Directions [DirectionCount]Vector
	// Supplied lists the labels given in the text, in encounter order
	Supplied []Label
}

// IsParametric reports whether the solution describes a family
func (s *GeneralSolution) IsParametric() bool {
	return s.Kind == SolutionParametric
}

// Direction returns the direction vector for a label (zero vector when omitted)
func (s *GeneralSolution) Direction(l Label) Vector {
	slot, ok := l.Slot()
	if !ok {
		return nil
	}
	return s.Directions[slot]
}

// HasDirection reports whether the label was supplied in the text
func (s *GeneralSolution) HasDirection(l Label) bool {
	for _, got := range s.Supplied {
		if got == l {
			return true
		}
	}
	return false
}
