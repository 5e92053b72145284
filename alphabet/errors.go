package alphabet

import "errors"

var (
	// ErrLengthMismatch indicates the plain and cipher strings differ in length.
	ErrLengthMismatch = errors.New("alphabet: plain and cipher alphabets must have equal length")
	// ErrNotBijective indicates a duplicate symbol on either side of a mapping.
	ErrNotBijective = errors.New("alphabet: mapping is not a bijection")
	// ErrNotSquare indicates an alphabet whose length is not a perfect square.
	ErrNotSquare = errors.New("alphabet: alphabet length is not a perfect square")
	// ErrNonRectangular indicates a jagged grid given to Transpose.
	ErrNonRectangular = errors.New("alphabet: grid rows must have equal length")
	// ErrBadKeyword indicates a keyword containing symbols outside the target alphabet.
	ErrBadKeyword = errors.New("alphabet: keyword contains symbols outside the alphabet")
)
