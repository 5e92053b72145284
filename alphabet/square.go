package alphabet

// Coord addresses one cell of a Square (zero-based row and column).
type Coord struct {
	Row, Col int
}

// Square is a Polybius square: a size×size grid over an alphabet with
// an O(1) symbol→cell index built at construction. The grid is owned
// by the Square and never mutated; Transpose returns a fresh Square.
type Square struct {
	size  int
	cells [][]rune
	pos   map[rune]Coord
}

// NewSquare lays an alphabet row-major into a square grid.
//
// The alphabet's rune count must be a perfect square (25 for the
// I/J-merged letter square, 36 for letters+digits); anything else
// returns ErrNotSquare. Duplicate symbols return ErrNotBijective.
//
// Complexity: O(n) time and space.
func NewSquare(alpha string) (*Square, error) {
	runes := []rune(alpha)
	size := intSqrt(len(runes))
	if size == 0 || size*size != len(runes) {
		return nil, ErrNotSquare
	}

	s := &Square{
		size:  size,
		cells: make([][]rune, size),
		pos:   make(map[rune]Coord, len(runes)),
	}
	for row := 0; row < size; row++ {
		s.cells[row] = make([]rune, size)
		for col := 0; col < size; col++ {
			r := runes[row*size+col]
			if _, dup := s.pos[r]; dup {
				return nil, ErrNotBijective
			}
			s.cells[row][col] = r
			s.pos[r] = Coord{Row: row, Col: col}
		}
	}

	return s, nil
}

// Size reports the side length of the square (5 or 6).
func (s *Square) Size() int { return s.size }

// At returns the symbol stored at (row, col). Out-of-range coordinates
// return false.
func (s *Square) At(row, col int) (rune, bool) {
	if row < 0 || row >= s.size || col < 0 || col >= s.size {
		return 0, false
	}

	return s.cells[row][col], true
}

// Position locates a symbol's cell. On 5×5 squares a J not present in
// the alphabet resolves to I's cell, implementing the I/J merge.
func (s *Square) Position(r rune) (Coord, bool) {
	c, ok := s.pos[r]
	if !ok && r == 'J' {
		c, ok = s.pos['I']
	}

	return c, ok
}

// Transpose exchanges rows and columns of a rectangular rune grid.
// The input is never mutated; a jagged grid returns ErrNonRectangular.
//
// Complexity: O(rows·cols) time and space.
func Transpose(grid [][]rune) ([][]rune, error) {
	if len(grid) == 0 {
		return nil, nil
	}
	cols := len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	out := make([][]rune, cols)
	for c := 0; c < cols; c++ {
		out[c] = make([]rune, len(grid))
		for r := range grid {
			out[c][r] = grid[r][c]
		}
	}

	return out, nil
}

// Transpose returns a new Square with rows and columns exchanged.
// Used by Bazeries to derive its substitution alphabet.
//
// Complexity: O(n) time and space.
func (s *Square) Transpose() *Square {
	cells, _ := Transpose(s.cells) // a Square's grid is always rectangular

	runes := make([]rune, 0, s.size*s.size)
	for _, row := range cells {
		runes = append(runes, row...)
	}
	t, _ := NewSquare(string(runes)) // same symbol set: cannot fail

	return t
}

// String returns the square's alphabet read row-major.
func (s *Square) String() string {
	runes := make([]rune, 0, s.size*s.size)
	for _, row := range s.cells {
		runes = append(runes, row...)
	}

	return string(runes)
}

// intSqrt returns the integer square root of n, or 0 for n ≤ 0.
func intSqrt(n int) int {
	for r := 1; r*r <= n; r++ {
		if r*r == n {
			return r
		}
	}

	return 0
}
