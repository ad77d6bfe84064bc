package game

import (
	"fmt"
	"strings"
)

type Kind int

const (
	PlacementBoard Kind = iota // pieces are placed, never removed
	SupplyBoard                // starts full, pieces are only removed
)

// Position is a (row, col) coordinate on a board.
type Position struct {
	Row int
	Col int
}

type LineKind int

const (
	RowLine LineKind = iota
	ColumnLine
	DiagonalLine
	AntiDiagonalLine
	SquareBlock
)

func (k LineKind) String() string {
	return [...]string{"row", "column", "diagonal", "anti-diagonal", "square"}[k]
}

// WinningLine holds the cells of a line or 2x2 block whose pieces share an attribute.
type WinningLine struct {
	Kind  LineKind
	Cells []Position
}

// Board is a rows x cols grid of optional pieces.
type Board struct {
	kind    Kind
	rows    int
	cols    int
	cells   []Piece
	filled  []bool
	count   int
	last    Position
	hasLast bool
}

// NewPlacementBoard returns an empty board.
func NewPlacementBoard(rows, cols int) *Board {
	return newBoard(PlacementBoard, rows, cols)
}

// NewSupplyBoard returns a board holding all 16 pieces in index order, row by row.
func NewSupplyBoard(rows, cols int) (*Board, error) {
	if rows*cols != NumPieces {
		return nil, fmt.Errorf("supply board %dx%d must hold %d pieces: %w", rows, cols, NumPieces, ErrInvalidOperation)
	}
	b := newBoard(SupplyBoard, rows, cols)
	for i := range b.cells {
		b.cells[i] = Piece(i)
		b.filled[i] = true
	}
	b.count = NumPieces
	return b, nil
}

func newBoard(kind Kind, rows, cols int) *Board {
	return &Board{
		kind:   kind,
		rows:   rows,
		cols:   cols,
		cells:  make([]Piece, rows*cols),
		filled: make([]bool, rows*cols),
	}
}

func (b *Board) Kind() Kind { return b.kind }
func (b *Board) Rows() int  { return b.rows }
func (b *Board) Cols() int  { return b.cols }

// Count returns the number of pieces on the board.
func (b *Board) Count() int { return b.count }

// Index converts a position to its row-major cell index.
func (b *Board) Index(row, col int) int { return row*b.cols + col }

// PositionOf converts a row-major cell index back to a position.
func (b *Board) PositionOf(index int) Position {
	return Position{Row: index / b.cols, Col: index % b.cols}
}

func (b *Board) inside(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) checkBounds(row, col int) error {
	if !b.inside(row, col) {
		return fmt.Errorf("cell (%d, %d) outside %dx%d board: %w", row, col, b.rows, b.cols, ErrInvalidOperation)
	}
	return nil
}

// IsEmpty reports whether the cell holds no piece. Cells outside the board are not empty.
func (b *Board) IsEmpty(row, col int) bool {
	return b.inside(row, col) && !b.filled[b.Index(row, col)]
}

// At returns the piece at the cell, if any.
func (b *Board) At(row, col int) (Piece, bool) {
	if !b.inside(row, col) {
		return 0, false
	}
	i := b.Index(row, col)
	return b.cells[i], b.filled[i]
}

// Place puts a piece on an empty cell of a placement board and records it as the last placement.
func (b *Board) Place(p Piece, row, col int) error {
	if b.kind != PlacementBoard {
		return fmt.Errorf("place on supply board: %w", ErrInvalidOperation)
	}
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	i := b.Index(row, col)
	if b.filled[i] {
		return fmt.Errorf("place %s at (%d, %d): %w", p, row, col, ErrOccupiedCell)
	}
	b.cells[i] = p & attributeMask
	b.filled[i] = true
	b.count++
	b.last = Position{Row: row, Col: col}
	b.hasLast = true
	return nil
}

// Remove takes the piece out of a supply board cell.
func (b *Board) Remove(row, col int) (Piece, error) {
	if b.kind != SupplyBoard {
		return 0, fmt.Errorf("remove from placement board: %w", ErrInvalidOperation)
	}
	if err := b.checkBounds(row, col); err != nil {
		return 0, err
	}
	i := b.Index(row, col)
	if !b.filled[i] {
		return 0, fmt.Errorf("remove at (%d, %d): %w", row, col, ErrEmptyCell)
	}
	b.filled[i] = false
	b.count--
	return b.cells[i], nil
}

// Find returns the position of the piece, scanning row by row.
func (b *Board) Find(p Piece) (Position, bool) {
	for i, ok := range b.filled {
		if ok && b.cells[i] == p {
			return b.PositionOf(i), true
		}
	}
	return Position{}, false
}

func (b *Board) IsFull() bool { return b.count == len(b.cells) }

// LastPlaced returns the cell of the most recent placement.
func (b *Board) LastPlaced() (Position, bool) { return b.last, b.hasLast }

// Pieces returns the pieces on the board in row-major order.
func (b *Board) Pieces() []Piece {
	pieces := make([]Piece, 0, b.count)
	for i, ok := range b.filled {
		if ok {
			pieces = append(pieces, b.cells[i])
		}
	}
	return pieces
}

// EmptyCells returns the empty cells in row-major order.
func (b *Board) EmptyCells() []Position {
	cells := make([]Position, 0, len(b.cells)-b.count)
	for i, ok := range b.filled {
		if !ok {
			cells = append(cells, b.PositionOf(i))
		}
	}
	return cells
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = make([]Piece, len(b.cells))
	copy(c.cells, b.cells)
	c.filled = make([]bool, len(b.filled))
	copy(c.filled, b.filled)
	return &c
}

// Equal compares kind, dimensions and contents; the last placement is ignored.
func (b *Board) Equal(o *Board) bool {
	if b.kind != o.kind || b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for i := range b.cells {
		if b.filled[i] != o.filled[i] || (b.filled[i] && b.cells[i] != o.cells[i]) {
			return false
		}
	}
	return true
}

// CheckWin inspects only the lines through the last placed cell: its row, its
// column, the diagonals it lies on and, in square mode, the 2x2 blocks holding
// it. The position before the last placement must not already be winning.
func (b *Board) CheckWin(squareMode bool) (WinningLine, bool) {
	if !b.hasLast {
		return WinningLine{}, false
	}
	for _, line := range b.linesThrough(b.last, squareMode) {
		if b.wins(line.Cells) {
			return line, true
		}
	}
	return WinningLine{}, false
}

// CheckWinAll scans every line and block of the board. Use it for positions
// that were not built one placement at a time.
func (b *Board) CheckWinAll(squareMode bool) (WinningLine, bool) {
	for _, line := range b.allLines(squareMode) {
		if b.wins(line.Cells) {
			return line, true
		}
	}
	return WinningLine{}, false
}

func (b *Board) wins(cells []Position) bool {
	pieces := make([]Piece, 0, len(cells))
	for _, pos := range cells {
		p, ok := b.At(pos.Row, pos.Col)
		if !ok {
			return false
		}
		pieces = append(pieces, p)
	}
	return shareAttribute(pieces)
}

func (b *Board) rowLine(r int) WinningLine {
	line := WinningLine{Kind: RowLine, Cells: make([]Position, b.cols)}
	for c := 0; c < b.cols; c++ {
		line.Cells[c] = Position{Row: r, Col: c}
	}
	return line
}

func (b *Board) columnLine(c int) WinningLine {
	line := WinningLine{Kind: ColumnLine, Cells: make([]Position, b.rows)}
	for r := 0; r < b.rows; r++ {
		line.Cells[r] = Position{Row: r, Col: c}
	}
	return line
}

func (b *Board) diagonal(anti bool) WinningLine {
	line := WinningLine{Kind: DiagonalLine, Cells: make([]Position, b.rows)}
	if anti {
		line.Kind = AntiDiagonalLine
	}
	for i := 0; i < b.rows; i++ {
		col := i
		if anti {
			col = b.cols - 1 - i
		}
		line.Cells[i] = Position{Row: i, Col: col}
	}
	return line
}

func (b *Board) block(top, left int) WinningLine {
	return WinningLine{Kind: SquareBlock, Cells: []Position{
		{Row: top, Col: left}, {Row: top, Col: left + 1},
		{Row: top + 1, Col: left}, {Row: top + 1, Col: left + 1},
	}}
}

// linesThrough lists candidate lines in order rows, columns, diagonals, squares.
func (b *Board) linesThrough(pos Position, squareMode bool) []WinningLine {
	lines := []WinningLine{b.rowLine(pos.Row), b.columnLine(pos.Col)}
	if b.rows == b.cols {
		if pos.Row == pos.Col {
			lines = append(lines, b.diagonal(false))
		}
		if pos.Row+pos.Col == b.cols-1 {
			lines = append(lines, b.diagonal(true))
		}
	}
	if squareMode {
		for top := pos.Row - 1; top <= pos.Row; top++ {
			for left := pos.Col - 1; left <= pos.Col; left++ {
				if b.inside(top, left) && b.inside(top+1, left+1) {
					lines = append(lines, b.block(top, left))
				}
			}
		}
	}
	return lines
}

func (b *Board) allLines(squareMode bool) []WinningLine {
	var lines []WinningLine
	for r := 0; r < b.rows; r++ {
		lines = append(lines, b.rowLine(r))
	}
	for c := 0; c < b.cols; c++ {
		lines = append(lines, b.columnLine(c))
	}
	if b.rows == b.cols {
		lines = append(lines, b.diagonal(false), b.diagonal(true))
	}
	if squareMode {
		for top := 0; top+1 < b.rows; top++ {
			for left := 0; left+1 < b.cols; left++ {
				lines = append(lines, b.block(top, left))
			}
		}
	}
	return lines
}

func (b *Board) String() string {
	var s strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				s.WriteByte(' ')
			}
			if p, ok := b.At(r, c); ok {
				s.WriteString(p.String())
			} else {
				s.WriteString("----")
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}
