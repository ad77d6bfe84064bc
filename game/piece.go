package game

import (
	"fmt"
	"strconv"
	"strings"
)

// NumPieces is the number of distinct pieces, one per attribute combination.
const NumPieces = 16

// Attribute bit masks inside a Piece. A piece's index is size<<3 | color<<2 | shape<<1 | hole.
const (
	SizeBit  Piece = 1 << 3
	ColorBit Piece = 1 << 2
	ShapeBit Piece = 1 << 1
	HoleBit  Piece = 1 << 0

	attributeMask Piece = SizeBit | ColorBit | ShapeBit | HoleBit
)

type Size int

const (
	Little Size = iota
	Tall
)

type Color int

const (
	Beige Color = iota
	Brown
)

type Shape int

const (
	Circle Shape = iota
	Square
)

type Hole int

const (
	WithoutHole Hole = iota
	WithHole
)

// Piece is one of the 16 Quarto pieces. Its value is its index in [0, 16).
type Piece uint8

// NoPiece matches no piece on any board. A player returns it to pass up an attempt.
const NoPiece Piece = 0xFF

// NewPiece builds the piece with the given attributes.
func NewPiece(size Size, color Color, shape Shape, hole Hole) Piece {
	return Piece(size)<<3 | Piece(color)<<2 | Piece(shape)<<1 | Piece(hole)
}

// PieceFromIndex returns the piece with the given index.
func PieceFromIndex(i int) (Piece, error) {
	if i < 0 || i >= NumPieces {
		return 0, fmt.Errorf("piece index %d out of range [0, %d): %w", i, NumPieces, ErrInvalidOperation)
	}
	return Piece(i), nil
}

// AllPieces returns every piece in index order.
func AllPieces() []Piece {
	pieces := make([]Piece, NumPieces)
	for i := range pieces {
		pieces[i] = Piece(i)
	}
	return pieces
}

func (p Piece) Index() int   { return int(p & attributeMask) }
func (p Piece) Size() Size   { return Size(p >> 3 & 1) }
func (p Piece) Color() Color { return Color(p >> 2 & 1) }
func (p Piece) Shape() Shape { return Shape(p >> 1 & 1) }
func (p Piece) Hole() Hole   { return Hole(p & 1) }

// String returns the four letter short code, e.g. "TBCH".
func (p Piece) String() string {
	var b strings.Builder
	b.WriteByte("ST"[p.Size()])
	b.WriteByte("BD"[p.Color()])
	b.WriteByte("CQ"[p.Shape()])
	b.WriteByte("NH"[p.Hole()])
	return b.String()
}

// Verbose returns the attribute names, e.g. "TALL, BEIGE, CIRCLE, WITH_HOLE".
func (p Piece) Verbose() string {
	return strings.Join([]string{
		[]string{"LITTLE", "TALL"}[p.Size()],
		[]string{"BEIGE", "BROWN"}[p.Color()],
		[]string{"CIRCLE", "SQUARE"}[p.Shape()],
		[]string{"WITHOUT_HOLE", "WITH_HOLE"}[p.Hole()],
	}, ", ")
}

// ParsePiece accepts either a short code ("SDQN") or a decimal index ("0".."15").
func ParsePiece(s string) (Piece, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if i, err := strconv.Atoi(s); err == nil {
		return PieceFromIndex(i)
	}
	if len(s) != 4 {
		return 0, fmt.Errorf("cannot parse piece %q: %w", s, ErrInvalidOperation)
	}
	var p Piece
	for i, choices := range []string{"ST", "BD", "CQ", "NH"} {
		bit := strings.IndexByte(choices, s[i])
		if bit < 0 {
			return 0, fmt.Errorf("cannot parse piece %q: bad letter %q: %w", s, s[i], ErrInvalidOperation)
		}
		p |= Piece(bit) << (3 - i)
	}
	return p, nil
}

// shareAttribute reports whether all pieces agree on at least one attribute.
func shareAttribute(pieces []Piece) bool {
	if len(pieces) == 0 {
		return false
	}
	ones, zeros := attributeMask, attributeMask
	for _, p := range pieces {
		ones &= p
		zeros &= ^p
	}
	return (ones|zeros)&attributeMask != 0
}
