package player

import (
	"bufio"
	"fmt"
	"io"
	"quarto/game"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Human reads decisions from a text stream: a piece code ("TBCH") or index
// when selecting, "row col" when placing.
type Human struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

// NewHuman reads from in, which may be shared with other players so that
// buffered input is not lost between them.
func NewHuman(name string, in *bufio.Scanner, out io.Writer) *Human {
	return &Human{name: name, in: in, out: out}
}

func (h *Human) Select(state *game.GameState, ith int) game.Piece {
	fmt.Fprintf(h.out, "%s\n%s, available pieces:", state, h.name)
	for _, p := range state.AvailablePieces() {
		fmt.Fprintf(h.out, " %s(%d)", p, p.Index())
	}
	fmt.Fprint(h.out, "\npiece to hand over: ")

	line, err := h.readLine()
	if err != nil {
		log.Warn().Err(err).Msgf("%s: no selection read", h.name)
		return game.NoPiece
	}
	p, err := game.ParsePiece(line)
	if err != nil {
		fmt.Fprintf(h.out, "%v\n", err)
		return game.NoPiece
	}
	return p
}

func (h *Human) Place(state *game.GameState, piece game.Piece, ith int) (int, int) {
	fmt.Fprintf(h.out, "%s\n%s, place %s at \"row col\": ", state, h.name, piece)

	line, err := h.readLine()
	if err != nil {
		log.Warn().Err(err).Msgf("%s: no placement read", h.name)
		return -1, -1
	}
	row, col, err := parseCell(line)
	if err != nil {
		fmt.Fprintf(h.out, "%v\n", err)
		return -1, -1
	}
	return row, col
}

func (h *Human) readLine() (string, error) {
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return h.in.Text(), nil
}

func parseCell(s string) (int, int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected \"row col\", got %q", s)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad row %q: %w", fields[0], err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad column %q: %w", fields[1], err)
	}
	return row, col, nil
}
