package game

import (
	"fmt"
	"hash/fnv"
)

// GameState owns the placement board, the supply board and the piece in hand.
// It changes only through Select and Place and is frozen once the outcome is
// decided.
type GameState struct {
	rules       Rules
	board       *Board
	supply      *Board
	selected    Piece
	hasSelected bool
	active      Seat
	phase       Phase
	outcome     Outcome
	record      bool
	history     []Entry
}

// NewGameState starts a match: Player 1 selects first.
func NewGameState(rules Rules) (*GameState, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	supply, err := NewSupplyBoard(rules.SupplyRows, rules.SupplyCols)
	if err != nil {
		return nil, err
	}
	return &GameState{
		rules:  rules,
		board:  NewPlacementBoard(rules.Rows, rules.Cols),
		supply: supply,
		active: Player1,
		phase:  SelectPhase,
		record: true,
	}, nil
}

// Resume builds a select-phase state for seat from an arbitrary placement
// board, e.g. one decoded from a move log. The supply holds every piece not on
// the board. The board was not reached one placement at a time, so it is
// scanned in full; a board that already has a winning line is rejected.
func Resume(board *Board, seat Seat, rules Rules) (*GameState, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if seat != Player1 && seat != Player2 {
		return nil, fmt.Errorf("resume for unknown seat %d: %w", int(seat), ErrInvalidOperation)
	}
	if board.Kind() != PlacementBoard || board.Rows() != rules.Rows || board.Cols() != rules.Cols {
		return nil, fmt.Errorf("resume from %dx%d board under %dx%d rules: %w", board.Rows(), board.Cols(), rules.Rows, rules.Cols, ErrInvalidOperation)
	}
	if line, won := board.CheckWinAll(rules.SquareMode); won {
		return nil, fmt.Errorf("resume from decided position (%s %v): %w", line.Kind, line.Cells, ErrInvalidOperation)
	}

	gs, err := NewGameState(rules)
	if err != nil {
		return nil, err
	}
	gs.board = board.Clone()
	gs.active = seat
	for _, p := range gs.board.Pieces() {
		pos, ok := gs.supply.Find(p)
		if !ok {
			return nil, fmt.Errorf("piece %s placed twice: %w", p, ErrInvalidOperation)
		}
		if _, err := gs.supply.Remove(pos.Row, pos.Col); err != nil {
			return nil, err
		}
	}
	if gs.board.IsFull() {
		gs.outcome = Outcome{Status: Draw}
	}
	return gs, nil
}

func (gs *GameState) Rules() Rules     { return gs.rules }
func (gs *GameState) Active() Seat     { return gs.active }
func (gs *GameState) Phase() Phase     { return gs.phase }
func (gs *GameState) Outcome() Outcome { return gs.outcome }
func (gs *GameState) IsOver() bool     { return gs.outcome.Status != Ongoing }
func (gs *GameState) SquareMode() bool { return gs.rules.SquareMode }

// Selected returns the piece handed over for placement, if any.
func (gs *GameState) Selected() (Piece, bool) {
	return gs.selected, gs.hasSelected
}

// Board returns the placement board. Callers must not mutate it.
func (gs *GameState) Board() *Board { return gs.board }

// Supply returns the supply board. Callers must not mutate it.
func (gs *GameState) Supply() *Board { return gs.supply }

// AvailablePieces lists the supply pieces in board order.
func (gs *GameState) AvailablePieces() []Piece { return gs.supply.Pieces() }

// EmptyCells lists the empty placement cells in row-major order.
func (gs *GameState) EmptyCells() []Position { return gs.board.EmptyCells() }

// History returns a copy of the move log.
func (gs *GameState) History() []Entry {
	h := make([]Entry, len(gs.history))
	copy(h, gs.history)
	return h
}

// LegalMoves lists the moves accepted in the current phase, none once the game is over.
func (gs *GameState) LegalMoves() []Move {
	if gs.IsOver() {
		return nil
	}
	var moves []Move
	if gs.phase == SelectPhase {
		for _, p := range gs.AvailablePieces() {
			moves = append(moves, SelectMove(p))
		}
		return moves
	}
	for _, pos := range gs.EmptyCells() {
		moves = append(moves, PlaceMove(pos.Row, pos.Col))
	}
	return moves
}

// Select hands a supply piece to the opponent.
func (gs *GameState) Select(p Piece) error {
	return gs.Apply(SelectMove(p))
}

// Place puts the piece in hand on the placement board.
func (gs *GameState) Place(row, col int) error {
	return gs.Apply(PlaceMove(row, col))
}

// Apply performs a move. A rejected move leaves the state unchanged.
func (gs *GameState) Apply(m Move) error {
	if gs.IsOver() {
		return fmt.Errorf("%s after game over: %w", m.Action, ErrIllegalPhase)
	}
	switch m.Action {
	case SelectAction:
		return gs.applySelect(m)
	case PlaceAction:
		return gs.applyPlace(m)
	}
	return fmt.Errorf("unknown action %d: %w", m.Action, ErrInvalidOperation)
}

func (gs *GameState) applySelect(m Move) error {
	if gs.phase != SelectPhase {
		return fmt.Errorf("select during %s phase: %w", gs.phase, ErrIllegalPhase)
	}
	pos, ok := gs.supply.Find(m.Piece)
	if !ok {
		return fmt.Errorf("select %s: %w", m.Piece, ErrPieceNotAvailable)
	}
	p, err := gs.supply.Remove(pos.Row, pos.Col)
	if err != nil {
		return err
	}
	gs.selected, gs.hasSelected = p, true
	gs.log(Entry{Action: SelectAction, Player: gs.active, Piece: p, Row: -1, Col: -1, Attempt: m.Attempt})

	gs.active = gs.active.Opponent()
	gs.phase = PlacePhase
	return nil
}

func (gs *GameState) applyPlace(m Move) error {
	if gs.phase != PlacePhase {
		return fmt.Errorf("place during %s phase: %w", gs.phase, ErrIllegalPhase)
	}
	if !gs.board.IsEmpty(m.Row, m.Col) {
		if _, ok := gs.board.At(m.Row, m.Col); ok {
			return fmt.Errorf("place at (%d, %d): %w", m.Row, m.Col, ErrOccupiedCell)
		}
		return fmt.Errorf("place at (%d, %d) outside board: %w", m.Row, m.Col, ErrInvalidOperation)
	}
	p := gs.selected
	if err := gs.board.Place(p, m.Row, m.Col); err != nil {
		return err
	}
	gs.selected, gs.hasSelected = 0, false
	if gs.record { // serializing is costly, skip it on search branches
		gs.log(Entry{Action: PlaceAction, Player: gs.active, Piece: p, Row: m.Row, Col: m.Col, Attempt: m.Attempt, Board: Serialize(gs.board)})
	}

	// The placer keeps the turn: only select hands it over.
	if line, won := gs.board.CheckWin(gs.rules.SquareMode); won {
		gs.outcome = Outcome{Status: Win, Winner: gs.active, Line: line}
	} else if gs.board.IsFull() {
		gs.outcome = Outcome{Status: Draw}
	} else {
		gs.phase = SelectPhase
	}
	return nil
}

func (gs *GameState) log(e Entry) {
	if gs.record {
		gs.history = append(gs.history, e)
	}
}

// Clone returns a fully independent copy, move log included.
func (gs *GameState) Clone() *GameState {
	c := gs.Branch()
	c.record = gs.record
	c.history = gs.History()
	return c
}

// Branch returns an independent copy for search: boards are deep copied, the
// move log is dropped and further moves are not logged.
func (gs *GameState) Branch() *GameState {
	c := *gs
	c.board = gs.board.Clone()
	c.supply = gs.supply.Clone()
	c.outcome.Line.Cells = append([]Position(nil), gs.outcome.Line.Cells...)
	c.record = false
	c.history = nil
	return &c
}

// Hash fingerprints the position: both boards, the piece in hand, the seat and the phase.
func (gs *GameState) Hash() StateHash {
	h := fnv.New64a()
	buf := make([]byte, 0, len(gs.board.cells)+len(gs.supply.cells)+4)
	for _, b := range []*Board{gs.board, gs.supply} {
		for i, ok := range b.filled {
			if ok {
				buf = append(buf, byte(b.cells[i]))
			} else {
				buf = append(buf, 0xFF)
			}
		}
	}
	held := byte(0xFF)
	if gs.hasSelected {
		held = byte(gs.selected)
	}
	buf = append(buf, held, byte(gs.active), byte(gs.phase), byte(gs.outcome.Status))
	h.Write(buf)
	return StateHash(h.Sum64())
}

func (gs *GameState) String() string {
	s := fmt.Sprintf("%s to %s", gs.active, gs.phase)
	if p, ok := gs.Selected(); ok {
		s += fmt.Sprintf(" %s", p)
	}
	if gs.IsOver() {
		s = gs.outcome.String()
	}
	return s + "\n" + gs.board.String()
}
