package game

// Entry is one applied transition in the move log.
type Entry struct {
	Action  Action
	Player  Seat
	Piece   Piece
	Row     int    // -1 for selections
	Col     int    // -1 for selections
	Attempt int
	Board   string // Serialize of the placement board after a placement, empty for selections
}

// PositionIndex returns row*cols+col for placements and -1 for selections.
func (e Entry) PositionIndex(cols int) int {
	if e.Action != PlaceAction {
		return -1
	}
	return e.Row*cols + e.Col
}
