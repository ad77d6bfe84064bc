package game

// Move is one select or place decision. Attempt is the player's 0-based
// preference index that produced it and is only carried into the log.
type Move struct {
	Action  Action
	Piece   Piece // SelectAction only
	Row     int   // PlaceAction only
	Col     int   // PlaceAction only
	Attempt int
}

func SelectMove(p Piece) Move {
	return Move{Action: SelectAction, Piece: p}
}

func PlaceMove(row, col int) Move {
	return Move{Action: PlaceAction, Row: row, Col: col}
}
