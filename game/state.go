package game

import "fmt"

// Seat identifies one of the two players.
type Seat int

const (
	Player1 Seat = iota + 1
	Player2
)

func (s Seat) Opponent() Seat {
	if s == Player1 {
		return Player2
	}
	return Player1
}

func (s Seat) String() string {
	return fmt.Sprintf("Player %d", int(s))
}

type Phase int

const (
	SelectPhase Phase = iota // active player hands a supply piece to the opponent
	PlacePhase               // active player places the piece handed to them
)

func (p Phase) String() string {
	if p == SelectPhase {
		return "select"
	}
	return "place"
}

type Status int

const (
	Ongoing Status = iota
	Win
	Draw
)

func (s Status) String() string {
	return [...]string{"ongoing", "win", "draw"}[s]
}

// Outcome is the result of a match. Winner and Line are only set for Win.
type Outcome struct {
	Status Status
	Winner Seat
	Line   WinningLine
}

func (o Outcome) String() string {
	switch o.Status {
	case Win:
		return fmt.Sprintf("%s wins on %s %v", o.Winner, o.Line.Kind, o.Line.Cells)
	case Draw:
		return "draw"
	}
	return "ongoing"
}
