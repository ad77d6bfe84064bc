package game

// Action is the kind of transition a move applies.
type Action int

const (
	SelectAction Action = iota
	PlaceAction
)

func (a Action) String() string {
	switch a {
	case SelectAction:
		return "selected"
	case PlaceAction:
		return "placed"
	}
	return "unknown"
}
