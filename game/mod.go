// Package game holds the Quarto rules: pieces, boards, and the select/place
// turn state machine.
package game

type StateHash uint64
