package game

import "fmt"

// Rules fixes board dimensions and the win mode for a match.
type Rules struct {
	Rows       int  `json:"rows"`
	Cols       int  `json:"cols"`
	SupplyRows int  `json:"supply_rows"`
	SupplyCols int  `json:"supply_cols"`
	SquareMode bool `json:"square_mode"` // 2x2 blocks also win
}

func (r Rules) Validate() error {
	if r.Rows < 1 || r.Cols < 1 {
		return fmt.Errorf("placement board %dx%d has an empty dimension: %w", r.Rows, r.Cols, ErrInvalidOperation)
	}
	if r.Rows*r.Cols > NumPieces {
		return fmt.Errorf("placement board %dx%d has more cells than pieces: %w", r.Rows, r.Cols, ErrInvalidOperation)
	}
	if r.SupplyRows < 1 || r.SupplyCols < 1 || r.SupplyRows*r.SupplyCols != NumPieces {
		return fmt.Errorf("supply board %dx%d must hold %d pieces: %w", r.SupplyRows, r.SupplyCols, NumPieces, ErrInvalidOperation)
	}
	return nil
}
