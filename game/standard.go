package game

// NewStandardRules returns the usual 4x4 board with a 2x8 supply and line-only wins.
func NewStandardRules() Rules {
	return Rules{
		Rows:       4,
		Cols:       4,
		SupplyRows: 2,
		SupplyCols: 8,
	}
}

// WithSquareMode returns a copy of the rules with 2x2 block wins toggled.
func (r Rules) WithSquareMode(on bool) Rules {
	r.SquareMode = on
	return r
}
