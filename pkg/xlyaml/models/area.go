package models

// Area represents cell coordinate bounds restricting what is read from a sheet.
type Area struct {
	// R1 is the start row (1-based).
	R1 int
	// C1 is the start column (1-based).
	C1 int
	// R2 is the end row (1-based, inclusive).
	R2 int
	// C2 is the end column (1-based, inclusive).
	C2 int
}

// ContainsRow reports whether the 1-based row lies inside the area.
func (a Area) ContainsRow(r int) bool {
	return r >= a.R1 && r <= a.R2
}
