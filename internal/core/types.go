package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cell addresses a single grid position.
type Cell struct {
	Row int
	Col int
}
