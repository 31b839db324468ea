package domain

// Subject is a catalog entry. Color and Icon are presentation metadata
// carried through to the terminal renderer.
type Subject struct {
	ID            string
	Name          string
	TotalChapters int
	Color         string
	Icon          string
}
