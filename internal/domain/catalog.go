package domain

import "strconv"

// Catalog is the fixed set of subjects the tracker knows about. It is built
// once at startup and never mutated: no subject is added, removed, or
// resized at runtime.
type Catalog struct {
	subjects []Subject
	byID     map[string]Subject
}

func NewCatalog(subjects []Subject) *Catalog {
	c := &Catalog{
		subjects: make([]Subject, len(subjects)),
		byID:     make(map[string]Subject, len(subjects)),
	}
	copy(c.subjects, subjects)
	for _, s := range c.subjects {
		c.byID[s.ID] = s
	}
	return c
}

// DefaultCatalog returns the SSC board syllabus: nine subjects, 118 chapters.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Subject{
		{ID: "english", Name: "English", TotalChapters: 24, Color: "#00FFFF", Icon: "Languages"},
		{ID: "hindi", Name: "Hindi", TotalChapters: 22, Color: "#FF00FF", Icon: "Languages"},
		{ID: "marathi", Name: "Marathi", TotalChapters: 21, Color: "#FFFF00", Icon: "Languages"},
		{ID: "maths1", Name: "Maths 1", TotalChapters: 6, Color: "#FF4500", Icon: "Calculator"},
		{ID: "maths2", Name: "Maths 2", TotalChapters: 7, Color: "#7B68EE", Icon: "Calculator"},
		{ID: "science1", Name: "Science 1", TotalChapters: 10, Color: "#39FF14", Icon: "FlaskConical"},
		{ID: "science2", Name: "Science 2", TotalChapters: 10, Color: "#00FA9A", Icon: "FlaskConical"},
		{ID: "geography", Name: "Geography", TotalChapters: 9, Color: "#1E90FF", Icon: "Globe"},
		{ID: "history", Name: "History", TotalChapters: 9, Color: "#FF1493", Icon: "History"},
	})
}

// Subjects returns the catalog entries in definition order.
func (c *Catalog) Subjects() []Subject {
	out := make([]Subject, len(c.subjects))
	copy(out, c.subjects)
	return out
}

// Subject resolves a subject by id.
func (c *Catalog) Subject(id string) (Subject, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// TotalChapters is the chapter count summed across all subjects.
func (c *Catalog) TotalChapters() int {
	total := 0
	for _, s := range c.subjects {
		total += s.TotalChapters
	}
	return total
}

// GenerateChapters builds the full initial chapter set: for every subject,
// chapters 1..TotalChapters, all NOT_STARTED with no completion time.
func (c *Catalog) GenerateChapters() []Chapter {
	chapters := make([]Chapter, 0, c.TotalChapters())
	for _, s := range c.subjects {
		for n := 1; n <= s.TotalChapters; n++ {
			chapters = append(chapters, Chapter{
				ID:        ChapterID(s.ID, n),
				SubjectID: s.ID,
				Number:    n,
				Title:     "Chapter " + strconv.Itoa(n),
				Status:    StatusNotStarted,
			})
		}
	}
	return chapters
}
