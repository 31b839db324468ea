package domain

import (
	"fmt"
	"time"
)

// DefaultExamDate is the SSC Board Exam 2026 start date, applied whenever no
// exam date has been configured.
const DefaultExamDate = "2026-02-20T00:00:00.000Z"

var examDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseExamDate parses a configured exam date. Accepts full RFC 3339
// timestamps (the persisted form) and bare YYYY-MM-DD dates (the input form).
func ParseExamDate(s string) (time.Time, error) {
	for _, layout := range examDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid exam date %q: want RFC 3339 or YYYY-MM-DD", s)
}
