package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ssctools/ssctrack/internal/domain"
)

// Persisted payload shape. completedAt travels as epoch milliseconds (or
// null), examDate as an ISO-8601 string (or null); both survive round-trips
// exactly.

type chapterPayload struct {
	ID          string `json:"id"`
	SubjectID   string `json:"subjectId"`
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	CompletedAt *int64 `json:"completedAt"`
}

type statePayload struct {
	Chapters []chapterPayload `json:"chapters"`
	ExamDate *string          `json:"examDate"`
}

func encodeState(chapters []domain.Chapter, examDate string) ([]byte, error) {
	p := statePayload{Chapters: make([]chapterPayload, 0, len(chapters))}
	for _, c := range chapters {
		cp := chapterPayload{
			ID:        c.ID,
			SubjectID: c.SubjectID,
			Number:    c.Number,
			Title:     c.Title,
			Status:    string(c.Status),
		}
		if c.CompletedAt != nil {
			ms := c.CompletedAt.UnixMilli()
			cp.CompletedAt = &ms
		}
		p.Chapters = append(p.Chapters, cp)
	}
	if examDate != "" {
		p.ExamDate = &examDate
	}
	out, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding tracker state: %w", err)
	}
	return out, nil
}

func decodeState(data []byte) ([]domain.Chapter, string, error) {
	var p statePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, "", fmt.Errorf("decoding tracker state: %w", err)
	}

	chapters := make([]domain.Chapter, 0, len(p.Chapters))
	for _, cp := range p.Chapters {
		status := domain.ChapterStatus(cp.Status)
		if !status.Valid() {
			return nil, "", fmt.Errorf("decoding tracker state: chapter %q has unknown status %q", cp.ID, cp.Status)
		}
		c := domain.Chapter{
			ID:        cp.ID,
			SubjectID: cp.SubjectID,
			Number:    cp.Number,
			Title:     cp.Title,
			Status:    status,
		}
		if cp.CompletedAt != nil {
			t := time.UnixMilli(*cp.CompletedAt).UTC()
			c.CompletedAt = &t
		}
		chapters = append(chapters, c)
	}

	examDate := ""
	if p.ExamDate != nil {
		examDate = *p.ExamDate
	}
	return chapters, examDate, nil
}
