package output

import (
	"context"
	"encoding/json"
	"time"

	"github.com/warraqdev/warraq/internal/domain"
	"github.com/warraqdev/warraq/internal/layout"
)

// WordCounts breaks the manuscript word total down by section.
type WordCounts struct {
	Introduction int   `json:"introduction"`
	Chapters     []int `json:"chapters"`
	Conclusion   int   `json:"conclusion"`
	Total        int   `json:"total"`
}

// Report is the machine-readable record of one formatting run.
type Report struct {
	GeneratedAt time.Time  `json:"generated_at"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	Chapters    int        `json:"chapters"`
	Words       WordCounts `json:"words"`
	Artifacts   []Artifact `json:"artifacts"`
}

// BuildReport counts the manuscript and returns a report without artifacts;
// WriteReport fills those in from the writer's history.
func BuildReport(m *domain.Manuscript) *Report {
	words := WordCounts{
		Introduction: layout.WordCount(m.Introduction),
		Chapters:     make([]int, 0, m.ChapterCount()),
		Conclusion:   layout.WordCount(m.Conclusion),
	}
	for _, body := range m.Chapters {
		words.Chapters = append(words.Chapters, layout.WordCount(body))
	}
	words.Total = words.Introduction + words.Conclusion
	for _, n := range words.Chapters {
		words.Total += n
	}

	return &Report{
		GeneratedAt: time.Now().UTC(),
		Title:       m.Title,
		Author:      m.Author,
		Chapters:    m.ChapterCount(),
		Words:       words,
	}
}

// WriteReport attaches the artifacts written so far and stores the report as
// indented JSON at path. The report file itself is not recorded as an artifact.
func (w *Writer) WriteReport(ctx context.Context, path string, report *Report) error {
	report.Artifacts = w.Artifacts()

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return w.write(ctx, path, data)
}
