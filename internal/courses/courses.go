// Package courses turns the exported course-calendar CSV into the listing
// text injected into the assistant's system instruction.
package courses

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// sourceLayout is the timestamp format used by the course export.
	sourceLayout = "2006-01-02 15:04:05"
	// displayLayout is the locale display format shown to the model.
	displayLayout = "02/01/2006 15:04"
)

// Columns names the CSV header fields to read. The export's header names have
// drifted between revisions, so they are configuration rather than constants.
type Columns struct {
	Title string
	Start string
	City  string
}

// DefaultColumns returns the header names of the current official export.
func DefaultColumns() Columns {
	return Columns{Title: "Title", Start: "Start Date", City: "City"}
}

// Loader reads the course CSV fresh on every call; the file lives on the
// read-only deployment bundle and is never cached.
type Loader struct {
	path string
	cols Columns
}

func NewLoader(path string, cols Columns) *Loader {
	if cols.Title == "" || cols.Start == "" || cols.City == "" {
		cols = DefaultColumns()
	}
	return &Loader{path: path, cols: cols}
}

// Listing returns one display line per course, joined with newlines.
// Rows missing a title or start value are skipped. A file that cannot be read
// degrades to a single diagnostic line so the chat request can still proceed
// with the rest of the context.
func (l *Loader) Listing() string {
	lines, err := l.load()
	if err != nil {
		return fmt.Sprintf("[Errore nel caricamento corsi: %v]", err)
	}
	return strings.Join(lines, "\n")
}

func (l *Loader) load() ([]string, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, err
	}

	titleIdx := columnIndex(header, l.cols.Title)
	startIdx := columnIndex(header, l.cols.Start)
	cityIdx := columnIndex(header, l.cols.City)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, record := range records {
		title := strings.TrimSpace(field(record, titleIdx))
		start := strings.TrimSpace(field(record, startIdx))
		city := strings.TrimSpace(field(record, cityIdx))

		if title == "" || start == "" {
			continue
		}

		lines = append(lines, fmt.Sprintf("- %s il %s a %s", title, formatStart(start), city))
	}

	return lines, nil
}

// formatStart reformats the export timestamp for display, passing the raw
// string through unchanged when it does not match the expected layout.
func formatStart(start string) string {
	t, err := time.Parse(sourceLayout, start)
	if err != nil {
		return start
	}
	return t.Format(displayLayout)
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
