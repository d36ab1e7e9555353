package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/breathe/internal/models"
)

const (
	timestampLayout = "2006-01-02T15:04:05"
	dateLayout      = "2006-01-02"
)

// EntryInput carries raw form values for one entry. Numeric fields stay
// strings here; coercion happens in BuildEntry.
type EntryInput struct {
	Date          string
	CoughSeverity string
	CoughNotes    string
	AsthmaTrouble bool
	AsthmaNotes   string
	Medication    string
	PeakFlow      string
	Fever         bool
	Exposures     string
	TeacherNote   string
}

// BuildEntry turns raw form input into an entry with explicit defaults:
// server-assigned UTC timestamp, date falling back to today, cough
// severity coerced to 0 when not an integer, free text trimmed.
func BuildEntry(input EntryInput, now time.Time) models.Entry {
	now = now.UTC()

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = now.Format(dateLayout)
	}

	severity, err := strconv.Atoi(strings.TrimSpace(input.CoughSeverity))
	if err != nil {
		severity = 0
	}

	return models.Entry{
		Timestamp:     now.Format(timestampLayout),
		Date:          date,
		CoughSeverity: severity,
		CoughNotes:    strings.TrimSpace(input.CoughNotes),
		AsthmaTrouble: input.AsthmaTrouble,
		AsthmaNotes:   strings.TrimSpace(input.AsthmaNotes),
		Medication:    strings.TrimSpace(input.Medication),
		PeakFlow:      strings.TrimSpace(input.PeakFlow),
		Fever:         input.Fever,
		Exposures:     strings.TrimSpace(input.Exposures),
		TeacherNote:   strings.TrimSpace(input.TeacherNote),
	}
}
