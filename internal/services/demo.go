package services

import (
	"sort"
	"strconv"
	"time"

	"github.com/terraincognita07/breathe/internal/models"
)

// EntryStore is the slice of the store the demo seeder needs.
type EntryStore interface {
	Load() ([]models.Entry, error)
	Save(entries []models.Entry) error
}

// DemoEntries returns three fixed sample entries spanning today and the
// two prior days, sorted ascending by timestamp so the dashboard picks
// the mildest (today's) entry as latest.
func DemoEntries(now time.Time) []models.Entry {
	now = now.UTC()

	coughNotes := []string{
		"Clear daytime cough.",
		"Night cough with phlegm.",
		"Short bursts after recess.",
	}
	asthmaNotes := []string{
		"Breathing normal.",
		"Used rescue inhaler once.",
		"Chest tightness during PE.",
	}
	exposureOptions := []string{
		"Pollen",
		"Pollen, cold contact",
		"Smoke",
	}
	teacherNotes := []string{
		"Encourage hydration and monitor cough frequency.",
		"Allow indoor recess and keep inhaler accessible.",
		"Send to nurse if breathing is labored; skip running.",
	}

	samples := make([]models.Entry, 0, 3)
	for offset := 0; offset < 3; offset++ {
		day := now.AddDate(0, 0, -offset)
		severity := offset * 2
		if severity > 5 {
			severity = 5
		}
		samples = append(samples, models.Entry{
			Timestamp:     day.Format(timestampLayout),
			Date:          day.Format(dateLayout),
			CoughSeverity: severity,
			CoughNotes:    coughNotes[offset],
			AsthmaTrouble: offset != 0,
			AsthmaNotes:   asthmaNotes[offset],
			Medication:    "Controller inhaler AM/PM",
			PeakFlow:      strconv.Itoa(340 - offset*30),
			Fever:         offset == 2,
			Exposures:     exposureOptions[offset],
			TeacherNote:   teacherNotes[offset],
		})
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Timestamp < samples[j].Timestamp
	})
	return samples
}

// SeedDemoEntries fills an empty store with the demo samples. It refuses
// to touch a store that already has entries and reports whether seeding
// happened.
func SeedDemoEntries(entryStore EntryStore, now time.Time) (bool, error) {
	entries, err := entryStore.Load()
	if err != nil {
		return false, err
	}
	if len(entries) > 0 {
		return false, nil
	}
	if err := entryStore.Save(DemoEntries(now)); err != nil {
		return false, err
	}
	return true, nil
}
