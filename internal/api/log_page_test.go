package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/terraincognita07/breathe/internal/models"
)

func TestLogPageEmptyStore(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := getPage(t, app, "/log")
	if status != http.StatusOK {
		t.Fatalf("log status = %d, want 200", status)
	}
	if !strings.Contains(body, "No entries logged yet") {
		t.Fatal("expected empty-log hint")
	}
}

func TestLogPageSortsNewestFirst(t *testing.T) {
	app, entryStore := newTestApp(t)

	entries := []models.Entry{
		{Timestamp: "2026-08-23T08:00:00", Date: "2026-08-23", CoughSeverity: 1},
		{Timestamp: "2026-08-25T08:00:00", Date: "2026-08-25", CoughSeverity: 5},
	}
	if err := entryStore.Save(entries); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	status, body := getPage(t, app, "/log")
	if status != http.StatusOK {
		t.Fatalf("log status = %d, want 200", status)
	}

	newest := strings.Index(body, "2026-08-25")
	oldest := strings.Index(body, "2026-08-23")
	if newest == -1 || oldest == -1 {
		t.Fatal("expected both entry dates in the log page")
	}
	if newest > oldest {
		t.Fatal("log page lists oldest entry first, want newest first")
	}
}

func TestLogPageAnnotatesRisk(t *testing.T) {
	app, entryStore := newTestApp(t)

	entries := []models.Entry{
		{Timestamp: "2026-08-25T08:00:00", Date: "2026-08-25", CoughSeverity: 2, AsthmaTrouble: true},
	}
	if err := entryStore.Save(entries); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	status, body := getPage(t, app, "/log")
	if status != http.StatusOK {
		t.Fatalf("log status = %d, want 200", status)
	}
	// 2 + 2 = 4 lands on the Moderate boundary.
	if !strings.Contains(body, ">Moderate<") || !strings.Contains(body, "(4)") {
		t.Fatal("expected Moderate risk annotation with score 4")
	}
}
