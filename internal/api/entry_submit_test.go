package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func postEntryForm(t *testing.T, app *fiber.App, form url.Values) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/entry", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("entry request failed: %v", err)
	}
	return response
}

func TestAddEntryAppendsAndRedirects(t *testing.T) {
	app, entryStore := newTestApp(t)

	form := url.Values{
		"date":           {"2026-08-25"},
		"cough_severity": {"2"},
		"cough_notes":    {"  short bursts after recess  "},
		"asthma_trouble": {"on"},
		"asthma_notes":   {"used inhaler once"},
		"medication":     {"Controller inhaler AM/PM"},
		"peak_flow":      {" 300 "},
		"exposures":      {"Pollen, smoke"},
		"teacher_note":   {"keep inhaler accessible"},
	}
	response := postEntryForm(t, app, form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("entry status = %d, want 303", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/" {
		t.Fatalf("redirect location = %q, want /", location)
	}

	entries, err := entryStore.Load()
	if err != nil {
		t.Fatalf("load entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("store has %d entries, want 1", len(entries))
	}

	entry := entries[0]
	if entry.Date != "2026-08-25" {
		t.Errorf("Date = %q, want 2026-08-25", entry.Date)
	}
	if entry.CoughSeverity != 2 {
		t.Errorf("CoughSeverity = %d, want 2", entry.CoughSeverity)
	}
	if !entry.AsthmaTrouble {
		t.Error("AsthmaTrouble = false, want true for checked box")
	}
	if entry.Fever {
		t.Error("Fever = true, want false for unchecked box")
	}
	if entry.PeakFlow != "300" {
		t.Errorf("PeakFlow = %q, want trimmed %q", entry.PeakFlow, "300")
	}
	if entry.CoughNotes != "short bursts after recess" {
		t.Errorf("CoughNotes = %q, want trimmed", entry.CoughNotes)
	}
	if entry.Timestamp == "" {
		t.Error("Timestamp is empty, want server-assigned value")
	}
}

func TestAddEntrySetsRiskFlashCookie(t *testing.T) {
	app, _ := newTestApp(t)

	response := postEntryForm(t, app, url.Values{"cough_severity": {"0"}})
	defer response.Body.Close()

	flash := responseCookie(response.Cookies(), flashCookieName)
	if flash == nil || strings.TrimSpace(flash.Value) == "" {
		t.Fatal("expected non-empty flash cookie after entry submission")
	}
	if !strings.HasPrefix(flash.Value, secureCookieVersion+".") {
		t.Fatalf("flash cookie %q is not sealed with %q prefix", flash.Value, secureCookieVersion+".")
	}
}

func TestAddEntryAppendsAfterExistingEntries(t *testing.T) {
	app, entryStore := newTestApp(t)

	first := postEntryForm(t, app, url.Values{"date": {"2026-08-24"}, "cough_severity": {"1"}})
	first.Body.Close()
	second := postEntryForm(t, app, url.Values{"date": {"2026-08-25"}, "cough_severity": {"4"}})
	second.Body.Close()

	entries, err := entryStore.Load()
	if err != nil {
		t.Fatalf("load entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("store has %d entries, want 2", len(entries))
	}
	if entries[0].Date != "2026-08-24" || entries[1].Date != "2026-08-25" {
		t.Fatalf("entries out of append order: %q then %q", entries[0].Date, entries[1].Date)
	}
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
