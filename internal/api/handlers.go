package api

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/terraincognita07/breathe/internal/store"
	"github.com/terraincognita07/breathe/internal/templates"
)

type Handler struct {
	entries   *store.Store
	codec     *secureCookieCodec
	templates map[string]*template.Template
}

type entryFormInput struct {
	Date          string `form:"date"`
	CoughSeverity string `form:"cough_severity"`
	CoughNotes    string `form:"cough_notes"`
	AsthmaTrouble string `form:"asthma_trouble"`
	AsthmaNotes   string `form:"asthma_notes"`
	Medication    string `form:"medication"`
	PeakFlow      string `form:"peak_flow"`
	Fever         string `form:"fever"`
	Exposures     string `form:"exposures"`
	TeacherNote   string `form:"teacher_note"`
}

func NewHandler(entryStore *store.Store, secret string) (*Handler, error) {
	codec, err := newSecureCookieCodec([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("init flash cookie codec: %w", err)
	}

	funcMap := template.FuncMap{
		"riskClass": func(label string) string {
			return "risk-" + strings.ToLower(strings.TrimSpace(label))
		},
	}

	pages := []string{"dashboard", "log"}
	parsedPages := make(map[string]*template.Template)
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFS(
			templates.Files,
			"base.html",
			page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		parsedPages[page] = parsed
	}

	return &Handler{
		entries:   entryStore,
		codec:     codec,
		templates: parsedPages,
	}, nil
}
