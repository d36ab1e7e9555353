package models

// Entry is one day's logged respiratory observation. JSON tags match the
// persisted log document field for field.
type Entry struct {
	Timestamp     string `json:"timestamp"`
	Date          string `json:"date"`
	CoughSeverity int    `json:"cough_severity"`
	CoughNotes    string `json:"cough_notes"`
	AsthmaTrouble bool   `json:"asthma_trouble"`
	AsthmaNotes   string `json:"asthma_notes"`
	Medication    string `json:"medication"`
	PeakFlow      string `json:"peak_flow"`
	Fever         bool   `json:"fever"`
	Exposures     string `json:"exposures"`
	TeacherNote   string `json:"teacher_note"`
}
