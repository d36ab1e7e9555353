package services

import (
	"strconv"
	"strings"

	"github.com/terraincognita07/breathe/internal/models"
)

// Qualitative risk labels derived from the numeric score.
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
)

const (
	riskHighThreshold     = 8
	riskModerateThreshold = 4
	maxExposurePoints     = 3
)

// ComputeRisk maps one entry to a qualitative risk label and its numeric
// score. Non-numeric peak flow values contribute nothing rather than
// raising an error.
func ComputeRisk(entry models.Entry) (string, int) {
	score := entry.CoughSeverity
	if entry.AsthmaTrouble {
		score += 2
	}
	if entry.Fever {
		score += 3
	}
	if entry.Exposures != "" {
		points := len(strings.Split(entry.Exposures, ","))
		if points > maxExposurePoints {
			points = maxExposurePoints
		}
		score += points
	}
	if entry.PeakFlow != "" {
		if peakFlow, err := strconv.Atoi(entry.PeakFlow); err == nil {
			switch {
			case peakFlow < 250:
				score += 3
			case peakFlow < 325:
				score += 2
			}
		}
	}

	switch {
	case score >= riskHighThreshold:
		return RiskHigh, score
	case score >= riskModerateThreshold:
		return RiskModerate, score
	default:
		return RiskLow, score
	}
}
