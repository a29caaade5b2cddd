// internal/report/format.go
package report

import (
	"strconv"
	"strings"
)

const (
	// ScoreDecimals is the precision of performance bar labels.
	ScoreDecimals = 3
	// FairnessDecimals is the precision of fairness bar labels.
	FairnessDecimals = 4
	// CalibrationDecimals is the precision of calibration-error (MACE) bar labels.
	CalibrationDecimals = 3
)

// FormatScore formats a performance score for a bar label.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', ScoreDecimals, 64)
}

// FairnessPrecision returns the label precision for a fairness metric.
// Calibration errors sit on a larger scale than the parity differences.
func FairnessPrecision(metric string) int {
	if strings.Contains(metric, "MACE") {
		return CalibrationDecimals
	}
	return FairnessDecimals
}

// FormatFairness formats a fairness value for a bar label.
func FormatFairness(metric string, v float64) string {
	return strconv.FormatFloat(v, 'f', FairnessPrecision(metric), 64)
}
