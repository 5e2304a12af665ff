package detector

import (
	"fmt"
	"sort"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

var alertRank = map[domain.AlertSeverity]int{
	domain.AlertInfo:     0,
	domain.AlertWarning:  1,
	domain.AlertError:    2,
	domain.AlertCritical: 3,
}

// GenerateAlerts maps each detection's confidence to an operator alert:
// 0.9+ critical, 0.7+ error, 0.5+ warning, otherwise info. Critical and
// error alerts require action. The list is sorted by severity desc then
// timestamp desc.
func (d *Detector) GenerateAlerts(detections []domain.EmergencyInformation) []domain.Alert {
	alerts := make([]domain.Alert, 0, len(detections))
	for _, det := range detections {
		conf := det.Classification.Confidence

		severity := domain.AlertInfo
		switch {
		case conf >= 0.9:
			severity = domain.AlertCritical
		case conf >= 0.7:
			severity = domain.AlertError
		case conf >= 0.5:
			severity = domain.AlertWarning
		}

		alerts = append(alerts, domain.Alert{
			Severity:       severity,
			Message:        fmt.Sprintf("%s: %s", det.Classification.Category, det.Title),
			Confidence:     conf,
			ActionRequired: severity == domain.AlertCritical || severity == domain.AlertError,
			Timestamp:      det.DetectedAt,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alertRank[alerts[i].Severity] != alertRank[alerts[j].Severity] {
			return alertRank[alerts[i].Severity] > alertRank[alerts[j].Severity]
		}
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})
	return alerts
}
