package detector_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

func TestDetector_GenerateAlerts(t *testing.T) {
	det := newTestDetector()
	now := time.Now()

	detections := []domain.EmergencyInformation{
		{Title: "mild", Classification: domain.EmergencyClassification{Confidence: 0.3, Category: domain.CategoryGeneral}, DetectedAt: now},
		{Title: "worrying", Classification: domain.EmergencyClassification{Confidence: 0.55, Category: domain.CategoryEconomicData}, DetectedAt: now},
		{Title: "serious", Classification: domain.EmergencyClassification{Confidence: 0.72, Category: domain.CategoryMarketCrisis}, DetectedAt: now},
		{Title: "dire", Classification: domain.EmergencyClassification{Confidence: 0.95, Category: domain.CategoryMonetaryPolicy}, DetectedAt: now},
	}

	alerts := det.GenerateAlerts(detections)
	require.Len(t, alerts, 4)

	assert.Equal(t, domain.AlertCritical, alerts[0].Severity)
	assert.Equal(t, domain.AlertError, alerts[1].Severity)
	assert.Equal(t, domain.AlertWarning, alerts[2].Severity)
	assert.Equal(t, domain.AlertInfo, alerts[3].Severity)

	assert.True(t, alerts[0].ActionRequired)
	assert.True(t, alerts[1].ActionRequired)
	assert.False(t, alerts[2].ActionRequired)
	assert.False(t, alerts[3].ActionRequired)

	assert.Contains(t, alerts[0].Message, "monetary_policy")
	assert.Contains(t, alerts[0].Message, "dire")
}

func TestDetector_GenerateAlerts_Empty(t *testing.T) {
	det := newTestDetector()
	assert.Empty(t, det.GenerateAlerts(nil))
}
