package detector

import (
	"sort"
	"strings"
	"time"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

// severityRank orders movement severities for sorting
var severityRank = map[domain.MovementSeverity]int{
	domain.SeverityMinor:    0,
	domain.SeverityModerate: 1,
	domain.SeverityMajor:    2,
	domain.SeverityCritical: 3,
}

// movementActions maps a movement type to its recommended response actions
var movementActions = map[domain.MovementType][]string{
	domain.MovementPriceSurge:     {"monitor price action", "check liquidity before entries"},
	domain.MovementVolumeSpike:    {"monitor volume profile", "verify against exchange data"},
	domain.MovementNewsImpact:     {"analyze news content", "cross-check with other sources"},
	domain.MovementSentimentShift: {"track sentiment indicators", "review open positions"},
}

// DetectMovements screens a batch of items for market movements. Results are
// sorted by severity desc then detection time desc.
func (d *Detector) DetectMovements(items []domain.FeedItem) []domain.MarketMovement {
	var movements []domain.MarketMovement
	now := time.Now()

	for _, item := range items {
		text := strings.ToLower(item.Title + " " + item.Description)
		tokens := tokenize(text)

		mType, ok := d.movementType(text, tokens)
		if !ok {
			continue
		}

		severity := d.assessSeverity(item, text, tokens, now)

		actions := append([]string{}, movementActions[mType]...)
		if severity == domain.SeverityCritical {
			actions = append(actions, "activate emergency protocol")
		}

		movements = append(movements, domain.MarketMovement{
			Type:            mType,
			Severity:        severity,
			Instruments:     d.extractInstruments(text, tokens),
			DetectedAt:      now,
			Recommendations: actions,
			SourceItem:      item,
		})
	}

	sort.SliceStable(movements, func(i, j int) bool {
		if severityRank[movements[i].Severity] != severityRank[movements[j].Severity] {
			return severityRank[movements[i].Severity] > severityRank[movements[j].Severity]
		}
		return movements[i].DetectedAt.After(movements[j].DetectedAt)
	})
	return movements
}

// movementType identifies a movement from surface vocabulary. Content that
// matches the emergency vocabularies without a more specific signal counts as
// a news impact.
func (d *Detector) movementType(text string, tokens tokenSet) (domain.MovementType, bool) {
	switch {
	case tokens.has("volume") && (tokens.has("increase") || tokens.has("spike")):
		return domain.MovementVolumeSpike, true
	case tokens.has("surge") || tokens.has("spike"):
		return domain.MovementPriceSurge, true
	case tokens.has("news") || tokens.has("announcement"):
		return domain.MovementNewsImpact, true
	case tokens.has("sentiment") || tokens.has("risk"):
		return domain.MovementSentimentShift, true
	}

	// emergency vocabulary without a specific movement signal is news-driven
	for _, g := range d.groups {
		for _, term := range g.terms {
			if matchTerm(text, tokens, term) {
				return domain.MovementNewsImpact, true
			}
		}
	}
	return "", false
}

// assessSeverity scores a movement additively: high-impact words +3,
// medium-impact +2, credible source +1, freshness +2 under 15 minutes or
// +1 under an hour
func (d *Detector) assessSeverity(item domain.FeedItem, text string, tokens tokenSet, now time.Time) domain.MovementSeverity {
	score := 0
	for _, w := range d.cfg.HighImpactWords {
		if matchTerm(text, tokens, strings.ToLower(w)) {
			score += 3
		}
	}
	for _, w := range d.cfg.MediumImpactWords {
		if matchTerm(text, tokens, strings.ToLower(w)) {
			score += 2
		}
	}

	source := strings.ToLower(item.SourceID + " " + item.Author)
	sourceTokens := tokenize(source)
	for _, s := range d.cfg.CredibleSources {
		if matchTerm(source, sourceTokens, strings.ToLower(s)) {
			score++
			break
		}
	}

	if !item.Published.IsZero() {
		age := now.Sub(item.Published)
		switch {
		case age < 15*time.Minute:
			score += 2
		case age < time.Hour:
			score++
		}
	}

	switch {
	case score >= 6:
		return domain.SeverityCritical
	case score >= 4:
		return domain.SeverityMajor
	case score >= 2:
		return domain.SeverityModerate
	default:
		return domain.SeverityMinor
	}
}
