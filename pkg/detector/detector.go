package detector

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/feedwatch/feedwatch/pkg/config"
	"github.com/feedwatch/feedwatch/pkg/domain"
)

// Detector classifies content for emergencies and market movements. It is
// state-free: all methods are pure functions over their inputs and the
// configured vocabularies, safe to call from any goroutine. Malformed input
// never produces an error, only neutral scores.
type Detector struct {
	cfg    config.DetectionConfig
	groups []vocabGroup
}

// vocabGroup ties a vocabulary to its emergency category.
// Order determines category assignment priority.
type vocabGroup struct {
	category domain.EmergencyCategory
	terms    []string
}

// New creates a detector with the given vocabularies and thresholds
func New(cfg config.DetectionConfig) *Detector {
	return &Detector{
		cfg: cfg,
		groups: []vocabGroup{
			{domain.CategoryMonetaryPolicy, lowerAll(cfg.MonetaryPolicyTerms)},
			{domain.CategoryEconomicData, lowerAll(cfg.EconomicDataTerms)},
			{domain.CategoryMarketCrisis, lowerAll(cfg.MarketCrisisTerms)},
			{domain.CategoryGeopolitical, lowerAll(cfg.GeopoliticalTerms)},
			{domain.CategoryTechnical, lowerAll(cfg.TechnicalTerms)},
		},
	}
}

// ClassifyEmergency screens a piece of content for emergency signals.
// The composite score blends keyword density (40%), time-pressure cues (30%)
// and scale/impact vocabulary (30%). Content is an emergency at or above the
// configured threshold (default 0.6); urgency buckets at the low/emergency/
// high/critical thresholds. A composite in the band between the emergency and
// high thresholds intentionally yields an emergency with medium urgency.
func (d *Detector) ClassifyEmergency(content string) domain.EmergencyClassification {
	if strings.TrimSpace(content) == "" {
		return domain.EmergencyClassification{UrgencyLevel: domain.UrgencyLow, Category: domain.CategoryGeneral}
	}

	lower := strings.ToLower(content)
	tokens := tokenize(lower)

	var triggers []string
	category := domain.CategoryGeneral
	for _, g := range d.groups {
		for _, term := range g.terms {
			if matchTerm(lower, tokens, term) {
				triggers = append(triggers, term)
				if category == domain.CategoryGeneral {
					category = g.category
				}
			}
		}
	}

	keywordScore := 0.1 * float64(len(triggers))
	if keywordScore > 0.4 {
		keywordScore = 0.4
	}

	urgency := d.urgencyScore(content, lower, tokens)
	impact := d.impactScore(lower, tokens)

	score := keywordScore + 0.3*urgency + 0.3*impact
	if score > 1 {
		score = 1
	}

	level := domain.UrgencyLow
	switch {
	case score >= d.cfg.CriticalThreshold:
		level = domain.UrgencyCritical
	case score >= d.cfg.HighThreshold:
		level = domain.UrgencyHigh
	case score >= d.cfg.EmergencyThreshold:
		level = domain.UrgencyMedium
	}

	return domain.EmergencyClassification{
		IsEmergency:     score >= d.cfg.EmergencyThreshold,
		UrgencyLevel:    level,
		Category:        category,
		Confidence:      score,
		Triggers:        triggers,
		EstimatedImpact: score * 100,
	}
}

// ScreenItems classifies a batch of feed items and returns the emergencies
// found, most urgent first
func (d *Detector) ScreenItems(items []domain.FeedItem) []domain.EmergencyInformation {
	var found []domain.EmergencyInformation
	for _, item := range items {
		content := item.Title + " " + item.Description
		cl := d.ClassifyEmergency(content)
		if !cl.IsEmergency {
			continue
		}
		lower := strings.ToLower(content)
		found = append(found, domain.EmergencyInformation{
			Classification: cl,
			Content:        content,
			Title:          item.Title,
			Link:           item.Link,
			SourceID:       item.SourceID,
			DetectedAt:     time.Now(),
			Instruments:    d.extractInstruments(lower, tokenize(lower)),
		})
	}
	sortEmergencies(found)
	return found
}

// urgencyScore measures time pressure: urgent words, exclamation density
// (capped at 0.3) and a shouting bonus when over 30% of letters are uppercase
func (d *Detector) urgencyScore(content, lower string, tokens tokenSet) float64 {
	score := 0.0
	for _, w := range d.cfg.UrgencyWords {
		if matchTerm(lower, tokens, strings.ToLower(w)) {
			score += 0.3
		}
	}

	words := strings.Fields(content)
	if len(words) > 0 {
		density := float64(strings.Count(content, "!")) / float64(len(words))
		if density > 0.3 {
			density = 0.3
		}
		score += density
	}

	var letters, upper int
	for _, r := range content {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters > 0 && float64(upper)/float64(letters) > 0.3 {
		score += 0.2
	}

	if score > 1 {
		score = 1
	}
	return score
}

// impactScore measures scale vocabulary, each matched term contributing to a
// capped total
func (d *Detector) impactScore(lower string, tokens tokenSet) float64 {
	score := 0.0
	for _, w := range d.cfg.ImpactWords {
		if matchTerm(lower, tokens, strings.ToLower(w)) {
			score += 0.3
		}
	}
	if score > 1 {
		score = 1
	}
	return score
}

// extractInstruments returns up to 5 affected instrument tags
func (d *Detector) extractInstruments(lower string, tokens tokenSet) []string {
	var tags []string
	for _, inst := range d.cfg.Instruments {
		if matchTerm(lower, tokens, strings.ToLower(inst)) {
			tags = append(tags, inst)
			if len(tags) == 5 {
				break
			}
		}
	}
	return tags
}

// tokenSet holds the whole-word tokens of a lowered text
type tokenSet map[string]struct{}

func tokenize(lower string) tokenSet {
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make(tokenSet, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}

func (ts tokenSet) has(w string) bool {
	_, ok := ts[w]
	return ok
}

// matchTerm reports whether a lowered term occurs in the text. Single-word
// terms must match a whole token, so "war" does not fire on "award". Phrases
// and punctuated symbols like "usd/jpy" match as substrings.
func matchTerm(lower string, tokens tokenSet, term string) bool {
	if isWord(term) {
		return tokens.has(term)
	}
	return strings.Contains(lower, term)
}

func isWord(term string) bool {
	if term == "" {
		return false
	}
	for _, r := range term {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func lowerAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(t)
	}
	return out
}

// sortEmergencies orders by confidence desc, ties broken by detection time desc
func sortEmergencies(infos []domain.EmergencyInformation) {
	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].Classification.Confidence != infos[j].Classification.Confidence {
			return infos[i].Classification.Confidence > infos[j].Classification.Confidence
		}
		return infos[i].DetectedAt.After(infos[j].DetectedAt)
	})
}
