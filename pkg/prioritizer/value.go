package prioritizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

// information value component weights, summing to 1
const (
	weightTimeliness    = 0.25
	weightRelevance     = 0.30
	weightUniqueness    = 0.15
	weightActionability = 0.20
	weightCredibility   = 0.10
)

// ItemValue is the computed information value of a single item
type ItemValue struct {
	Score       float64 // 0-100
	Explanation string
}

// InformationValue scores a single item independently of source priority:
// a weighted sum of timeliness (linear decay to zero over 60 minutes),
// topical relevance (capped keyword density), uniqueness (distinct-word ratio
// of the title), actionability (action-oriented vocabulary) and stored source
// credibility. Malformed items degrade to low component scores, never errors.
func (p *Prioritizer) InformationValue(item domain.FeedItem, now time.Time) ItemValue {
	timeliness := timelinessScore(item.Published, now)
	relevance := p.keywordDensity(item)
	uniqueness := uniquenessScore(item.Title)
	actionability := p.actionabilityScore(item)
	credibility := p.Weight(item.SourceID).SourceReliability

	score := 100 * (weightTimeliness*timeliness +
		weightRelevance*relevance +
		weightUniqueness*uniqueness +
		weightActionability*actionability +
		weightCredibility*credibility)

	explanation := fmt.Sprintf(
		"timeliness %.2f, relevance %.2f, uniqueness %.2f, actionability %.2f, credibility %.2f",
		timeliness, relevance, uniqueness, actionability, credibility)

	return ItemValue{Score: clampFloat(score, 0, 100), Explanation: explanation}
}

// timelinessScore decays linearly from 1 to 0 over 60 minutes of age
func timelinessScore(published, now time.Time) float64 {
	if published.IsZero() || published.After(now) {
		return 0
	}
	age := now.Sub(published)
	if age >= time.Hour {
		return 0
	}
	return 1 - age.Minutes()/60
}

// keywordDensity measures domain vocabulary hits per word, capped at 1
func (p *Prioritizer) keywordDensity(item domain.FeedItem) float64 {
	text := strings.ToLower(item.Title + " " + item.Description)
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	matches := 0
	for _, kw := range p.cfg.Vocabulary {
		matches += strings.Count(text, strings.ToLower(kw))
	}

	density := 3 * float64(matches) / float64(len(words))
	return clampFloat(density, 0, 1)
}

// uniquenessScore is the distinct-word ratio of the title
func uniquenessScore(title string) float64 {
	words := strings.Fields(strings.ToLower(title))
	if len(words) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return float64(len(seen)) / float64(len(words))
}

// actionabilityScore checks for action-oriented vocabulary
func (p *Prioritizer) actionabilityScore(item domain.FeedItem) float64 {
	text := strings.ToLower(item.Title + " " + item.Description)
	score := 0.0
	for _, w := range p.cfg.ActionWords {
		if strings.Contains(text, strings.ToLower(w)) {
			score += 0.25
		}
	}
	return clampFloat(score, 0, 1)
}
