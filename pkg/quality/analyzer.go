package quality

import (
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

// Analyzer scores fetched items for topical relevance and filters
// low-quality items before they reach prioritization and detection.
// Scoring never fails: malformed content degrades to a zero score
// with a reason attached.
type Analyzer struct {
	vocabulary []string
	floor      float64
	sanitizer  *bluemonday.Policy
}

// Rejection records why an item was dropped
type Rejection struct {
	Item   domain.FeedItem
	Score  float64
	Reason string
}

// BatchResult is the outcome of analyzing one collection result
type BatchResult struct {
	Accepted     []domain.FeedItem
	Rejected     []Rejection
	BatchQuality float64 // 0-1 aggregate over all items
}

// NewAnalyzer creates an analyzer with the given domain vocabulary and
// relevance floor. Items scoring below the floor are dropped.
func NewAnalyzer(vocabulary []string, floor float64) *Analyzer {
	vocab := make([]string, len(vocabulary))
	for i, w := range vocabulary {
		vocab[i] = strings.ToLower(w)
	}
	return &Analyzer{
		vocabulary: vocab,
		floor:      floor,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// Relevance scores a single item for topical relevance, 0-1.
// Title matches weigh double description matches.
func (a *Analyzer) Relevance(item domain.FeedItem) float64 {
	title := strings.ToLower(a.sanitizer.Sanitize(item.Title))
	desc := strings.ToLower(a.sanitizer.Sanitize(item.Description))

	score := 0.0
	for _, word := range a.vocabulary {
		if strings.Contains(title, word) {
			score += 0.2
		}
		if strings.Contains(desc, word) {
			score += 0.1
		}
	}
	if score > 1 {
		score = 1
	}
	return score
}

// Analyze scores every item of a collection result, fills in the result's
// quality metadata and returns the high-quality subset. The batch quality
// score is the mean relevance over all items, zero for an empty batch.
func (a *Analyzer) Analyze(result *domain.CollectionResult) BatchResult {
	out := BatchResult{}
	if len(result.Items) == 0 {
		result.Metadata.QualityScore = 0
		return out
	}

	total := 0.0
	for _, item := range result.Items {
		score := a.Relevance(item)
		total += score
		if score < a.floor {
			out.Rejected = append(out.Rejected, Rejection{
				Item:   item,
				Score:  score,
				Reason: fmt.Sprintf("relevance %.2f below floor %.2f", score, a.floor),
			})
			continue
		}
		out.Accepted = append(out.Accepted, item)
	}

	out.BatchQuality = total / float64(len(result.Items))
	result.Metadata.QualityScore = out.BatchQuality

	if len(out.Rejected) > 0 {
		lgr.Printf("[DEBUG] quality filter dropped %d of %d items from %s",
			len(out.Rejected), len(result.Items), result.SourceID)
	}
	return out
}
