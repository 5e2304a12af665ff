package fetcher

import (
	"sort"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

// DistributeLoad partitions a source list into batches sized for balanced
// resource usage. Sources are dealt round-robin in descending priority order
// so each batch carries a similar mix of heavy and light sources. A zero or
// negative batch size defaults to the processor's concurrency ceiling.
func (p *Processor) DistributeLoad(sources []domain.Source, batchSize int) [][]domain.Source {
	if len(sources) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = p.MaxConcurrent()
	}

	ordered := make([]domain.Source, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Priority > ordered[j].Priority })

	numBatches := (len(ordered) + batchSize - 1) / batchSize
	batches := make([][]domain.Source, numBatches)
	for i, src := range ordered {
		b := i % numBatches
		batches[b] = append(batches[b], src)
	}
	return batches
}
