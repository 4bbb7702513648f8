package ranker

import (
	"context"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tasklens/tasklens-mcp/internal/queryparser"
	"github.com/tasklens/tasklens-mcp/internal/scorer"
	"github.com/tasklens/tasklens-mcp/pkg/types"
)

const (
	// batchSize is the number of tasks scored per worker goroutine
	batchSize = 64

	// parallelThreshold is the collection size below which scoring stays
	// sequential; goroutine overhead dominates for small lists
	parallelThreshold = 256
)

// Ranker runs the scorer over a task collection and orders the results
type Ranker struct {
	workers int
}

// New creates a Ranker sized to the available CPUs
func New() *Ranker {
	return &Ranker{workers: runtime.NumCPU()}
}

// Search scores every task against the query, drops non-matches, and
// returns results sorted by descending relevance. Equal scores keep their
// relative input order, so identical inputs always produce identical
// rankings. Ranks are assigned 1-based after sorting.
//
// The only error condition is context cancellation, observed between
// scoring batches; an individual batch is never interrupted.
func (r *Ranker) Search(ctx context.Context, tasks []types.Task, query types.SearchQuery) ([]types.SearchResult, error) {
	if query.IsEmpty() || len(tasks) == 0 {
		return []types.SearchResult{}, nil
	}

	// Capture "now" once so the recency boost is uniform across every
	// task, parallel or not.
	now := time.Now()

	// Scored slots are addressed by input index, so concurrent batches
	// never contend and cannot reorder anything.
	scored := make([]*types.SearchResult, len(tasks))

	if len(tasks) < parallelThreshold {
		scoreBatch(tasks, query, now, 0, len(tasks), scored)
	} else if err := r.scoreParallel(ctx, tasks, query, now, scored); err != nil {
		return nil, err
	}

	results := make([]types.SearchResult, 0, len(tasks))
	for _, res := range scored {
		if res != nil {
			results = append(results, *res)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	for i := range results {
		results[i].Rank = i + 1
	}

	return results, nil
}

// SearchString parses the raw query string and runs Search
func (r *Ranker) SearchString(ctx context.Context, tasks []types.Task, raw string) ([]types.SearchResult, error) {
	return r.Search(ctx, tasks, queryparser.Parse(raw))
}

// scoreParallel fans scoring batches out over an errgroup
func (r *Ranker) scoreParallel(ctx context.Context, tasks []types.Task, query types.SearchQuery, now time.Time, scored []*types.SearchResult) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for start := 0; start < len(tasks); start += batchSize {
		end := min(start+batchSize, len(tasks))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scoreBatch(tasks, query, now, start, end, scored)
			return nil
		})
	}

	return g.Wait()
}

func scoreBatch(tasks []types.Task, query types.SearchQuery, now time.Time, start, end int, scored []*types.SearchResult) {
	for i := start; i < end; i++ {
		if res, ok := scorer.Score(tasks[i], query, now); ok {
			scored[i] = &res
		}
	}
}
