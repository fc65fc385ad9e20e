package schedule

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/markphelps/optional"
	"gonum.org/v1/gonum/stat/combin"
)

// cancelCheckStride is how many permutations a worker evaluates
// between context checks.
const cancelCheckStride = 1024

// Schedule is a best-schedule record: the ordering that won, its total
// waiting time, and the resulting timeline.
type Schedule struct {
	Order        []Job
	TotalWaiting int
	Timeline     []Execution
}

// Outcome is the per-policy search result. Best is nil when no
// ordering was feasible under the policy. FeasibleCount is only set by
// the exhaustive search; branch-and-bound and the EDF heuristic do not
// count orderings.
type Outcome struct {
	Policy        Policy
	FeasibleCount optional.Int
	Best          *Schedule
}

// Report bundles everything handed to the reporter: the generated job
// set and the per-policy outcomes. Relaxed is nil when the relaxed
// scenario was not run.
type Report struct {
	Hyperperiod int
	Jobs        []Job
	Strict      Outcome
	Relaxed     *Outcome
}

// Options tunes the exhaustive Searcher.
type Options struct {
	// Workers is the number of goroutines the permutation index space
	// is partitioned across. 0 means one per CPU.
	Workers int

	// MaxJobs is the job-count ceiling; Run fails fast above it
	// rather than start an enumeration that cannot finish.
	MaxJobs int
}

// Searcher enumerates every permutation of a job set and evaluates
// each one under every configured policy, keeping the minimum-waiting
// feasible result per policy (ties keep the first found in enumeration
// order) and counting feasible orderings.
type Searcher struct {
	jobs     []Job
	policies []Policy
	workers  int
	maxJobs  int
}

// NewSearcher creates a Searcher over the given job set and policies.
func NewSearcher(jobs []Job, policies []Policy, opts Options) *Searcher {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Searcher{
		jobs:     jobs,
		policies: policies,
		workers:  workers,
		maxJobs:  opts.MaxJobs,
	}
}

// policyBest is one worker's running record for one policy.
type policyBest struct {
	count   int
	waiting optional.Int
	perm    []int
	result  Result
}

// Run walks the full permutation space. Permutations are produced
// lazily, one index at a time, never materialized as a whole; the
// index space [0, n!) is split into contiguous chunks, one per worker,
// and worker-local bests are merged after all workers finish. The
// context is checked between permutations, so a cancelled run returns
// promptly with the context's error.
func (s *Searcher) Run(ctx context.Context) ([]Outcome, error) {
	n := len(s.jobs)
	if n == 0 {
		return nil, fmt.Errorf("no jobs to schedule")
	}
	if s.maxJobs > 0 && n > s.maxJobs {
		return nil, fmt.Errorf("exhaustive search over %d jobs means %d! orderings, above the ceiling of %d jobs; raise maxJobs or use the branch-and-bound mode", n, n, s.maxJobs)
	}

	total := combin.NumPermutations(n, n)
	workers := s.workers
	if workers > total {
		workers = total
	}

	results := make([][]policyBest, workers)
	errs := make([]error, workers)
	chunk := (total + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			results[w], errs[w] = s.scan(ctx, lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()

	merged := make([]policyBest, len(s.policies))
	for w := range results {
		if errs[w] != nil {
			return nil, errs[w]
		}
		for pi, b := range results[w] {
			m := &merged[pi]
			m.count += b.count
			// Workers own contiguous index ranges in enumeration
			// order, so merging in worker order with a strict <
			// keeps the first-found winner on ties.
			if b.waiting.Present() && b.waiting.OrElse(0) < m.waiting.OrElse(math.MaxInt) {
				m.waiting = b.waiting
				m.perm = b.perm
				m.result = b.result
			}
		}
	}

	outcomes := make([]Outcome, len(s.policies))
	for pi := range s.policies {
		outcomes[pi] = Outcome{
			Policy:        s.policies[pi],
			FeasibleCount: optional.NewInt(merged[pi].count),
		}
		if merged[pi].waiting.Present() {
			order := make([]Job, n)
			for i, p := range merged[pi].perm {
				order[i] = s.jobs[p]
			}
			outcomes[pi].Best = &Schedule{
				Order:        order,
				TotalWaiting: merged[pi].result.TotalWaiting,
				Timeline:     merged[pi].result.Timeline,
			}
		}
	}
	return outcomes, nil
}

// scan evaluates permutation indices [lo, hi) under every policy and
// returns the worker-local bests.
func (s *Searcher) scan(ctx context.Context, lo, hi int) ([]policyBest, error) {
	n := len(s.jobs)
	bests := make([]policyBest, len(s.policies))
	perm := make([]int, n)
	order := make([]Job, n)

	for idx := lo; idx < hi; idx++ {
		if (idx-lo)%cancelCheckStride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		combin.IndexToPermutation(perm, idx, n, n)
		for i, p := range perm {
			order[i] = s.jobs[p]
		}

		for pi := range s.policies {
			res, ok := Evaluate(order, s.policies[pi])
			if !ok {
				continue
			}
			b := &bests[pi]
			b.count++
			if res.TotalWaiting < b.waiting.OrElse(math.MaxInt) {
				b.waiting = optional.NewInt(res.TotalWaiting)
				b.perm = append(b.perm[:0], perm...)
				b.result = res
			}
		}
	}

	return bests, nil
}
