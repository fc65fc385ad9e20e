package schedule

import (
	"context"
	"math"

	"github.com/markphelps/optional"
)

// BranchBound finds the minimum-waiting feasible ordering under the
// policy without visiting every permutation. Two prunes keep the
// result exact: a prefix in which a non-skippable job already misses
// its deadline is shared by all of its completions, so the whole
// subtree is infeasible and can be cut; and accumulated waiting never
// decreases as jobs are appended, so any prefix whose waiting reaches
// the incumbent's cannot improve on it.
//
// The returned best matches the exhaustive search's total waiting.
// Feasible-ordering counts are not produced in this mode. A nil
// Schedule means no feasible ordering exists.
func BranchBound(ctx context.Context, jobs []Job, pol Policy) (*Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b := &bbSearch{
		ctx:  ctx,
		jobs: jobs,
		pol:  pol,
		used: make([]bool, len(jobs)),
	}
	if err := b.dfs(0, 0, 0); err != nil {
		return nil, err
	}

	if !b.best.Present() {
		return nil, nil
	}
	order := make([]Job, len(b.bestOrder))
	for i, j := range b.bestOrder {
		order[i] = jobs[j]
	}
	return &Schedule{
		Order:        order,
		TotalWaiting: b.bestResult.TotalWaiting,
		Timeline:     b.bestResult.Timeline,
	}, nil
}

type bbSearch struct {
	ctx  context.Context
	jobs []Job
	pol  Policy

	used     []bool
	prefix   []int
	timeline []Execution
	nodes    int

	best       optional.Int
	bestOrder  []int
	bestResult Result
}

func (b *bbSearch) dfs(depth, currentTime, waiting int) error {
	b.nodes++
	if b.nodes%cancelCheckStride == 0 {
		if err := b.ctx.Err(); err != nil {
			return err
		}
	}

	if waiting >= b.best.OrElse(math.MaxInt) {
		return nil
	}

	if depth == len(b.jobs) {
		b.best = optional.NewInt(waiting)
		b.bestOrder = append(b.bestOrder[:0], b.prefix...)
		b.bestResult = Result{
			TotalWaiting: waiting,
			Timeline:     append([]Execution(nil), b.timeline...),
		}
		return nil
	}

	for j := range b.jobs {
		if b.used[j] {
			continue
		}
		job := b.jobs[j]

		start := currentTime
		if start < job.Arrival {
			start = job.Arrival
		}
		finish := start + job.ExecutionTime

		b.used[j] = true
		b.prefix = append(b.prefix, j)

		if finish > job.Deadline {
			// The job misses here. Skippable jobs are dropped, same
			// as in Evaluate; anything else dooms the whole subtree.
			if b.pol.CanSkip(job.Task) {
				if err := b.dfs(depth+1, currentTime, waiting); err != nil {
					return err
				}
			}
		} else {
			b.timeline = append(b.timeline, Execution{
				JobID:    job.ID,
				Task:     job.Task,
				Arrival:  job.Arrival,
				Deadline: job.Deadline,
				Start:    start,
				Finish:   finish,
				Waiting:  start - job.Arrival,
			})
			err := b.dfs(depth+1, finish, waiting+start-job.Arrival)
			b.timeline = b.timeline[:len(b.timeline)-1]
			if err != nil {
				return err
			}
		}

		b.prefix = b.prefix[:len(b.prefix)-1]
		b.used[j] = false
	}

	return nil
}
