package schedule

import "sort"

// EDFOrder returns the job list sorted earliest-deadline-first, ties
// broken by arrival then generation order.
func EDFOrder(jobs []Job) []Job {
	order := append([]Job(nil), jobs...)
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].Deadline != order[j].Deadline {
			return order[i].Deadline < order[j].Deadline
		}
		return order[i].Arrival < order[j].Arrival
	})
	return order
}

// EDF evaluates the single earliest-deadline-first ordering under the
// policy. It is a heuristic: non-preemptive EDF is not optimal, so a
// nil result means this one ordering is infeasible, not that no
// feasible ordering exists.
func EDF(jobs []Job, pol Policy) *Schedule {
	order := EDFOrder(jobs)
	res, ok := Evaluate(order, pol)
	if !ok {
		return nil
	}
	return &Schedule{
		Order:        order,
		TotalWaiting: res.TotalWaiting,
		Timeline:     res.Timeline,
	}
}
