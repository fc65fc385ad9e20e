package schedule

// Execution records one job's slot in an evaluated schedule.
type Execution struct {
	JobID    string
	Task     string
	Arrival  int
	Deadline int
	Start    int
	Finish   int
	Waiting  int
}

// Result is the outcome of evaluating one feasible ordering.
type Result struct {
	TotalWaiting int
	Timeline     []Execution
}

// Evaluate simulates the given ordering on a single non-preemptive
// processor. The ordering is the scheduling decision itself: jobs run
// strictly in sequence, with the processor idling until a job's
// arrival when it is not released yet.
//
// ok is false as soon as a job the policy cannot skip would finish
// past its deadline; the partial result is discarded. A skippable job
// that would miss is dropped silently: it advances nothing, adds no
// waiting, and leaves no timeline entry.
func Evaluate(order []Job, pol Policy) (Result, bool) {
	currentTime := 0
	res := Result{}

	for _, job := range order {
		if currentTime < job.Arrival {
			currentTime = job.Arrival
		}

		start := currentTime
		finish := start + job.ExecutionTime

		if finish > job.Deadline {
			if pol.CanSkip(job.Task) {
				continue
			}
			return Result{}, false
		}

		waiting := start - job.Arrival
		res.TotalWaiting += waiting
		res.Timeline = append(res.Timeline, Execution{
			JobID:    job.ID,
			Task:     job.Task,
			Arrival:  job.Arrival,
			Deadline: job.Deadline,
			Start:    start,
			Finish:   finish,
			Waiting:  waiting,
		})
		currentTime = finish
	}

	return res, true
}
