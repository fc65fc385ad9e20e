package schedule

import (
	"fmt"

	"github.com/sherine-k/npsched/pkg/config"
)

// Job is one concrete release of a task within the hyperperiod. Jobs
// are immutable once generated.
type Job struct {
	ID            string
	Task          string
	ExecutionTime int
	Arrival       int
	Deadline      int
}

// GenerateJobs expands every task into its releases across one
// hyperperiod. A task with period T yields hyperperiod/T jobs; job i
// arrives at i*T and must finish by (i+1)*T, so the job windows of a
// task tile [0, hyperperiod) exactly. The output is ordered by task
// declaration then instance index; that order carries no meaning, it
// is only the seed the search permutes.
func GenerateJobs(tasks []config.Task, hyper int) []Job {
	jobs := []Job{}

	for _, task := range tasks {
		count := hyper / task.Period
		for i := 0; i < count; i++ {
			jobs = append(jobs, Job{
				ID:            fmt.Sprintf("%s_%d", task.Name, i+1),
				Task:          task.Name,
				ExecutionTime: task.ExecutionTime,
				Arrival:       i * task.Period,
				Deadline:      (i + 1) * task.Period,
			})
		}
	}

	return jobs
}
