package schedule

import (
	"testing"

	"github.com/sherine-k/npsched/pkg/config"
)

func referenceTasks() []config.Task {
	return []config.Task{
		{Name: "T1", ExecutionTime: 2, Period: 10},
		{Name: "T2", ExecutionTime: 3, Period: 10},
		{Name: "T3", ExecutionTime: 2, Period: 20},
		{Name: "T4", ExecutionTime: 2, Period: 20},
		{Name: "T5", ExecutionTime: 2, Period: 40},
		{Name: "T6", ExecutionTime: 2, Period: 40},
		{Name: "T7", ExecutionTime: 3, Period: 80},
	}
}

func TestGenerateJobs_ReferenceCounts(t *testing.T) {
	tasks := referenceTasks()
	jobs := GenerateJobs(tasks, 80)

	if len(jobs) != 29 {
		t.Fatalf("expected 29 jobs, got %d", len(jobs))
	}

	wantCounts := map[string]int{
		"T1": 8, "T2": 8, "T3": 4, "T4": 4, "T5": 2, "T6": 2, "T7": 1,
	}
	counts := make(map[string]int)
	for _, j := range jobs {
		counts[j.Task]++
	}
	for task, want := range wantCounts {
		if counts[task] != want {
			t.Errorf("task %s: expected %d jobs, got %d", task, want, counts[task])
		}
	}
}

func TestGenerateJobs_WindowsTileHyperperiod(t *testing.T) {
	tasks := referenceTasks()
	hyper := 80
	jobs := GenerateJobs(tasks, hyper)

	byTask := make(map[string][]Job)
	for _, j := range jobs {
		byTask[j.Task] = append(byTask[j.Task], j)
	}

	for _, task := range tasks {
		taskJobs := byTask[task.Name]
		if len(taskJobs) != hyper/task.Period {
			t.Fatalf("task %s: expected %d jobs, got %d", task.Name, hyper/task.Period, len(taskJobs))
		}

		// Generation order is by instance index, so consecutive
		// windows must chain from 0 to the hyperperiod exactly.
		next := 0
		for _, j := range taskJobs {
			if j.Arrival != next {
				t.Errorf("job %s: expected arrival %d, got %d", j.ID, next, j.Arrival)
			}
			if j.Deadline-j.Arrival != task.Period {
				t.Errorf("job %s: window width %d, want period %d", j.ID, j.Deadline-j.Arrival, task.Period)
			}
			next = j.Deadline
		}
		if next != hyper {
			t.Errorf("task %s: windows end at %d, want hyperperiod %d", task.Name, next, hyper)
		}
	}
}

func TestGenerateJobs_UniqueIDs(t *testing.T) {
	jobs := GenerateJobs(referenceTasks(), 80)

	seen := make(map[string]bool)
	for _, j := range jobs {
		if seen[j.ID] {
			t.Errorf("duplicate job ID %s", j.ID)
		}
		seen[j.ID] = true
	}
}

func TestGenerateJobs_IDFormat(t *testing.T) {
	jobs := GenerateJobs([]config.Task{{Name: "T1", ExecutionTime: 2, Period: 10}}, 20)

	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != "T1_1" || jobs[1].ID != "T1_2" {
		t.Errorf("expected IDs T1_1, T1_2, got %s, %s", jobs[0].ID, jobs[1].ID)
	}
}
