package schedule

import (
	"testing"

	"github.com/sherine-k/npsched/pkg/config"
)

func TestEDFOrder_SortsByDeadlineThenArrival(t *testing.T) {
	jobs := GenerateJobs([]config.Task{
		{Name: "A", ExecutionTime: 1, Period: 2},
		{Name: "B", ExecutionTime: 2, Period: 4},
	}, 4)

	order := EDFOrder(jobs)

	// A_1 (deadline 2), then B_1 (deadline 4, arrival 0), then A_2
	want := []string{"A_1", "B_1", "A_2"}
	for i, id := range want {
		if order[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, order[i].ID)
		}
	}

	// The input job list must stay in generation order
	if jobs[1].ID != "A_2" {
		t.Error("EDFOrder must not mutate its input")
	}
}

func TestEDF_FeasibleSmallSet(t *testing.T) {
	jobs := GenerateJobs([]config.Task{
		{Name: "A", ExecutionTime: 1, Period: 2},
		{Name: "B", ExecutionTime: 2, Period: 4},
	}, 4)

	best := EDF(jobs, Strict())
	if best == nil {
		t.Fatal("expected the EDF ordering to be feasible")
	}
	if best.TotalWaiting != 2 {
		t.Errorf("expected waiting 2, got %d", best.TotalWaiting)
	}
}

func TestEDF_ReferenceSetMissesUnderStaticOrder(t *testing.T) {
	// Static earliest-deadline-first ordering of the 29 reference jobs
	// leaves T2_8 finishing at 81, one past the hyperperiod: the
	// heuristic fails on this set even though it is well short of full
	// utilization. Relaxing T5 does not help because both T5 jobs meet
	// their deadlines anyway.
	jobs := GenerateJobs(referenceTasks(), 80)

	if best := EDF(jobs, Strict()); best != nil {
		t.Errorf("expected static EDF to be infeasible, got waiting %d", best.TotalWaiting)
	}
	if best := EDF(jobs, Relaxed("T5")); best != nil {
		t.Errorf("expected relaxed static EDF to be infeasible, got waiting %d", best.TotalWaiting)
	}
}
