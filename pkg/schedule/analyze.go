package schedule

import (
	"context"
	"fmt"

	"github.com/sherine-k/npsched/pkg/config"
)

// Algorithm selects how the ordering space is explored.
type Algorithm string

const (
	// AlgorithmExhaustive enumerates every permutation; exact, with
	// feasible-ordering counts, and factorially expensive.
	AlgorithmExhaustive Algorithm = "exhaustive"

	// AlgorithmBranchBound prunes infeasible and already-too-costly
	// prefixes; same best schedule, no counts.
	AlgorithmBranchBound Algorithm = "branch-and-bound"

	// AlgorithmEDF evaluates only the earliest-deadline-first
	// ordering; a fast heuristic with no optimality claim.
	AlgorithmEDF Algorithm = "edf"
)

// Analyze runs the full pipeline on a validated configuration:
// hyperperiod, job generation, then the selected search under the
// strict policy and, when configured, the relaxed one.
func Analyze(ctx context.Context, cfg *config.Config, alg Algorithm) (*Report, error) {
	periods := make([]int, len(cfg.Tasks))
	for i, t := range cfg.Tasks {
		periods[i] = t.Period
	}
	hyper, err := Hyperperiod(periods)
	if err != nil {
		return nil, err
	}

	jobs := GenerateJobs(cfg.Tasks, hyper)

	policies := []Policy{Strict()}
	if cfg.RunRelaxed {
		policies = append(policies, Relaxed(cfg.RelaxTasks...))
	}

	report := &Report{Hyperperiod: hyper, Jobs: jobs}

	var outcomes []Outcome
	switch alg {
	case AlgorithmExhaustive:
		s := NewSearcher(jobs, policies, Options{Workers: cfg.Workers, MaxJobs: cfg.MaxJobs})
		outcomes, err = s.Run(ctx)
		if err != nil {
			return nil, err
		}
	case AlgorithmBranchBound:
		for _, pol := range policies {
			best, err := BranchBound(ctx, jobs, pol)
			if err != nil {
				return nil, err
			}
			outcomes = append(outcomes, Outcome{Policy: pol, Best: best})
		}
	case AlgorithmEDF:
		for _, pol := range policies {
			outcomes = append(outcomes, Outcome{Policy: pol, Best: EDF(jobs, pol)})
		}
	default:
		return nil, fmt.Errorf("unknown algorithm %q", alg)
	}

	report.Strict = outcomes[0]
	if len(outcomes) > 1 {
		report.Relaxed = &outcomes[1]
	}
	return report, nil
}
