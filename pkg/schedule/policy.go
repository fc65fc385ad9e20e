package schedule

import (
	"sort"
	"strings"
)

// Policy decides which tasks may drop a job that would miss its
// deadline. Under the strict policy no task may; under a relaxed
// policy the designated tasks' jobs are skipped instead of making the
// whole ordering infeasible.
type Policy struct {
	relaxable map[string]bool
}

// Strict returns the policy under which every job must meet its deadline.
func Strict() Policy {
	return Policy{}
}

// Relaxed returns a policy allowing the named tasks' jobs to be skipped.
func Relaxed(tasks ...string) Policy {
	p := Policy{relaxable: make(map[string]bool, len(tasks))}
	for _, t := range tasks {
		p.relaxable[t] = true
	}
	return p
}

// CanSkip reports whether jobs of the given task may be skipped.
func (p Policy) CanSkip(task string) bool {
	return p.relaxable[task]
}

func (p Policy) String() string {
	if len(p.relaxable) == 0 {
		return "strict"
	}
	names := make([]string, 0, len(p.relaxable))
	for t := range p.relaxable {
		names = append(names, t)
	}
	sort.Strings(names)
	return "relaxed(" + strings.Join(names, ",") + ")"
}
