package config

// Config represents the entire configuration for the schedule analyzer
type Config struct {
	Tasks []Task `yaml:"tasks"`

	// RelaxTasks lists tasks whose jobs may be skipped under the
	// relaxed policy instead of making an ordering infeasible.
	RelaxTasks []string `yaml:"relaxTasks,omitempty"`

	// RunRelaxed controls whether the relaxed scenario is evaluated
	// in addition to the strict one.
	RunRelaxed bool `yaml:"runRelaxed"`

	// MaxJobs is the job-count ceiling for the exhaustive search.
	// The search space is n! for n jobs; above this ceiling the
	// exhaustive mode refuses to start.
	MaxJobs int `yaml:"maxJobs,omitempty"`

	// Workers is the number of goroutines the exhaustive search
	// partitions the permutation space across. 0 means one per CPU.
	Workers int `yaml:"workers,omitempty"`
}

// Task represents a single periodic task
type Task struct {
	Name          string `yaml:"name" json:"name"`
	ExecutionTime int    `yaml:"executionTime" json:"executionTime"`
	Period        int    `yaml:"period" json:"period"`
}

// DefaultMaxJobs is the exhaustive-search ceiling used when the
// configuration does not set one. 10! is ~3.6M orderings; each extra
// job multiplies the space by the job count.
const DefaultMaxJobs = 10
