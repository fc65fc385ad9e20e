package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sherine-k/npsched/pkg/chart"
	"github.com/sherine-k/npsched/pkg/config"
	"github.com/sherine-k/npsched/pkg/schedule"
	"github.com/spf13/cobra"
)

var (
	configFile    string
	algorithm     string
	relaxTask     string
	strictOnly    bool
	workers       int
	maxJobs       int
	showTimeline  bool
	timelineLimit int
	showSummary   bool
)

var rootCmd = &cobra.Command{
	Use:   "npsched",
	Short: "Non-preemptive schedule feasibility analyzer",
	Long: `An offline analyzer for fixed periodic task sets on a single
non-preemptive processor.

The tool reads a task-set file, expands every task into its jobs across
one hyperperiod, and searches the orderings of that job set for the
feasible schedule with minimum total waiting time. A relaxed scenario
can additionally allow designated tasks' jobs to be skipped instead of
making an ordering infeasible.

The exhaustive algorithm is exact but factorial in the job count; the
branch-and-bound mode finds the same best schedule with pruning, and
the edf mode is a fast earliest-deadline-first heuristic.`,
	RunE: runAnalysis,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "Path to task-set file (.yaml or .json)")
	rootCmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(schedule.AlgorithmExhaustive), "Search algorithm: exhaustive, branch-and-bound or edf")
	rootCmd.Flags().StringVarP(&relaxTask, "relax", "r", "", "Task whose jobs may be skipped (overrides relaxTasks in the config)")
	rootCmd.Flags().BoolVar(&strictOnly, "strict-only", false, "Skip the relaxed scenario")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker goroutines for the exhaustive search (0 = one per CPU)")
	rootCmd.Flags().IntVar(&maxJobs, "max-jobs", 0, "Job-count ceiling for the exhaustive search (0 = config value)")
	rootCmd.Flags().BoolVarP(&showTimeline, "timeline", "t", false, "Show detailed timeline of the best schedules")
	rootCmd.Flags().IntVarP(&timelineLimit, "timeline-limit", "l", 50, "Limit number of timeline jobs to display")
	rootCmd.Flags().BoolVarP(&showSummary, "summary", "s", true, "Show search summary")
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := applyFlagOverrides(cfg); err != nil {
		return err
	}

	fmt.Printf("Loaded configuration from %s\n", configFile)
	fmt.Printf("  - Tasks: %d\n", len(cfg.Tasks))
	fmt.Printf("  - Algorithm: %s\n", algorithm)
	if cfg.RunRelaxed {
		fmt.Printf("  - Relaxable tasks: %s\n", strings.Join(cfg.RelaxTasks, ", "))
	}
	fmt.Println()

	// Ctrl-C cancels the search between permutations
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := schedule.Analyze(ctx, cfg, schedule.Algorithm(algorithm))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	chartGen := chart.NewGenerator()

	if showSummary {
		fmt.Println(chartGen.GenerateSummary(report))
	}

	fmt.Println(chartGen.GenerateScheduleChart(report, report.Strict))
	if report.Relaxed != nil {
		fmt.Println(chartGen.GenerateScheduleChart(report, *report.Relaxed))
	}

	if showTimeline {
		fmt.Println(chartGen.GenerateDetailedTimeline(report.Strict, timelineLimit))
		if report.Relaxed != nil {
			fmt.Println(chartGen.GenerateDetailedTimeline(*report.Relaxed, timelineLimit))
		}
	}

	return nil
}

// applyFlagOverrides folds command-line overrides into the loaded
// configuration, re-checking what the loader could not see.
func applyFlagOverrides(cfg *config.Config) error {
	if relaxTask != "" {
		found := false
		for _, t := range cfg.Tasks {
			if t.Name == relaxTask {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("--relax: %s does not name a task", relaxTask)
		}
		cfg.RelaxTasks = []string{relaxTask}
		cfg.RunRelaxed = true
	}
	if strictOnly {
		cfg.RunRelaxed = false
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if maxJobs > 0 {
		cfg.MaxJobs = maxJobs
	}
	return nil
}
