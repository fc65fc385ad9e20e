package chart

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sherine-k/npsched/pkg/schedule"
)

const (
	chartWidth = 80
	labelWidth = 10
)

// Sprint color functions for result markers.
var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

// Generator generates ASCII charts
type Generator struct {
	width int
}

// NewGenerator creates a new chart generator
func NewGenerator() *Generator {
	return &Generator{
		width: chartWidth,
	}
}

// GenerateScheduleChart draws the best schedule of one policy as a
// per-task execution chart across [0, hyperperiod).
func (g *Generator) GenerateScheduleChart(report *schedule.Report, out schedule.Outcome) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Best Schedule (%s)\n", out.Policy))
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	if out.Best == nil {
		sb.WriteString(red("No feasible ordering under this policy") + "\n")
		return sb.String()
	}

	// Which task occupies each time unit of the hyperperiod
	occupant := make([]string, report.Hyperperiod)
	for _, e := range out.Best.Timeline {
		for t := e.Start; t < e.Finish && t < report.Hyperperiod; t++ {
			occupant[t] = e.Task
		}
	}

	cols := g.width - labelWidth
	if report.Hyperperiod < cols {
		cols = report.Hyperperiod
	}

	// One row per task, in declaration order
	for _, name := range taskNames(report.Jobs) {
		sb.WriteString(fmt.Sprintf("%7s |", name))
		for x := 0; x < cols; x++ {
			tick := x * report.Hyperperiod / cols
			if occupant[tick] == name {
				sb.WriteString("█")
			} else if occupant[tick] == "" {
				sb.WriteString(dim("."))
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	// X-axis
	sb.WriteString("        +")
	sb.WriteString(strings.Repeat("-", cols))
	sb.WriteString("\n")

	// X-axis labels at quarter points of the hyperperiod
	labelLine := make([]rune, cols+labelWidth)
	for i := range labelLine {
		labelLine[i] = ' '
	}
	for q := 0; q <= 4; q++ {
		tick := q * report.Hyperperiod / 4
		position := 9 + q*cols/4
		marker := fmt.Sprintf("%d", tick)
		for i, ch := range marker {
			if position+i < len(labelLine) {
				labelLine[position+i] = ch
			}
		}
	}
	sb.WriteString(string(labelLine))
	sb.WriteString("\n\n")

	sb.WriteString("Legend:\n")
	sb.WriteString("    █ - Task executing\n")
	sb.WriteString("    . - Processor idle\n")
	sb.WriteString("\n")

	return sb.String()
}

// GenerateSummary summarizes both policy outcomes: feasibility,
// feasible-ordering counts where the algorithm produced them, best
// total waiting, and skipped jobs under the relaxed policy.
func (g *Generator) GenerateSummary(report *schedule.Report) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Search Summary\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Hyperperiod: %d\n", report.Hyperperiod))
	sb.WriteString(fmt.Sprintf("Jobs generated: %d\n\n", len(report.Jobs)))

	g.writeOutcome(&sb, report, report.Strict)
	if report.Relaxed != nil {
		sb.WriteString("\n")
		g.writeOutcome(&sb, report, *report.Relaxed)
	}
	sb.WriteString("\n")

	return sb.String()
}

func (g *Generator) writeOutcome(sb *strings.Builder, report *schedule.Report, out schedule.Outcome) {
	sb.WriteString(fmt.Sprintf("Policy %s:\n", out.Policy))
	if count, err := out.FeasibleCount.Get(); err == nil {
		sb.WriteString(fmt.Sprintf("  - Feasible orderings: %d\n", count))
	}
	if out.Best == nil {
		sb.WriteString(fmt.Sprintf("  - %s\n", red("No feasible schedule found")))
		return
	}
	sb.WriteString(fmt.Sprintf("  - %s\n", green("Feasible")))
	sb.WriteString(fmt.Sprintf("  - Best total waiting time: %d\n", out.Best.TotalWaiting))

	if skipped := skippedJobs(report.Jobs, out.Best); len(skipped) > 0 {
		sb.WriteString(fmt.Sprintf("  - Skipped jobs: %s\n", strings.Join(skipped, ", ")))
	}
}

// GenerateDetailedTimeline lists every executed job of the best
// schedule in execution order.
func (g *Generator) GenerateDetailedTimeline(out schedule.Outcome, limit int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Detailed Timeline (%s)", out.Policy))
	if out.Best != nil && limit > 0 && limit < len(out.Best.Timeline) {
		sb.WriteString(fmt.Sprintf(" (showing first %d jobs)", limit))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	if out.Best == nil {
		sb.WriteString("No feasible schedule to display\n")
		return sb.String()
	}

	displayCount := len(out.Best.Timeline)
	if limit > 0 && limit < displayCount {
		displayCount = limit
	}

	for i := 0; i < displayCount; i++ {
		e := out.Best.Timeline[i]
		sb.WriteString(fmt.Sprintf("Job %s (Task=%s): arrival=%d, start=%d, finish=%d, deadline=%d, waiting=%d\n",
			e.JobID, e.Task, e.Arrival, e.Start, e.Finish, e.Deadline, e.Waiting))
	}

	if limit > 0 && limit < len(out.Best.Timeline) {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs\n", len(out.Best.Timeline)-limit))
	}

	sb.WriteString("\n")

	return sb.String()
}

// taskNames returns the distinct task names in job-generation order.
func taskNames(jobs []schedule.Job) []string {
	var names []string
	seen := make(map[string]bool)
	for _, j := range jobs {
		if !seen[j.Task] {
			seen[j.Task] = true
			names = append(names, j.Task)
		}
	}
	return names
}

// skippedJobs returns the IDs of generated jobs absent from the
// schedule's timeline, i.e. dropped by a relaxed policy.
func skippedJobs(jobs []schedule.Job, best *schedule.Schedule) []string {
	executed := make(map[string]bool, len(best.Timeline))
	for _, e := range best.Timeline {
		executed[e.JobID] = true
	}
	var skipped []string
	for _, j := range jobs {
		if !executed[j.ID] {
			skipped = append(skipped, j.ID)
		}
	}
	return skipped
}
