// Package report renders simulation results as text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/schedulers"
)

var titles = map[string]string{
	schedulers.FirstComeFirstServe: "First-come, first-serve",
	schedulers.ShortestJobFirst:    "Shortest-job-first",
	schedulers.RoundRobin:          "Round-robin",
}

// Title returns a readable name for an algorithm.
func Title(algorithm string) string {
	if t, ok := titles[algorithm]; ok {
		return t
	}
	return algorithm
}

// WriteResult prints the title, the gantt chart and the per-process table.
func WriteResult(w io.Writer, result schedulers.Result) {
	outputTitle(w, Title(result.Algorithm))
	outputGantt(w, result)
	outputSchedule(w, result)
}

// WriteComparison prints one row of averages per algorithm.
func WriteComparison(w io.Writer, results []schedulers.Result) {
	_, _ = fmt.Fprintln(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg wait", "Avg turnaround", "Avg response", "Ctx switches", "Utilization"})
	for _, r := range results {
		table.Append([]string{
			Title(r.Algorithm),
			fmt.Sprintf("%.2f", r.Metrics.AvgWaiting),
			fmt.Sprintf("%.2f", r.Metrics.AvgTurnaround),
			fmt.Sprintf("%.2f", r.Metrics.AvgResponse),
			fmt.Sprint(r.ContextSwitches),
			fmt.Sprintf("%.2f", r.Utilization()),
		})
	}
	table.Render()
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, result schedulers.Result) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range result.Timeline {
		pid := fmt.Sprintf("P%d", s.ProcessID)
		padding := strings.Repeat(" ", max(0, (8-len(pid))/2))
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range result.Timeline {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(result.Timeline)-1 {
			_, _ = fmt.Fprint(w, s.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, result schedulers.Result) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Exit", "Response", "Wait", "Turnaround"})
	for _, p := range result.Processes {
		table.Append([]string{
			fmt.Sprint(p.ID),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.Response()),
			fmt.Sprint(p.Waiting()),
			fmt.Sprint(p.Turnaround()),
		})
	}
	m := result.Metrics
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AvgResponse),
		fmt.Sprintf("Average\n%.2f", m.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", m.AvgTurnaround),
	})
	table.Render()
}
