package schedulers

import (
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/responses"
)

// GenerateResponse converts a simulation result into its API form.
// timeQuantum is only reported for round robin.
func GenerateResponse(result Result, timeQuantum int) responses.ScheduleResponse {
	response := responses.ScheduleResponse{
		Algorithm:             result.Algorithm,
		TotalTime:             result.TotalTime,
		IdleTime:              result.IdleTime,
		ContextSwitches:       result.ContextSwitches,
		AverageWaitingTime:    result.Metrics.AvgWaiting,
		AverageResponseTime:   result.Metrics.AvgResponse,
		AverageTurnAroundTime: result.Metrics.AvgTurnaround,
		CpuUtilization:        result.Utilization(),
		CpuThroughput:         result.Throughput(),
		Details:               make([]responses.ProcessResponse, 0, len(result.Processes)),
		Timeline:              make([]responses.SliceResponse, 0, len(result.Timeline)),
	}
	if result.Algorithm == RoundRobin {
		response.TimeQuantum = timeQuantum
	}

	for _, p := range result.Processes {
		response.Details = append(response.Details, responses.ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			StartTime:      p.StartTime,
			CompletionTime: p.CompletionTime,
			ResponseTime:   p.Response(),
			TurnAroundTime: p.Turnaround(),
			WaitingTime:    p.Waiting(),
		})
	}
	for _, s := range result.Timeline {
		response.Timeline = append(response.Timeline, responses.SliceResponse{
			ProcessId: s.ProcessID,
			Start:     s.Start,
			End:       s.End,
		})
	}
	return response
}

// GenerateComparison converts results of RunAll and picks the best
// algorithm for each average. Ties keep the earlier algorithm.
func GenerateComparison(results []Result, timeQuantum int) responses.ComparisonResponse {
	comparison := responses.ComparisonResponse{
		Results: make([]responses.ScheduleResponse, 0, len(results)),
	}
	if len(results) == 0 {
		return comparison
	}

	bestWaiting, bestTurnAround, bestResponse := results[0], results[0], results[0]
	for _, r := range results {
		comparison.Results = append(comparison.Results, GenerateResponse(r, timeQuantum))
		if r.Metrics.AvgWaiting < bestWaiting.Metrics.AvgWaiting {
			bestWaiting = r
		}
		if r.Metrics.AvgTurnaround < bestTurnAround.Metrics.AvgTurnaround {
			bestTurnAround = r
		}
		if r.Metrics.AvgResponse < bestResponse.Metrics.AvgResponse {
			bestResponse = r
		}
	}
	comparison.Best = responses.BestResponse{
		Waiting:    bestWaiting.Algorithm,
		TurnAround: bestTurnAround.Algorithm,
		Response:   bestResponse.Algorithm,
	}
	return comparison
}
