package requests

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
)

type Job struct {
	ProcessId   int `json:"process_id" mapstructure:"process_id"`
	ArrivalTime int `json:"arrival_time" mapstructure:"arrival_time"`
	BurstTime   int `json:"burst_time" mapstructure:"burst_time"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" mapstructure:"jobs"`
	TimeQuantum *int  `json:"time_quantum,omitempty" mapstructure:"time_quantum"`
}

// Processes converts the jobs to validated processes, keeping their order.
func (r *ScheduleRequests) Processes() ([]core.Process, error) {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime))
	}
	if err := core.ValidateAll(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// Quantum returns the requested time quantum, or fallback if none was sent.
func (r *ScheduleRequests) Quantum(fallback int) int {
	if r.TimeQuantum == nil {
		return fallback
	}
	return *r.TimeQuantum
}

// LoadJobs reads a jobs file. The format (yaml, json, toml, ...) follows
// the file extension.
func LoadJobs(path string) (*ScheduleRequests, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read jobs file: %w", err)
	}

	var request ScheduleRequests
	if err := v.Unmarshal(&request); err != nil {
		return nil, fmt.Errorf("decode jobs file: %w", err)
	}
	if len(request.Jobs) == 0 {
		return nil, fmt.Errorf("jobs file %s: %w", path, core.ErrNoProcesses)
	}
	return &request, nil
}
