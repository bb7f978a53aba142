package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type SliceResponse struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	ContextSwitches       int               `json:"context_switches"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []SliceResponse   `json:"timeline"`
}

// BestResponse names the algorithm with the lowest average per metric.
type BestResponse struct {
	Waiting    string `json:"waiting"`
	TurnAround string `json:"turn_around"`
	Response   string `json:"response"`
}

type ComparisonResponse struct {
	Results []ScheduleResponse `json:"results"`
	Best    BestResponse       `json:"best"`
}
