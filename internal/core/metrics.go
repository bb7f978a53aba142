package core

// Metrics holds the averages of one algorithm run.
type Metrics struct {
	AvgTurnaround float64
	AvgWaiting    float64
	AvgResponse   float64
}

// Slice is one contiguous stretch of CPU time given to a process.
type Slice struct {
	ProcessID int
	Start     int
	End       int
}

func (s Slice) Len() int { return s.End - s.Start }
