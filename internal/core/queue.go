package core

// ReadyQueue is a FIFO of process indices. It grows as needed.
type ReadyQueue struct {
	items []int
}

func NewReadyQueue(capacity int) *ReadyQueue {
	return &ReadyQueue{items: make([]int, 0, capacity)}
}

func (q *ReadyQueue) Push(idx int) {
	q.items = append(q.items, idx)
}

// Pop removes and returns the head. ok is false when the queue is empty.
func (q *ReadyQueue) Pop() (idx int, ok bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	idx = q.items[0]
	q.items = q.items[1:]
	return idx, true
}

func (q *ReadyQueue) Len() int { return len(q.items) }

func (q *ReadyQueue) Empty() bool { return len(q.items) == 0 }
