package schedulers

// indexQueue is a FIFO of process indices backing the round-robin ready
// queue. Capacity is fixed at the process count up front so the slice never
// reallocates mid-run.
type indexQueue struct {
	items []int
}

func newIndexQueue(capacity int) *indexQueue {
	return &indexQueue{items: make([]int, 0, capacity)}
}

func (q *indexQueue) PushBack(i int) {
	q.items = append(q.items, i)
}

func (q *indexQueue) PopFront() int {
	head := q.items[0]
	q.items = q.items[1:]
	return head
}

func (q *indexQueue) Empty() bool {
	return len(q.items) == 0
}

func (q *indexQueue) Size() int {
	return len(q.items)
}
