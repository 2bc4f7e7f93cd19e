package osmrouter

// searchItem is an entry of A* open set. The same node may be pushed several times.
type searchItem struct {
	node     *Node
	priority float64
	index    int
}

// priorityQueue implements heap.Interface. Pop returns item with the lowest priority.
type priorityQueue []*searchItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].priority < pq[j].priority
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push is used by heap.Interface methods and should not be called directly.
func (pq *priorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*searchItem)
	item.index = n
	*pq = append(*pq, item)
}

// Pop is used by heap.Interface methods and should not be called directly.
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}
