package search

// frontierItem is one discovered-but-unexpanded node. seq is a monotone
// insertion counter: ties on f break toward the earliest insertion, keeping
// expansion order, and therefore the returned optimal path, deterministic.
type frontierItem[State comparable] struct {
	state        State
	gScore       float64
	fCost        float64
	seq          int
	indexInQueue int
}

type frontier[State comparable] []*frontierItem[State]

func (queue frontier[State]) Len() int { return len(queue) }

func (queue frontier[State]) Less(i, j int) bool {
	if queue[i].fCost != queue[j].fCost {
		return queue[i].fCost < queue[j].fCost
	}
	return queue[i].seq < queue[j].seq
}

func (queue frontier[State]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *frontier[State]) Push(x any) {
	item := x.(*frontierItem[State])
	item.indexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *frontier[State]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
