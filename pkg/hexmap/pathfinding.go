// pkg/hexmap/pathfinding.go
package hexmap

import (
	"container/heap"
)

// CostFunc returns the extra cost of entering hex on top of the unit step
// cost. ok == false makes the hex impassable.
type CostFunc func(hex Hex) (cost int, ok bool)

// AStar находит кратчайший путь от start до goal.
// Every step costs 1 plus cost(next), which keeps the hex distance heuristic
// admissible. When goal cannot be reached the path to the explored hex
// closest to goal is returned with complete == false; a start outside the
// map yields nil.
func AStar(start, goal Hex, hm *HexMap, cost CostFunc) (path []Hex, complete bool) {
	if !hm.Contains(start) {
		return nil, false
	}
	pq := &PriorityQueue{}
	heap.Init(pq)
	startNode := &Node{Hex: start, Heuristic: start.Distance(goal)}
	startNode.Cost = startNode.Heuristic
	heap.Push(pq, startNode)

	costSoFar := map[Hex]int{start: 0}
	closed := make(map[Hex]bool)
	best := startNode

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if closed[current.Hex] {
			continue
		}
		closed[current.Hex] = true

		if current.Hex == goal {
			return reconstructPath(current), true
		}
		if current.Heuristic < best.Heuristic {
			best = current
		}

		for _, neighbor := range hm.Neighbors(current.Hex) {
			if closed[neighbor] {
				continue
			}
			extra, ok := cost(neighbor)
			if !ok {
				continue
			}
			newCost := costSoFar[current.Hex] + 1 + extra
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				h := neighbor.Distance(goal)
				heap.Push(pq, &Node{Hex: neighbor, Cost: newCost + h, Heuristic: h, Parent: current})
			}
		}
	}
	return reconstructPath(best), false
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Hex       Hex
	Cost      int // g + h
	Heuristic int
	Parent    *Node
}

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Cost == pq[j].Cost {
		return pq[i].Heuristic < pq[j].Heuristic
	}
	return pq[i].Cost < pq[j].Cost
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Hex {
	path := []Hex{}
	for node != nil {
		path = append([]Hex{node.Hex}, path...)
		node = node.Parent
	}
	return path
}
