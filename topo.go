package seqsim

import "container/heap"

// Topology resolution. The update order is derived from the declared blocks
// alone: a wire is produced by the single block whose outputs contain it,
// unless a register of the same name exists, in which case reads of that
// name are served by the register and carry no same-cycle dependency.
// Registers are therefore the only legal back-edges in the block graph;
// any remaining cycle is a combinational loop and is rejected.

// producerIndex maps each produced wire name to the insertion index of the
// block driving it. Names shadowed by a register are left out. The index
// is rebuilt once per topology computation instead of scanning the block
// set per lookup.
//
func (p *Pipeline) producerIndex() map[string]int {
	idx := make(map[string]int)
	for i, name := range p.added {
		for out := range p.blocks[name].Outputs {
			if _, shadowed := p.registers[out]; shadowed {
				continue
			}
			idx[out] = i
		}
	}
	return idx
}

// blockGraph builds the dependency graph over block insertion indices:
// succ[j] lists the blocks consuming block j's outputs, indeg[i] counts the
// producers block i waits on. Inputs with no producer (dangling wires and
// register reads) contribute no edges; the consuming block still appears
// as an isolated node so it is scheduled.
//
func (p *Pipeline) blockGraph() (succ [][]int, indeg []int) {
	idx := p.producerIndex()
	n := len(p.added)
	succ = make([][]int, n)
	indeg = make([]int, n)
	for i, name := range p.added {
		for _, in := range p.blocks[name].Inputs {
			if j, ok := idx[in]; ok {
				succ[j] = append(succ[j], i)
				indeg[i]++
			}
		}
	}
	return succ, indeg
}

// updateOrder computes a topological order of the block names. Ties among
// ready blocks are broken by insertion index, so the order is stable for a
// given sequence of Add calls. A cycle in the block graph fails with a
// *CycleError carrying a witness path.
//
func (p *Pipeline) updateOrder() ([]string, error) {
	succ, indeg := p.blockGraph()

	ready := &indexHeap{}
	heap.Init(ready)
	for i, d := range indeg {
		if d == 0 {
			heap.Push(ready, i)
		}
	}

	order := make([]string, 0, len(p.added))
	for ready.Len() > 0 {
		i := heap.Pop(ready).(int)
		order = append(order, p.added[i])
		for _, m := range succ[i] {
			indeg[m]--
			if indeg[m] == 0 {
				heap.Push(ready, m)
			}
		}
	}

	if len(order) < len(p.added) {
		return nil, &CycleError{Path: p.findCycle(succ)}
	}
	return order, nil
}

// findCycle extracts one cycle from the block graph as a name path whose
// first and last elements coincide. The DFS walks indices in ascending
// order, so the witness is stable. Only called once updateOrder has proved
// a cycle exists.
//
func (p *Pipeline) findCycle(succ [][]int) []string {
	const (
		white = iota
		gray
		black
	)
	color := make([]int, len(p.added))
	parent := make([]int, len(p.added))
	for i := range parent {
		parent[i] = -1
	}

	var cycle []int
	var dfs func(u int) bool
	dfs = func(u int) bool {
		color[u] = gray
		for _, v := range succ[u] {
			switch color[v] {
			case white:
				parent[v] = u
				if dfs(v) {
					return true
				}
			case gray:
				// back-edge u -> v: walk parents from u back to v.
				cycle = append(cycle, v)
				for cur := u; cur != -1 && cur != v; cur = parent[cur] {
					cycle = append(cycle, cur)
				}
				cycle = append(cycle, v)
				return true
			}
		}
		color[u] = black
		return false
	}
	for i := range p.added {
		if color[i] == white && dfs(i) {
			break
		}
	}

	// the walk above collects the path in reverse.
	path := make([]string, len(cycle))
	for i, idx := range cycle {
		path[len(cycle)-1-i] = p.added[idx]
	}
	return path
}

// min-heap of block insertion indices.
type indexHeap []int

func (h indexHeap) Len() int            { return len(h) }
func (h indexHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *indexHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *indexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
