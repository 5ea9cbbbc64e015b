package network

// Reachable returns every student connected to name by some chain of
// edges, name first, in breadth-first order. An unknown name yields nil.
func (n *Graph) Reachable(name string) []string {
	if _, ok := n.pop.Lookup(name); !ok {
		return nil
	}
	w := &walker{g: n, visited: make(map[string]bool, n.Len())}

	return w.walk(name)
}

// Components partitions the students into connected groups. Groups are
// ordered by their first member in input order; members are in
// breadth-first order from that first member.
//
// Complexity: O(V + E).
func (n *Graph) Components() [][]string {
	w := &walker{g: n, visited: make(map[string]bool, n.Len())}
	var out [][]string
	for _, id := range n.g.Vertices() {
		if w.visited[id] {
			continue
		}
		out = append(out, w.walk(id))
	}

	return out
}

// walker holds breadth-first search state shared across walks, so one
// walker can sweep every component without revisiting nodes.
type walker struct {
	g       *Graph
	visited map[string]bool
	queue   []string
}

// walk visits everything reachable from start that is not yet visited.
func (w *walker) walk(start string) []string {
	order := []string{}
	w.enqueue(start)
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		order = append(order, id)
		next, err := w.g.g.NeighborIDs(id)
		if err != nil {
			continue
		}
		for _, nb := range next {
			if !w.visited[nb] {
				w.enqueue(nb)
			}
		}
	}

	return order
}

func (w *walker) enqueue(id string) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
}
