package pods

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/longhorn/network"
)

// Form partitions every student of g into pods of at most size members.
//
// Steps:
//  1. Validate: g != nil, size >= 1.
//  2. Sort edges by descending weight (stable, so equal weights keep creation order).
//  3. For each edge (u,v) in different sets whose combined size fits, union and
//     credit the edge weight to the merged set.
//  4. Collect sets in graph order of their first member.
//
// Errors: ErrNilGraph, ErrBadPodSize.
func Form(g *network.Graph, size int) ([]Pod, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadPodSize, size)
	}

	nodes := g.Nodes()
	d := newDSU(len(nodes))
	for _, s := range nodes {
		d.add(s.Name)
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight > edges[j].Weight
	})

	if size > 1 {
		for _, e := range edges {
			ru, rv := d.find(e.From), d.find(e.To)
			if ru == rv || d.size[ru]+d.size[rv] > size {
				continue
			}
			d.union(ru, rv, e.Weight)
		}
	}

	// Collect pods in the order their first member appears.
	index := make(map[string]int, len(nodes))
	pods := make([]Pod, 0, len(nodes))
	for _, s := range nodes {
		root := d.find(s.Name)
		i, ok := index[root]
		if !ok {
			i = len(pods)
			index[root] = i
			pods = append(pods, Pod{Strength: d.weight[root]})
		}
		pods[i].Members = append(pods[i].Members, s.Name)
	}

	return pods, nil
}

// dsu is a disjoint-set forest with path compression and union by size.
// Each root also carries the member count and the accepted edge weight.
type dsu struct {
	parent map[string]string
	size   map[string]int
	weight map[string]int64
}

func newDSU(n int) *dsu {
	return &dsu{
		parent: make(map[string]string, n),
		size:   make(map[string]int, n),
		weight: make(map[string]int64, n),
	}
}

func (d *dsu) add(id string) {
	d.parent[id] = id
	d.size[id] = 1
}

// find returns the root of id, compressing the path on the way up.
func (d *dsu) find(id string) string {
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// union merges two distinct roots and adds w to the merged weight.
func (d *dsu) union(ru, rv string, w int64) {
	if d.size[ru] < d.size[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	d.size[ru] += d.size[rv]
	d.weight[ru] += d.weight[rv] + w
	delete(d.size, rv)
	delete(d.weight, rv)
}
