// Package unitgraph implements L6: a small labeled directed graph of
// conversion edges between canonical units of the same kind. Every edge
// is stored with its reciprocal, so the graph is conceptually undirected;
// conversion walks it breadth-first and multiplies factors along the
// path, matching spec.md §4.7's "shortest-path multiplication" rule. No
// graph library appears anywhere in the example pack (see DESIGN.md), so
// this is a small hand-rolled adjacency list — exactly the shape spec.md
// §9 asks for ("never store back-pointers that could form ownership
// cycles").
package unitgraph

import "github.com/cookline/ingparse/unit"

type edge struct {
	to     string
	factor float64
}

// Graph is immutable after Build returns.
type Graph struct {
	adj    map[string][]edge
	kindOf map[string]unit.Kind
}

func newGraph() *Graph {
	return &Graph{adj: map[string][]edge{}, kindOf: map[string]unit.Kind{}}
}

func (g *Graph) addEdge(a string, ka unit.Kind, b string, kb unit.Kind, factor float64) {
	if _, ok := g.kindOf[a]; !ok {
		g.kindOf[a] = ka
	}
	if _, ok := g.kindOf[b]; !ok {
		g.kindOf[b] = kb
	}
	g.adj[a] = append(g.adj[a], edge{to: b, factor: factor})
	g.adj[b] = append(g.adj[b], edge{to: a, factor: 1 / factor})
}

// Build constructs the default conversion graph: teaspoon..gallon and
// milliliter/liter within Volume, gram..pound within Mass, second..hour
// within Time. Currency, Energy, Length, Count, SizeWord units have no
// conversion edges — SameKind still reports the unit's Kind via Known.
// Every canonical unit in vocab is registered so a caller's custom units
// are Known (and SameKind-comparable) even without conversion edges.
func Build(vocab *unit.Vocab) *Graph {
	g := newGraph()
	for _, e := range vocab.Canonicals() {
		if _, ok := g.kindOf[e.Canonical]; !ok {
			g.kindOf[e.Canonical] = e.Kind
		}
	}
	v := unit.Volume
	g.addEdge("teaspoon", v, "tablespoon", v, 1.0/3.0)
	g.addEdge("tablespoon", v, "cup", v, 1.0/16.0)
	g.addEdge("tablespoon", v, "fluid ounce", v, 1.0/2.0)
	g.addEdge("cup", v, "pint", v, 1.0/2.0)
	g.addEdge("pint", v, "quart", v, 1.0/2.0)
	g.addEdge("quart", v, "gallon", v, 1.0/4.0)
	g.addEdge("cup", v, "milliliter", v, 236.588236)
	g.addEdge("milliliter", v, "liter", v, 1.0/1000.0)

	m := unit.Mass
	g.addEdge("gram", m, "kilogram", m, 1.0/1000.0)
	g.addEdge("gram", m, "ounce", m, 1.0/28.3495)
	g.addEdge("ounce", m, "pound", m, 1.0/16.0)

	tm := unit.Time
	g.addEdge("second", tm, "minute", tm, 1.0/60.0)
	g.addEdge("minute", tm, "hour", tm, 1.0/60.0)

	return g
}

// Known reports whether unit u has a recorded Kind.
func (g *Graph) Known(u string) bool {
	_, ok := g.kindOf[u]
	return ok
}

// KindOf returns the Kind of a known unit.
func (g *Graph) KindOf(u string) (unit.Kind, bool) {
	k, ok := g.kindOf[u]
	return k, ok
}

// SameKind reports whether a and b are both known and share a Kind.
func (g *Graph) SameKind(a, b string) bool {
	ka, ok1 := g.kindOf[a]
	kb, ok2 := g.kindOf[b]
	return ok1 && ok2 && ka == kb
}

// Convert walks the graph breadth-first from 'from' to 'to', multiplying
// edge factors, and reports false if no path exists (including when
// either unit is unknown).
func (g *Graph) Convert(value float64, from, to string) (float64, bool) {
	if from == to {
		return value, g.Known(from)
	}
	if !g.Known(from) || !g.Known(to) {
		return 0, false
	}
	type item struct {
		name   string
		factor float64
	}
	visited := map[string]bool{from: true}
	queue := []item{{from, 1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.adj[cur.name] {
			if visited[e.to] {
				continue
			}
			visited[e.to] = true
			factor := cur.factor * e.factor
			if e.to == to {
				return value * factor, true
			}
			queue = append(queue, item{e.to, factor})
		}
	}
	return 0, false
}
