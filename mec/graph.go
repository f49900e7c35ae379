package mec

import (
	"sort"

	"github.com/katalvlaran/fimdpgo/cmdp"
)

// graph is a mutable adjacency-list view of a CMDP's transition structure,
// ignoring consumption and probability (spec §4.8). It supports the
// remove-vertices step of the outer MEC loop in place, mirroring
// original_source/fimdp/explicit.py's _Graph.
type graph struct {
	adj map[cmdp.StateID][]cmdp.StateID
}

// buildGraph collapses every action's distribution into a plain edge set:
// s -> t whenever some action from s can reach t.
func buildGraph(cm *cmdp.CMDP) (*graph, error) {
	g := &graph{adj: make(map[cmdp.StateID][]cmdp.StateID)}
	for _, s := range cm.States() {
		succs, err := cm.StateSuccessors(s)
		if err != nil {
			return nil, err
		}
		g.adj[s] = succs
	}
	return g, nil
}

func (g *graph) empty() bool { return len(g.adj) == 0 }

// removeVertices deletes every vertex in dead, along with any edge pointing
// at one.
func (g *graph) removeVertices(dead map[cmdp.StateID]bool) {
	for v := range dead {
		delete(g.adj, v)
	}
	for v, succs := range g.adj {
		kept := succs[:0]
		for _, t := range succs {
			if !dead[t] {
				kept = append(kept, t)
			}
		}
		g.adj[v] = kept
	}
}

// checkBSCC reports whether scc has no outgoing edge (every edge from a
// member of scc stays inside scc) — i.e. it is a bottom SCC.
func (g *graph) checkBSCC(scc []cmdp.StateID) bool {
	in := asSet(scc)
	for _, s := range scc {
		for _, t := range g.adj[s] {
			if !in[t] {
				return false
			}
		}
	}
	return true
}

// checkTrivial reports whether scc has no internal edge at all — a single
// state with no self-loop is trivial and cannot be an end-component.
func (g *graph) checkTrivial(scc []cmdp.StateID) bool {
	in := asSet(scc)
	for _, s := range scc {
		for _, t := range g.adj[s] {
			if in[t] {
				return false
			}
		}
	}
	return true
}

func asSet(states []cmdp.StateID) map[cmdp.StateID]bool {
	out := make(map[cmdp.StateID]bool, len(states))
	for _, s := range states {
		out[s] = true
	}
	return out
}

// vertices returns g's vertex set in ascending order, for deterministic
// iteration.
func (g *graph) vertices() []cmdp.StateID {
	out := make([]cmdp.StateID, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// sccs computes g's strongly connected components via an explicit-stack
// Tarjan traversal (avoiding recursion depth on large CMDPs, in the spirit
// of the teacher's dfs package), grounded on
// original_source/fimdp/explicit.py's _SCCUtil. Returned in the algorithm's
// natural reverse-topological order.
func (g *graph) sccs() [][]cmdp.StateID {
	disc := make(map[cmdp.StateID]int)
	low := make(map[cmdp.StateID]int)
	onStack := make(map[cmdp.StateID]bool)
	var vstack []cmdp.StateID
	var out [][]cmdp.StateID
	index := 0

	type frame struct {
		v cmdp.StateID
		i int
	}

	for _, root := range g.vertices() {
		if _, seen := disc[root]; seen {
			continue
		}

		callStack := []frame{{v: root, i: 0}}
		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			v := top.v

			if top.i == 0 {
				disc[v] = index
				low[v] = index
				index++
				onStack[v] = true
				vstack = append(vstack, v)
			}

			descended := false
			adj := g.adj[v]
			for top.i < len(adj) {
				w := adj[top.i]
				top.i++
				if _, seen := disc[w]; !seen {
					callStack = append(callStack, frame{v: w, i: 0})
					descended = true
					break
				}
				if onStack[w] && disc[w] < low[v] {
					low[v] = disc[w]
				}
			}
			if descended {
				continue
			}

			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if low[v] < low[parent.v] {
					low[parent.v] = low[v]
				}
			}

			if low[v] == disc[v] {
				var scc []cmdp.StateID
				for {
					w := vstack[len(vstack)-1]
					vstack = vstack[:len(vstack)-1]
					onStack[w] = false
					scc = append(scc, w)
					if w == v {
						break
					}
				}
				out = append(out, scc)
			}
		}
	}
	return out
}
