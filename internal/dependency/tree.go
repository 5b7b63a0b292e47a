package dependency

import (
	"taskboard/internal/model"

	"github.com/google/uuid"
)

// Tree is the parent -> children adjacency used by the hierarchical list.
type Tree struct {
	Roots    []Node
	Children map[uuid.UUID][]Node
}

// BuildTree groups tasks under their predecessor. A task whose
// predecessor is not in tasks (e.g. filtered out) becomes a root. Tasks
// stuck in a loop with no root are promoted to roots, so every task shows
// up exactly once and the tree stays acyclic.
func BuildTree(tasks []model.Task) Tree {
	g := NewGraph(tasks)
	nodes := g.Ranked()

	tree := Tree{Children: make(map[uuid.UUID][]Node)}
	for _, n := range nodes {
		p := g.parent(&n.Task)
		if p == nil || p.ID == n.Task.ID {
			tree.Roots = append(tree.Roots, n)
			continue
		}
		tree.Children[p.ID] = append(tree.Children[p.ID], n)
	}

	reached := make(map[uuid.UUID]bool, len(nodes))
	var mark func(id uuid.UUID)
	mark = func(id uuid.UUID) {
		if reached[id] {
			return
		}
		reached[id] = true
		for _, child := range tree.Children[id] {
			mark(child.Task.ID)
		}
	}
	for _, root := range tree.Roots {
		mark(root.Task.ID)
	}

	for _, n := range nodes {
		if reached[n.Task.ID] {
			continue
		}
		p := g.parent(&n.Task)
		tree.Children[p.ID] = removeNode(tree.Children[p.ID], n.Task.ID)
		tree.Roots = append(tree.Roots, n)
		mark(n.Task.ID)
	}
	return tree
}

func removeNode(nodes []Node, id uuid.UUID) []Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n.Task.ID != id {
			out = append(out, n)
		}
	}
	return out
}
