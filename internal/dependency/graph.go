package dependency

import (
	"slices"

	"taskboard/internal/model"

	"github.com/google/uuid"
)

// Graph indexes a task snapshot by id so that predecessor lookups are O(1).
type Graph struct {
	tasks []model.Task
	byID  map[uuid.UUID]*model.Task
}

// Node is a task annotated with its dependency depth.
type Node struct {
	Task  model.Task
	Depth int
}

// NewGraph builds the id index. On duplicate ids the first task wins.
func NewGraph(tasks []model.Task) *Graph {
	g := &Graph{
		tasks: tasks,
		byID:  make(map[uuid.UUID]*model.Task, len(tasks)),
	}
	for i := range tasks {
		if _, ok := g.byID[tasks[i].ID]; !ok {
			g.byID[tasks[i].ID] = &tasks[i]
		}
	}
	return g
}

// Task returns the indexed task with the given id.
func (g *Graph) Task(id uuid.UUID) (*model.Task, bool) {
	t, ok := g.byID[id]
	return t, ok
}

func (g *Graph) parent(t *model.Task) *model.Task {
	if t.DependsOn == nil {
		return nil
	}
	return g.byID[*t.DependsOn]
}

// Depth counts the resolvable hops from task up to a root. The task does
// not need to be part of the graph. When an id repeats on the way up the
// hops counted so far are returned.
func (g *Graph) Depth(task model.Task) int {
	visited := map[uuid.UUID]bool{task.ID: true}
	depth := 0
	for cur := g.parent(&task); cur != nil; cur = g.parent(cur) {
		if visited[cur.ID] {
			break
		}
		visited[cur.ID] = true
		depth++
	}
	return depth
}

// Ranked returns every task with its depth, stably sorted by ascending
// depth. Tasks of equal depth keep their snapshot order.
func (g *Graph) Ranked() []Node {
	nodes := make([]Node, len(g.tasks))
	for i, t := range g.tasks {
		nodes[i] = Node{Task: t, Depth: g.Depth(t)}
	}
	slices.SortStableFunc(nodes, func(a, b Node) int {
		return a.Depth - b.Depth
	})
	return nodes
}

// WouldCycle reports whether making taskID depend on dependsOn closes a
// loop, including the trivial self-dependency.
func (g *Graph) WouldCycle(taskID, dependsOn uuid.UUID) bool {
	if taskID == dependsOn {
		return true
	}
	visited := make(map[uuid.UUID]bool)
	for cur := g.byID[dependsOn]; cur != nil; cur = g.parent(cur) {
		if cur.ID == taskID {
			return true
		}
		// an older loop that does not involve taskID
		if visited[cur.ID] {
			return false
		}
		visited[cur.ID] = true
	}
	return false
}

// ComputeDepth returns the dependency depth of task within tasks.
func ComputeDepth(task model.Task, tasks []model.Task) int {
	return NewGraph(tasks).Depth(task)
}

// SortByDependencyDepth returns tasks stably ordered so that a parent is
// listed before the tasks depending on it.
func SortByDependencyDepth(tasks []model.Task) []model.Task {
	nodes := NewGraph(tasks).Ranked()
	sorted := make([]model.Task, len(nodes))
	for i, n := range nodes {
		sorted[i] = n.Task
	}
	return sorted
}
