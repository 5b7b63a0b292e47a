package dependency

import (
	"taskboard/internal/model"

	"github.com/google/uuid"
)

// Chain returns the predecessors of taskID that sit in a column strictly
// before targetColumnID, nearest first. columns must be in board order.
//
// Nothing is returned when the target column is unknown or not gated. The
// walk stops at the first predecessor that is missing, already at or past
// the target column, in an unknown column, or seen before.
func (g *Graph) Chain(taskID, targetColumnID uuid.UUID, columns []model.Column, gated GatedColumns) []model.Task {
	index := make(map[uuid.UUID]int, len(columns))
	for i, col := range columns {
		if _, ok := index[col.ID]; !ok {
			index[col.ID] = i
		}
	}

	target, ok := index[targetColumnID]
	if !ok || !gated.Contains(columns[target].Title) {
		return nil
	}

	task, ok := g.byID[taskID]
	if !ok {
		return nil
	}

	visited := map[uuid.UUID]bool{taskID: true}
	var chain []model.Task
	for parent := g.parent(task); parent != nil; parent = g.parent(parent) {
		if visited[parent.ID] {
			break
		}
		visited[parent.ID] = true

		pos, known := index[parent.ColumnID]
		if !known || pos >= target {
			break
		}
		chain = append(chain, *parent)
	}
	return chain
}

// FindDependencyChain is Graph.Chain over a fresh snapshot.
func FindDependencyChain(taskID, targetColumnID uuid.UUID, tasks []model.Task, columns []model.Column, gated GatedColumns) []model.Task {
	return NewGraph(tasks).Chain(taskID, targetColumnID, columns, gated)
}

// PlanCascadeMove orders a nearest-first chain for execution: the furthest
// ancestor moves first so no task lands ahead of its own prerequisite. The
// task that triggered the cascade is not included and moves last.
func PlanCascadeMove(chain []model.Task) []model.Task {
	plan := make([]model.Task, len(chain))
	for i, t := range chain {
		plan[len(chain)-1-i] = t
	}
	return plan
}
