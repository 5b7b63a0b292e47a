package repository

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

func (r *TaskRepository) GetByColumnID(ctx context.Context, columnID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Where("column_id = ?", columnID).Order("position").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// GetByBoardID returns every task on a board ordered by column position,
// then by position inside the column. This is the snapshot the dependency
// resolver works on.
func (r *TaskRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Labels").
		Joins("JOIN columns ON columns.id = tasks.column_id").
		Where("columns.board_id = ?", boardID).
		Order("columns.position").
		Order("tasks.position").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks of board %s: %w", boardID, err)
	}
	return tasks, nil
}

func (r *TaskRepository) GetTasksWithLabels(ctx context.Context, columnID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Preload("Labels").
		Where("column_id = ?", columnID).
		Order("position").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task, closes the gap it leaves in its column and
// detaches tasks that depended on it.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task model.Task
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		if err := tx.Model(&model.Task{}).
			Where("depends_on = ?", id).
			Update("depends_on", nil).Error; err != nil {
			return fmt.Errorf("detach dependents of %s: %w", id, err)
		}
		if err := tx.Exec("DELETE FROM task_labels WHERE task_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Task{}, "id = ?", id).Error; err != nil {
			return err
		}

		return tx.Model(&model.Task{}).
			Where("column_id = ? AND position > ?", task.ColumnID, task.Position).
			Update("position", gorm.Expr("position - 1")).Error
	})
}

// MoveTask updates the position and/or column of a task
func (r *TaskRepository) MoveTask(ctx context.Context, taskID uuid.UUID, columnID uuid.UUID, newPosition int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return moveTask(tx, taskID, columnID, newPosition)
	})
}

// MoveCascade moves every task of plan, in order, to the end of columnID
// and then moves taskID to newPosition in the same column. All moves share
// one transaction: either the whole cascade lands or nothing does.
func (r *TaskRepository) MoveCascade(ctx context.Context, plan []uuid.UUID, columnID uuid.UUID, taskID uuid.UUID, newPosition int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cascade(tx, plan, columnID); err != nil {
			return err
		}
		return moveTask(tx, taskID, columnID, newPosition)
	})
}

// TaskMove is where an edited task ends up. Plan lists the predecessors to
// move ahead of it, furthest first.
type TaskMove struct {
	ColumnID uuid.UUID
	Position int
	Plan     []uuid.UUID
}

// UpdateWithMove saves the editable fields of task and, when move is set,
// relocates it with its cascade. Everything happens in one transaction.
func (r *TaskRepository) UpdateWithMove(ctx context.Context, task *model.Task, move *TaskMove) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Task{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"due_date":    task.DueDate,
			"depends_on":  task.DependsOn,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		if move == nil {
			return nil
		}

		if err := cascade(tx, move.Plan, move.ColumnID); err != nil {
			return err
		}
		return moveTask(tx, task.ID, move.ColumnID, move.Position)
	})
}

// CreateWithCascade moves plan to the end of task's column and then inserts
// task at its position, shifting later tasks down. A position past the end
// appends.
func (r *TaskRepository) CreateWithCascade(ctx context.Context, task *model.Task, plan []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cascade(tx, plan, task.ColumnID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Task{}).Where("column_id = ?", task.ColumnID).Count(&count).Error; err != nil {
			return err
		}
		if task.Position > int(count) {
			task.Position = int(count)
		}
		if err := tx.Model(&model.Task{}).
			Where("column_id = ? AND position >= ?", task.ColumnID, task.Position).
			Update("position", gorm.Expr("position + 1")).Error; err != nil {
			return err
		}
		return tx.Create(task).Error
	})
}

// cascade appends every task of plan, in order, to the end of columnID.
func cascade(tx *gorm.DB, plan []uuid.UUID, columnID uuid.UUID) error {
	for _, id := range plan {
		var count int64
		if err := tx.Model(&model.Task{}).
			Where("column_id = ? AND id <> ?", columnID, id).
			Count(&count).Error; err != nil {
			return err
		}
		if err := moveTask(tx, id, columnID, int(count)); err != nil {
			return fmt.Errorf("cascade move of %s: %w", id, err)
		}
	}
	return nil
}

func moveTask(tx *gorm.DB, taskID uuid.UUID, columnID uuid.UUID, newPosition int) error {
	var task model.Task
	if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	oldColumnID := task.ColumnID
	oldPosition := task.Position

	if oldColumnID != columnID {
		// close the gap in the old column
		if err := tx.Model(&model.Task{}).
			Where("column_id = ? AND position > ?", oldColumnID, oldPosition).
			Update("position", gorm.Expr("position - 1")).Error; err != nil {
			return err
		}

		// make room in the new one
		if err := tx.Model(&model.Task{}).
			Where("column_id = ? AND position >= ?", columnID, newPosition).
			Update("position", gorm.Expr("position + 1")).Error; err != nil {
			return err
		}
	} else if oldPosition < newPosition {
		if err := tx.Model(&model.Task{}).
			Where("column_id = ? AND position > ? AND position <= ?", columnID, oldPosition, newPosition).
			Update("position", gorm.Expr("position - 1")).Error; err != nil {
			return err
		}
	} else if oldPosition > newPosition {
		if err := tx.Model(&model.Task{}).
			Where("column_id = ? AND position >= ? AND position < ?", columnID, newPosition, oldPosition).
			Update("position", gorm.Expr("position + 1")).Error; err != nil {
			return err
		}
	} else {
		return nil
	}

	return tx.Model(&model.Task{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{"column_id": columnID, "position": newPosition}).Error
}

func (r *TaskRepository) AddLabel(ctx context.Context, taskID, labelID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO task_labels (task_id, label_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		taskID, labelID,
	).Error
}

func (r *TaskRepository) RemoveLabel(ctx context.Context, taskID, labelID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM task_labels WHERE task_id = ? AND label_id = ?",
		taskID, labelID,
	).Error
}

func (r *TaskRepository) AssignUser(ctx context.Context, taskID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", taskID).
		Update("assigned_to", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) UnassignUser(ctx context.Context, taskID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", taskID).
		Update("assigned_to", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
