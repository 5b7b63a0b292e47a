package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

func (r *LabelRepository) Create(ctx context.Context, label *model.Label) error {
	return r.db.WithContext(ctx).Create(label).Error
}

func (r *LabelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	var label model.Label
	result := r.db.WithContext(ctx).First(&label, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, result.Error
	}
	return &label, nil
}

func (r *LabelRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Label, error) {
	var labels []model.Label
	if err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *LabelRepository) GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]model.Label, error) {
	var labels []model.Label
	err := r.db.WithContext(ctx).
		Joins("JOIN task_labels ON task_labels.label_id = labels.id").
		Where("task_labels.task_id = ?", taskID).
		Find(&labels).Error
	if err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *LabelRepository) Update(ctx context.Context, label *model.Label) error {
	result := r.db.WithContext(ctx).Save(label)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLabelNotFound
	}
	return nil
}

// Delete removes the label and its task attachments.
func (r *LabelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_labels WHERE label_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Label{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLabelNotFound
		}
		return nil
	})
}

func (r *LabelRepository) GetTasksWithLabel(ctx context.Context, labelID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Joins("JOIN task_labels ON task_labels.task_id = tasks.id").
		Where("task_labels.label_id = ?", labelID).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
