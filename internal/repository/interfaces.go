package repository

import (
	"context"

	"taskboard/internal/model"

	"github.com/google/uuid"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type BoardRepositoryInterface interface {
	Create(ctx context.Context, board *model.Board) error
	GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error)
	CountOwned(ctx context.Context, ownerID uuid.UUID) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
	Update(ctx context.Context, board *model.Board) error
	SetGatedColumns(ctx context.Context, id uuid.UUID, names string) error
}

type BoardShareRepositoryInterface interface {
	ShareBoard(ctx context.Context, boardID, userID uuid.UUID, role model.Role) error
	RemoveShare(ctx context.Context, boardID, userID uuid.UUID) error
	GetBoardShares(ctx context.Context, boardID uuid.UUID) ([]model.BoardShare, error)
	GetSharedBoards(ctx context.Context, userID uuid.UUID) ([]model.Board, error)
	GetUserRole(ctx context.Context, boardID, userID uuid.UUID) (model.Role, error)
	CheckAccess(ctx context.Context, boardID, userID uuid.UUID, requiredRole model.Role) (bool, error)
}

type ColumnRepositoryInterface interface {
	Create(ctx context.Context, column *model.Column) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Column, error)
	Update(ctx context.Context, column *model.Column) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountTasks(ctx context.Context, columnID uuid.UUID) (int64, error)
	GetMaxPosition(ctx context.Context, boardID uuid.UUID) (int, error)
	ReorderColumns(ctx context.Context, columns []model.Column) error
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	GetByColumnID(ctx context.Context, columnID uuid.UUID) ([]model.Task, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Task, error)
	GetTasksWithLabels(ctx context.Context, columnID uuid.UUID) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	MoveTask(ctx context.Context, taskID uuid.UUID, columnID uuid.UUID, newPosition int) error
	MoveCascade(ctx context.Context, plan []uuid.UUID, columnID uuid.UUID, taskID uuid.UUID, newPosition int) error
	UpdateWithMove(ctx context.Context, task *model.Task, move *TaskMove) error
	CreateWithCascade(ctx context.Context, task *model.Task, plan []uuid.UUID) error
	AddLabel(ctx context.Context, taskID, labelID uuid.UUID) error
	RemoveLabel(ctx context.Context, taskID, labelID uuid.UUID) error
	AssignUser(ctx context.Context, taskID, userID uuid.UUID) error
	UnassignUser(ctx context.Context, taskID uuid.UUID) error
}

type LabelRepositoryInterface interface {
	Create(ctx context.Context, label *model.Label) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Label, error)
	GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]model.Label, error)
	Update(ctx context.Context, label *model.Label) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetTasksWithLabel(ctx context.Context, labelID uuid.UUID) ([]model.Task, error)
}

var (
	_ UserRepositoryInterface       = (*UserRepository)(nil)
	_ BoardRepositoryInterface      = (*BoardRepository)(nil)
	_ BoardShareRepositoryInterface = (*BoardShareRepository)(nil)
	_ ColumnRepositoryInterface     = (*ColumnRepository)(nil)
	_ TaskRepositoryInterface       = (*TaskRepository)(nil)
	_ LabelRepositoryInterface      = (*LabelRepository)(nil)
)
