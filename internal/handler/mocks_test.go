package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board) error {
	return m.Called(ctx, board).Error(0)
}

func (m *MockBoardRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardRepository) CountOwned(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	args := m.Called(ctx, id)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	// handlers mutate the board they get back
	copied := *board.(*model.Board)
	return &copied, args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *model.Board) error {
	return m.Called(ctx, board).Error(0)
}

func (m *MockBoardRepository) SetGatedColumns(ctx context.Context, id uuid.UUID, names string) error {
	return m.Called(ctx, id, names).Error(0)
}

type MockBoardShareRepository struct {
	mock.Mock
}

func (m *MockBoardShareRepository) ShareBoard(ctx context.Context, boardID, userID uuid.UUID, role model.Role) error {
	return m.Called(ctx, boardID, userID, role).Error(0)
}

func (m *MockBoardShareRepository) RemoveShare(ctx context.Context, boardID, userID uuid.UUID) error {
	return m.Called(ctx, boardID, userID).Error(0)
}

func (m *MockBoardShareRepository) GetBoardShares(ctx context.Context, boardID uuid.UUID) ([]model.BoardShare, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).([]model.BoardShare), args.Error(1)
}

func (m *MockBoardShareRepository) GetSharedBoards(ctx context.Context, userID uuid.UUID) ([]model.Board, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardShareRepository) GetUserRole(ctx context.Context, boardID, userID uuid.UUID) (model.Role, error) {
	args := m.Called(ctx, boardID, userID)
	return args.Get(0).(model.Role), args.Error(1)
}

func (m *MockBoardShareRepository) CheckAccess(ctx context.Context, boardID, userID uuid.UUID, requiredRole model.Role) (bool, error) {
	args := m.Called(ctx, boardID, userID, requiredRole)
	return args.Bool(0), args.Error(1)
}

type MockColumnRepository struct {
	mock.Mock
}

func (m *MockColumnRepository) Create(ctx context.Context, column *model.Column) error {
	return m.Called(ctx, column).Error(0)
}

func (m *MockColumnRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error) {
	args := m.Called(ctx, id)
	column := args.Get(0)
	if column == nil {
		return nil, args.Error(1)
	}
	return column.(*model.Column), args.Error(1)
}

func (m *MockColumnRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Column, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).([]model.Column), args.Error(1)
}

func (m *MockColumnRepository) CountTasks(ctx context.Context, columnID uuid.UUID) (int64, error) {
	args := m.Called(ctx, columnID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockColumnRepository) Update(ctx context.Context, column *model.Column) error {
	return m.Called(ctx, column).Error(0)
}

func (m *MockColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockColumnRepository) GetMaxPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	args := m.Called(ctx, boardID)
	return args.Int(0), args.Error(1)
}

func (m *MockColumnRepository) ReorderColumns(ctx context.Context, columns []model.Column) error {
	return m.Called(ctx, columns).Error(0)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	copied := *task.(*model.Task)
	return &copied, args.Error(1)
}

func (m *MockTaskRepository) GetByColumnID(ctx context.Context, columnID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, columnID)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) GetTasksWithLabels(ctx context.Context, columnID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, columnID)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskRepository) MoveTask(ctx context.Context, taskID uuid.UUID, columnID uuid.UUID, newPosition int) error {
	return m.Called(ctx, taskID, columnID, newPosition).Error(0)
}

func (m *MockTaskRepository) MoveCascade(ctx context.Context, plan []uuid.UUID, columnID uuid.UUID, taskID uuid.UUID, newPosition int) error {
	return m.Called(ctx, plan, columnID, taskID, newPosition).Error(0)
}

func (m *MockTaskRepository) UpdateWithMove(ctx context.Context, task *model.Task, move *repository.TaskMove) error {
	return m.Called(ctx, task, move).Error(0)
}

func (m *MockTaskRepository) CreateWithCascade(ctx context.Context, task *model.Task, plan []uuid.UUID) error {
	return m.Called(ctx, task, plan).Error(0)
}

func (m *MockTaskRepository) AddLabel(ctx context.Context, taskID, labelID uuid.UUID) error {
	return m.Called(ctx, taskID, labelID).Error(0)
}

func (m *MockTaskRepository) RemoveLabel(ctx context.Context, taskID, labelID uuid.UUID) error {
	return m.Called(ctx, taskID, labelID).Error(0)
}

func (m *MockTaskRepository) AssignUser(ctx context.Context, taskID, userID uuid.UUID) error {
	return m.Called(ctx, taskID, userID).Error(0)
}

func (m *MockTaskRepository) UnassignUser(ctx context.Context, taskID uuid.UUID) error {
	return m.Called(ctx, taskID).Error(0)
}

type MockLabelRepository struct {
	mock.Mock
}

func (m *MockLabelRepository) Create(ctx context.Context, label *model.Label) error {
	return m.Called(ctx, label).Error(0)
}

func (m *MockLabelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	args := m.Called(ctx, id)
	label := args.Get(0)
	if label == nil {
		return nil, args.Error(1)
	}
	return label.(*model.Label), args.Error(1)
}

func (m *MockLabelRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Label, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).([]model.Label), args.Error(1)
}

func (m *MockLabelRepository) GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]model.Label, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).([]model.Label), args.Error(1)
}

func (m *MockLabelRepository) Update(ctx context.Context, label *model.Label) error {
	return m.Called(ctx, label).Error(0)
}

func (m *MockLabelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLabelRepository) GetTasksWithLabel(ctx context.Context, labelID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, labelID)
	return args.Get(0).([]model.Task), args.Error(1)
}

// asUser stands in for the JWT middleware.
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func doJSON(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}
