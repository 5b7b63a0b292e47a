package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"taskboard/internal/dependency"
	"taskboard/internal/handler"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// taskFixture is a board with Backlog, Next Up, Working On and Done, and
// the chain A <- B <- C sitting in Backlog.
type taskFixture struct {
	owner   uuid.UUID
	board   *model.Board
	columns []model.Column
	tasks   []model.Task

	taskRepo   *MockTaskRepository
	columnRepo *MockColumnRepository
	boardRepo  *MockBoardRepository
	shareRepo  *MockBoardShareRepository
	userRepo   *MockUserRepository
	labelRepo  *MockLabelRepository
}

func newTaskFixture() *taskFixture {
	owner := uuid.New()
	board := &model.Board{ID: uuid.New(), OwnerID: owner, Title: "Release"}

	columns := make([]model.Column, 0, 4)
	for i, title := range []string{"Backlog", "Next Up", "Working On", "Done"} {
		columns = append(columns, model.Column{ID: uuid.New(), BoardID: board.ID, Title: title, Position: i + 1})
	}

	a := model.Task{ID: uuid.New(), ColumnID: columns[0].ID, Title: "A", Position: 0, CreatedBy: owner}
	b := model.Task{ID: uuid.New(), ColumnID: columns[0].ID, Title: "B", Position: 1, CreatedBy: owner, DependsOn: &a.ID}
	c := model.Task{ID: uuid.New(), ColumnID: columns[0].ID, Title: "C", Position: 2, CreatedBy: owner, DependsOn: &b.ID}

	return &taskFixture{
		owner:      owner,
		board:      board,
		columns:    columns,
		tasks:      []model.Task{a, b, c},
		taskRepo:   new(MockTaskRepository),
		columnRepo: new(MockColumnRepository),
		boardRepo:  new(MockBoardRepository),
		shareRepo:  new(MockBoardShareRepository),
		userRepo:   new(MockUserRepository),
		labelRepo:  new(MockLabelRepository),
	}
}

func (f *taskFixture) backlog() model.Column { return f.columns[0] }
func (f *taskFixture) nextUp() model.Column  { return f.columns[1] }
func (f *taskFixture) working() model.Column { return f.columns[2] }
func (f *taskFixture) done() model.Column    { return f.columns[3] }

func (f *taskFixture) taskA() model.Task { return f.tasks[0] }
func (f *taskFixture) taskB() model.Task { return f.tasks[1] }
func (f *taskFixture) taskC() model.Task { return f.tasks[2] }

// start registers the board snapshot on the mocks and returns a router
// acting as userID.
func (f *taskFixture) start(userID uuid.UUID) *gin.Engine {
	f.boardRepo.On("GetByID", mock.Anything, f.board.ID).Return(f.board, nil).Maybe()
	f.columnRepo.On("GetByBoardID", mock.Anything, f.board.ID).Return(f.columns, nil).Maybe()
	for i := range f.columns {
		f.columnRepo.On("GetByID", mock.Anything, f.columns[i].ID).Return(&f.columns[i], nil).Maybe()
	}
	f.taskRepo.On("GetByBoardID", mock.Anything, f.board.ID).Return(f.tasks, nil).Maybe()
	for i := range f.tasks {
		f.taskRepo.On("GetByID", mock.Anything, f.tasks[i].ID).Return(&f.tasks[i], nil).Maybe()
	}
	f.userRepo.On("GetByID", mock.Anything, f.owner).
		Return(&model.User{ID: f.owner, Name: "Owner", Email: "owner@example.com"}, nil).Maybe()

	gated := dependency.NewGatedColumns("Next Up", "Working On")
	tasks := handler.NewTaskHandler(f.taskRepo, f.columnRepo, f.boardRepo, f.shareRepo, f.userRepo, f.labelRepo, gated)
	deps := handler.NewDependencyHandler(f.taskRepo, f.boardRepo, f.shareRepo, f.userRepo, gated)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asUser(userID))
	r.POST("/tasks", tasks.Create)
	r.GET("/tasks/:id", tasks.GetByID)
	r.PUT("/tasks/:id", tasks.Update)
	r.POST("/tasks/:id/move", tasks.MoveTask)
	r.GET("/tasks/:id/dependency-chain", tasks.DependencyChain)
	r.GET("/columns/:id/tasks", tasks.GetByColumnID)
	r.GET("/boards/:id/tasks", deps.BoardTasks)
	r.GET("/boards/:id/task-tree", deps.TaskTree)
	r.GET("/boards/:id/gated-columns", deps.GetGatedColumns)
	r.PUT("/boards/:id/gated-columns", deps.UpdateGatedColumns)
	return r
}

func summaryIDs(items []handler.TaskSummary) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func strPtr(s string) *string { return &s }

func TestMoveTask_UnconfirmedCascadeConflicts(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	resp := doJSON(router, http.MethodPost, "/tasks/"+f.taskC().ID.String()+"/move", handler.TaskMoveRequest{
		ColumnID: f.nextUp().ID.String(),
		Position: 0,
	})

	require.Equal(t, http.StatusConflict, resp.Code)

	var body handler.CascadeResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Gated)
	assert.Equal(t, []string{f.taskB().ID.String(), f.taskA().ID.String()}, summaryIDs(body.Chain))
	assert.Equal(t, []string{f.taskA().ID.String(), f.taskB().ID.String()}, summaryIDs(body.Plan))

	f.taskRepo.AssertNotCalled(t, "MoveTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.taskRepo.AssertNotCalled(t, "MoveCascade", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMoveTask_ConfirmedCascadeMovesAncestorsFirst(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	plan := []uuid.UUID{f.taskA().ID, f.taskB().ID}
	f.taskRepo.On("MoveCascade", mock.Anything, plan, f.nextUp().ID, f.taskC().ID, 0).Return(nil).Once()

	resp := doJSON(router, http.MethodPost, "/tasks/"+f.taskC().ID.String()+"/move", handler.TaskMoveRequest{
		ColumnID:       f.nextUp().ID.String(),
		Position:       0,
		ConfirmCascade: true,
	})

	require.Equal(t, http.StatusOK, resp.Code)

	var body handler.MoveResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{
		f.taskA().ID.String(),
		f.taskB().ID.String(),
		f.taskC().ID.String(),
	}, body.Moved)

	f.taskRepo.AssertExpectations(t)
	f.taskRepo.AssertNotCalled(t, "MoveTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMoveTask_CascadeFailureReportsError(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	f.taskRepo.On("MoveCascade", mock.Anything, mock.Anything, f.nextUp().ID, f.taskC().ID, 0).
		Return(errors.New("deadlock detected"))

	resp := doJSON(router, http.MethodPost, "/tasks/"+f.taskC().ID.String()+"/move", handler.TaskMoveRequest{
		ColumnID:       f.nextUp().ID.String(),
		ConfirmCascade: true,
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestMoveTask_UngatedColumnMovesDirectly(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	f.taskRepo.On("MoveTask", mock.Anything, f.taskC().ID, f.done().ID, 1).Return(nil).Once()

	resp := doJSON(router, http.MethodPost, "/tasks/"+f.taskC().ID.String()+"/move", handler.TaskMoveRequest{
		ColumnID: f.done().ID.String(),
		Position: 1,
	})

	require.Equal(t, http.StatusOK, resp.Code)

	var body handler.MoveResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{f.taskC().ID.String()}, body.Moved)
	f.taskRepo.AssertExpectations(t)
}

func TestMoveTask_PredecessorsAlreadyAhead(t *testing.T) {
	f := newTaskFixture()
	f.tasks[0].ColumnID = f.working().ID
	f.tasks[1].ColumnID = f.working().ID
	router := f.start(f.owner)

	f.taskRepo.On("MoveTask", mock.Anything, f.taskC().ID, f.nextUp().ID, 0).Return(nil).Once()

	resp := doJSON(router, http.MethodPost, "/tasks/"+f.taskC().ID.String()+"/move", handler.TaskMoveRequest{
		ColumnID: f.nextUp().ID.String(),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	f.taskRepo.AssertExpectations(t)
}

func TestMoveTask_ReorderWithinColumnSkipsCascade(t *testing.T) {
	f := newTaskFixture()
	for i := range f.tasks {
		f.tasks[i].ColumnID = f.nextUp().ID
	}
	// A sits behind in Backlog, but C stays where it is
	f.tasks[0].ColumnID = f.backlog().ID
	router := f.start(f.owner)

	f.taskRepo.On("MoveTask", mock.Anything, f.taskC().ID, f.nextUp().ID, 0).Return(nil).Once()

	resp := doJSON(router, http.MethodPost, "/tasks/"+f.taskC().ID.String()+"/move", handler.TaskMoveRequest{
		ColumnID: f.nextUp().ID.String(),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	f.taskRepo.AssertExpectations(t)
}

func TestMoveTask_BoardGatedColumnsOverrideDefault(t *testing.T) {
	f := newTaskFixture()
	f.board.GatedColumns = "done"
	router := f.start(f.owner)

	f.taskRepo.On("MoveTask", mock.Anything, f.taskC().ID, f.nextUp().ID, 0).Return(nil).Once()

	resp := doJSON(router, http.MethodPost, "/tasks/"+f.taskC().ID.String()+"/move", handler.TaskMoveRequest{
		ColumnID: f.nextUp().ID.String(),
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(router, http.MethodPost, "/tasks/"+f.taskC().ID.String()+"/move", handler.TaskMoveRequest{
		ColumnID: f.done().ID.String(),
	})
	assert.Equal(t, http.StatusConflict, resp.Code)

	f.taskRepo.AssertExpectations(t)
}

func TestMoveTask_ColumnFromAnotherBoard(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	foreign := model.Column{ID: uuid.New(), BoardID: uuid.New(), Title: "Next Up"}
	f.columnRepo.On("GetByID", mock.Anything, foreign.ID).Return(&foreign, nil)

	resp := doJSON(router, http.MethodPost, "/tasks/"+f.taskC().ID.String()+"/move", handler.TaskMoveRequest{
		ColumnID: foreign.ID.String(),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMoveTask_ViewerCannotMove(t *testing.T) {
	f := newTaskFixture()
	viewer := uuid.New()
	router := f.start(viewer)

	f.shareRepo.On("CheckAccess", mock.Anything, f.board.ID, viewer, model.RoleEditor).Return(false, nil)

	resp := doJSON(router, http.MethodPost, "/tasks/"+f.taskC().ID.String()+"/move", handler.TaskMoveRequest{
		ColumnID: f.done().ID.String(),
	})

	assert.Equal(t, http.StatusForbidden, resp.Code)
	f.shareRepo.AssertExpectations(t)
}

func TestMoveTask_TaskNotFound(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	missing := uuid.New()
	f.taskRepo.On("GetByID", mock.Anything, missing).Return(nil, repository.ErrTaskNotFound)

	resp := doJSON(router, http.MethodPost, "/tasks/"+missing.String()+"/move", handler.TaskMoveRequest{
		ColumnID: f.done().ID.String(),
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDependencyChain_Preview(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	resp := doJSON(router, http.MethodGet,
		"/tasks/"+f.taskC().ID.String()+"/dependency-chain?column_id="+f.working().ID.String(), nil)

	require.Equal(t, http.StatusOK, resp.Code)

	var body handler.CascadeResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Gated)
	assert.Empty(t, body.Error)
	assert.Equal(t, []string{f.taskB().ID.String(), f.taskA().ID.String()}, summaryIDs(body.Chain))
	assert.Equal(t, []string{f.taskA().ID.String(), f.taskB().ID.String()}, summaryIDs(body.Plan))
}

func TestDependencyChain_UngatedTarget(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	resp := doJSON(router, http.MethodGet,
		"/tasks/"+f.taskC().ID.String()+"/dependency-chain?column_id="+f.done().ID.String(), nil)

	require.Equal(t, http.StatusOK, resp.Code)

	var body handler.CascadeResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.False(t, body.Gated)
	assert.Empty(t, body.Chain)
	assert.Empty(t, body.Plan)
}

func TestUpdateTask_RejectsDependencyCycle(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	resp := doJSON(router, http.MethodPut, "/tasks/"+f.taskA().ID.String(), handler.TaskRequest{
		Title:     "A",
		ColumnID:  f.backlog().ID.String(),
		Position:  new(int),
		DependsOn: strPtr(f.taskC().ID.String()),
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Dependency would create a cycle", body["error"])
	f.taskRepo.AssertNotCalled(t, "UpdateWithMove", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTask_RejectsSelfDependency(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	resp := doJSON(router, http.MethodPut, "/tasks/"+f.taskB().ID.String(), handler.TaskRequest{
		Title:     "B",
		ColumnID:  f.backlog().ID.String(),
		DependsOn: strPtr(f.taskB().ID.String()),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	f.taskRepo.AssertNotCalled(t, "UpdateWithMove", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTask_ClearsDependency(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	f.taskRepo.On("UpdateWithMove", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
		return task.ID == f.taskC().ID && task.DependsOn == nil && task.Title == "C renamed"
	}), (*repository.TaskMove)(nil)).Return(nil).Once()

	resp := doJSON(router, http.MethodPut, "/tasks/"+f.taskC().ID.String(), handler.TaskRequest{
		Title:    "C renamed",
		ColumnID: f.backlog().ID.String(),
	})

	require.Equal(t, http.StatusOK, resp.Code)

	var body handler.TaskResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Nil(t, body.DependsOn)
	f.taskRepo.AssertExpectations(t)
}

func TestUpdateTask_ColumnChangeNeedsConfirmation(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	resp := doJSON(router, http.MethodPut, "/tasks/"+f.taskC().ID.String(), handler.TaskRequest{
		Title:     "C",
		ColumnID:  f.working().ID.String(),
		DependsOn: strPtr(f.taskB().ID.String()),
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	f.taskRepo.AssertNotCalled(t, "UpdateWithMove", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTask_NewPredecessorIsGated(t *testing.T) {
	f := newTaskFixture()
	x := model.Task{ID: uuid.New(), ColumnID: f.backlog().ID, Title: "X", Position: 3, CreatedBy: f.owner}
	f.tasks = append(f.tasks, x)
	router := f.start(f.owner)

	// A has no predecessor yet, so only the requested one can hold it back
	resp := doJSON(router, http.MethodPut, "/tasks/"+f.taskA().ID.String(), handler.TaskRequest{
		Title:     "A",
		ColumnID:  f.working().ID.String(),
		DependsOn: strPtr(x.ID.String()),
	})

	require.Equal(t, http.StatusConflict, resp.Code)

	var body handler.CascadeResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{x.ID.String()}, summaryIDs(body.Chain))
	f.taskRepo.AssertNotCalled(t, "UpdateWithMove", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTask_ConfirmedCascadeIsOneCall(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	want := &repository.TaskMove{
		ColumnID: f.working().ID,
		Position: 0,
		Plan:     []uuid.UUID{f.taskA().ID, f.taskB().ID},
	}
	f.taskRepo.On("UpdateWithMove", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
		return task.ID == f.taskC().ID && task.Title == "C renamed"
	}), want).Return(nil).Once()

	resp := doJSON(router, http.MethodPut, "/tasks/"+f.taskC().ID.String(), handler.TaskRequest{
		Title:          "C renamed",
		ColumnID:       f.working().ID.String(),
		Position:       new(int),
		DependsOn:      strPtr(f.taskB().ID.String()),
		ConfirmCascade: true,
	})

	require.Equal(t, http.StatusOK, resp.Code)

	var body handler.TaskResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, f.working().ID.String(), body.ColumnID)
	f.taskRepo.AssertExpectations(t)
	f.taskRepo.AssertNotCalled(t, "MoveCascade", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.taskRepo.AssertNotCalled(t, "MoveTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTask_FailureReportsError(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	f.taskRepo.On("UpdateWithMove", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("constraint violated")).Once()

	resp := doJSON(router, http.MethodPut, "/tasks/"+f.taskC().ID.String(), handler.TaskRequest{
		Title:          "C",
		ColumnID:       f.working().ID.String(),
		DependsOn:      strPtr(f.taskB().ID.String()),
		ConfirmCascade: true,
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	f.taskRepo.AssertNotCalled(t, "MoveCascade", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTask_IntoGatedColumnNeedsConfirmation(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	resp := doJSON(router, http.MethodPost, "/tasks", handler.TaskRequest{
		Title:     "D",
		ColumnID:  f.working().ID.String(),
		DependsOn: strPtr(f.taskC().ID.String()),
	})

	require.Equal(t, http.StatusConflict, resp.Code)

	var body handler.CascadeResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{f.taskC().ID.String(), f.taskB().ID.String(), f.taskA().ID.String()}, summaryIDs(body.Chain))
	assert.Equal(t, []string{f.taskA().ID.String(), f.taskB().ID.String(), f.taskC().ID.String()}, summaryIDs(body.Plan))
	f.taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.taskRepo.AssertNotCalled(t, "CreateWithCascade", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTask_ConfirmedCascade(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	f.taskRepo.On("GetByColumnID", mock.Anything, f.working().ID).Return([]model.Task{}, nil)
	plan := []uuid.UUID{f.taskA().ID, f.taskB().ID, f.taskC().ID}
	f.taskRepo.On("CreateWithCascade", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
		return task.ColumnID == f.working().ID && task.Position == 3 &&
			task.DependsOn != nil && *task.DependsOn == f.taskC().ID
	}), plan).Return(nil).Once()

	resp := doJSON(router, http.MethodPost, "/tasks", handler.TaskRequest{
		Title:          "D",
		ColumnID:       f.working().ID.String(),
		DependsOn:      strPtr(f.taskC().ID.String()),
		ConfirmCascade: true,
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	f.taskRepo.AssertExpectations(t)
	f.taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTask_WithDependency(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	f.taskRepo.On("GetByColumnID", mock.Anything, f.backlog().ID).Return(f.tasks, nil)
	f.taskRepo.On("Create", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
		return task.DependsOn != nil && *task.DependsOn == f.taskC().ID &&
			task.Position == 3 && task.CreatedBy == f.owner
	})).Return(nil).Once()

	resp := doJSON(router, http.MethodPost, "/tasks", handler.TaskRequest{
		Title:     "D",
		ColumnID:  f.backlog().ID.String(),
		DependsOn: strPtr(f.taskC().ID.String()),
	})

	require.Equal(t, http.StatusCreated, resp.Code)

	var body handler.TaskResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotNil(t, body.DependsOn)
	assert.Equal(t, f.taskC().ID.String(), *body.DependsOn)
	assert.Equal(t, "Owner", body.CreatorName)
	f.taskRepo.AssertExpectations(t)
}

func TestCreateTask_DependencyMustBeOnSameBoard(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	resp := doJSON(router, http.MethodPost, "/tasks", handler.TaskRequest{
		Title:     "D",
		ColumnID:  f.backlog().ID.String(),
		DependsOn: strPtr(uuid.NewString()),
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Dependency must be a task on the same board", body["error"])
	f.taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetByColumnID_ListsParentsFirst(t *testing.T) {
	f := newTaskFixture()
	router := f.start(f.owner)

	reversed := []model.Task{f.taskC(), f.taskB(), f.taskA()}
	f.taskRepo.On("GetTasksWithLabels", mock.Anything, f.backlog().ID).Return(reversed, nil)

	resp := doJSON(router, http.MethodGet, "/columns/"+f.backlog().ID.String()+"/tasks", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var body []handler.TaskResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body, 3)
	for i, want := range []model.Task{f.taskA(), f.taskB(), f.taskC()} {
		assert.Equal(t, want.ID.String(), body[i].ID)
		require.NotNil(t, body[i].Depth)
		assert.Equal(t, i, *body[i].Depth)
	}
}
