package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"taskboard/internal/dependency"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	boardGuard
	taskRepo   repository.TaskRepositoryInterface
	columnRepo repository.ColumnRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	labelRepo  repository.LabelRepositoryInterface
}

// NewTaskHandler wires the task endpoints. gated is the server-wide set of
// gated column names, used for boards without their own override.
func NewTaskHandler(
	taskRepo repository.TaskRepositoryInterface,
	columnRepo repository.ColumnRepositoryInterface,
	boardRepo repository.BoardRepositoryInterface,
	boardShareRepo repository.BoardShareRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	labelRepo repository.LabelRepositoryInterface,
	gated dependency.GatedColumns,
) *TaskHandler {
	return &TaskHandler{
		boardGuard: boardGuard{boardRepo: boardRepo, boardShareRepo: boardShareRepo, defaultGated: gated},
		taskRepo:   taskRepo,
		columnRepo: columnRepo,
		userRepo:   userRepo,
		labelRepo:  labelRepo,
	}
}

// TaskRequest is the body of task create and update.
type TaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	ColumnID    string     `json:"column_id" binding:"required,uuid"`
	DueDate     *time.Time `json:"due_date"`
	Position    *int       `json:"position" binding:"omitempty,min=0"`
	DependsOn   *string    `json:"depends_on" binding:"omitempty,uuid"`
	// ConfirmCascade accepts moving predecessors along when the update
	// changes the column.
	ConfirmCascade bool `json:"confirm_cascade"`
}

// TaskMoveRequest is the body of POST /tasks/:id/move.
type TaskMoveRequest struct {
	ColumnID       string `json:"column_id" binding:"required,uuid"`
	Position       int    `json:"position" binding:"min=0"`
	ConfirmCascade bool   `json:"confirm_cascade"`
}

type TaskAssignRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type TaskDueDateRequest struct {
	DueDate *time.Time `json:"due_date"`
}

type TaskResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	ColumnID     string          `json:"column_id"`
	AssignedTo   *string         `json:"assigned_to,omitempty"`
	AssigneeName *string         `json:"assignee_name,omitempty"`
	CreatedBy    string          `json:"created_by"`
	CreatorName  string          `json:"creator_name"`
	DueDate      *string         `json:"due_date,omitempty"`
	Position     int             `json:"position"`
	DependsOn    *string         `json:"depends_on,omitempty"`
	Depth        *int            `json:"depth,omitempty"`
	Labels       []LabelResponse `json:"labels,omitempty"`
}

type LabelResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TaskSummary identifies a task inside a dependency chain or move plan.
type TaskSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ColumnID string `json:"column_id"`
}

// CascadeResponse describes the predecessors that have to move with a task.
// Chain is nearest predecessor first, Plan is the execution order.
type CascadeResponse struct {
	Error string        `json:"error,omitempty"`
	Gated bool          `json:"gated"`
	Chain []TaskSummary `json:"chain"`
	Plan  []TaskSummary `json:"plan"`
}

type MoveResponse struct {
	Message string   `json:"message"`
	Moved   []string `json:"moved"`
}

func summarize(tasks []model.Task) []TaskSummary {
	out := make([]TaskSummary, len(tasks))
	for i, t := range tasks {
		out[i] = TaskSummary{ID: t.ID.String(), Title: t.Title, ColumnID: t.ColumnID.String()}
	}
	return out
}

func newTaskResponse(task *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		ColumnID:    task.ColumnID.String(),
		CreatedBy:   task.CreatedBy.String(),
		Position:    task.Position,
	}
	if task.DueDate != nil {
		dueDate := task.DueDate.Format(time.RFC3339)
		resp.DueDate = &dueDate
	}
	if task.AssignedTo != nil {
		assignedTo := task.AssignedTo.String()
		resp.AssignedTo = &assignedTo
	}
	if task.DependsOn != nil {
		dependsOn := task.DependsOn.String()
		resp.DependsOn = &dependsOn
	}
	for _, label := range task.Labels {
		resp.Labels = append(resp.Labels, LabelResponse{
			ID:    label.ID.String(),
			Name:  label.Name,
			Color: label.Color,
		})
	}
	return resp
}

// userNames resolves creator and assignee names, caching lookups.
type userNames struct {
	repo  repository.UserRepositoryInterface
	cache map[uuid.UUID]string
}

func newUserNames(repo repository.UserRepositoryInterface) *userNames {
	return &userNames{repo: repo, cache: make(map[uuid.UUID]string)}
}

func (u *userNames) name(ctx context.Context, id uuid.UUID) (string, bool) {
	if name, ok := u.cache[id]; ok {
		return name, true
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil || user == nil {
		return "", false
	}
	u.cache[id] = user.Name
	return user.Name, true
}

func (u *userNames) fill(ctx context.Context, resp *TaskResponse, task *model.Task) {
	if name, ok := u.name(ctx, task.CreatedBy); ok {
		resp.CreatorName = name
	}
	if task.AssignedTo != nil {
		if name, ok := u.name(ctx, *task.AssignedTo); ok {
			resp.AssigneeName = &name
		}
	}
}

// loadTask resolves :id to a task the user may act on with role.
func (h *TaskHandler) loadTask(c *gin.Context, userID uuid.UUID, role model.Role, denied string) (*model.Task, *model.Board, bool) {
	taskID, ok := paramID(c, "id", "task")
	if !ok {
		return nil, nil, false
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return nil, nil, false
	}

	column, err := h.columnRepo.GetByID(c.Request.Context(), task.ColumnID)
	if err != nil || column == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return nil, nil, false
	}

	board, ok := h.authorize(c, column.BoardID, userID, role, denied)
	if !ok {
		return nil, nil, false
	}
	return task, board, true
}

// targetColumn resolves a column id from a request body and checks that it
// belongs to boardID.
func (h *TaskHandler) targetColumn(c *gin.Context, raw string, boardID uuid.UUID) (*model.Column, bool) {
	columnID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return nil, false
	}

	column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve target column"})
		return nil, false
	}
	if column == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Target column not found"})
		return nil, false
	}
	if column.BoardID != boardID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot move task to a column from another board"})
		return nil, false
	}
	return column, true
}

// checkDependency validates a requested predecessor for taskID (uuid.Nil
// for a task that does not exist yet).
func (h *TaskHandler) checkDependency(c *gin.Context, boardID, taskID uuid.UUID, raw *string) (*uuid.UUID, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	dependsOn, err := uuid.Parse(*raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid depends_on format"})
		return nil, false
	}

	tasks, err := h.taskRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return nil, false
	}

	graph := dependency.NewGraph(tasks)
	if _, ok := graph.Task(dependsOn); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dependency must be a task on the same board"})
		return nil, false
	}
	if taskID != uuid.Nil && graph.WouldCycle(taskID, dependsOn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dependency would create a cycle"})
		return nil, false
	}
	return &dependsOn, true
}

// dependencyChain computes the predecessors that must travel with moving
// into targetColumnID on board. moving is the task as it will be once the
// request lands: its predecessor may differ from the stored one, and a task
// being created is not stored at all.
func (h *TaskHandler) dependencyChain(ctx context.Context, board *model.Board, moving model.Task, targetColumnID uuid.UUID) ([]model.Task, bool, error) {
	columns, err := h.columnRepo.GetByBoardID(ctx, board.ID)
	if err != nil {
		return nil, false, err
	}
	tasks, err := h.taskRepo.GetByBoardID(ctx, board.ID)
	if err != nil {
		return nil, false, err
	}

	snapshot := make([]model.Task, 0, len(tasks)+1)
	found := false
	for _, t := range tasks {
		if t.ID == moving.ID {
			t = moving
			found = true
		}
		snapshot = append(snapshot, t)
	}
	if !found {
		snapshot = append(snapshot, moving)
	}

	gated := h.gatedColumns(board)
	isGated := false
	for _, col := range columns {
		if col.ID == targetColumnID {
			isGated = gated.Contains(col.Title)
			break
		}
	}
	return dependency.FindDependencyChain(moving.ID, targetColumnID, snapshot, columns, gated), isGated, nil
}

// cascadePlan returns the predecessors, furthest first, that have to move
// ahead of moving into column. When there are some and confirm is unset a
// 409 listing the cascade is written and ok is false.
func (h *TaskHandler) cascadePlan(c *gin.Context, board *model.Board, moving model.Task, column *model.Column, confirm bool) ([]model.Task, bool) {
	chain, _, err := h.dependencyChain(c.Request.Context(), board, moving, column.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check dependencies"})
		return nil, false
	}
	if len(chain) == 0 {
		return nil, true
	}

	plan := dependency.PlanCascadeMove(chain)
	if !confirm {
		c.JSON(http.StatusConflict, CascadeResponse{
			Error: "Dependency cascade required",
			Gated: true,
			Chain: summarize(chain),
			Plan:  summarize(plan),
		})
		return nil, false
	}
	return plan, true
}

func taskIDs(tasks []model.Task) []uuid.UUID {
	ids := make([]uuid.UUID, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// move puts task into column at position, dragging lagging predecessors
// along when the column is gated and confirm is set. It returns the ids
// moved, in order.
func (h *TaskHandler) move(c *gin.Context, board *model.Board, task *model.Task, column *model.Column, position int, confirm bool) ([]string, bool) {
	ctx := c.Request.Context()

	var plan []model.Task
	if column.ID != task.ColumnID {
		var ok bool
		if plan, ok = h.cascadePlan(c, board, *task, column, confirm); !ok {
			return nil, false
		}
	}

	if len(plan) == 0 {
		if err := h.taskRepo.MoveTask(ctx, task.ID, column.ID, position); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move task"})
			return nil, false
		}
		return []string{task.ID.String()}, true
	}

	if err := h.taskRepo.MoveCascade(ctx, taskIDs(plan), column.ID, task.ID, position); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move task"})
		return nil, false
	}
	moved := make([]string, 0, len(plan)+1)
	for _, t := range plan {
		moved = append(moved, t.ID.String())
	}
	return append(moved, task.ID.String()), true
}

func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	columnID, err := uuid.Parse(req.ColumnID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}

	column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return
	}
	if column == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	board, ok := h.authorize(c, column.BoardID, userID, model.RoleEditor, "You don't have permission to create tasks on this board")
	if !ok {
		return
	}

	dependsOn, ok := h.checkDependency(c, column.BoardID, uuid.Nil, req.DependsOn)
	if !ok {
		return
	}

	task := &model.Task{
		ID:          uuid.New(),
		ColumnID:    columnID,
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   userID,
		DueDate:     req.DueDate,
		DependsOn:   dependsOn,
	}

	// entering a gated column is gated the same way on creation
	var plan []model.Task
	if dependsOn != nil {
		if plan, ok = h.cascadePlan(c, board, *task, column, req.ConfirmCascade); !ok {
			return
		}
	}

	// append to the end of the column unless a position was given
	if req.Position != nil {
		task.Position = *req.Position
	} else {
		tasks, err := h.taskRepo.GetByColumnID(c.Request.Context(), columnID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
			return
		}
		task.Position = len(tasks) + len(plan)
	}

	if len(plan) == 0 {
		err = h.taskRepo.Create(c.Request.Context(), task)
	} else {
		err = h.taskRepo.CreateWithCascade(c.Request.Context(), task, taskIDs(plan))
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	resp := newTaskResponse(task)
	newUserNames(h.userRepo).fill(c.Request.Context(), &resp, task)
	c.JSON(http.StatusCreated, resp)
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, _, ok := h.loadTask(c, userID, model.RoleViewer, "You don't have permission to view this task")
	if !ok {
		return
	}

	labels, err := h.labelRepo.GetByTaskID(c.Request.Context(), task.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve labels"})
		return
	}
	task.Labels = labels

	resp := newTaskResponse(task)
	newUserNames(h.userRepo).fill(c.Request.Context(), &resp, task)
	c.JSON(http.StatusOK, resp)
}

// GetByColumnID lists a column's tasks, predecessors before dependents.
func (h *TaskHandler) GetByColumnID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	columnID, ok := paramID(c, "id", "column")
	if !ok {
		return
	}

	column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return
	}
	if column == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	if _, ok := h.authorize(c, column.BoardID, userID, model.RoleViewer, "You don't have permission to view tasks on this board"); !ok {
		return
	}

	tasks, err := h.taskRepo.GetTasksWithLabels(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	names := newUserNames(h.userRepo)
	nodes := dependency.NewGraph(tasks).Ranked()
	response := make([]TaskResponse, len(nodes))
	for i := range nodes {
		response[i] = newTaskResponse(&nodes[i].Task)
		depth := nodes[i].Depth
		response[i].Depth = &depth
		names.fill(c.Request.Context(), &response[i], &nodes[i].Task)
	}

	c.JSON(http.StatusOK, response)
}

func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, board, ok := h.loadTask(c, userID, model.RoleEditor, "You don't have permission to update this task")
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column, ok := h.targetColumn(c, req.ColumnID, board.ID)
	if !ok {
		return
	}

	dependsOn, ok := h.checkDependency(c, board.ID, task.ID, req.DependsOn)
	if !ok {
		return
	}

	position := task.Position
	if req.Position != nil {
		position = *req.Position
	}

	task.Title = req.Title
	task.Description = req.Description
	task.DueDate = req.DueDate
	task.DependsOn = dependsOn

	var move *repository.TaskMove
	if column.ID != task.ColumnID || position != task.Position {
		move = &repository.TaskMove{ColumnID: column.ID, Position: position}
		// gated against the predecessor the task is about to have
		if column.ID != task.ColumnID {
			plan, ok := h.cascadePlan(c, board, *task, column, req.ConfirmCascade)
			if !ok {
				return
			}
			move.Plan = taskIDs(plan)
		}
	}

	if err := h.taskRepo.UpdateWithMove(c.Request.Context(), task, move); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	if move != nil {
		task.ColumnID = move.ColumnID
		task.Position = move.Position
	}

	resp := newTaskResponse(task)
	newUserNames(h.userRepo).fill(c.Request.Context(), &resp, task)
	c.JSON(http.StatusOK, resp)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, _, ok := h.loadTask(c, userID, model.RoleEditor, "You don't have permission to delete this task")
	if !ok {
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), task.ID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// MoveTask moves a task to another column or position. Moving into a gated
// column while predecessors lag behind answers 409 with the cascade, unless
// confirm_cascade is set, in which case the predecessors move first.
//
// @Summary   Move a task to a column and position
// @Tags      Tasks
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     id    path      string           true  "Task ID"
// @Param     body  body      TaskMoveRequest  true  "Target"
// @Success   200   {object}  MoveResponse
// @Failure   400   {object}  gin.H
// @Failure   409   {object}  CascadeResponse
// @Router    /tasks/{id}/move [post]
func (h *TaskHandler) MoveTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, board, ok := h.loadTask(c, userID, model.RoleEditor, "You don't have permission to move this task")
	if !ok {
		return
	}

	var req TaskMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column, ok := h.targetColumn(c, req.ColumnID, board.ID)
	if !ok {
		return
	}

	moved, ok := h.move(c, board, task, column, req.Position, req.ConfirmCascade)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, MoveResponse{Message: "Task moved successfully", Moved: moved})
}

// DependencyChain previews the cascade a move to ?column_id= would need.
//
// @Summary   Preview the predecessors a move would drag along
// @Tags      Tasks
// @Security  BearerAuth
// @Produce   json
// @Param     id         path      string  true  "Task ID"
// @Param     column_id  query     string  true  "Target column ID"
// @Success   200        {object}  CascadeResponse
// @Router    /tasks/{id}/dependency-chain [get]
func (h *TaskHandler) DependencyChain(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, board, ok := h.loadTask(c, userID, model.RoleViewer, "You don't have permission to view this task")
	if !ok {
		return
	}

	column, ok := h.targetColumn(c, c.Query("column_id"), board.ID)
	if !ok {
		return
	}

	chain, gated, err := h.dependencyChain(c.Request.Context(), board, *task, column.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check dependencies"})
		return
	}

	c.JSON(http.StatusOK, CascadeResponse{
		Gated: gated,
		Chain: summarize(chain),
		Plan:  summarize(dependency.PlanCascadeMove(chain)),
	})
}

func (h *TaskHandler) AssignUser(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, board, ok := h.loadTask(c, userID, model.RoleEditor, "You don't have permission to assign users to this task")
	if !ok {
		return
	}

	var req TaskAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	assigneeID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	assignee, err := h.userRepo.GetByID(c.Request.Context(), assigneeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	if assignee == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if board.OwnerID != assigneeID {
		canView, err := h.boardShareRepo.CheckAccess(c.Request.Context(), board.ID, assigneeID, model.RoleViewer)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check access"})
			return
		}
		if !canView {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User does not have access to this board"})
			return
		}
	}

	if err := h.taskRepo.AssignUser(c.Request.Context(), task.ID, assigneeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User assigned successfully"})
}

func (h *TaskHandler) UnassignUser(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, _, ok := h.loadTask(c, userID, model.RoleEditor, "You don't have permission to unassign users from this task")
	if !ok {
		return
	}

	if err := h.taskRepo.UnassignUser(c.Request.Context(), task.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unassign user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User unassigned successfully"})
}

// boardLabel resolves :label_id to a label of board.
func (h *TaskHandler) boardLabel(c *gin.Context, board *model.Board) (*model.Label, bool) {
	labelID, ok := paramID(c, "label_id", "label")
	if !ok {
		return nil, false
	}

	label, err := h.labelRepo.GetByID(c.Request.Context(), labelID)
	if err != nil {
		if errors.Is(err, repository.ErrLabelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Label not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve label"})
		}
		return nil, false
	}
	if label.BoardID != board.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Label belongs to another board"})
		return nil, false
	}
	return label, true
}

func (h *TaskHandler) AddLabel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, board, ok := h.loadTask(c, userID, model.RoleEditor, "You don't have permission to label this task")
	if !ok {
		return
	}

	label, ok := h.boardLabel(c, board)
	if !ok {
		return
	}

	if err := h.taskRepo.AddLabel(c.Request.Context(), task.ID, label.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add label"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Label added successfully"})
}

func (h *TaskHandler) RemoveLabel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, board, ok := h.loadTask(c, userID, model.RoleEditor, "You don't have permission to label this task")
	if !ok {
		return
	}

	label, ok := h.boardLabel(c, board)
	if !ok {
		return
	}

	if err := h.taskRepo.RemoveLabel(c.Request.Context(), task.ID, label.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove label"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Label removed successfully"})
}

func (h *TaskHandler) GetTaskLabels(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, _, ok := h.loadTask(c, userID, model.RoleViewer, "You don't have permission to view this task")
	if !ok {
		return
	}

	labels, err := h.labelRepo.GetByTaskID(c.Request.Context(), task.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve labels"})
		return
	}

	response := make([]LabelResponse, len(labels))
	for i, label := range labels {
		response[i] = LabelResponse{ID: label.ID.String(), Name: label.Name, Color: label.Color}
	}
	c.JSON(http.StatusOK, response)
}

// SetDueDate sets or, with a null due_date, clears the due date.
func (h *TaskHandler) SetDueDate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, _, ok := h.loadTask(c, userID, model.RoleEditor, "You don't have permission to update this task")
	if !ok {
		return
	}

	var req TaskDueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task.DueDate = req.DueDate
	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update due date"})
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}
