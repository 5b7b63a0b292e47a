package handler

import (
	"net/http"
	"strings"

	"taskboard/internal/dependency"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DependencyHandler serves the board-wide, dependency ordered views.
type DependencyHandler struct {
	boardGuard
	taskRepo repository.TaskRepositoryInterface
	userRepo repository.UserRepositoryInterface
}

func NewDependencyHandler(
	taskRepo repository.TaskRepositoryInterface,
	boardRepo repository.BoardRepositoryInterface,
	boardShareRepo repository.BoardShareRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	gated dependency.GatedColumns,
) *DependencyHandler {
	return &DependencyHandler{
		boardGuard: boardGuard{boardRepo: boardRepo, boardShareRepo: boardShareRepo, defaultGated: gated},
		taskRepo:   taskRepo,
		userRepo:   userRepo,
	}
}

// TaskTreeNode is a task with the tasks that depend on it.
type TaskTreeNode struct {
	TaskResponse
	Children []TaskTreeNode `json:"children,omitempty"`
}

type GatedColumnsRequest struct {
	// Names replaces the board's gated column list. An empty list falls
	// back to the server default.
	Names []string `json:"names"`
}

type GatedColumnsResponse struct {
	Names   []string `json:"names"`
	Default bool     `json:"default"`
}

// BoardTasks lists every task of a board, predecessors before dependents.
// Tasks of equal depth keep board order.
//
// @Summary   List board tasks, predecessors first
// @Tags      Dependencies
// @Security  BearerAuth
// @Produce   json
// @Param     id   path      string  true  "Board ID"
// @Success   200  {array}   TaskResponse
// @Failure   403  {object}  gin.H
// @Failure   404  {object}  gin.H
// @Router    /boards/{id}/tasks [get]
func (h *DependencyHandler) BoardTasks(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	if _, ok := h.authorize(c, boardID, userID, model.RoleViewer, "You don't have permission to view this board"); !ok {
		return
	}

	tasks, err := h.taskRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	names := newUserNames(h.userRepo)
	nodes := dependency.NewGraph(tasks).Ranked()
	response := make([]TaskResponse, len(nodes))
	for i := range nodes {
		response[i] = h.nodeResponse(c, names, nodes[i])
	}

	c.JSON(http.StatusOK, response)
}

// TaskTree returns the board's tasks nested under their predecessor. With
// ?column_id= only that column's tasks are shown, and tasks whose
// predecessor lives elsewhere become roots.
//
// @Summary   Board tasks nested under their predecessor
// @Tags      Dependencies
// @Security  BearerAuth
// @Produce   json
// @Param     id         path      string  true   "Board ID"
// @Param     column_id  query     string  false  "Only this column"
// @Success   200        {array}   TaskTreeNode
// @Failure   400        {object}  gin.H
// @Router    /boards/{id}/task-tree [get]
func (h *DependencyHandler) TaskTree(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	if _, ok := h.authorize(c, boardID, userID, model.RoleViewer, "You don't have permission to view this board"); !ok {
		return
	}

	tasks, err := h.taskRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	if raw := c.Query("column_id"); raw != "" {
		columnID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
			return
		}
		filtered := tasks[:0:0]
		for _, t := range tasks {
			if t.ColumnID == columnID {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	tree := dependency.BuildTree(tasks)
	names := newUserNames(h.userRepo)

	var build func(n dependency.Node) TaskTreeNode
	build = func(n dependency.Node) TaskTreeNode {
		node := TaskTreeNode{TaskResponse: h.nodeResponse(c, names, n)}
		for _, child := range tree.Children[n.Task.ID] {
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	response := make([]TaskTreeNode, len(tree.Roots))
	for i, root := range tree.Roots {
		response[i] = build(root)
	}

	c.JSON(http.StatusOK, response)
}

func (h *DependencyHandler) nodeResponse(c *gin.Context, names *userNames, n dependency.Node) TaskResponse {
	resp := newTaskResponse(&n.Task)
	depth := n.Depth
	resp.Depth = &depth
	names.fill(c.Request.Context(), &resp, &n.Task)
	return resp
}

// GetGatedColumns reports the gated column names in force on the board.
//
// @Summary   Gated column names in force on a board
// @Tags      Dependencies
// @Security  BearerAuth
// @Produce   json
// @Param     id   path      string  true  "Board ID"
// @Success   200  {object}  GatedColumnsResponse
// @Router    /boards/{id}/gated-columns [get]
func (h *DependencyHandler) GetGatedColumns(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	board, ok := h.authorize(c, boardID, userID, model.RoleViewer, "You don't have permission to view this board")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.gatedResponse(board))
}

// UpdateGatedColumns sets the board's own gated column list. Owner only.
//
// @Summary   Replace a board's gated column names
// @Tags      Dependencies
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     id    path      string               true  "Board ID"
// @Param     body  body      GatedColumnsRequest  true  "Names"
// @Success   200   {object}  GatedColumnsResponse
// @Failure   403   {object}  gin.H
// @Router    /boards/{id}/gated-columns [put]
func (h *DependencyHandler) UpdateGatedColumns(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	board, ok := h.owned(c, boardID, userID, "Only the board owner can change gated columns")
	if !ok {
		return
	}

	var req GatedColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	names := make([]string, 0, len(req.Names))
	for _, name := range req.Names {
		name = strings.TrimSpace(name)
		if strings.Contains(name, ",") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Column names must not contain commas"})
			return
		}
		if name != "" {
			names = append(names, name)
		}
	}

	board.GatedColumns = strings.Join(names, ",")
	if err := h.boardRepo.SetGatedColumns(c.Request.Context(), board.ID, board.GatedColumns); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
		return
	}

	c.JSON(http.StatusOK, h.gatedResponse(board))
}

func (h *DependencyHandler) gatedResponse(board *model.Board) GatedColumnsResponse {
	if names := splitNames(board.GatedColumns); len(names) > 0 {
		return GatedColumnsResponse{Names: names}
	}
	return GatedColumnsResponse{Names: h.defaultGated.Names(), Default: true}
}
