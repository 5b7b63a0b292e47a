package handler

import (
	"net/http"

	"taskboard/internal/dependency"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ColumnHandler struct {
	boardGuard
	columnRepo repository.ColumnRepositoryInterface
}

func NewColumnHandler(
	columnRepo repository.ColumnRepositoryInterface,
	boardRepo repository.BoardRepositoryInterface,
	boardShareRepo repository.BoardShareRepositoryInterface,
	gated dependency.GatedColumns,
) *ColumnHandler {
	return &ColumnHandler{
		boardGuard: boardGuard{boardRepo: boardRepo, boardShareRepo: boardShareRepo, defaultGated: gated},
		columnRepo: columnRepo,
	}
}

type CreateColumnRequest struct {
	Title    string `json:"title" binding:"required"`
	BoardID  string `json:"board_id" binding:"required,uuid"`
	Position int    `json:"position"`
}

type UpdateColumnRequest struct {
	Title    string `json:"title"`
	Position int    `json:"position"`
}

type ColumnResponse struct {
	ID       string `json:"id"`
	BoardID  string `json:"board_id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
	// Gated is set when entering the column enforces task dependencies.
	Gated bool `json:"gated"`
}

type ReorderColumnsRequest struct {
	Columns []struct {
		ID       string `json:"id" binding:"required,uuid"`
		Position int    `json:"position"`
	} `json:"columns" binding:"required,min=1,dive"`
}

func newColumnResponse(column *model.Column, gated bool) ColumnResponse {
	return ColumnResponse{
		ID:       column.ID.String(),
		BoardID:  column.BoardID.String(),
		Title:    column.Title,
		Position: column.Position,
		Gated:    gated,
	}
}

// loadColumn resolves :id to a column the user may act on with role.
func (h *ColumnHandler) loadColumn(c *gin.Context, userID uuid.UUID, role model.Role, denied string) (*model.Column, *model.Board, bool) {
	columnID, ok := paramID(c, "id", "column")
	if !ok {
		return nil, nil, false
	}

	column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return nil, nil, false
	}
	if column == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return nil, nil, false
	}

	board, ok := h.authorize(c, column.BoardID, userID, role, denied)
	if !ok {
		return nil, nil, false
	}
	return column, board, true
}

func (h *ColumnHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	boardID, err := uuid.Parse(req.BoardID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	board, ok := h.authorize(c, boardID, userID, model.RoleEditor, "You don't have permission to add columns to this board")
	if !ok {
		return
	}

	position := req.Position
	if position == 0 {
		maxPosition, err := h.columnRepo.GetMaxPosition(c.Request.Context(), boardID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine column position"})
			return
		}
		position = maxPosition + 1
	}

	column := &model.Column{
		BoardID:  boardID,
		Title:    req.Title,
		Position: position,
	}
	if err := h.columnRepo.Create(c.Request.Context(), column); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create column"})
		return
	}

	c.JSON(http.StatusCreated, newColumnResponse(column, h.gatedColumns(board).Contains(column.Title)))
}

// GetAll lists a board's columns in board order.
func (h *ColumnHandler) GetAll(c *gin.Context) {
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

	columns, err := h.columnRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	gated := h.gatedColumns(board)
	response := make([]ColumnResponse, len(columns))
	for i := range columns {
		response[i] = newColumnResponse(&columns[i], gated.Contains(columns[i].Title))
	}

	c.JSON(http.StatusOK, response)
}

func (h *ColumnHandler) GetByID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	column, board, ok := h.loadColumn(c, userID, model.RoleViewer, "You don't have permission to view this column")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newColumnResponse(column, h.gatedColumns(board).Contains(column.Title)))
}

func (h *ColumnHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	column, board, ok := h.loadColumn(c, userID, model.RoleEditor, "You don't have permission to update this column")
	if !ok {
		return
	}

	var req UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Title != "" {
		column.Title = req.Title
	}
	if req.Position != 0 {
		column.Position = req.Position
	}

	if err := h.columnRepo.Update(c.Request.Context(), column); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update column"})
		return
	}

	c.JSON(http.StatusOK, newColumnResponse(column, h.gatedColumns(board).Contains(column.Title)))
}

// Delete removes an empty column.
func (h *ColumnHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	column, _, ok := h.loadColumn(c, userID, model.RoleEditor, "You don't have permission to delete this column")
	if !ok {
		return
	}

	count, err := h.columnRepo.CountTasks(c.Request.Context(), column.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count tasks"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Column still contains tasks"})
		return
	}

	if err := h.columnRepo.Delete(c.Request.Context(), column.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete column"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column deleted successfully"})
}

// ReorderColumns assigns new positions. Column order decides which columns
// count as earlier when dependencies are checked.
func (h *ColumnHandler) ReorderColumns(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	if _, ok := h.authorize(c, boardID, userID, model.RoleEditor, "You don't have permission to reorder columns on this board"); !ok {
		return
	}

	var req ReorderColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	existing, err := h.columnRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}
	onBoard := make(map[uuid.UUID]bool, len(existing))
	for _, col := range existing {
		onBoard[col.ID] = true
	}

	columns := make([]model.Column, len(req.Columns))
	for i, col := range req.Columns {
		columnID, err := uuid.Parse(col.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
			return
		}
		if !onBoard[columnID] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All columns must belong to the specified board"})
			return
		}
		columns[i] = model.Column{ID: columnID, BoardID: boardID, Position: col.Position}
	}

	if err := h.columnRepo.ReorderColumns(c.Request.Context(), columns); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder columns"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Columns reordered successfully"})
}
