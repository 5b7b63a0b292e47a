package handler

import (
	"net/http"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

const MaxBoardsPerUser = 5

type BoardHandler struct {
	boardGuard
}

func NewBoardHandler(boardRepo repository.BoardRepositoryInterface, boardShareRepo repository.BoardShareRepositoryInterface) *BoardHandler {
	return &BoardHandler{
		boardGuard: boardGuard{boardRepo: boardRepo, boardShareRepo: boardShareRepo},
	}
}

type CreateBoardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type BoardResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	OwnerID      string   `json:"owner_id"`
	GatedColumns []string `json:"gated_columns,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

type UpdateBoardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func newBoardResponse(board *model.Board) BoardResponse {
	return BoardResponse{
		ID:           board.ID.String(),
		Title:        board.Title,
		Description:  board.Description,
		OwnerID:      board.OwnerID.String(),
		GatedColumns: splitNames(board.GatedColumns),
		CreatedAt:    board.CreatedAt.Format(http.TimeFormat),
	}
}

// splitNames turns a stored comma separated list back into names, keeping
// the spelling the user chose.
func splitNames(csv string) []string {
	var names []string
	for _, name := range strings.Split(csv, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Create creates a new board for the authenticated user
func (h *BoardHandler) Create(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}

	count, err := h.boardRepo.CountOwned(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check board count"})
		return
	}
	if count >= MaxBoardsPerUser {
		c.JSON(http.StatusForbidden, gin.H{"error": "Maximum number of boards reached (5)"})
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board := &model.Board{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
	}
	if err := h.boardRepo.Create(c.Request.Context(), board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	c.JSON(http.StatusCreated, newBoardResponse(board))
}

// GetAll lists the boards the user owns followed by the ones shared with them.
func (h *BoardHandler) GetAll(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	owned, err := h.boardRepo.GetOwned(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve boards"})
		return
	}

	shared, err := h.boardShareRepo.GetSharedBoards(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shared boards"})
		return
	}

	response := make([]BoardResponse, 0, len(owned)+len(shared))
	for i := range owned {
		response = append(response, newBoardResponse(&owned[i]))
	}
	for i := range shared {
		response = append(response, newBoardResponse(&shared[i]))
	}

	c.JSON(http.StatusOK, response)
}

func (h *BoardHandler) GetByID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	board, ok := h.authorize(c, boardID, userID, model.RoleViewer, "You don't have permission to access this board")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newBoardResponse(board))
}

func (h *BoardHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	board, ok := h.authorize(c, boardID, userID, model.RoleEditor, "You don't have permission to update this board")
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Title != "" {
		board.Title = req.Title
	}
	if req.Description != "" {
		board.Description = req.Description
	}

	if err := h.boardRepo.Update(c.Request.Context(), board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
		return
	}

	c.JSON(http.StatusOK, newBoardResponse(board))
}
