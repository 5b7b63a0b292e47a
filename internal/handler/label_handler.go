package handler

import (
	"errors"
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateLabelRequest defines the expected request body for creating a label
type CreateLabelRequest struct {
	BoardID string `json:"board_id" binding:"required,uuid"`
	Name    string `json:"name" binding:"required"`
	Color   string `json:"color" binding:"required,hexcolor"`
}

// UpdateLabelRequest defines the expected request body for updating a label
type UpdateLabelRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required,hexcolor"`
}

// LabelHandler handles label-related HTTP requests
type LabelHandler struct {
	boardGuard
	labelRepo repository.LabelRepositoryInterface
}

// NewLabelHandler creates a new LabelHandler instance
func NewLabelHandler(
	labelRepo repository.LabelRepositoryInterface,
	boardRepo repository.BoardRepositoryInterface,
	boardShareRepo repository.BoardShareRepositoryInterface,
) *LabelHandler {
	return &LabelHandler{
		boardGuard: boardGuard{boardRepo: boardRepo, boardShareRepo: boardShareRepo},
		labelRepo:  labelRepo,
	}
}

func newLabelResponse(label *model.Label) LabelResponse {
	return LabelResponse{ID: label.ID.String(), Name: label.Name, Color: label.Color}
}

// loadLabel resolves :id to a label the user may act on with role.
func (h *LabelHandler) loadLabel(c *gin.Context, userID uuid.UUID, role model.Role, denied string) (*model.Label, bool) {
	labelID, ok := paramID(c, "id", "label")
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

	if _, ok := h.authorize(c, label.BoardID, userID, role, denied); !ok {
		return nil, false
	}
	return label, true
}

// Create creates a new label
func (h *LabelHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	boardID, err := uuid.Parse(req.BoardID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	if _, ok := h.authorize(c, boardID, userID, model.RoleEditor, "You don't have permission to create labels for this board"); !ok {
		return
	}

	label := &model.Label{
		BoardID: boardID,
		Name:    req.Name,
		Color:   req.Color,
	}
	if err := h.labelRepo.Create(c.Request.Context(), label); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create label"})
		return
	}

	c.JSON(http.StatusCreated, newLabelResponse(label))
}

// GetByID retrieves a label by its ID
func (h *LabelHandler) GetByID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	label, ok := h.loadLabel(c, userID, model.RoleViewer, "You don't have permission to view this label")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newLabelResponse(label))
}

// GetByBoardID lists the labels defined on a board
func (h *LabelHandler) GetByBoardID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	if _, ok := h.authorize(c, boardID, userID, model.RoleViewer, "You don't have permission to view labels of this board"); !ok {
		return
	}

	labels, err := h.labelRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve labels"})
		return
	}

	response := make([]LabelResponse, len(labels))
	for i := range labels {
		response[i] = newLabelResponse(&labels[i])
	}

	c.JSON(http.StatusOK, response)
}

func (h *LabelHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	label, ok := h.loadLabel(c, userID, model.RoleEditor, "You don't have permission to update this label")
	if !ok {
		return
	}

	var req UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	label.Name = req.Name
	label.Color = req.Color
	if err := h.labelRepo.Update(c.Request.Context(), label); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update label"})
		return
	}

	c.JSON(http.StatusOK, newLabelResponse(label))
}

func (h *LabelHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	label, ok := h.loadLabel(c, userID, model.RoleEditor, "You don't have permission to delete this label")
	if !ok {
		return
	}

	if err := h.labelRepo.Delete(c.Request.Context(), label.ID); err != nil {
		if errors.Is(err, repository.ErrLabelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Label not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete label"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Label deleted successfully"})
}

// GetTasksWithLabel lists the tasks carrying a label
func (h *LabelHandler) GetTasksWithLabel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	label, ok := h.loadLabel(c, userID, model.RoleViewer, "You don't have permission to view this label")
	if !ok {
		return
	}

	tasks, err := h.labelRepo.GetTasksWithLabel(c.Request.Context(), label.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = newTaskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, response)
}
