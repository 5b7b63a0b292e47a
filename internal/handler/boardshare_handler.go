package handler

import (
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type BoardShareHandler struct {
	boardGuard
	userRepo repository.UserRepositoryInterface
}

func NewBoardShareHandler(
	boardRepo repository.BoardRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	boardShareRepo repository.BoardShareRepositoryInterface,
) *BoardShareHandler {
	return &BoardShareHandler{
		boardGuard: boardGuard{boardRepo: boardRepo, boardShareRepo: boardShareRepo},
		userRepo:   userRepo,
	}
}

// ShareBoardRequest grants a registered user access by email.
type ShareBoardRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=viewer editor"`
}

// BoardShareResponse is one member of a board.
type BoardShareResponse struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	IsOwner bool   `json:"is_owner"`
}

func (h *BoardShareHandler) ShareBoard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	if _, ok := h.owned(c, boardID, userID, "Only the board owner can share the board"); !ok {
		return
	}

	var req ShareBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	target, err := h.userRepo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find user"})
		return
	}
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if target.ID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot share board with yourself"})
		return
	}

	role := model.Role(req.Role)
	if err := h.boardShareRepo.ShareBoard(c.Request.Context(), boardID, target.ID, role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share board"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Board shared successfully",
		"share": BoardShareResponse{
			UserID: target.ID.String(),
			Email:  target.Email,
			Name:   target.Name,
			Role:   string(role),
		},
	})
}

func (h *BoardShareHandler) RemoveShare(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	targetID, ok := paramID(c, "user_id", "user")
	if !ok {
		return
	}

	if _, ok := h.owned(c, boardID, userID, "Only the board owner can remove access"); !ok {
		return
	}

	if err := h.boardShareRepo.RemoveShare(c.Request.Context(), boardID, targetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove share"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board access removed successfully"})
}

// GetBoardShares lists the owner first, then every user the board is shared with.
func (h *BoardShareHandler) GetBoardShares(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	board, ok := h.authorize(c, boardID, userID, model.RoleViewer, "You don't have access to this board")
	if !ok {
		return
	}

	shares, err := h.boardShareRepo.GetBoardShares(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board shares"})
		return
	}

	response := make([]BoardShareResponse, 0, len(shares)+1)

	owner, err := h.userRepo.GetByID(c.Request.Context(), board.OwnerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board owner"})
		return
	}
	if owner != nil {
		response = append(response, BoardShareResponse{
			UserID:  owner.ID.String(),
			Email:   owner.Email,
			Name:    owner.Name,
			Role:    "owner",
			IsOwner: true,
		})
	}

	for _, share := range shares {
		response = append(response, BoardShareResponse{
			UserID: share.UserID.String(),
			Email:  share.User.Email,
			Name:   share.User.Name,
			Role:   string(share.Role),
		})
	}

	c.JSON(http.StatusOK, response)
}

func (h *BoardShareHandler) GetSharedBoards(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boards, err := h.boardShareRepo.GetSharedBoards(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shared boards"})
		return
	}

	response := make([]BoardResponse, len(boards))
	for i := range boards {
		response[i] = newBoardResponse(&boards[i])
	}

	c.JSON(http.StatusOK, response)
}
