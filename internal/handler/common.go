package handler

import (
	"errors"
	"net/http"
	"strings"

	"taskboard/internal/dependency"
	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUser returns the id set by the auth middleware. On failure the
// response is already written.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}
	return userID, true
}

// paramID parses a uuid path parameter; what names it in the error.
func paramID(c *gin.Context, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// boardGuard answers "may this user touch this board" for every handler.
type boardGuard struct {
	boardRepo      repository.BoardRepositoryInterface
	boardShareRepo repository.BoardShareRepositoryInterface
	// defaultGated applies to boards without their own gated column list.
	defaultGated dependency.GatedColumns
}

// gatedColumns is the set of gated column names in force on board.
func (g boardGuard) gatedColumns(board *model.Board) dependency.GatedColumns {
	if strings.TrimSpace(board.GatedColumns) != "" {
		return dependency.ParseGatedColumns(board.GatedColumns)
	}
	return g.defaultGated
}

// authorize loads the board and checks that userID owns it or holds role
// on it. On failure the response is already written and denied is used as
// the 403 message.
func (g boardGuard) authorize(c *gin.Context, boardID, userID uuid.UUID, role model.Role, denied string) (*model.Board, bool) {
	board, err := g.boardRepo.GetByID(c.Request.Context(), boardID)
	if err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		}
		return nil, false
	}

	if board.OwnerID == userID {
		return board, true
	}

	hasAccess, err := g.boardShareRepo.CheckAccess(c.Request.Context(), boardID, userID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check access"})
		return nil, false
	}
	if !hasAccess {
		c.JSON(http.StatusForbidden, gin.H{"error": denied})
		return nil, false
	}
	return board, true
}

// owned is authorize for operations reserved to the board owner.
func (g boardGuard) owned(c *gin.Context, boardID, userID uuid.UUID, denied string) (*model.Board, bool) {
	board, err := g.boardRepo.GetByID(c.Request.Context(), boardID)
	if err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		}
		return nil, false
	}

	if board.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": denied})
		return nil, false
	}
	return board, true
}
