package ui

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mathwiz/models"
)

func (s *Server) handleCreateBookmark(c *gin.Context) {
	var req BookmarkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	bookmark := &models.Bookmark{
		UserID:         currentUser(c).ID,
		QuestionText:   req.QuestionText,
		QuestionSource: req.QuestionSource,
		Metadata:       req.Metadata,
	}
	if err := s.bookmarks.Create(c.Request.Context(), bookmark); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bookmark)
}

func (s *Server) handleListBookmarks(c *gin.Context) {
	offset := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 100)

	bookmarks, err := s.bookmarks.ListByUser(c.Request.Context(), currentUser(c).ID, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if bookmarks == nil {
		bookmarks = []*models.Bookmark{}
	}
	c.JSON(http.StatusOK, bookmarks)
}

func (s *Server) handleDeleteBookmark(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid bookmark id"})
		return
	}

	if err := s.bookmarks.Delete(c.Request.Context(), id, currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(name)); err == nil && v >= 0 {
		return v
	}
	return fallback
}
