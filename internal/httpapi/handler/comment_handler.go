package handler

import (
	"net/http"

	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/middleware"
	"reviewhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterRoutes registers comment routes nested under title→review.
func (h *CommentHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	base := "/titles/:title_id/reviews/:review_id/comments"

	public.GET(base, h.List)
	public.GET(base+"/:comment_id", h.Get)

	authed.POST(base, h.Create)
	authed.PATCH(base+"/:comment_id", h.Update)
	authed.DELETE(base+"/:comment_id", h.Delete)
}

// List returns a review's comments, oldest first
// GET /api/v1/titles/:title_id/reviews/:review_id/comments
func (h *CommentHandler) List(c *gin.Context) {
	titleID, reviewID, err := h.parentIDs(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, pageSize := pagination(c)

	comments, total, err := h.commentService.ListByReview(c.Request.Context(), titleID, reviewID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, dto.NewPaginated(responses, int(total), page, pageSize))
}

// Get returns a single comment
// GET /api/v1/titles/:title_id/reviews/:review_id/comments/:comment_id
func (h *CommentHandler) Get(c *gin.Context) {
	titleID, reviewID, commentID, err := h.pathIDs(c)
	if err != nil {
		respondError(c, err)
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), titleID, reviewID, commentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToCommentResponse(comment))
}

// Create posts a comment on a review; several per author are fine
// POST /api/v1/titles/:title_id/reviews/:review_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	titleID, reviewID, err := h.parentIDs(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), titleID, reviewID, middleware.ActorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToCommentResponse(comment))
}

// Update patches a comment's text
// PATCH /api/v1/titles/:title_id/reviews/:review_id/comments/:comment_id
func (h *CommentHandler) Update(c *gin.Context) {
	titleID, reviewID, commentID, err := h.pathIDs(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), titleID, reviewID, commentID, middleware.ActorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToCommentResponse(comment))
}

// Delete removes a comment
// DELETE /api/v1/titles/:title_id/reviews/:review_id/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	titleID, reviewID, commentID, err := h.pathIDs(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), titleID, reviewID, commentID, middleware.ActorFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) parentIDs(c *gin.Context) (titleID, reviewID int64, err error) {
	if titleID, err = pathID(c, "title_id", "title"); err != nil {
		return 0, 0, err
	}
	if reviewID, err = pathID(c, "review_id", "review"); err != nil {
		return 0, 0, err
	}
	return titleID, reviewID, nil
}

func (h *CommentHandler) pathIDs(c *gin.Context) (titleID, reviewID, commentID int64, err error) {
	if titleID, reviewID, err = h.parentIDs(c); err != nil {
		return 0, 0, 0, err
	}
	if commentID, err = pathID(c, "comment_id", "comment"); err != nil {
		return 0, 0, 0, err
	}
	return titleID, reviewID, commentID, nil
}
