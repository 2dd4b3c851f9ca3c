package handler

import (
	"net/http"

	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/middleware"
	"reviewhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review routes nested under a title. Reads are
// public; create needs any authenticated user; update/delete are checked
// per object in the service (author, moderator or admin).
func (h *ReviewHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/titles/:title_id/reviews", h.List)
	public.GET("/titles/:title_id/reviews/:review_id", h.Get)

	authed.POST("/titles/:title_id/reviews", h.Create)
	authed.PATCH("/titles/:title_id/reviews/:review_id", h.Update)
	authed.DELETE("/titles/:title_id/reviews/:review_id", h.Delete)
}

// List returns a title's reviews, oldest first
// GET /api/v1/titles/:title_id/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	titleID, err := pathID(c, "title_id", "title")
	if err != nil {
		respondError(c, err)
		return
	}
	page, pageSize := pagination(c)

	reviews, total, err := h.reviewService.ListByTitle(c.Request.Context(), titleID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *dto.FromModelToReviewResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, dto.NewPaginated(responses, int(total), page, pageSize))
}

// Get returns a single review under a title
// GET /api/v1/titles/:title_id/reviews/:review_id
func (h *ReviewHandler) Get(c *gin.Context) {
	titleID, reviewID, err := h.pathIDs(c)
	if err != nil {
		respondError(c, err)
		return
	}

	review, err := h.reviewService.Get(c.Request.Context(), titleID, reviewID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToReviewResponse(review))
}

// Create posts the caller's review of a title, at most one per author
// POST /api/v1/titles/:title_id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	titleID, err := pathID(c, "title_id", "title")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), titleID, middleware.ActorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToReviewResponse(review))
}

// Update patches a review's text or score
// PATCH /api/v1/titles/:title_id/reviews/:review_id
func (h *ReviewHandler) Update(c *gin.Context) {
	titleID, reviewID, err := h.pathIDs(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), titleID, reviewID, middleware.ActorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToReviewResponse(review))
}

// Delete removes a review and its comments
// DELETE /api/v1/titles/:title_id/reviews/:review_id
func (h *ReviewHandler) Delete(c *gin.Context) {
	titleID, reviewID, err := h.pathIDs(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), titleID, reviewID, middleware.ActorFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) pathIDs(c *gin.Context) (titleID, reviewID int64, err error) {
	if titleID, err = pathID(c, "title_id", "title"); err != nil {
		return 0, 0, err
	}
	if reviewID, err = pathID(c, "review_id", "review"); err != nil {
		return 0, 0, err
	}
	return titleID, reviewID, nil
}
