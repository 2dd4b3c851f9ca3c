package handler

import (
	"net/http"

	"reviewhub/internal/httpapi/apierror"
	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	genreService service.GenreService
}

func NewGenreHandler(genreService service.GenreService) *GenreHandler {
	return &GenreHandler{genreService: genreService}
}

// RegisterRoutes registers genre routes, same surface shape as categories.
func (h *GenreHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/genres", h.List)
	public.GET("/genres/:slug", h.detailNotAllowed)

	admin.POST("/genres", h.Create)
	admin.DELETE("/genres/:slug", h.Delete)
}

// List returns genres filtered by name substring
// GET /api/v1/genres?search=
func (h *GenreHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	genres, total, err := h.genreService.List(c.Request.Context(), c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.GenreResponse, 0, len(genres))
	for i := range genres {
		responses = append(responses, *dto.FromModelToGenreResponse(&genres[i]))
	}
	c.JSON(http.StatusOK, dto.NewPaginated(responses, int(total), page, pageSize))
}

// Create adds a genre
// POST /api/v1/genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.CreateGenreDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genre, err := h.genreService.Create(c.Request.Context(), req.Name, req.Slug)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToGenreResponse(genre))
}

// Delete removes a genre from the catalog and from every title's genre set
// DELETE /api/v1/genres/:slug
func (h *GenreHandler) Delete(c *gin.Context) {
	if err := h.genreService.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GenreHandler) detailNotAllowed(c *gin.Context) {
	respondError(c, apierror.ErrMethodNotAllowed)
}
