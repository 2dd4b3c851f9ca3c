// Package handler wires HTTP requests to the service layer. Handlers stay
// thin: bind, call, translate the error taxonomy to a status code.
package handler

import (
	"strconv"

	"reviewhub/internal/httpapi/apierror"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func respondError(c *gin.Context, err error) {
	c.JSON(apierror.HTTPStatus(err), apierror.Body(err))
}

// pagination reads page/page_size query parameters with sane bounds.
func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// pathID parses a numeric path parameter, mapping garbage to NotFound so
// /titles/abc and /titles/999999 read the same to a client.
func pathID(c *gin.Context, param, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id < 1 {
		return 0, apierror.NotFound(resource)
	}
	return id, nil
}
