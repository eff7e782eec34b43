package handler

import (
	"strconv"

	"github.com/gatherhub/event-manager/internal/errdef"
	"github.com/gin-gonic/gin"
)

// Pagination reads the limit and skip query parameters used by the list endpoints.
func Pagination(c *gin.Context) (limit int, skip int, err error) {
	limit, err = queryInt(c, "limit", 10)
	if err != nil {
		return 0, 0, err
	}
	skip, err = queryInt(c, "skip", 0)
	if err != nil {
		return 0, 0, err
	}
	if limit < 0 || skip < 0 {
		return 0, 0, errdef.NewBadRequest("limit and skip must not be negative")
	}
	return limit, skip, nil
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	value := c.Query(name)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errdef.NewBadRequest("error parsing %q: %v", name, err)
	}
	return parsed, nil
}
