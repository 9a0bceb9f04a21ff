package api

import (
	"strconv"

	"foodies-api/internal/pkg/errs"
	"foodies-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("user not authenticated")

func parseListParams(c *gin.Context) (int, *queries.Cursor) {
	limit := queries.DefaultLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return limit, cursor
}
