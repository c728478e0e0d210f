package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pageParams reads the common page/limit query parameters
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page"))
	limit, _ = strconv.Atoi(c.Query("limit"))
	return page, limit
}
