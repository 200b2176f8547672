package v1

import (
	"strconv"

	"talentflow-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// idParam parses a positive integer path parameter. On failure it records a
// 400 on the context and returns false.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid " + name))
		return 0, false
	}
	return id, true
}

// intQuery reads an integer query value, falling back to def when absent
// or malformed.
func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

func int64Query(c *gin.Context, key string) int64 {
	v, _ := strconv.ParseInt(c.Query(key), 10, 64)
	return v
}
