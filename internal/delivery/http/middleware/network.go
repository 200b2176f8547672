package middleware

import (
	"time"

	"talentflow-backend/pkg/apperror"
	"talentflow-backend/pkg/netsim"

	"github.com/gin-gonic/gin"
)

// SimulateWrite delays a write route and may fail it before the handler
// runs. A failure surfaces as "Failed to <op>: simulated network error".
func SimulateWrite(sim *netsim.Simulator, op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sim.Write(c.Request.Context()); err != nil {
			c.Error(apperror.Wrap("Failed to "+op, err))
			c.Abort()
			return
		}
		c.Next()
	}
}

// SimulateDelay holds a route for a fixed duration.
func SimulateDelay(sim *netsim.Simulator, d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sim.Pause(c.Request.Context(), d); err != nil {
			c.Error(apperror.Wrap("Request cancelled", err))
			c.Abort()
			return
		}
		c.Next()
	}
}
