package httpHandler

import (
	"net/http"

	"bms-server/usecases"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	stats *usecases.StatsUseCase
}

func NewStatsHandler(stats *usecases.StatsUseCase) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get handles GET /api/v1/stats
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.stats.Collect()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to collect stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
