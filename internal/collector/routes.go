package collector

import (
	"phrase_stats_go/pkg/reports"

	"github.com/gin-gonic/gin"
)

// SetupRoutes регистрирует маршруты сборщика и запускает фоновый сбор.
func SetupRoutes(r *gin.RouterGroup, col *reports.Collector, campaignIDs []int) {
	handler := NewHandler(col, campaignIDs)
	r.POST("/run", handler.Run)
	startBackgroundCollect(col, campaignIDs)
}
