package stats

import (
	"phrase_stats_go/pkg/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes регистрирует маршруты статистики.
func SetupRoutes(r *gin.RouterGroup, db *storage.DB, defaultCampaignID int) {
	handler := NewHandler(db, defaultCampaignID)
	r.GET("/views_by_hour", handler.ViewsByHour)
}
