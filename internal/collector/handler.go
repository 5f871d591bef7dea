package collector

import (
	"log"
	"net/http"

	"phrase_stats_go/internal/httputil"
	"phrase_stats_go/pkg/reports"

	"github.com/gin-gonic/gin"
)

// Handler обслуживает ручной запуск сборщика срезов.
type Handler struct {
	Collector   *reports.Collector
	CampaignIDs []int
}

// NewHandler создаёт новый обработчик сборщика.
func NewHandler(col *reports.Collector, campaignIDs []int) *Handler {
	return &Handler{Collector: col, CampaignIDs: campaignIDs}
}

// Run немедленно снимает срез счётчиков по настроенным кампаниям.
func (h *Handler) Run(c *gin.Context) {
	saved, err := h.Collector.Collect(c.Request.Context(), h.CampaignIDs)
	if err != nil {
		log.Printf("[HANDLER ERROR] сбор срезов: %v", err)
		if saved == 0 {
			httputil.RespondError(c, http.StatusBadGateway, "не удалось собрать срезы")
			return
		}
		// Часть кампаний опросить не удалось, но срез сохранён.
		c.JSON(http.StatusOK, gin.H{"saved": saved, "partial": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}
