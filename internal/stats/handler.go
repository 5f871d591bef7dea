package stats

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"phrase_stats_go/internal/httputil"
	viewstats "phrase_stats_go/pkg/stats"
	"phrase_stats_go/pkg/storage"

	"github.com/gin-gonic/gin"
)

// Handler обслуживает HTTP-запросы, связанные со статистикой просмотров.
type Handler struct {
	DB *storage.DB
	// Кампания, по которой считается статистика, если campaign_id не передан.
	DefaultCampaignID int
}

// NewHandler создаёт новый обработчик статистики.
func NewHandler(db *storage.DB, defaultCampaignID int) *Handler {
	return &Handler{DB: db, DefaultCampaignID: defaultCampaignID}
}

// ViewsByHour отдаёт почасовые приросты просмотров по фразам кампании.
// Параметры campaign_id и date (YYYY-MM-DD) необязательны: по умолчанию
// берётся кампания из конфигурации и текущие сутки.
func (h *Handler) ViewsByHour(c *gin.Context) {
	campaignID := h.DefaultCampaignID
	if raw := c.Query("campaign_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			httputil.RespondError(c, http.StatusBadRequest, "некорректный campaign_id")
			return
		}
		campaignID = id
	}

	loc, err := viewstats.Location()
	if err != nil {
		log.Printf("[HANDLER ERROR] не удалось загрузить часовой пояс: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "не удалось посчитать статистику")
		return
	}

	day := time.Now().In(loc)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			httputil.RespondError(c, http.StatusBadRequest, "некорректная дата, ожидается YYYY-MM-DD")
			return
		}
		day = parsed
	}

	rows, err := viewstats.Calculate(h.DB, campaignID, day)
	if err != nil {
		log.Printf("[HANDLER ERROR] не удалось посчитать приросты просмотров: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "не удалось посчитать статистику")
		return
	}
	c.JSON(http.StatusOK, rows)
}
