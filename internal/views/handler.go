package views

import (
	"log"
	"net/http"

	"phrase_stats_go/internal/httputil"
	"phrase_stats_go/models"
	"phrase_stats_go/pkg/storage"

	"github.com/gin-gonic/gin"
)

// Handler обрабатывает ручную загрузку срезов счётчиков просмотров.
// Используется для бэкфилов и в тестовых стендах, где сборщик не запущен.
type Handler struct {
	DB *storage.DB
}

// NewHandler создаёт новый экземпляр обработчика.
func NewHandler(db *storage.DB) *Handler {
	return &Handler{DB: db}
}

// Save принимает JSON-массив срезов и сохраняет его одной пачкой.
func (h *Handler) Save(c *gin.Context) {
	var rows []models.PhraseView
	if err := c.ShouldBindJSON(&rows); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "некорректные данные")
		return
	}
	if len(rows) == 0 {
		httputil.RespondError(c, http.StatusBadRequest, "пустая пачка срезов")
		return
	}
	for _, r := range rows {
		if r.Phrase == "" || r.Dt.IsZero() {
			httputil.RespondError(c, http.StatusBadRequest, "у каждого среза должны быть phrase и dt")
			return
		}
	}

	saved, err := h.DB.SavePhraseViews(rows)
	if err != nil {
		log.Printf("[HANDLER ERROR] не удалось сохранить срезы: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "ошибка БД")
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}
