package stats

import (
	"time"

	"phrase_stats_go/models"
	"phrase_stats_go/pkg/storage"
)

// Location возвращает часовой пояс, в котором сервис определяет границы
// суток для статистики.
func Location() (*time.Location, error) {
	return time.LoadLocation("Europe/Moscow")
}

// Calculate строит почасовые приросты просмотров по фразам кампании
// за сутки, в которые попадает момент day.
func Calculate(db *storage.DB, campaignID int, day time.Time) ([]models.PhraseViewsByHour, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	aggs, err := db.HourlyMaxViews(campaignID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return BuildViewsByHour(aggs), nil
}
