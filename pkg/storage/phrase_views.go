package storage

import (
	"fmt"
	"log"
	"strings"
	"time"

	"phrase_stats_go/models"
)

// SavePhraseViews сохраняет пачку срезов счётчиков в таблицу phrase_views.
// Повторная вставка того же среза (dt, phrase, campaign_id) не считается
// ошибкой: конфликт молча пропускается, как при повторном запуске сборщика.
// Возвращает количество переданных строк.
func (db *DB) SavePhraseViews(rows []models.PhraseView) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	placeholders := make([]string, 0, len(rows))
	args := make([]interface{}, 0, len(rows)*4)
	for i, r := range rows {
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4))
		args = append(args, r.Dt, r.Phrase, r.CampaignID, r.Views)
	}

	query := `INSERT INTO phrase_views (dt, phrase, campaign_id, views) VALUES ` +
		strings.Join(placeholders, ", ") +
		` ON CONFLICT DO NOTHING`

	if _, err := db.Conn.Exec(query, args...); err != nil {
		log.Printf("[DB ERROR] сохранение срезов просмотров: %v", err)
		return 0, err
	}
	return len(rows), nil
}

// HourlyMaxViews возвращает агрегаты просмотров по фразам кампании за сутки:
// максимум накопительного счётчика в каждом часе, в котором были срезы.
// Часы без срезов в выборку не попадают.
func (db *DB) HourlyMaxViews(campaignID int, dayStart, dayEnd time.Time) ([]models.PhraseHourlyViews, error) {
	query := `
                SELECT phrase, EXTRACT(HOUR FROM dt)::int AS hour, MAX(views)
                FROM phrase_views
                WHERE campaign_id = $1 AND dt >= $2 AND dt < $3
                GROUP BY phrase, hour
        `

	rows, err := db.Conn.Query(query, campaignID, dayStart, dayEnd)
	if err != nil {
		log.Printf("[DB ERROR] выборка почасовых агрегатов: %v", err)
		return nil, err
	}
	defer rows.Close()

	var aggs []models.PhraseHourlyViews
	for rows.Next() {
		var a models.PhraseHourlyViews
		if err := rows.Scan(&a.Phrase, &a.Hour, &a.MaxViews); err != nil {
			return nil, err
		}
		aggs = append(aggs, a)
	}
	return aggs, rows.Err()
}
