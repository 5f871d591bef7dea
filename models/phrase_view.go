package models

import "time"

// PhraseView отражает строку таблицы phrase_views — срез накопительного
// счётчика просмотров фразы в рамках кампании на момент времени dt.
type PhraseView struct {
	Dt         time.Time `json:"dt"`          // Момент снятия показаний
	Phrase     string    `json:"phrase"`      // Поисковая фраза кампании
	CampaignID int       `json:"campaign_id"` // Идентификатор кампании
	Views      int       `json:"views"`       // Накопительное количество просмотров
}
