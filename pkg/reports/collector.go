package reports

import (
	"context"
	"log"
	"sync"
	"time"

	"phrase_stats_go/models"
	"phrase_stats_go/pkg/storage"
)

// Collector снимает срезы счётчиков по списку кампаний и сохраняет их
// в таблицу phrase_views одной пачкой.
type Collector struct {
	DB          *storage.DB
	Client      *Client
	Concurrency int // Максимум одновременных запросов к API отчётов
}

func NewCollector(db *storage.DB, client *Client, concurrency int) *Collector {
	if concurrency <= 0 {
		concurrency = 10
	}
	return &Collector{DB: db, Client: client, Concurrency: concurrency}
}

// Collect опрашивает кампании параллельно, не превышая Concurrency
// одновременных запросов. Все полученные фразы сохраняются одним срезом:
// dt у всех строк — момент начала опроса, чтобы срез целиком попал в один
// часовой интервал. Ошибка по отдельной кампании не прерывает остальные,
// но возвращается первой из встретившихся.
func (col *Collector) Collect(ctx context.Context, campaignIDs []int) (int, error) {
	now := time.Now()

	var (
		mu       sync.Mutex
		rows     []models.PhraseView
		firstErr error
	)

	sem := make(chan struct{}, col.Concurrency)
	var wg sync.WaitGroup
	for _, id := range campaignIDs {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			phrases, err := col.Client.CampaignPhrases(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("[COLLECTOR ERROR] кампания %d: %v", id, err)
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for _, p := range phrases {
				rows = append(rows, models.PhraseView{Dt: now, Phrase: p.Phrase, CampaignID: id, Views: p.Views})
			}
		}(id)
	}
	wg.Wait()

	if len(rows) == 0 {
		return 0, firstErr
	}

	saved, err := col.DB.SavePhraseViews(rows)
	if err != nil {
		return 0, err
	}
	log.Printf("[COLLECTOR] сохранено %d срезов по %d кампаниям", saved, len(campaignIDs))
	return saved, firstErr
}
