package collector

import (
	"context"
	"log"
	"time"

	"phrase_stats_go/pkg/reports"
)

// startBackgroundCollect запускает бесконечный цикл, который снимает срез
// счётчиков в начале каждого часа. Статистика берёт максимум счётчика
// внутри часа, поэтому в каждом часовом интервале нужен хотя бы один срез.
func startBackgroundCollect(col *reports.Collector, campaignIDs []int) {
	go func() {
		for {
			now := time.Now()
			next := now.Truncate(time.Hour).Add(time.Hour)
			time.Sleep(next.Sub(now))
			if _, err := col.Collect(context.Background(), campaignIDs); err != nil {
				// Фиксируем ошибку, чтобы отслеживать проблемы; следующий
				// часовой срез выполнится по расписанию.
				log.Printf("[COLLECTOR] ошибка фонового сбора: %v", err)
			}
		}
	}()
}
