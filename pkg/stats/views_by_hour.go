package stats

import (
	"sort"
	"strconv"

	"phrase_stats_go/models"
)

// BuildViewsByHour превращает разреженные почасовые агрегаты в итоговые
// строки выдачи. Для каждой фразы прирост часа h считается относительно
// агрегата того же самого часа h-1: если агрегата за h-1 нет (час 0 или
// разрыв в часах), предыдущее значение принимается равным нулю, ближайший
// более ранний час не подставляется. Пары (час, прирост) сортируются по
// убыванию часа, после чего первые две и последние две отбрасываются;
// при четырёх и менее парах список получается пустым. Строки выдачи
// упорядочены по фразе по возрастанию.
func BuildViewsByHour(aggs []models.PhraseHourlyViews) []models.PhraseViewsByHour {
	// Словарь час -> максимум просмотров по каждой фразе.
	byPhrase := make(map[string]map[int]int)
	for _, a := range aggs {
		hours, ok := byPhrase[a.Phrase]
		if !ok {
			hours = make(map[int]int)
			byPhrase[a.Phrase] = hours
		}
		// При дублях по часу оставляем максимум, как и агрегирующий запрос.
		if v, seen := hours[a.Hour]; !seen || a.MaxViews > v {
			hours[a.Hour] = a.MaxViews
		}
	}

	phrases := make([]string, 0, len(byPhrase))
	for p := range byPhrase {
		phrases = append(phrases, p)
	}
	sort.Strings(phrases)

	result := make([]models.PhraseViewsByHour, 0, len(phrases))
	for _, p := range phrases {
		hoursMap := byPhrase[p]

		hours := make([]int, 0, len(hoursMap))
		for h := range hoursMap {
			hours = append(hours, h)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(hours)))

		series := make([]models.HourViewsDiff, 0, len(hours))
		for _, h := range hours {
			prev := hoursMap[h-1] // 0, если агрегата за предыдущий час нет
			series = append(series, models.HourViewsDiff{
				Hour:      strconv.Itoa(h),
				ViewsDiff: hoursMap[h] - prev,
			})
		}

		if len(series) <= 4 {
			series = []models.HourViewsDiff{}
		} else {
			series = series[2 : len(series)-2]
		}

		result = append(result, models.PhraseViewsByHour{Phrase: p, ViewsByHour: series})
	}
	return result
}
