package models

// PhraseHourlyViews — агрегат по фразе за конкретный час суток:
// максимум накопительного счётчика просмотров среди всех срезов этого часа.
// Часы без срезов агрегата не имеют (разреженный набор, нулями не заполняется).
type PhraseHourlyViews struct {
	Phrase   string `json:"phrase"`    // Поисковая фраза
	Hour     int    `json:"hour"`      // Час суток, 0–23
	MaxViews int    `json:"max_views"` // Максимум счётчика просмотров за час
}

// HourViewsDiff — прирост просмотров за час относительно предыдущего часа.
// Час отдаётся строкой, как в итоговой выдаче.
type HourViewsDiff struct {
	Hour      string `json:"hour"`       // Час суток строкой
	ViewsDiff int    `json:"views_diff"` // Прирост к предыдущему часу
}

// PhraseViewsByHour — итоговая строка выдачи: фраза и её почасовые приросты,
// отсортированные по убыванию часа с отброшенными крайними элементами.
type PhraseViewsByHour struct {
	Phrase      string          `json:"phrase"`        // Поисковая фраза
	ViewsByHour []HourViewsDiff `json:"views_by_hour"` // Почасовые приросты
}
