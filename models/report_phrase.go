package models

// ReportPhrase — строка выгрузки внешнего API отчётов: текущее значение
// накопительного счётчика просмотров по фразе кампании.
type ReportPhrase struct {
	Phrase string `json:"phrase"` // Поисковая фраза
	Views  int    `json:"views"`  // Накопительный счётчик на момент выгрузки
}
