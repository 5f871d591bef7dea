package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"phrase_stats_go/models"
)

// viewsTestDriver предоставляет минимальную реализацию драйвера SQL
// для перехвата запросов без реальной БД.
type viewsTestDriver struct{}

type viewsTestConn struct{}

type viewsTestRows struct {
	columns []string
	data    [][]driver.Value
	idx     int
}

type viewsDummyResult struct{}

// viewsExecuted хранит запросы Exec вместе с количеством аргументов,
// чтобы проверять текст запроса и разметку плейсхолдеров.
var viewsExecuted []struct {
	query string
	args  int
}

// viewsQueryRows задаёт строки, которые вернёт ближайший Query.
var viewsQueryRows [][]driver.Value

func (viewsTestDriver) Open(name string) (driver.Conn, error) { return &viewsTestConn{}, nil }

func (c *viewsTestConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("not implemented")
}
func (c *viewsTestConn) Close() error              { return nil }
func (c *viewsTestConn) Begin() (driver.Tx, error) { return nil, errors.New("not implemented") }

func (c *viewsTestConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	viewsExecuted = append(viewsExecuted, struct {
		query string
		args  int
	}{query, len(args)})
	return viewsDummyResult{}, nil
}

func (c *viewsTestConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	viewsExecuted = append(viewsExecuted, struct {
		query string
		args  int
	}{query, len(args)})
	return &viewsTestRows{columns: []string{"phrase", "hour", "max"}, data: viewsQueryRows}, nil
}

func (viewsDummyResult) LastInsertId() (int64, error) { return 0, nil }
func (viewsDummyResult) RowsAffected() (int64, error) { return 1, nil }

func (r *viewsTestRows) Columns() []string { return r.columns }
func (r *viewsTestRows) Close() error      { return nil }

func (r *viewsTestRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.data) {
		return io.EOF
	}
	copy(dest, r.data[r.idx])
	r.idx++
	return nil
}

func init() {
	sql.Register("viewsdummy", viewsTestDriver{})
}

func openViewsTestDB(t *testing.T) *DB {
	t.Helper()
	viewsExecuted = nil
	viewsQueryRows = nil
	conn, err := sql.Open("viewsdummy", "")
	if err != nil {
		t.Fatalf("не удалось открыть фейковую БД: %v", err)
	}
	return &DB{Conn: conn}
}

// TestSavePhraseViewsBatch проверяет, что пачка срезов уходит одним INSERT
// с ON CONFLICT DO NOTHING и полным набором плейсхолдеров.
func TestSavePhraseViewsBatch(t *testing.T) {
	db := openViewsTestDB(t)

	now := time.Now()
	rows := []models.PhraseView{
		{Dt: now, Phrase: "купить слона", CampaignID: 1111111, Views: 10},
		{Dt: now, Phrase: "купить слона", CampaignID: 1111111, Views: 12},
		{Dt: now, Phrase: "аренда самоката", CampaignID: 1111111, Views: 3},
	}

	n, err := db.SavePhraseViews(rows)
	if err != nil {
		t.Fatalf("вставка завершилась ошибкой: %v", err)
	}
	if n != 3 {
		t.Fatalf("ожидалось 3 сохранённых строки, получено %d", n)
	}
	if len(viewsExecuted) != 1 {
		t.Fatalf("ожидался один запрос, выполнено %d", len(viewsExecuted))
	}

	q := viewsExecuted[0]
	if !strings.Contains(q.query, "ON CONFLICT DO NOTHING") {
		t.Errorf("в запросе нет ON CONFLICT DO NOTHING: %s", q.query)
	}
	if !strings.Contains(q.query, "$12") || strings.Contains(q.query, "$13") {
		t.Errorf("неверная разметка плейсхолдеров: %s", q.query)
	}
	if q.args != 12 {
		t.Errorf("ожидалось 12 аргументов, передано %d", q.args)
	}
}

// TestSavePhraseViewsEmpty проверяет, что пустая пачка не трогает БД.
func TestSavePhraseViewsEmpty(t *testing.T) {
	db := openViewsTestDB(t)

	n, err := db.SavePhraseViews(nil)
	if err != nil {
		t.Fatalf("пустая пачка не должна давать ошибку: %v", err)
	}
	if n != 0 {
		t.Fatalf("ожидалось 0 сохранённых строк, получено %d", n)
	}
	if len(viewsExecuted) != 0 {
		t.Fatalf("запросов быть не должно, выполнено %d", len(viewsExecuted))
	}
}

// TestHourlyMaxViews проверяет форму агрегирующего запроса и разбор строк.
func TestHourlyMaxViews(t *testing.T) {
	db := openViewsTestDB(t)
	viewsQueryRows = [][]driver.Value{
		{"купить слона", int64(7), int64(120)},
		{"купить слона", int64(8), int64(140)},
	}

	dayStart := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	aggs, err := db.HourlyMaxViews(1111111, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("выборка завершилась ошибкой: %v", err)
	}

	q := viewsExecuted[0].query
	for _, want := range []string{"MAX(views)", "GROUP BY phrase, hour", "campaign_id = $1", "EXTRACT(HOUR FROM dt)"} {
		if !strings.Contains(q, want) {
			t.Errorf("в запросе нет %q: %s", want, q)
		}
	}

	if len(aggs) != 2 {
		t.Fatalf("ожидалось 2 агрегата, получено %d", len(aggs))
	}
	if aggs[1].Phrase != "купить слона" || aggs[1].Hour != 8 || aggs[1].MaxViews != 140 {
		t.Errorf("агрегат разобран неверно: %+v", aggs[1])
	}
}
