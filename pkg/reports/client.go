package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"phrase_stats_go/models"
)

// Client ходит во внешний API отчётов за текущими значениями накопительных
// счётчиков просмотров по фразам кампаний.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewClient создаёт клиента API отчётов. Пустой токен допустим —
// заголовок авторизации тогда не отправляется.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// CampaignPhrases запрашивает выгрузку счётчиков по всем фразам кампании.
func (c *Client) CampaignPhrases(ctx context.Context, campaignID int) ([]models.ReportPhrase, error) {
	url := fmt.Sprintf("%s/campaigns/%d/phrases", c.BaseURL, campaignID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("[REPORTS ERROR] запрос %s: %v", url, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api отчётов вернул статус %d", resp.StatusCode)
	}

	var phrases []models.ReportPhrase
	if err := json.NewDecoder(resp.Body).Decode(&phrases); err != nil {
		return nil, err
	}

	log.Printf("[REPORTS] кампания %d: получено %d фраз", campaignID, len(phrases))
	return phrases, nil
}
