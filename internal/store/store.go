// Package store reads the annotated articles table from a Supabase
// project over its PostgREST endpoint. One operation is exposed: select
// every row of a named table. Filtering, ordering and pagination all
// happen client-side.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
)

// Error kinds the cache layer distinguishes. Timeout and connectivity
// failures both degrade to stale data; query failures usually mean a
// misconfigured table or key.
var (
	ErrTimeout      = errors.New("store: fetch timed out")
	ErrConnectivity = errors.New("store: remote unreachable")
	ErrQuery        = errors.New("store: query failed")
)

// Client talks to a single Supabase project.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// New builds a client. baseURL is the project URL (https://xyz.supabase.co);
// apiKey is the anon or service key. timeout bounds every fetch.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// row mirrors one PostgREST JSON object. Supabase emits numeric ids and
// null for absent optional columns, so everything nullable is a pointer
// and the id is decoded as a raw number token.
type row struct {
	ID             json.Number `json:"id"`
	Title          string      `json:"title"`
	Description    *string     `json:"description"`
	URL            *string     `json:"url"`
	Source         string      `json:"source"`
	Topic          string      `json:"topic"`
	Sentiment      string      `json:"sentiment"`
	SentimentScore *float64    `json:"sentiment_score"`
	PublishedDate  *string     `json:"published_date"`
}

// SelectAll fetches every row of the named table, in store order.
func (c *Client) SelectAll(ctx context.Context, table string) (article.Table, error) {
	url := fmt.Sprintf("%s/rest/v1/%s?select=*", c.baseURL, table)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrQuery, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", ErrQuery, table, resp.Status)
	}

	var rows []row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: decoding response: %v", ErrQuery, err)
	}

	out := make(article.Table, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toArticle())
	}
	return out, nil
}

func (r row) toArticle() article.Article {
	a := article.Article{
		ID:        r.ID.String(),
		Title:     r.Title,
		Source:    r.Source,
		Topic:     r.Topic,
		Sentiment: r.Sentiment,
	}
	if r.Description != nil {
		a.Description = *r.Description
	}
	if r.URL != nil {
		a.URL = *r.URL
	}
	if r.SentimentScore != nil {
		a.SentimentScore = *r.SentimentScore
	}
	if r.PublishedDate != nil {
		a.Published = article.ParseTime(*r.PublishedDate)
	}
	return a
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
