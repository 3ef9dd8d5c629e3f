// Package tip fetches a short study suggestion from an external
// text-generation service.  The provider is strictly best-effort: any
// failure, timeout or empty answer degrades to a fixed fallback
// sentence and is never surfaced to the caller as an error.
package tip

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"
)

const (
	// Fallback is returned whenever the upstream call fails.
	Fallback = "Focus on one task at a time for maximum productivity."
	// emptyAnswer covers a successful call that produced no text.
	emptyAnswer = "Keep up the great work!"

	requestTimeout = 4 * time.Second
	cacheTTL       = 10 * time.Minute
)

// Provider calls a text-generation endpoint and caches answers per
// building in Redis when a client is available.  A nil Redis client
// simply disables caching.
type Provider struct {
	http  *resty.Client
	rdb   *redis.Client
	model string
}

// New builds a provider against the given base URL and API key.  An
// empty base URL yields a provider that always answers the fallback,
// so the rest of the service works without upstream credentials.
func New(baseURL, apiKey, model string, rdb *redis.Client) *Provider {
	var client *resty.Client
	if baseURL != "" {
		client = resty.New().
			SetBaseURL(baseURL).
			SetTimeout(requestTimeout).
			SetHeader("Authorization", "Bearer "+apiKey)
	}
	return &Provider{http: client, rdb: rdb, model: model}
}

type generateReq struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type generateResp struct {
	Text string `json:"text"`
}

// StudyTip returns one short, encouraging study tip for the given
// building.  It never returns an error: upstream problems are logged
// and absorbed into the fallback.  Cancelling ctx abandons the call;
// the discarded result is never cached.
func (p *Provider) StudyTip(ctx context.Context, building string) string {
	if p.http == nil {
		return Fallback
	}

	key := "tip:" + strings.ToLower(building)
	if p.rdb != nil {
		if cached, err := p.rdb.Get(ctx, key).Result(); err == nil && cached != "" {
			return cached
		}
	}

	prompt := fmt.Sprintf(
		"Provide one short, encouraging study tip for a college student studying in the %s. Keep it under 15 words.",
		building)

	var out generateResp
	resp, err := p.http.R().
		SetContext(ctx).
		SetBody(generateReq{Model: p.model, Prompt: prompt}).
		SetResult(&out).
		Post("/v1/generate")
	if err != nil {
		log.Printf("tip: generate failed: %v", err)
		return Fallback
	}
	if resp.IsError() {
		log.Printf("tip: generate returned %s", resp.Status())
		return Fallback
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		text = emptyAnswer
	}
	if p.rdb != nil {
		if err := p.rdb.Set(ctx, key, text, cacheTTL).Err(); err != nil {
			log.Printf("tip: cache write failed: %v", err)
		}
	}
	return text
}
