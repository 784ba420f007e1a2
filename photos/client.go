package photos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ariel-ams/photos-api-back/models"
)

const cacheKey = "photos:all"

// HTTPClient abstracts outbound HTTP operations for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches the remote photos feed, caching the raw response body in
// Redis so repeated listings don't hammer the upstream.
type Client struct {
	http     HTTPClient
	redis    *redis.Client
	url      string
	cacheTTL time.Duration
}

func NewClient(httpClient HTTPClient, redisClient *redis.Client, url string, cacheTTL time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		http:     httpClient,
		redis:    redisClient,
		url:      url,
		cacheTTL: cacheTTL,
	}
}

// Fetch returns the full photos feed, from cache when possible.
func (c *Client) Fetch(ctx context.Context) ([]models.Photo, error) {
	if body, err := c.redis.Get(ctx, cacheKey).Bytes(); err == nil {
		var photos []models.Photo
		if err := json.Unmarshal(body, &photos); err == nil {
			return photos, nil
		}
		log.Println("discarding unreadable photos cache entry")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching photos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photos upstream returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading photos response: %w", err)
	}

	var photos []models.Photo
	if err := json.Unmarshal(body, &photos); err != nil {
		return nil, fmt.Errorf("error decoding photos response: %w", err)
	}

	if err := c.redis.Set(ctx, cacheKey, body, c.cacheTTL).Err(); err != nil {
		log.Printf("failed to cache photos: %v", err)
	}

	return photos, nil
}
