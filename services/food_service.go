package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"backend/config"
)

// FoodService proxies food queries to Open Food Facts and hands the upstream
// JSON body back untouched.
type FoodService struct {
	baseURL string
	client  *http.Client
}

func NewFoodService() *FoodService {
	return &FoodService{
		baseURL: config.App.FoodSearchURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *FoodService) Search(query string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("lc", "pl")

	resp, err := s.client.Get(s.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to call food search API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read food search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food search API error %d", resp.StatusCode)
	}

	return json.RawMessage(body), nil
}
