package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

// APIClient handles communication with the GloamBot Core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	endpoint := fmt.Sprintf("%s%s", c.BaseURL, path)

	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, endpoint, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeError reads an error payload and wraps it for display
func decodeError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("API error: %s", errResp.Error)
	}
	return fmt.Errorf("API returned status: %d", resp.StatusCode)
}

// VentureResult is the API response for a resolved venture
type VentureResult struct {
	Message string                  `json:"message"`
	Outcome domain.EncounterOutcome `json:"outcome"`
	Actor   *domain.Actor           `json:"actor"`
}

// Venture resolves one venture for the Discord user
func (c *APIClient) Venture(platformID, username, locationID string) (*VentureResult, error) {
	req := map[string]string{
		"platform":    domain.PlatformDiscord,
		"platform_id": platformID,
		"username":    username,
		"location_id": locationID,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/venture", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var result VentureResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode venture result: %w", err)
	}
	return &result, nil
}

// Heal restores hearts for the Discord user
func (c *APIClient) Heal(platformID string, hearts int) (*domain.Actor, error) {
	req := map[string]interface{}{
		"platform":    domain.PlatformDiscord,
		"platform_id": platformID,
		"hearts":      hearts,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/heal", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var healResp struct {
		Message string        `json:"message"`
		Actor   *domain.Actor `json:"actor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&healResp); err != nil {
		return nil, fmt.Errorf("failed to decode heal response: %w", err)
	}
	return healResp.Actor, nil
}

// GetActor fetches the Discord user's adventurer profile
func (c *APIClient) GetActor(platformID string) (*domain.Actor, error) {
	path := fmt.Sprintf("/api/v1/actor/?platform=%s&platform_id=%s",
		domain.PlatformDiscord, url.QueryEscape(platformID))

	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var actor domain.Actor
	if err := json.NewDecoder(resp.Body).Decode(&actor); err != nil {
		return nil, fmt.Errorf("failed to decode actor: %w", err)
	}
	return &actor, nil
}

// GetInventory fetches the Discord user's loot inventory
func (c *APIClient) GetInventory(platformID string) (map[string]int, error) {
	path := fmt.Sprintf("/api/v1/actor/inventory?platform=%s&platform_id=%s",
		domain.PlatformDiscord, url.QueryEscape(platformID))

	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var invResp struct {
		Items map[string]int `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&invResp); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}
	return invResp.Items, nil
}

// GetLocations fetches venture locations and the gloam moon state
func (c *APIClient) GetLocations() (map[string]string, bool, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/v1/venture/locations", nil)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, decodeError(resp)
	}

	var locResp struct {
		Locations map[string]string `json:"locations"`
		GloamMoon bool              `json:"gloam_moon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&locResp); err != nil {
		return nil, false, fmt.Errorf("failed to decode locations: %w", err)
	}
	return locResp.Locations, locResp.GloamMoon, nil
}
