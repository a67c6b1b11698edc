// Package adp fetches average draft position data from Fantasy Football
// Calculator's public API.
package adp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gridironhq/gridiron/internal/models"
)

const baseURL = "https://fantasyfootballcalculator.com/api/v1"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

type adpResponse struct {
	Status  string `json:"status"`
	Players []struct {
		Name     string  `json:"name"`
		Position string  `json:"position"`
		Team     string  `json:"team"`
		ADP      float64 `json:"adp"`
	} `json:"players"`
}

// GetADP fetches standard scoring draft positions for the given league size
// and season, ordered by ADP.
func (c *Client) GetADP(teams int, year string) ([]models.ADPEntry, error) {
	endpoint := fmt.Sprintf("%s/adp/standard?teams=%d&year=%s&position=all", c.baseURL, teams, year)

	var response adpResponse
	operation := func() error {
		resp, err := c.httpClient.Get(endpoint)
		if err != nil {
			return fmt.Errorf("error making request: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("server error: %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
		}

		if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
			return backoff.Permanent(fmt.Errorf("error decoding response: %w", err))
		}

		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("fetching adp: %w", err)
	}

	if response.Status != "Success" {
		return nil, fmt.Errorf("adp request failed: %s", response.Status)
	}

	entries := make([]models.ADPEntry, 0, len(response.Players))
	for _, p := range response.Players {
		entries = append(entries, models.ADPEntry{
			Name:     p.Name,
			Position: p.Position,
			ProTeam:  p.Team,
			ADP:      p.ADP,
		})
	}

	return entries, nil
}
