// Package sleeper wraps the public Sleeper NFL API. It needs no
// authentication and serves as a second opinion on the waiver wire: the
// trending adds feed shows which players managers everywhere are grabbing.
package sleeper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const baseURL = "https://api.sleeper.app/v1"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

// Player is one entry of the Sleeper player dump.
type Player struct {
	FullName     string `json:"full_name"`
	Position     string `json:"position"`
	Team         string `json:"team"`
	Status       string `json:"status"`
	InjuryStatus string `json:"injury_status"`
}

type trendingEntry struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

// TrendingAdd is a player managers across Sleeper are picking up, with the
// add count over the lookback window.
type TrendingAdd struct {
	Name     string
	Position string
	Team     string
	Adds     int
}

func (c *Client) get(endpoint string, result interface{}) error {
	operation := func() error {
		resp, err := c.httpClient.Get(c.baseURL + endpoint)
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

		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return backoff.Permanent(fmt.Errorf("error decoding response: %w", err))
		}

		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	return backoff.Retry(operation, policy)
}

// GetPlayers downloads the full player dump keyed by Sleeper player ID.
// The dump is several megabytes, so callers should cache it.
func (c *Client) GetPlayers() (map[string]Player, error) {
	players := make(map[string]Player)
	if err := c.get("/players/nfl", &players); err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	return players, nil
}

// GetTrendingAdds fetches the most added players over the last 24 hours,
// resolved against the player dump.
func (c *Client) GetTrendingAdds(players map[string]Player, limit int) ([]TrendingAdd, error) {
	var entries []trendingEntry
	endpoint := fmt.Sprintf("/players/nfl/trending/add?lookback_hours=24&limit=%d", limit)
	if err := c.get(endpoint, &entries); err != nil {
		return nil, fmt.Errorf("fetching trending adds: %w", err)
	}

	adds := make([]TrendingAdd, 0, len(entries))
	for _, entry := range entries {
		player, ok := players[entry.PlayerID]
		if !ok || player.FullName == "" {
			continue
		}
		adds = append(adds, TrendingAdd{
			Name:     player.FullName,
			Position: player.Position,
			Team:     player.Team,
			Adds:     entry.Count,
		})
	}

	return adds, nil
}
