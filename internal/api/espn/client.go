// Package espn talks to ESPN's fantasy football read API. The v3 API is
// undocumented, so endpoints and views mirror what the web client sends.
package espn

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gridironhq/gridiron/internal/config"
)

const baseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"

type Client struct {
	httpClient *http.Client
	baseURL    string
	Config     config.ESPNAPI
}

func NewClient(cfg config.ESPNAPI) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		Config:     cfg,
	}
}

// Get issues a GET against the fantasy API and decodes the JSON response.
// Server errors and transport failures are retried with exponential backoff;
// client errors fail immediately.
func (c *Client) Get(endpoint string, params, headers map[string]string, result interface{}) error {
	url := fmt.Sprintf("%s%s", c.baseURL, endpoint)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	q := req.URL.Query()
	for key, value := range params {
		values := strings.Split(value, ",")
		for _, v := range values {
			q.Add(key, strings.TrimSpace(v))
		}
	}
	req.URL.RawQuery = q.Encode()

	c.setCookies(req)

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	operation := func() error {
		resp, err := c.httpClient.Do(req)
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

func (c *Client) setCookies(req *http.Request) {
	cookie := fmt.Sprintf("SWID=%s; espn_s2=%s", c.Config.SWID, c.Config.ESPNS2)
	req.Header.Set("Cookie", cookie)
}
